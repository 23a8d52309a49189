// Package reactor implements the per-connection controller described by the
// protocol: three cooperating goroutines per accepted connection (inbound
// requests, outbound events, outbound reverse-requests) sharing one atomic
// sequence counter and one write-locked socket half.
package reactor

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"goa.design/dap-reactor/dap"
	"goa.design/dap-reactor/dap/frame"
	"goa.design/dap-reactor/dap/telemetry"
	"goa.design/dap-reactor/dap/validate"
)

// Options configures a Reactor. The zero value is not usable; set Addr and
// NewBackend, then pass the Options to New.
type Options struct {
	// Addr is the TCP address to bind, e.g. ":4711". Required.
	Addr string
	// NewBackend constructs one Backend per accepted connection. Required.
	NewBackend Factory
	// QueueCapacity bounds the per-connection events and reverse-requests
	// queues. Zero selects the default of 100.
	QueueCapacity int
	// Logger, Metrics, and Tracer default to no-ops when left nil.
	Logger  telemetry.Logger
	Metrics telemetry.Metrics
	Tracer  telemetry.Tracer
	// Validate, when set, checks each decoded inbound request's raw
	// arguments against the schema registered for its command. A request
	// that fails is logged and not passed to the backend, and no response
	// is written for it. Outbound messages are not validated. Left nil,
	// validation is skipped entirely.
	Validate *validate.Registry
}

func (o *Options) setDefaults() {
	if o.QueueCapacity <= 0 {
		o.QueueCapacity = 100
	}
	if o.Logger == nil || o.Metrics == nil || o.Tracer == nil {
		noop := telemetry.NewNoopTelemetry()
		if o.Logger == nil {
			o.Logger = noop
		}
		if o.Metrics == nil {
			o.Metrics = noop
		}
		if o.Tracer == nil {
			o.Tracer = noop
		}
	}
}

// Reactor accepts TCP connections and runs the protocol controller over
// each one until it closes. A Reactor is safe to Serve only once.
type Reactor struct {
	opts Options
}

// New constructs a Reactor from opts, filling in defaults for unset
// optional fields.
func New(opts Options) *Reactor {
	opts.setDefaults()
	return &Reactor{opts: opts}
}

// Serve binds opts.Addr and accepts connections until ctx is canceled or
// the listener fails. Each accepted connection is handled in its own
// goroutine and Serve does not wait for in-flight connections to drain
// before returning.
func (re *Reactor) Serve(ctx context.Context) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", re.opts.Addr)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			re.opts.Logger.Warn(ctx, "accept failed", "error", err.Error())
			continue
		}
		go re.handleConn(ctx, conn)
	}
}

// handleConn runs one connection's T1/T2/T3 tasks to completion. It never
// returns an error to the caller; all failures are logged against the
// connection id.
func (re *Reactor) handleConn(ctx context.Context, conn net.Conn) {
	connID := uuid.New().String()
	defer conn.Close()

	opts := re.opts
	log, metrics, tracer := opts.Logger, opts.Metrics, opts.Tracer

	ctx, span := tracer.Start(ctx, "dap.connection")
	defer span.End()
	log.Info(ctx, "connection accepted", "conn_id", connID, "remote", conn.RemoteAddr().String())

	c := &connection{
		conn:            conn,
		reader:          bufio.NewReader(conn),
		id:              connID,
		log:             log,
		metrics:         metrics,
		tracer:          tracer,
		validate:        opts.Validate,
		events:          make(chan dap.Event, opts.QueueCapacity),
		reverseRequests: make(chan ReverseCall, opts.QueueCapacity),
	}
	c.seq.Store(1)

	// The backend owns the write side of both queues, so it is also the
	// one responsible for closing them — Go channels are closed by their
	// sender, never their receiver. connCtx is canceled once T1 stops
	// reading (connection loss or fatal I/O error), which is the signal a
	// well-behaved backend watches to stop producing and close its sinks.
	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	backend, err := opts.NewBackend(connCtx, c.events, c.reverseRequests)
	if err != nil {
		log.Error(ctx, "backend init failed", "conn_id", connID, "error", err.Error())
		return
	}
	c.backend = backend

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); defer cancel(); c.inboundLoop(connCtx) }()
	go func() { defer wg.Done(); c.eventsLoop(connCtx) }()
	go func() { defer wg.Done(); c.reverseRequestsLoop(connCtx) }()
	wg.Wait()

	log.Info(ctx, "connection closed", "conn_id", connID)
}

// connection holds the state shared by a connection's three tasks: the
// seq counter (lock-free atomic), the write-lock guarding the socket's
// write half, and the two outbound queues.
type connection struct {
	conn   net.Conn
	reader *bufio.Reader

	id      string
	log     telemetry.Logger
	metrics telemetry.Metrics
	tracer  telemetry.Tracer

	validate *validate.Registry
	backend  Backend

	seq             atomic.Uint64
	writeMu         sync.Mutex
	events          chan dap.Event
	reverseRequests chan ReverseCall
}

// nextSeq allocates the connection's next outbound seq with fetch-add
// semantics: it returns the counter's current value and leaves the
// counter incremented for the following call. Starting the counter at 1
// means the first allocated seq is 1, matching the protocol's convention.
func (c *connection) nextSeq() uint64 { return c.seq.Add(1) - 1 }

func (c *connection) writeFrame(m dap.ProtocolMessage) error {
	b := frame.Encode(m)
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_, err := c.conn.Write(b)
	return err
}

// inboundLoop is T1: decode one frame at a time from the read half and
// dispatch it by envelope kind.
func (c *connection) inboundLoop(ctx context.Context) {
	for {
		_, msg, err := frame.DecodeReader(c.reader)
		if err != nil {
			if isConnClosed(err) {
				return
			}
			if _, ok := err.(*dap.Error); ok {
				c.log.Warn(ctx, "frame decode failed", "conn_id", c.id, "error", err.Error())
				continue
			}
			c.log.Warn(ctx, "inbound read failed", "conn_id", c.id, "error", err.Error())
			return
		}

		switch pm := msg.(type) {
		case dap.ProtocolRequest:
			c.handleRequest(ctx, pm)
		case dap.ProtocolResponse:
			c.handleReverseAnswer(ctx, pm)
		case dap.ProtocolEvent:
			c.log.Warn(ctx, "dropping unexpected inbound event", "conn_id", c.id, "event", pm.Event)
		}
	}
}

func (c *connection) handleRequest(ctx context.Context, pm dap.ProtocolRequest) {
	requestSeq := pm.Seq
	req, err := dap.DecodeRequest(pm)
	if err != nil {
		c.log.Warn(ctx, "request decode failed", "conn_id", c.id, "command", pm.Command, "error", err.Error())
		return
	}
	if c.validate != nil {
		if verr := c.validate.Validate(req.Command(), pm.Arguments); verr != nil {
			c.log.Warn(ctx, "request failed schema validation", "conn_id", c.id, "command", req.Command(), "error", verr.Error())
			return
		}
	}

	reqCtx, span := c.tracer.Start(ctx, "dap.request."+req.Command())
	start := time.Now()
	resp, err := c.backend.Request(reqCtx, req)
	c.metrics.RecordTimer("dap.backend.request", time.Since(start), "command", req.Command())
	span.End()
	if err != nil {
		c.log.Error(ctx, "backend request failed", "conn_id", c.id, "command", req.Command(), "error", err.Error())
		return
	}
	if resp == nil {
		// Documented foot-gun: DAP expects one response per request. The
		// reactor honors the backend's decision and does not synthesize one.
		c.log.Warn(ctx, "backend returned no response", "conn_id", c.id, "command", req.Command(), "request_seq", requestSeq)
		return
	}

	out := dap.EncodeResponse(c.nextSeq(), requestSeq, resp)
	if err := c.writeFrame(out); err != nil {
		c.log.Warn(ctx, "response write failed", "conn_id", c.id, "error", err.Error())
	}
	c.metrics.IncCounter("dap.response.sent", 1, "command", req.Command())
}

func (c *connection) handleReverseAnswer(ctx context.Context, pm dap.ProtocolResponse) {
	resp, err := dap.DecodeReverseResponse(pm)
	if err != nil {
		c.log.Warn(ctx, "reverse response decode failed", "conn_id", c.id, "error", err.Error())
		return
	}
	c.backend.Response(ctx, pm.RequestSeq, resp)
}

// eventsLoop is T2: drain the events queue in enqueue order, allocating a
// fresh seq for each one.
func (c *connection) eventsLoop(ctx context.Context) {
	for ev := range c.events {
		out := dap.EncodeEvent(c.nextSeq(), ev)
		if err := c.writeFrame(out); err != nil {
			c.log.Warn(ctx, "event write failed", "conn_id", c.id, "error", err.Error())
			return
		}
		c.metrics.IncCounter("dap.event.sent", 1)
	}
}

// reverseRequestsLoop is T3: drain the reverse-requests queue in enqueue
// order. A call with a nil ID gets a freshly allocated seq; a call with a
// pinned ID uses it verbatim so the backend can correlate the eventual
// Response itself.
func (c *connection) reverseRequestsLoop(ctx context.Context) {
	for call := range c.reverseRequests {
		var seq uint64
		if call.ID != nil {
			seq = *call.ID
		} else {
			seq = c.nextSeq()
		}
		out := dap.EncodeReverseRequest(seq, call.Request)
		if err := c.writeFrame(out); err != nil {
			c.log.Warn(ctx, "reverse-request write failed", "conn_id", c.id, "error", err.Error())
			return
		}
		c.metrics.IncCounter("dap.reverse_request.sent", 1, "command", call.Request.Command())
	}
}

func isConnClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrUnexpectedEOF)
}

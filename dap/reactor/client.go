package reactor

import (
	"bufio"
	"context"
	"errors"
	"net"
	"sync"
	"sync/atomic"

	"goa.design/dap-reactor/dap"
	"goa.design/dap-reactor/dap/frame"
)

// ClientOptions configures a Client. Zero values select the documented
// defaults.
type ClientOptions struct {
	// QueueCapacity bounds the responses and events channels. Zero selects
	// the default of 50.
	QueueCapacity int
	// ReadBufferSize sizes the buffered reader over the connection. Zero
	// selects the default of 4096 bytes.
	ReadBufferSize int
}

func (o *ClientOptions) setDefaults() {
	if o.QueueCapacity <= 0 {
		o.QueueCapacity = 50
	}
	if o.ReadBufferSize <= 0 {
		o.ReadBufferSize = 4096
	}
}

// TaggedResponse pairs a decoded Response with both its own wire seq and the
// request_seq it answers, so a Client consumer can match it against the
// request it sent and order it against other inbound traffic.
type TaggedResponse struct {
	Seq        uint64
	RequestSeq uint64
	Response   dap.Response
}

// TaggedEvent pairs a decoded Event with the wire seq it arrived on.
type TaggedEvent struct {
	Seq   uint64
	Event dap.Event
}

// TaggedReverseRequest pairs a decoded ReverseRequest with the seq the
// server framed it with, which RespondToReverseRequest needs as
// requestSeq when answering it.
type TaggedReverseRequest struct {
	Seq     uint64
	Request dap.ReverseRequest
}

// Client mirrors the reactor for test and tool use: it connects to a
// server, maintains its own seq counter and write-lock, and exposes
// channels for received responses and events. It also answers
// server-initiated reverse-requests via RespondToReverseRequest.
type Client struct {
	conn   net.Conn
	reader *bufio.Reader

	seq     atomic.Uint64
	writeMu sync.Mutex

	Responses chan TaggedResponse
	Events    chan TaggedEvent
	Reverse   chan TaggedReverseRequest

	closeOnce sync.Once
	done      chan struct{}
}

// Dial connects to addr and starts the client's inbound loop. Call Close
// to tear the connection down and stop the loop.
func Dial(ctx context.Context, addr string, opts ClientOptions) (*Client, error) {
	opts.setDefaults()
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	c := &Client{
		conn:      conn,
		reader:    bufio.NewReaderSize(conn, opts.ReadBufferSize),
		Responses: make(chan TaggedResponse, opts.QueueCapacity),
		Events:    make(chan TaggedEvent, opts.QueueCapacity),
		Reverse:   make(chan TaggedReverseRequest, opts.QueueCapacity),
		done:      make(chan struct{}),
	}
	c.seq.Store(1)
	go c.inboundLoop()
	return c, nil
}

// Close terminates the underlying connection and stops the inbound loop.
// Safe to call more than once.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.conn.Close()
		<-c.done
	})
	return err
}

// nextSeq allocates the client's next outbound seq with fetch-add
// semantics, the same fix applied to the reactor's counter: return the
// current value, leave the counter incremented for the next caller.
func (c *Client) nextSeq() uint64 { return c.seq.Add(1) - 1 }

func (c *Client) writeFrame(m dap.ProtocolMessage) error {
	b := frame.Encode(m)
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_, err := c.conn.Write(b)
	return err
}

// SendRequest frames and writes r, allocating a fresh seq, and returns the
// seq so the caller can match the eventual response on c.Responses.
func (c *Client) SendRequest(r dap.Request) (uint64, error) {
	seq := c.nextSeq()
	pr := dap.EncodeRequest(seq, r)
	return seq, c.writeFrame(pr)
}

// RespondToReverseRequest answers a server-initiated reverse-request
// identified by requestSeq (the seq the server framed it with).
func (c *Client) RespondToReverseRequest(requestSeq uint64, r dap.ReverseResponse) error {
	pr := dap.EncodeReverseResponse(c.nextSeq(), requestSeq, r)
	return c.writeFrame(pr)
}

// inboundLoop decodes frames from the server and fans them out by kind:
// ProtocolResponse onto Responses, ProtocolEvent onto Events, and
// ProtocolRequest (a reverse-request from the server) onto Reverse.
func (c *Client) inboundLoop() {
	defer close(c.done)
	defer close(c.Responses)
	defer close(c.Events)
	defer close(c.Reverse)

	for {
		_, msg, err := frame.DecodeReader(c.reader)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			if _, ok := err.(*dap.Error); ok {
				continue
			}
			return
		}

		switch pm := msg.(type) {
		case dap.ProtocolResponse:
			resp, err := dap.DecodeResponse(pm)
			if err != nil {
				continue
			}
			c.Responses <- TaggedResponse{Seq: pm.Seq, RequestSeq: pm.RequestSeq, Response: resp}
		case dap.ProtocolEvent:
			ev, err := dap.DecodeEvent(pm)
			if err != nil {
				continue
			}
			c.Events <- TaggedEvent{Seq: pm.Seq, Event: ev}
		case dap.ProtocolRequest:
			rr, err := dap.DecodeReverseRequest(pm)
			if err != nil {
				continue
			}
			c.Reverse <- TaggedReverseRequest{Seq: pm.Seq, Request: rr}
		}
	}
}

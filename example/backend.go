// Package example provides a minimal illustrative Backend implementation,
// the kind of external collaborator the reactor is designed to stay
// agnostic of. It tracks no real debuggee: Launch/Attach answer with an
// empty response, SetBreakpoints always reports every breakpoint verified, and
// Continue/Next immediately emit a Stopped event.
package example

import (
	"context"
	"sync"
	"sync/atomic"

	"goa.design/dap-reactor/dap"
	"goa.design/dap-reactor/dap/reactor"
)

// Backend is a trivial, in-memory debug adapter. It exists to give the
// reactor a runnable demonstration and is not meant to drive a real
// debuggee.
type Backend struct {
	events          reactor.EventSink
	reverseRequests reactor.ReverseRequestSink

	mu          sync.Mutex
	nextBpID    atomic.Uint64
	breakpoints map[string][]dap.Breakpoint
}

// NewBackend is a reactor.Factory: it constructs one Backend per accepted
// connection.
func NewBackend(ctx context.Context, events reactor.EventSink, reverseRequests reactor.ReverseRequestSink) (reactor.Backend, error) {
	b := &Backend{
		events:          events,
		reverseRequests: reverseRequests,
		breakpoints:     make(map[string][]dap.Breakpoint),
	}
	go func() {
		<-ctx.Done()
		close(events)
		close(reverseRequests)
	}()
	return b, nil
}

// Request handles one inbound DAP request. It never returns an error; any
// failure is reported as an ErrorResponse, per spec.md's "Request ...
// total, no failure path" invariant.
func (b *Backend) Request(ctx context.Context, req dap.Request) (dap.Response, error) {
	switch r := req.(type) {
	case dap.InitializeRequest:
		b.events <- dap.InitializedEvent{}
		return dap.Capabilities{
			SupportsConfigurationDoneRequest: true,
			SupportsFunctionBreakpoints:      true,
		}, nil

	case dap.LaunchRequest:
		return dap.LaunchResponse{}, nil

	case dap.AttachRequest:
		return dap.AttachResponse{}, nil

	case dap.SetBreakpointsRequest:
		return b.setBreakpoints(r), nil

	case dap.ConfigurationDoneRequest:
		return dap.ConfigurationDoneResponse{}, nil

	case dap.ContinueRequest:
		threadID := r.Arguments.ThreadID
		b.events <- dap.StoppedEvent{Reason: dap.StoppedReasonBreakpoint, ThreadID: &threadID}
		return dap.ContinueResponse{AllThreadsContinued: true}, nil

	case dap.NextRequest:
		threadID := r.Arguments.ThreadID
		b.events <- dap.StoppedEvent{Reason: dap.StoppedReasonStep, ThreadID: &threadID}
		return dap.NextResponse{}, nil

	case dap.ThreadsRequest:
		return dap.ThreadsResponse{Threads: []dap.Thread{{ID: 1, Name: "main"}}}, nil

	case dap.DisconnectRequest:
		return dap.DisconnectResponse{}, nil

	case dap.TerminateRequest:
		b.events <- dap.ExitedEvent{ExitCode: 0}
		b.events <- dap.TerminatedEvent{}
		return dap.TerminateResponse{}, nil

	default:
		msg := "request not supported by the example backend"
		return dap.ErrorResponse{CommandName: req.Command(), Message: &msg}, nil
	}
}

// Response handles the client's answer to a reverse-request. The example
// backend never issues reverse-requests, so this is unreachable in
// practice; it is still implemented to satisfy reactor.Backend.
func (b *Backend) Response(ctx context.Context, requestSeq uint64, resp dap.ReverseResponse) {}

func (b *Backend) setBreakpoints(r dap.SetBreakpointsRequest) dap.SetBreakpointsResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := ""
	if path, ok := r.Arguments.Source.Reference.(dap.SourceIdentityPath); ok {
		key = path.Path
	}

	verified := make([]dap.Breakpoint, 0, len(r.Arguments.Breakpoints))
	for _, src := range r.Arguments.Breakpoints {
		id := b.nextBpID.Add(1)
		line := src.Line
		verified = append(verified, dap.Breakpoint{ID: &id, Verified: true, Line: &line})
	}
	b.breakpoints[key] = verified
	return dap.SetBreakpointsResponse{Breakpoints: verified}
}

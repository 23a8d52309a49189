package reactor

import (
	"context"

	"goa.design/dap-reactor/dap"
)

// ReverseCall is a reverse-request enqueued by a Backend for delivery to
// the client. A nil ID asks the reactor to allocate the connection's next
// outbound seq; a non-nil ID lets the backend pin a specific seq so it can
// correlate the eventual Response in its own bookkeeping.
type ReverseCall struct {
	ID      *uint64
	Request dap.ReverseRequest
}

// EventSink is the channel handle a Backend uses to push Events toward the
// client. The reactor drains it from T2, allocating a fresh outbound seq
// for each one.
type EventSink chan<- dap.Event

// ReverseRequestSink is the channel handle a Backend uses to push
// reverse-requests toward the client. The reactor drains it from T3.
type ReverseRequestSink chan<- ReverseCall

// Backend is the single external collaborator the reactor requires. A new
// Backend is constructed once per accepted connection via a Factory; its
// methods are only ever called from the connection's inbound task (T1), so
// an implementation needs no internal locking around state it owns
// exclusively for request/response handling — concurrent sends on the two
// sinks it was handed at construction are the only cross-task surface, and
// those channels are already safe for concurrent use.
type Backend interface {
	// Request handles one inbound client Request and optionally produces a
	// Response. Protocol-level failures are reported in-band as a Response
	// carrying dap.ErrorResponse. A non-nil error is logged by the reactor
	// and nothing is written for that request_seq. Returning (nil, nil)
	// tells the reactor to write nothing for this request_seq — the
	// backend has taken responsibility for answering later out of band
	// (e.g. via a reverse-request round trip), or is deliberately leaving
	// the client waiting, a documented foot-gun.
	Request(ctx context.Context, request dap.Request) (dap.Response, error)

	// Response handles the client's reply to a previously issued
	// reverse-request. requestSeq is the seq the reactor used to frame
	// that reverse-request (either backend-supplied or reactor-allocated).
	Response(ctx context.Context, requestSeq uint64, response dap.ReverseResponse)
}

// Factory constructs a Backend for one newly accepted connection, given the
// sinks it should use to push outbound events and reverse-requests for the
// lifetime of that connection. Factory is the asynchronous "init" operation
// the reactor invokes once per connection before starting T1/T2/T3.
type Factory func(ctx context.Context, events EventSink, reverseRequests ReverseRequestSink) (Backend, error)

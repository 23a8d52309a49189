package reactor_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goa.design/dap-reactor/dap"
	"goa.design/dap-reactor/dap/reactor"
)

// fixedCapabilities is the Capabilities value the initializeBackend always
// returns from an Initialize request.
var fixedCapabilities = dap.Capabilities{
	SupportsConfigurationDoneRequest: true,
	SupportsFunctionBreakpoints:      true,
}

// initializeBackend answers "initialize" with fixedCapabilities and, once
// a configurationDone request arrives, emits three OutputEvents before
// responding, to exercise S6's interleaving property.
type initializeBackend struct {
	events chan<- dap.Event
}

func newInitializeBackend(_ context.Context, events reactor.EventSink, _ reactor.ReverseRequestSink) (reactor.Backend, error) {
	return &initializeBackend{events: events}, nil
}

func (b *initializeBackend) Request(_ context.Context, req dap.Request) (dap.Response, error) {
	switch req.(type) {
	case dap.InitializeRequest:
		return fixedCapabilities, nil
	case dap.ConfigurationDoneRequest:
		for i := 0; i < 3; i++ {
			b.events <- dap.OutputEvent{Output: "line"}
		}
		return dap.ConfigurationDoneResponse{}, nil
	default:
		return nil, nil
	}
}

func (b *initializeBackend) Response(context.Context, uint64, dap.ReverseResponse) {}

func startTestReactor(t *testing.T, factory reactor.Factory) (addr string, stop func()) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr = ln.Addr().String()
	ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	re := reactor.New(reactor.Options{Addr: addr, NewBackend: factory})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = re.Serve(ctx)
	}()

	// Give the listener a moment to bind before the first dial attempt.
	for i := 0; i < 50; i++ {
		conn, err := net.DialTimeout("tcp", addr, 20*time.Millisecond)
		if err == nil {
			conn.Close()
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	return addr, func() {
		cancel()
		<-done
	}
}

// TestReactorInitializeRoundTrip verifies S5: a client sends Initialize and
// receives a Response whose body equals the backend's fixed Capabilities.
func TestReactorInitializeRoundTrip(t *testing.T) {
	addr, stop := startTestReactor(t, newInitializeBackend)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client, err := reactor.Dial(ctx, addr, reactor.ClientOptions{})
	require.NoError(t, err)
	defer client.Close()

	seq, err := client.SendRequest(dap.InitializeRequest{})
	require.NoError(t, err)

	select {
	case tr := <-client.Responses:
		assert.Equal(t, seq, tr.RequestSeq)
		caps, ok := tr.Response.(dap.Capabilities)
		require.True(t, ok)
		assert.Equal(t, fixedCapabilities, caps)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initialize response")
	}
}

// TestReactorEventInterleaving verifies S6: while the backend is processing
// a request it enqueues events on, every event and the final response
// arrive with strictly increasing seqs and no two share a seq.
func TestReactorEventInterleaving(t *testing.T) {
	addr, stop := startTestReactor(t, newInitializeBackend)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client, err := reactor.Dial(ctx, addr, reactor.ClientOptions{})
	require.NoError(t, err)
	defer client.Close()

	requestSeq, err := client.SendRequest(dap.ConfigurationDoneRequest{})
	require.NoError(t, err)

	var seqs []uint64
	var response *reactor.TaggedResponse
	eventsGot := 0
	timeout := time.After(2 * time.Second)
	for eventsGot < 3 || response == nil {
		select {
		case te := <-client.Events:
			_, ok := te.Event.(dap.OutputEvent)
			require.True(t, ok)
			seqs = append(seqs, te.Seq)
			eventsGot++
		case tr := <-client.Responses:
			tr := tr
			response = &tr
			seqs = append(seqs, tr.Seq)
		case <-timeout:
			t.Fatal("timed out waiting for events and response")
		}
	}

	assert.Equal(t, 3, eventsGot)
	require.NotNil(t, response)
	assert.Equal(t, requestSeq, response.RequestSeq)

	for i := 1; i < len(seqs); i++ {
		assert.Less(t, seqs[i-1], seqs[i], "seqs must arrive strictly increasing")
	}
	for _, s := range seqs {
		assert.NotEqual(t, response.RequestSeq, s, "no event or response may carry seq == request_seq")
	}
}

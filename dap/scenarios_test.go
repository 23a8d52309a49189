package dap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStoppedEventRoundTrip verifies S1: encoding a Stopped event with a
// full set of fields produces the exact expected frame body, and decoding
// that body reconstructs the original value.
func TestStoppedEventRoundTrip(t *testing.T) {
	desc := "desc"
	text := "txt"
	threadID := uint64(15)
	ev := StoppedEvent{
		Reason:            StoppedReason("goto"),
		Description:       &desc,
		ThreadID:          &threadID,
		PreserveFocusHint: true,
		Text:              &text,
		AllThreadsStopped: true,
		HitBreakpointIDs:  []int{15, 20},
	}

	pe := EncodeEvent(15, ev)
	require.Equal(t, uint64(15), pe.Seq)
	require.Equal(t, "stopped", pe.Event)

	wantBody := `{"reason":"goto","description":"desc","threadId":15,"preserveFocusHint":true,"text":"txt","allThreadsStopped":true,"hitBreakpointIds":[15,20]}`
	assert.JSONEq(t, wantBody, string(pe.Body))

	got, err := DecodeEvent(pe)
	require.NoError(t, err)
	require.Equal(t, ev, got)
}

// TestAttachRequestWithErrorResponse verifies S2: decoding an Attach
// request with a __restart argument, then encoding the backend's Error
// response, yields a wire response carrying success:false, the message,
// and the full Message body under request_seq 13.
func TestAttachRequestWithErrorResponse(t *testing.T) {
	pr := ProtocolRequest{
		Seq:       13,
		Command:   "attach",
		Arguments: []byte(`{"__restart":"some-test"}`),
	}
	req, err := DecodeRequest(pr)
	require.NoError(t, err)
	attach, ok := req.(AttachRequest)
	require.True(t, ok)
	require.NotNil(t, attach.Arguments.Restart)
	assert.JSONEq(t, `"some-test"`, string(attach.Arguments.Restart))

	msg := "error msg"
	url := "https://www.fsf.org/"
	urlLabel := "fsf"
	errResp := ErrorResponse{
		CommandName: "attach",
		Message:     &msg,
		Body: &Message{
			ID:            83,
			Format:        "some format",
			Variables:     map[string]string{"var a": "a", "var b": "b"},
			SendTelemetry: true,
			ShowUser:      true,
			URL:           &url,
			URLLabel:      &urlLabel,
		},
	}

	out := EncodeResponse(14, 13, errResp)
	require.Equal(t, uint64(13), out.RequestSeq)
	require.False(t, out.Result.Success())
	require.NotNil(t, out.Result.Error)
	require.Equal(t, "error msg", *out.Result.Error.Message)
	require.NotNil(t, out.Result.Error.Body)
	require.Equal(t, uint64(83), out.Result.Error.Body.ID)

	raw := EncodeProtocolMessage(out)
	assert.Contains(t, string(raw), `"success":false`)
	assert.Contains(t, string(raw), `"message":"error msg"`)
	assert.Contains(t, string(raw), `"request_seq":13`)
}

// TestSourceDualForm verifies S3: a Source decodes to a path identity when
// only path is present, a reference identity when sourceReference is
// present and non-zero, and no identity (absent) when sourceReference is
// exactly zero. Each re-encoded form matches the original wire shape.
func TestSourceDualForm(t *testing.T) {
	t.Run("path form", func(t *testing.T) {
		obj, err := asObject("source", []byte(`{"name":"n","path":"/p"}`))
		require.NoError(t, err)
		src, err := decodeSource(obj)
		require.NoError(t, err)
		require.Equal(t, SourceIdentityPath{Path: "/p"}, src.Reference)
		assert.JSONEq(t, `{"name":"n","path":"/p"}`, string(src.encode()))
	})

	t.Run("reference form", func(t *testing.T) {
		obj, err := asObject("source", []byte(`{"name":"n","sourceReference":7}`))
		require.NoError(t, err)
		src, err := decodeSource(obj)
		require.NoError(t, err)
		require.Equal(t, SourceIdentityReference{Reference: 7}, src.Reference)
		assert.JSONEq(t, `{"name":"n","sourceReference":7}`, string(src.encode()))
	})

	t.Run("zero reference treated as absent", func(t *testing.T) {
		obj, err := asObject("source", []byte(`{"name":"n","sourceReference":0}`))
		require.NoError(t, err)
		src, err := decodeSource(obj)
		require.NoError(t, err)
		require.Nil(t, src.Reference)
		assert.JSONEq(t, `{"name":"n"}`, string(src.encode()))
	})
}

// TestCapabilitiesDefaultElision verifies the §8 default/elision
// invariants for Capabilities: an all-absent decode equals the all-false
// value, and an all-false encode produces an empty object.
func TestCapabilitiesDefaultElision(t *testing.T) {
	obj, err := asObject("capabilities", []byte(`{}`))
	require.NoError(t, err)
	caps, err := decodeCapabilities(obj)
	require.NoError(t, err)
	require.Equal(t, Capabilities{}, caps)
	assert.JSONEq(t, `{}`, string(caps.encode()))
}

// TestBreakpointVerifiedOnlyElision verifies the §8 invariant: a
// Breakpoint with only Verified=true set emits exactly {"verified":true}.
func TestBreakpointVerifiedOnlyElision(t *testing.T) {
	bp := Breakpoint{Verified: true}
	assert.JSONEq(t, `{"verified":true}`, string(bp.encode()))
}

package frame

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goa.design/dap-reactor/dap"
)

// TestFrameBoundary verifies S4: a short body yields UnexpectedEof from the
// slice decoder, and a correctly-framed short message leaves trailing bytes
// untouched.
func TestFrameBoundary(t *testing.T) {
	t.Run("short body", func(t *testing.T) {
		_, _, err := DecodeSlice([]byte("Content-Length: 10\r\n\r\n{\"a\":"))
		require.Error(t, err)
		derr, ok := err.(*dap.Error)
		require.True(t, ok)
		assert.Equal(t, dap.UnexpectedEOF, derr.Cause)
	})

	t.Run("trailing bytes untouched", func(t *testing.T) {
		data := []byte("Content-Length: 46\r\n\r\n{\"seq\":1,\"type\":\"event\",\"event\":\"initialized\"}trailing-garbage")
		consumed, msg, err := DecodeSlice(data)
		require.NoError(t, err)
		assert.Equal(t, 68, consumed)
		require.NotNil(t, msg)
		assert.Equal(t, string(data[consumed:]), "trailing-garbage")
	})
}

// TestEncodeThenSliceDecode verifies frame_encode then slice_decode returns
// (len(framed_bytes), M).
func TestEncodeThenSliceDecode(t *testing.T) {
	m := dap.ProtocolEvent{Seq: 3, Event: "initialized"}
	framed := Encode(m)

	consumed, decoded, err := DecodeSlice(framed)
	require.NoError(t, err)
	assert.Equal(t, len(framed), consumed)
	assert.Equal(t, m, decoded)
}

// TestEncodeThenStreamDecode verifies frame_encode then stream_decode
// returns (len, M) for the same message.
func TestEncodeThenStreamDecode(t *testing.T) {
	m := dap.ProtocolEvent{Seq: 9, Event: "initialized"}
	framed := Encode(m)

	r := bufio.NewReader(bytes.NewReader(framed))
	consumed, decoded, err := DecodeReader(r)
	require.NoError(t, err)
	assert.Equal(t, len(framed), consumed)
	assert.Equal(t, m, decoded)
}

// TestHeaderCaseInsensitiveAndBareNewline verifies the framer tolerates a
// lowercase Content-Length header and a bare "\n" terminator.
func TestHeaderCaseInsensitiveAndBareNewline(t *testing.T) {
	body := `{"seq":1,"type":"event","event":"initialized"}`
	raw := "content-length: " + itoa(len(body)) + "\n\n" + body
	r := bufio.NewReader(bytes.NewReader([]byte(raw)))
	_, msg, err := DecodeReader(r)
	require.NoError(t, err)
	ev, ok := msg.(dap.ProtocolEvent)
	require.True(t, ok)
	assert.Equal(t, "initialized", ev.Event)
}

// TestSliceDecodeBareNewline verifies DecodeSlice, not just DecodeReader,
// tolerates a bare "\n\n" separator in place of "\r\n\r\n".
func TestSliceDecodeBareNewline(t *testing.T) {
	body := `{"seq":1,"type":"event","event":"initialized"}`
	raw := []byte("Content-Length: " + itoa(len(body)) + "\n\n" + body)
	consumed, msg, err := DecodeSlice(raw)
	require.NoError(t, err)
	assert.Equal(t, len(raw), consumed)
	ev, ok := msg.(dap.ProtocolEvent)
	require.True(t, ok)
	assert.Equal(t, "initialized", ev.Event)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

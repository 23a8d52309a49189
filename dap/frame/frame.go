// Package frame implements the Debug Adapter Protocol's wire framing: a
// Content-Length header followed by a JSON body, independent of the
// envelope's own structure (see the sibling dap package for that).
package frame

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"goa.design/dap-reactor/dap"
)

// Encode renders m as a complete DAP frame: header, blank line, JSON body.
func Encode(m dap.ProtocolMessage) []byte {
	body := dap.EncodeProtocolMessage(m)
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Content-Length: %d\r\n\r\n", len(body))
	buf.Write(body)
	return buf.Bytes()
}

// DecodeSlice parses the single frame at the start of data, returning the
// decoded message and the number of bytes consumed. Trailing bytes beyond
// the frame are left untouched — callers handling a stream should re-slice
// and call again.
func DecodeSlice(data []byte) (int, dap.ProtocolMessage, error) {
	header, body, ok := splitHeader(data)
	if !ok {
		return 0, nil, dap.NewError("protocolMessage", dap.IsMandatory)
	}
	consumed := len(data) - len(body)

	length, ok := contentLength(header)
	if !ok {
		return 0, nil, dap.NewError("protocolMessage", dap.IsMandatory)
	}
	if len(body) < length {
		return 0, nil, dap.NewError("protocolMessage", dap.UnexpectedEOF)
	}

	m, err := dap.DecodeProtocolMessage(body[:length])
	if err != nil {
		return 0, nil, err
	}
	return consumed + length, m, nil
}

// splitHeader finds the blank-line separator between header and body,
// scanning line by line so a bare "\n" terminator is tolerated on any line
// (including the blank one) alongside "\r\n", matching DecodeReader's
// tolerance. It requires the whole header to already be buffered; callers
// streaming from a socket should use DecodeReader instead.
func splitHeader(data []byte) (header, body []byte, ok bool) {
	pos := 0
	for {
		nl := bytes.IndexByte(data[pos:], '\n')
		if nl < 0 {
			return nil, nil, false
		}
		lineEnd := pos + nl
		line := bytes.TrimSuffix(data[pos:lineEnd], []byte("\r"))
		next := lineEnd + 1
		if len(line) == 0 {
			return data[:pos], data[next:], true
		}
		pos = next
	}
}

func contentLength(header []byte) (int, bool) {
	for _, line := range bytes.Split(header, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		key, value, ok := strings.Cut(string(line), ": ")
		if !ok {
			continue
		}
		if strings.ToLower(key) != "content-length" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

// DecodeReader reads exactly one frame from r: the Content-Length header
// (tolerant of bare "\n" line endings and of unrelated header lines, which
// are skipped), the blank separator line, and the declared number of body
// bytes. It returns the number of bytes consumed and the decoded message.
func DecodeReader(r *bufio.Reader) (int, dap.ProtocolMessage, error) {
	consumed := 0
	length := -1

	for length < 0 {
		line, err := r.ReadString('\n')
		consumed += len(line)
		if err != nil {
			return consumed, nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return consumed, nil, dap.NewError("protocolMessage", dap.IsMandatory)
		}
		key, value, ok := strings.Cut(line, ": ")
		if !ok || strings.ToLower(key) != "content-length" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return consumed, nil, dap.NewError("protocolMessage", dap.IsInvalid)
		}
		length = n
	}

	for {
		line, err := r.ReadString('\n')
		consumed += len(line)
		if err != nil {
			return consumed, nil, err
		}
		if trimmed := strings.TrimRight(line, "\r\n"); trimmed == "" {
			break
		}
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return consumed, nil, dap.NewError("protocolMessage", dap.UnexpectedEOF)
		}
		return consumed, nil, err
	}
	consumed += length

	m, err := dap.DecodeProtocolMessage(body)
	if err != nil {
		return consumed, nil, err
	}
	return consumed, m, nil
}

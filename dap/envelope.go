package dap

import "encoding/json"

// ProtocolMessage is the envelope every frame on the wire carries: exactly
// one of ProtocolRequest, ProtocolResponse, or ProtocolEvent, discriminated
// by the JSON "type" field.
type ProtocolMessage interface{ isProtocolMessage() }

func (ProtocolRequest) isProtocolMessage()  {}
func (ProtocolResponse) isProtocolMessage() {}
func (ProtocolEvent) isProtocolMessage()    {}

// ProtocolRequest is a client-to-adapter command.
type ProtocolRequest struct {
	Seq       uint64
	Command   string
	Arguments json.RawMessage
}

// ProtocolEvent is an adapter-to-client notification.
type ProtocolEvent struct {
	Seq   uint64
	Event string
	Body  json.RawMessage
}

// ProtocolResponseError is the failure half of a ProtocolResponse's result.
type ProtocolResponseError struct {
	Message *string
	Body    *Message
}

// ProtocolResponseResult is the outcome of a request: a success body (which
// may itself be absent) or an error.
type ProtocolResponseResult struct {
	Body  json.RawMessage
	Error *ProtocolResponseError
}

// Success reports whether the result represents success.
func (r ProtocolResponseResult) Success() bool { return r.Error == nil }

// ProtocolResponse is the adapter-to-client reply to a ProtocolRequest.
type ProtocolResponse struct {
	Seq        uint64
	RequestSeq uint64
	Command    string
	Result     ProtocolResponseResult
}

func encodeProtocolRequest(r ProtocolRequest) json.RawMessage {
	return finalizeObject(
		attrU64("seq", r.Seq),
		attrString("type", "request"),
		attrString("command", r.Command),
		attrRawOptional("arguments", r.Arguments),
	)
}

func encodeProtocolEvent(e ProtocolEvent) json.RawMessage {
	return finalizeObject(
		attrU64("seq", e.Seq),
		attrString("type", "event"),
		attrString("event", e.Event),
		attrRawOptional("body", e.Body),
	)
}

func encodeProtocolResponse(r ProtocolResponse) json.RawMessage {
	success := r.Result.Success()
	var message *string
	var body json.RawMessage
	if success {
		body = r.Result.Body
	} else {
		message = r.Result.Error.Message
		if r.Result.Error.Body != nil {
			body = r.Result.Error.Body.encode()
		}
	}
	return finalizeObject(
		attrU64("seq", r.Seq),
		attrString("type", "response"),
		attrU64("request_seq", r.RequestSeq),
		attrBool("success", success),
		attrString("command", r.Command),
		attrStringOptional("message", message),
		attrRawOptional("body", body),
	)
}

// EncodeProtocolMessage renders a ProtocolMessage to its wire JSON form.
func EncodeProtocolMessage(m ProtocolMessage) json.RawMessage {
	switch v := m.(type) {
	case ProtocolRequest:
		return encodeProtocolRequest(v)
	case ProtocolResponse:
		return encodeProtocolResponse(v)
	case ProtocolEvent:
		return encodeProtocolEvent(v)
	default:
		return json.RawMessage("null")
	}
}

// DecodeProtocolMessage parses a single JSON object into its discriminated
// ProtocolMessage variant.
func DecodeProtocolMessage(raw json.RawMessage) (ProtocolMessage, error) {
	obj, err := asObject("protocolMessage", raw)
	if err != nil {
		return nil, err
	}
	seq, err := getU64(obj, "seq")
	if err != nil {
		return nil, err
	}
	ty, err := getString(obj, "type")
	if err != nil {
		return nil, err
	}
	switch ty {
	case "request":
		command, err := getString(obj, "command")
		if err != nil {
			return nil, err
		}
		arguments, _ := getOptional(obj, "arguments")
		return ProtocolRequest{Seq: seq, Command: command, Arguments: arguments}, nil

	case "response":
		requestSeq, err := getU64(obj, "request_seq")
		if err != nil {
			return nil, err
		}
		success, err := getBool(obj, "success")
		if err != nil {
			return nil, err
		}
		command, err := getString(obj, "command")
		if err != nil {
			return nil, err
		}
		message, err := getStringOptional(obj, "message")
		if err != nil {
			return nil, err
		}
		body, hasBody := getOptional(obj, "body")

		var result ProtocolResponseResult
		if success {
			result = ProtocolResponseResult{Body: body}
		} else {
			var errBody *Message
			if hasBody {
				if bodyObj, err := asObject("body", body); err == nil {
					if m, err := decodeMessage(bodyObj); err == nil {
						errBody = &m
					}
				}
			}
			result = ProtocolResponseResult{Error: &ProtocolResponseError{Message: message, Body: errBody}}
		}
		return ProtocolResponse{Seq: seq, RequestSeq: requestSeq, Command: command, Result: result}, nil

	case "event":
		event, err := getString(obj, "event")
		if err != nil {
			return nil, err
		}
		body, _ := getOptional(obj, "body")
		return ProtocolEvent{Seq: seq, Event: event, Body: body}, nil

	default:
		return nil, NewError("protocolMessage", ExpectsEnum)
	}
}

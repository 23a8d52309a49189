package dap

import "encoding/json"

// ReverseRequest is an adapter-to-client command, sent over the same
// connection as ordinary Request/Response traffic but with the roles
// reversed: the adapter asks, the client answers.
type ReverseRequest interface {
	isReverseRequest()
	Command() string
}

// RunInTerminalRequest asks the client to launch a command in its own
// terminal UI, typically so a debuggee's stdio is visible to the user.
type RunInTerminalRequest struct {
	Kind                        *RunInTerminalKind
	Title                       *string
	Cwd                         string
	Args                        []string
	Env                         map[string]*string
	ArgsCanBeInterpretedByShell bool
}

func (RunInTerminalRequest) isReverseRequest()  {}
func (RunInTerminalRequest) Command() string    { return "runInTerminal" }

func decodeRunInTerminalRequest(obj object) (RunInTerminalRequest, error) {
	var r RunInTerminalRequest
	var err error
	if s, err := getStringOptional(obj, "kind"); err != nil {
		return RunInTerminalRequest{}, err
	} else if s != nil {
		k, err := ParseRunInTerminalKind("kind", *s)
		if err != nil {
			return RunInTerminalRequest{}, err
		}
		r.Kind = &k
	}
	if r.Title, err = getStringOptional(obj, "title"); err != nil {
		return RunInTerminalRequest{}, err
	}
	if r.Cwd, err = getString(obj, "cwd"); err != nil {
		return RunInTerminalRequest{}, err
	}
	args, err := getArrayOfStringOptional(obj, "args")
	if err != nil {
		return RunInTerminalRequest{}, err
	}
	r.Args = args
	if r.Env, err = getMapToStringOrNullOptional(obj, "env"); err != nil {
		return RunInTerminalRequest{}, err
	}
	if r.ArgsCanBeInterpretedByShell, err = getBoolOptional(obj, "argsCanBeInterpretedByShell"); err != nil {
		return RunInTerminalRequest{}, err
	}
	return r, nil
}

func (r RunInTerminalRequest) encode() json.RawMessage {
	var kind *string
	if r.Kind != nil {
		v := string(*r.Kind)
		kind = &v
	}
	return finalizeObject(
		attrStringOptional("kind", kind),
		attrStringOptional("title", r.Title),
		attrString("cwd", r.Cwd),
		attrArrayOptional("args", r.Args),
		attrMapOrNullOptional("env", r.Env),
		attrBoolOptional("argsCanBeInterpretedByShell", r.ArgsCanBeInterpretedByShell),
	)
}

// EncodeReverseRequest renders r as a ProtocolRequest for the given seq.
func EncodeReverseRequest(seq uint64, r ReverseRequest) ProtocolRequest {
	var arguments json.RawMessage
	if v, ok := r.(RunInTerminalRequest); ok {
		arguments = v.encode()
	}
	return ProtocolRequest{Seq: seq, Command: r.Command(), Arguments: arguments}
}

// DecodeReverseRequest parses a ProtocolRequest sent by the adapter into a
// typed ReverseRequest.
func DecodeReverseRequest(pr ProtocolRequest) (ReverseRequest, error) {
	switch pr.Command {
	case "runInTerminal":
		if pr.Arguments == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		obj, err := asObject("arguments", pr.Arguments)
		if err != nil {
			return nil, err
		}
		return decodeRunInTerminalRequest(obj)
	default:
		return nil, NewError("command", ExpectsEnum)
	}
}

// ReverseResponse is the client's reply to a ReverseRequest.
type ReverseResponse interface {
	isReverseResponse()
	Command() string
}

// ReverseErrorResponse reports that a ReverseRequest failed.
type ReverseErrorResponse struct {
	CommandName string
	Message     *string
	Body        *Message
}

// RunInTerminalResponse reports the process ids of the command the client
// launched, when available.
type RunInTerminalResponse struct {
	ProcessID      *uint32
	ShellProcessID *uint32
}

func (ReverseErrorResponse) isReverseResponse() {}
func (RunInTerminalResponse) isReverseResponse() {}

func (r ReverseErrorResponse) Command() string  { return r.CommandName }
func (RunInTerminalResponse) Command() string   { return "runInTerminal" }

func (r RunInTerminalResponse) encode() json.RawMessage {
	return finalizeObject(
		attrU32Optional("processId", r.ProcessID),
		attrU32Optional("shellProcessId", r.ShellProcessID),
	)
}

func decodeRunInTerminalResponse(obj object) (RunInTerminalResponse, error) {
	var r RunInTerminalResponse
	var err error
	if r.ProcessID, err = getU32Optional(obj, "processId"); err != nil {
		return RunInTerminalResponse{}, err
	}
	if r.ShellProcessID, err = getU32Optional(obj, "shellProcessId"); err != nil {
		return RunInTerminalResponse{}, err
	}
	return r, nil
}

// EncodeReverseResponse renders r as a ProtocolResponse for the given seq
// and the ReverseRequest's request_seq it answers.
func EncodeReverseResponse(seq, requestSeq uint64, r ReverseResponse) ProtocolResponse {
	if errResp, ok := r.(ReverseErrorResponse); ok {
		return ProtocolResponse{
			Seq:        seq,
			RequestSeq: requestSeq,
			Command:    errResp.CommandName,
			Result: ProtocolResponseResult{
				Error: &ProtocolResponseError{Message: errResp.Message, Body: errResp.Body},
			},
		}
	}
	var body json.RawMessage
	if v, ok := r.(RunInTerminalResponse); ok {
		body = v.encode()
	}
	return ProtocolResponse{
		Seq:        seq,
		RequestSeq: requestSeq,
		Command:    r.Command(),
		Result:     ProtocolResponseResult{Body: body},
	}
}

// DecodeReverseResponse parses a ProtocolResponse into a typed
// ReverseResponse. A failed result always decodes to ReverseErrorResponse
// regardless of command.
func DecodeReverseResponse(pr ProtocolResponse) (ReverseResponse, error) {
	if !pr.Result.Success() {
		return ReverseErrorResponse{
			CommandName: pr.Command,
			Message:     pr.Result.Error.Message,
			Body:        pr.Result.Error.Body,
		}, nil
	}
	switch pr.Command {
	case "runInTerminal":
		if pr.Result.Body == nil {
			return nil, NewError("body", IsMandatory)
		}
		obj, err := asObject("body", pr.Result.Body)
		if err != nil {
			return nil, err
		}
		return decodeRunInTerminalResponse(obj)
	default:
		return nil, NewError("command", ExpectsEnum)
	}
}

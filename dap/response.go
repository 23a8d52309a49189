package dap

import "encoding/json"

// Response is the adapter-to-client reply to a Request, discriminated by
// ProtocolResponse's command field and success flag.
type Response interface {
	isResponse()
	Command() string
}

// ErrorResponse reports that a request failed. It can carry any command
// name, since any request can fail.
type ErrorResponse struct {
	CommandName string
	Message     *string
	Body        *Message
}

type AttachResponse struct{}
type RestartResponse struct{}
type DisconnectResponse struct{}
type TerminateResponse struct{}
type ConfigurationDoneResponse struct{}

// BreakpointLocationsResponse reports the verified breakpoint locations
// within the requested range, under the key "breakpoints" — consistent
// with every other list-shaped response in this catalog.
type BreakpointLocationsResponse struct {
	Breakpoints []BreakpointLocation
}

// ContinueResponse reports whether all threads (not just the requested
// one) actually resumed.
type ContinueResponse struct {
	AllThreadsContinued bool
}

// EvaluateResponse is the result of evaluating an expression.
type EvaluateResponse struct {
	Result             string
	Type               *string
	PresentationHint   *VariablePresentationHint
	VariablesReference uint64
	NamedVariables     *uint64
	IndexedVariables   *uint64
	MemoryReference    *string
}

// ExceptionInfoResponse describes the exception behind the most recent
// Stopped event on a thread.
type ExceptionInfoResponse struct {
	ExceptionID string
	Description *string
	BreakMode   ExceptionBreakMode
	Details     *ExceptionDetails
}

type GotoResponse struct{}

// InitializeResponse is the negotiated Capabilities vector; the upstream
// protocol defines its body as Capabilities verbatim, with no wrapper.
type InitializeResponse = Capabilities

type LaunchResponse struct{}

// LoadedSourcesResponse lists every source currently loaded by the
// debuggee.
type LoadedSourcesResponse struct {
	Sources []Source
}

type NextResponse struct{}
type ReverseContinueResponse struct{}

// SetBreakpointsResponse reports the verification state of every
// breakpoint from the matching request, in the same order.
type SetBreakpointsResponse struct {
	Breakpoints []Breakpoint
}

type StepBackResponse struct{}

// ScopesResponse lists the variable scopes visible at a stack frame.
type ScopesResponse struct {
	Scopes []Scope
}

// StackTraceResponse is a thread's call stack, optionally with the total
// frame count for clients that paginate.
type StackTraceResponse struct {
	StackFrames []StackFrame
	TotalFrames *uint64
}

// ThreadsResponse lists the debuggee's current threads.
type ThreadsResponse struct {
	Threads []Thread
}

// VariablesResponse lists the children of a Scope or container Variable.
type VariablesResponse struct {
	Variables []Variable
}

// CustomAddBreakpointResponse returns the id assigned to a breakpoint
// added outside the SetBreakpoints bulk-replace flow.
type CustomAddBreakpointResponse struct {
	ID uint64
}

// CustomRemoveBreakpointResponse reports whether the given breakpoint id
// was actually present to remove.
type CustomRemoveBreakpointResponse struct {
	ID      uint64
	Removed bool
}

func (ErrorResponse) isResponse()                  {}
func (AttachResponse) isResponse()                 {}
func (RestartResponse) isResponse()                {}
func (DisconnectResponse) isResponse()              {}
func (TerminateResponse) isResponse()              {}
func (ConfigurationDoneResponse) isResponse()      {}
func (BreakpointLocationsResponse) isResponse()    {}
func (ContinueResponse) isResponse()                {}
func (EvaluateResponse) isResponse()                {}
func (ExceptionInfoResponse) isResponse()           {}
func (GotoResponse) isResponse()                    {}
func (LaunchResponse) isResponse()                  {}
func (LoadedSourcesResponse) isResponse()          {}
func (NextResponse) isResponse()                    {}
func (ReverseContinueResponse) isResponse()         {}
func (SetBreakpointsResponse) isResponse()          {}
func (StepBackResponse) isResponse()                {}
func (ScopesResponse) isResponse()                  {}
func (StackTraceResponse) isResponse()              {}
func (ThreadsResponse) isResponse()                 {}
func (VariablesResponse) isResponse()               {}
func (CustomAddBreakpointResponse) isResponse()     {}
func (CustomRemoveBreakpointResponse) isResponse()  {}

func (r ErrorResponse) Command() string             { return r.CommandName }
func (AttachResponse) Command() string               { return "attach" }
func (RestartResponse) Command() string              { return "restart" }
func (DisconnectResponse) Command() string           { return "disconnect" }
func (TerminateResponse) Command() string            { return "terminate" }
func (ConfigurationDoneResponse) Command() string    { return "configurationDone" }
func (BreakpointLocationsResponse) Command() string  { return "breakpointLocations" }
func (ContinueResponse) Command() string             { return "continue" }
func (EvaluateResponse) Command() string             { return "evaluate" }
func (ExceptionInfoResponse) Command() string        { return "exceptionInfo" }
func (GotoResponse) Command() string                 { return "goto" }
func (LaunchResponse) Command() string               { return "launch" }
func (LoadedSourcesResponse) Command() string        { return "loadedSources" }
func (NextResponse) Command() string                 { return "next" }
func (ReverseContinueResponse) Command() string      { return "reverseContinue" }
func (SetBreakpointsResponse) Command() string       { return "setBreakpoints" }
func (StepBackResponse) Command() string             { return "stepBack" }
func (ScopesResponse) Command() string                { return "scopes" }
func (StackTraceResponse) Command() string            { return "stackTrace" }
func (ThreadsResponse) Command() string               { return "threads" }
func (VariablesResponse) Command() string             { return "variables" }
func (CustomAddBreakpointResponse) Command() string   { return "customAddBreakpoint" }
func (CustomRemoveBreakpointResponse) Command() string { return "customRemoveBreakpoint" }

// Capabilities doubles as InitializeResponse's body, so it carries the
// Response methods directly rather than through a wrapper type.
func (Capabilities) isResponse()      {}
func (Capabilities) Command() string { return "initialize" }

func evaluateResponseEncode(r EvaluateResponse) json.RawMessage {
	var typ *string
	if r.Type != nil {
		typ = r.Type
	}
	var hint *json.RawMessage
	if r.PresentationHint != nil {
		raw := r.PresentationHint.encode()
		hint = &raw
	}
	return finalizeObject(
		attrString("result", r.Result),
		attrStringOptional("type", typ),
		attrObjectOptional("presentationHint", hint),
		attrU64("variablesReference", r.VariablesReference),
		attrU64Optional("namedVariables", r.NamedVariables),
		attrU64Optional("indexedVariables", r.IndexedVariables),
		attrStringOptional("memoryReference", r.MemoryReference),
	)
}

func decodeEvaluateResponse(obj object) (EvaluateResponse, error) {
	var r EvaluateResponse
	var err error
	if r.Result, err = getString(obj, "result"); err != nil {
		return EvaluateResponse{}, err
	}
	if r.Type, err = getStringOptional(obj, "type"); err != nil {
		return EvaluateResponse{}, err
	}
	if r.PresentationHint, err = getObjectOptional(obj, "presentationHint", decodeVariablePresentationHint); err != nil {
		return EvaluateResponse{}, err
	}
	if r.VariablesReference, err = getU64(obj, "variablesReference"); err != nil {
		return EvaluateResponse{}, err
	}
	if r.NamedVariables, err = getU64Optional(obj, "namedVariables"); err != nil {
		return EvaluateResponse{}, err
	}
	if r.IndexedVariables, err = getU64Optional(obj, "indexedVariables"); err != nil {
		return EvaluateResponse{}, err
	}
	if r.MemoryReference, err = getStringOptional(obj, "memoryReference"); err != nil {
		return EvaluateResponse{}, err
	}
	return r, nil
}

func exceptionInfoResponseEncode(r ExceptionInfoResponse) json.RawMessage {
	var details *json.RawMessage
	if r.Details != nil {
		raw := r.Details.encode()
		details = &raw
	}
	return finalizeObject(
		attrString("exceptionId", r.ExceptionID),
		attrStringOptional("description", r.Description),
		attrString("breakMode", string(r.BreakMode)),
		attrObjectOptional("details", details),
	)
}

func decodeExceptionInfoResponse(obj object) (ExceptionInfoResponse, error) {
	var r ExceptionInfoResponse
	var err error
	if r.ExceptionID, err = getString(obj, "exceptionId"); err != nil {
		return ExceptionInfoResponse{}, err
	}
	if r.Description, err = getStringOptional(obj, "description"); err != nil {
		return ExceptionInfoResponse{}, err
	}
	mode, err := getString(obj, "breakMode")
	if err != nil {
		return ExceptionInfoResponse{}, err
	}
	if r.BreakMode, err = ParseExceptionBreakMode("breakMode", mode); err != nil {
		return ExceptionInfoResponse{}, err
	}
	if r.Details, err = getObjectOptional(obj, "details", decodeExceptionDetails); err != nil {
		return ExceptionInfoResponse{}, err
	}
	return r, nil
}

// encodeResponseBody renders r's success body, or nil for bodyless
// responses.
func encodeResponseBody(r Response) json.RawMessage {
	switch v := r.(type) {
	case AttachResponse, RestartResponse, DisconnectResponse, TerminateResponse,
		ConfigurationDoneResponse, GotoResponse, LaunchResponse, NextResponse,
		ReverseContinueResponse, StepBackResponse:
		return nil
	case BreakpointLocationsResponse:
		locations := make([]json.RawMessage, len(v.Breakpoints))
		for i, l := range v.Breakpoints {
			locations[i] = l.encode()
		}
		return finalizeObject(attrArrayOptional("breakpoints", locations))
	case ContinueResponse:
		return finalizeObject(attrBoolOptional("allThreadsContinued", v.AllThreadsContinued))
	case EvaluateResponse:
		return evaluateResponseEncode(v)
	case ExceptionInfoResponse:
		return exceptionInfoResponseEncode(v)
	case InitializeResponse:
		return v.encode()
	case LoadedSourcesResponse:
		sources := make([]json.RawMessage, len(v.Sources))
		for i, s := range v.Sources {
			sources[i] = s.encode()
		}
		return finalizeObject(attrArrayOptional("sources", sources))
	case SetBreakpointsResponse:
		breakpoints := make([]json.RawMessage, len(v.Breakpoints))
		for i, b := range v.Breakpoints {
			breakpoints[i] = b.encode()
		}
		return finalizeObject(attrArrayOptional("breakpoints", breakpoints))
	case ScopesResponse:
		scopes := make([]json.RawMessage, len(v.Scopes))
		for i, s := range v.Scopes {
			scopes[i] = s.encode()
		}
		return finalizeObject(attrArrayOptional("scopes", scopes))
	case StackTraceResponse:
		frames := make([]json.RawMessage, len(v.StackFrames))
		for i, f := range v.StackFrames {
			frames[i] = f.encode()
		}
		return finalizeObject(
			attrArrayOptional("stackFrames", frames),
			attrU64Optional("totalFrames", v.TotalFrames),
		)
	case ThreadsResponse:
		threads := make([]json.RawMessage, len(v.Threads))
		for i, t := range v.Threads {
			threads[i] = t.encode()
		}
		return finalizeObject(attrArrayOptional("threads", threads))
	case VariablesResponse:
		variables := make([]json.RawMessage, len(v.Variables))
		for i, va := range v.Variables {
			variables[i] = va.encode()
		}
		return finalizeObject(attrArrayOptional("variables", variables))
	case CustomAddBreakpointResponse:
		return finalizeObject(attrU64("id", v.ID))
	case CustomRemoveBreakpointResponse:
		return finalizeObject(attrU64("id", v.ID), attrBool("removed", v.Removed))
	default:
		return nil
	}
}

// EncodeResponse renders r as a ProtocolResponse for the given seq and the
// request_seq it answers.
func EncodeResponse(seq, requestSeq uint64, r Response) ProtocolResponse {
	if errResp, ok := r.(ErrorResponse); ok {
		return ProtocolResponse{
			Seq:        seq,
			RequestSeq: requestSeq,
			Command:    errResp.CommandName,
			Result: ProtocolResponseResult{
				Error: &ProtocolResponseError{Message: errResp.Message, Body: errResp.Body},
			},
		}
	}
	return ProtocolResponse{
		Seq:        seq,
		RequestSeq: requestSeq,
		Command:    r.Command(),
		Result:     ProtocolResponseResult{Body: encodeResponseBody(r)},
	}
}

// DecodeResponse parses a ProtocolResponse into a typed Response. A failed
// result always decodes to ErrorResponse regardless of command, mirroring
// the upstream decoder's check-result-before-dispatch order. An
// unrecognized successful command is a decode error.
func DecodeResponse(pr ProtocolResponse) (Response, error) {
	if !pr.Result.Success() {
		return ErrorResponse{
			CommandName: pr.Command,
			Message:     pr.Result.Error.Message,
			Body:        pr.Result.Error.Body,
		}, nil
	}

	var obj object
	var err error
	if pr.Result.Body != nil {
		if obj, err = asObject("body", pr.Result.Body); err != nil {
			return nil, err
		}
	}

	switch pr.Command {
	case "attach":
		return AttachResponse{}, nil
	case "restart":
		return RestartResponse{}, nil
	case "disconnect":
		return DisconnectResponse{}, nil
	case "terminate":
		return TerminateResponse{}, nil
	case "configurationDone":
		return ConfigurationDoneResponse{}, nil
	case "breakpointLocations":
		if obj == nil {
			return BreakpointLocationsResponse{}, nil
		}
		locations, err := getArrayOptional(obj, "breakpoints", func(raw json.RawMessage) (BreakpointLocation, error) {
			nested, err := asObject("breakpoints", raw)
			if err != nil {
				return BreakpointLocation{}, err
			}
			return decodeBreakpointLocation(nested)
		})
		if err != nil {
			return nil, err
		}
		return BreakpointLocationsResponse{Breakpoints: locations}, nil
	case "continue":
		if obj == nil {
			return ContinueResponse{}, nil
		}
		allThreads, err := getBoolOptional(obj, "allThreadsContinued")
		if err != nil {
			return nil, err
		}
		return ContinueResponse{AllThreadsContinued: allThreads}, nil
	case "evaluate":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		return decodeEvaluateResponse(obj)
	case "exceptionInfo":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		return decodeExceptionInfoResponse(obj)
	case "goto":
		return GotoResponse{}, nil
	case "initialize":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		return decodeCapabilities(obj)
	case "launch":
		return LaunchResponse{}, nil
	case "loadedSources":
		if obj == nil {
			return LoadedSourcesResponse{}, nil
		}
		sources, err := getArrayOptional(obj, "sources", func(raw json.RawMessage) (Source, error) {
			nested, err := asObject("sources", raw)
			if err != nil {
				return Source{}, err
			}
			return decodeSource(nested)
		})
		if err != nil {
			return nil, err
		}
		return LoadedSourcesResponse{Sources: sources}, nil
	case "next":
		return NextResponse{}, nil
	case "reverseContinue":
		return ReverseContinueResponse{}, nil
	case "setBreakpoints":
		if obj == nil {
			return SetBreakpointsResponse{}, nil
		}
		breakpoints, err := getArrayOptional(obj, "breakpoints", func(raw json.RawMessage) (Breakpoint, error) {
			nested, err := asObject("breakpoints", raw)
			if err != nil {
				return Breakpoint{}, err
			}
			return decodeBreakpoint(nested)
		})
		if err != nil {
			return nil, err
		}
		return SetBreakpointsResponse{Breakpoints: breakpoints}, nil
	case "stepBack":
		return StepBackResponse{}, nil
	case "scopes":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		scopes, err := getArrayOptional(obj, "scopes", func(raw json.RawMessage) (Scope, error) {
			nested, err := asObject("scopes", raw)
			if err != nil {
				return Scope{}, err
			}
			return decodeScope(nested)
		})
		if err != nil {
			return nil, err
		}
		return ScopesResponse{Scopes: scopes}, nil
	case "stackTrace":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		frames, err := getArrayOptional(obj, "stackFrames", func(raw json.RawMessage) (StackFrame, error) {
			nested, err := asObject("stackFrames", raw)
			if err != nil {
				return StackFrame{}, err
			}
			return decodeStackFrame(nested)
		})
		if err != nil {
			return nil, err
		}
		totalFrames, err := getU64Optional(obj, "totalFrames")
		if err != nil {
			return nil, err
		}
		return StackTraceResponse{StackFrames: frames, TotalFrames: totalFrames}, nil
	case "threads":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		threads, err := getArrayOptional(obj, "threads", func(raw json.RawMessage) (Thread, error) {
			nested, err := asObject("threads", raw)
			if err != nil {
				return Thread{}, err
			}
			return decodeThread(nested)
		})
		if err != nil {
			return nil, err
		}
		return ThreadsResponse{Threads: threads}, nil
	case "variables":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		variables, err := getArrayOptional(obj, "variables", func(raw json.RawMessage) (Variable, error) {
			nested, err := asObject("variables", raw)
			if err != nil {
				return Variable{}, err
			}
			return decodeVariable(nested)
		})
		if err != nil {
			return nil, err
		}
		return VariablesResponse{Variables: variables}, nil
	case "customAddBreakpoint":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		id, err := getU64(obj, "id")
		if err != nil {
			return nil, err
		}
		return CustomAddBreakpointResponse{ID: id}, nil
	case "customRemoveBreakpoint":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		id, err := getU64(obj, "id")
		if err != nil {
			return nil, err
		}
		removed, err := getBool(obj, "removed")
		if err != nil {
			return nil, err
		}
		return CustomRemoveBreakpointResponse{ID: id, Removed: removed}, nil
	default:
		return nil, NewError("response", ExpectsEnum)
	}
}

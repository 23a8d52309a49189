package dap

import "encoding/json"

// Request is a client-to-adapter command, discriminated by ProtocolRequest's
// command field.
type Request interface {
	isRequest()
	Command() string
}

// --- argument types ---

// LaunchArguments starts the debuggee under the adapter's control. Restart
// carries opaque data the client may replay on a subsequent restart; it is
// the protocol's only sanctioned escape hatch into adapter-defined JSON
// besides Source.adapterData.
type LaunchArguments struct {
	NoDebug bool
	Restart json.RawMessage
}

func decodeLaunchArguments(obj object) (LaunchArguments, error) {
	var a LaunchArguments
	var err error
	if a.NoDebug, err = getBoolOptional(obj, "noDebug"); err != nil {
		return LaunchArguments{}, err
	}
	a.Restart, _ = getOptional(obj, "__restart")
	return a, nil
}

func (a LaunchArguments) encode() json.RawMessage {
	return finalizeObject(
		attrBoolOptional("noDebug", a.NoDebug),
		attrRawOptional("__restart", a.Restart),
	)
}

// AttachArguments attaches to a debuggee the client has already started.
type AttachArguments struct {
	Restart json.RawMessage
}

func decodeAttachArguments(obj object) AttachArguments {
	restart, _ := getOptional(obj, "__restart")
	return AttachArguments{Restart: restart}
}

func (a AttachArguments) encode() json.RawMessage {
	return finalizeObject(attrRawOptional("__restart", a.Restart))
}

// RestartArguments is Launch or Attach arguments, discriminated by the
// presence of the "noDebug" key on the wire (Launch's signature field).
type RestartArguments interface{ isRestartArguments() }

func (LaunchArguments) isRestartArguments() {}
func (AttachArguments) isRestartArguments() {}

func decodeRestartArguments(obj object) (RestartArguments, error) {
	if _, launch := obj["noDebug"]; launch {
		return decodeLaunchArguments(obj)
	}
	return decodeAttachArguments(obj), nil
}

func encodeRestartArguments(a RestartArguments) json.RawMessage {
	switch v := a.(type) {
	case LaunchArguments:
		return v.encode()
	case AttachArguments:
		return v.encode()
	default:
		return json.RawMessage("null")
	}
}

// DisconnectArguments controls how the adapter should wind down.
type DisconnectArguments struct {
	Restart           bool
	TerminateDebuggee bool
	SuspendDebuggee   bool
}

func decodeDisconnectArguments(obj object) (DisconnectArguments, error) {
	var a DisconnectArguments
	var err error
	if a.Restart, err = getBoolOptional(obj, "restart"); err != nil {
		return DisconnectArguments{}, err
	}
	if a.TerminateDebuggee, err = getBoolOptional(obj, "terminateDebuggee"); err != nil {
		return DisconnectArguments{}, err
	}
	if a.SuspendDebuggee, err = getBoolOptional(obj, "suspendDebuggee"); err != nil {
		return DisconnectArguments{}, err
	}
	return a, nil
}

func (a DisconnectArguments) encode() json.RawMessage {
	return finalizeObject(
		attrBoolOptional("restart", a.Restart),
		attrBoolOptional("terminateDebuggee", a.TerminateDebuggee),
		attrBoolOptional("suspendDebuggee", a.SuspendDebuggee),
	)
}

// TerminateArguments asks the debuggee to terminate gracefully.
type TerminateArguments struct {
	Restart bool
}

func decodeTerminateArguments(obj object) (TerminateArguments, error) {
	restart, err := getBoolOptional(obj, "restart")
	if err != nil {
		return TerminateArguments{}, err
	}
	return TerminateArguments{Restart: restart}, nil
}

func (a TerminateArguments) encode() json.RawMessage {
	return finalizeObject(attrBoolOptional("restart", a.Restart))
}

// BreakpointLocationsArguments asks which lines/columns in a Source range
// can actually carry a breakpoint.
type BreakpointLocationsArguments struct {
	Source    Source
	Line      uint64
	Column    *uint64
	EndLine   *uint64
	EndColumn *uint64
}

func decodeBreakpointLocationsArguments(obj object) (BreakpointLocationsArguments, error) {
	var a BreakpointLocationsArguments
	var err error
	if a.Source, err = getObject(obj, "source", decodeSource); err != nil {
		return BreakpointLocationsArguments{}, err
	}
	if a.Line, err = getU64(obj, "line"); err != nil {
		return BreakpointLocationsArguments{}, err
	}
	if a.Column, err = getU64Optional(obj, "column"); err != nil {
		return BreakpointLocationsArguments{}, err
	}
	if a.EndLine, err = getU64Optional(obj, "endLine"); err != nil {
		return BreakpointLocationsArguments{}, err
	}
	if a.EndColumn, err = getU64Optional(obj, "endColumn"); err != nil {
		return BreakpointLocationsArguments{}, err
	}
	return a, nil
}

func (a BreakpointLocationsArguments) encode() json.RawMessage {
	return finalizeObject(
		attrObject("source", a.Source.encode()),
		attrU64("line", a.Line),
		attrU64Optional("column", a.Column),
		attrU64Optional("endLine", a.EndLine),
		attrU64Optional("endColumn", a.EndColumn),
	)
}

// BreakpointLocation is one line/column pair BreakpointLocations reports.
type BreakpointLocation struct {
	Line      uint64
	Column    *uint64
	EndLine   *uint64
	EndColumn *uint64
}

func decodeBreakpointLocation(obj object) (BreakpointLocation, error) {
	var l BreakpointLocation
	var err error
	if l.Line, err = getU64(obj, "line"); err != nil {
		return BreakpointLocation{}, err
	}
	if l.Column, err = getU64Optional(obj, "column"); err != nil {
		return BreakpointLocation{}, err
	}
	if l.EndLine, err = getU64Optional(obj, "endLine"); err != nil {
		return BreakpointLocation{}, err
	}
	if l.EndColumn, err = getU64Optional(obj, "endColumn"); err != nil {
		return BreakpointLocation{}, err
	}
	return l, nil
}

func (l BreakpointLocation) encode() json.RawMessage {
	return finalizeObject(
		attrU64("line", l.Line),
		attrU64Optional("column", l.Column),
		attrU64Optional("endLine", l.EndLine),
		attrU64Optional("endColumn", l.EndColumn),
	)
}

// ContinueArguments resumes execution of one or all threads.
type ContinueArguments struct {
	ThreadID     uint64
	SingleThread bool
}

func decodeContinueArguments(obj object) (ContinueArguments, error) {
	var a ContinueArguments
	var err error
	if a.ThreadID, err = getU64(obj, "threadId"); err != nil {
		return ContinueArguments{}, err
	}
	if a.SingleThread, err = getBoolOptional(obj, "singleThread"); err != nil {
		return ContinueArguments{}, err
	}
	return a, nil
}

func (a ContinueArguments) encode() json.RawMessage {
	return finalizeObject(
		attrU64("threadId", a.ThreadID),
		attrBoolOptional("singleThread", a.SingleThread),
	)
}

// EvaluateArguments evaluates an expression in the context of a stack
// frame, a watch window, the REPL, or a hover tooltip.
type EvaluateArguments struct {
	Expression string
	FrameID    *uint64
	Context    *Context
	Format     *ValueFormat
}

func decodeEvaluateArguments(obj object) (EvaluateArguments, error) {
	var a EvaluateArguments
	var err error
	if a.Expression, err = getString(obj, "expression"); err != nil {
		return EvaluateArguments{}, err
	}
	if a.FrameID, err = getU64Optional(obj, "frameId"); err != nil {
		return EvaluateArguments{}, err
	}
	if s, err := getStringOptional(obj, "context"); err != nil {
		return EvaluateArguments{}, err
	} else if s != nil {
		c := ParseContext(*s)
		a.Context = &c
	}
	if a.Format, err = getObjectOptional(obj, "format", decodeValueFormat); err != nil {
		return EvaluateArguments{}, err
	}
	return a, nil
}

func (a EvaluateArguments) encode() json.RawMessage {
	var ctx *string
	if a.Context != nil {
		v := string(*a.Context)
		ctx = &v
	}
	var format *json.RawMessage
	if a.Format != nil {
		raw := a.Format.encode()
		format = &raw
	}
	return finalizeObject(
		attrString("expression", a.Expression),
		attrU64Optional("frameId", a.FrameID),
		attrStringOptional("context", ctx),
		attrObjectOptional("format", format),
	)
}

// ExceptionInfoArguments asks for the details of the exception that caused
// the most recent Stopped event on a thread.
type ExceptionInfoArguments struct {
	ThreadID uint64
}

func decodeExceptionInfoArguments(obj object) (ExceptionInfoArguments, error) {
	id, err := getU64(obj, "threadId")
	if err != nil {
		return ExceptionInfoArguments{}, err
	}
	return ExceptionInfoArguments{ThreadID: id}, nil
}

func (a ExceptionInfoArguments) encode() json.RawMessage {
	return finalizeObject(attrU64("threadId", a.ThreadID))
}

// GotoArguments jumps execution to a specific location.
type GotoArguments struct {
	ThreadID uint64
	TargetID uint64
}

func decodeGotoArguments(obj object) (GotoArguments, error) {
	var a GotoArguments
	var err error
	if a.ThreadID, err = getU64(obj, "threadId"); err != nil {
		return GotoArguments{}, err
	}
	if a.TargetID, err = getU64(obj, "targetId"); err != nil {
		return GotoArguments{}, err
	}
	return a, nil
}

func (a GotoArguments) encode() json.RawMessage {
	return finalizeObject(attrU64("threadId", a.ThreadID), attrU64("targetId", a.TargetID))
}

// InitializeArguments negotiates adapter/client capabilities before the
// debug session starts.
type InitializeArguments struct {
	ClientID                            *string
	ClientName                          *string
	AdapterID                           string
	Locale                               *string
	LinesStartAt1                       bool
	ColumnStartAt1                      bool
	PathFormat                          *PathFormat
	SupportsVariableType                bool
	SupportsVariablePaging              bool
	SupportsRunInTerminalRequest        bool
	SupportsMemoryReferences            bool
	SupportsProgressReporting           bool
	SupportsInvalidatedEvent            bool
	SupportsMemoryEvent                 bool
	SupportsArgsCanBeInterpretedByShell bool
}

func decodeInitializeArguments(obj object) (InitializeArguments, error) {
	var a InitializeArguments
	var err error
	if a.ClientID, err = getStringOptional(obj, "clientId"); err != nil {
		return InitializeArguments{}, err
	}
	if a.ClientName, err = getStringOptional(obj, "clientName"); err != nil {
		return InitializeArguments{}, err
	}
	if a.AdapterID, err = getString(obj, "adapterId"); err != nil {
		return InitializeArguments{}, err
	}
	if a.Locale, err = getStringOptional(obj, "locale"); err != nil {
		return InitializeArguments{}, err
	}
	if a.LinesStartAt1, err = getBoolOptional(obj, "linesStartAt1"); err != nil {
		return InitializeArguments{}, err
	}
	if a.ColumnStartAt1, err = getBoolOptional(obj, "columnStartAt1"); err != nil {
		return InitializeArguments{}, err
	}
	if s, err := getStringOptional(obj, "pathFormat"); err != nil {
		return InitializeArguments{}, err
	} else if s != nil {
		pf := ParsePathFormat(*s)
		a.PathFormat = &pf
	}
	if a.SupportsVariableType, err = getBoolOptional(obj, "supportsVariableType"); err != nil {
		return InitializeArguments{}, err
	}
	if a.SupportsVariablePaging, err = getBoolOptional(obj, "supportsVariablePaging"); err != nil {
		return InitializeArguments{}, err
	}
	if a.SupportsRunInTerminalRequest, err = getBoolOptional(obj, "supportsRunInTerminalRequest"); err != nil {
		return InitializeArguments{}, err
	}
	if a.SupportsMemoryReferences, err = getBoolOptional(obj, "supportsMemoryReferences"); err != nil {
		return InitializeArguments{}, err
	}
	if a.SupportsProgressReporting, err = getBoolOptional(obj, "supportsProgressReporting"); err != nil {
		return InitializeArguments{}, err
	}
	if a.SupportsInvalidatedEvent, err = getBoolOptional(obj, "supportsInvalidatedEvent"); err != nil {
		return InitializeArguments{}, err
	}
	if a.SupportsMemoryEvent, err = getBoolOptional(obj, "supportsMemoryEvent"); err != nil {
		return InitializeArguments{}, err
	}
	if a.SupportsArgsCanBeInterpretedByShell, err = getBoolOptional(obj, "supportsArgsCanBeInterpretedByShell"); err != nil {
		return InitializeArguments{}, err
	}
	return a, nil
}

func (a InitializeArguments) encode() json.RawMessage {
	var pathFormat *string
	if a.PathFormat != nil {
		v := string(*a.PathFormat)
		pathFormat = &v
	}
	return finalizeObject(
		attrStringOptional("clientId", a.ClientID),
		attrStringOptional("clientName", a.ClientName),
		attrString("adapterId", a.AdapterID),
		attrStringOptional("locale", a.Locale),
		attrBoolOptional("linesStartAt1", a.LinesStartAt1),
		attrBoolOptional("columnStartAt1", a.ColumnStartAt1),
		attrStringOptional("pathFormat", pathFormat),
		attrBoolOptional("supportsVariableType", a.SupportsVariableType),
		attrBoolOptional("supportsVariablePaging", a.SupportsVariablePaging),
		attrBoolOptional("supportsRunInTerminalRequest", a.SupportsRunInTerminalRequest),
		attrBoolOptional("supportsMemoryReferences", a.SupportsMemoryReferences),
		attrBoolOptional("supportsProgressReporting", a.SupportsProgressReporting),
		attrBoolOptional("supportsInvalidatedEvent", a.SupportsInvalidatedEvent),
		attrBoolOptional("supportsMemoryEvent", a.SupportsMemoryEvent),
		attrBoolOptional("supportsArgsCanBeInterpretedByShell", a.SupportsArgsCanBeInterpretedByShell),
	)
}

// LoadedSourcesArguments carries no fields; LoadedSources takes none.
type LoadedSourcesArguments struct{}

// NextArguments steps a thread to the next source line.
type NextArguments struct {
	ThreadID     uint64
	SingleThread bool
	Granularity  *SteppingGranularity
}

func decodeNextArguments(obj object) (NextArguments, error) {
	var a NextArguments
	var err error
	if a.ThreadID, err = getU64(obj, "threadId"); err != nil {
		return NextArguments{}, err
	}
	if a.SingleThread, err = getBoolOptional(obj, "singleThread"); err != nil {
		return NextArguments{}, err
	}
	if s, err := getStringOptional(obj, "granularity"); err != nil {
		return NextArguments{}, err
	} else if s != nil {
		g, err := ParseSteppingGranularity("granularity", *s)
		if err != nil {
			return NextArguments{}, err
		}
		a.Granularity = &g
	}
	return a, nil
}

func (a NextArguments) encode() json.RawMessage {
	var g *string
	if a.Granularity != nil {
		v := string(*a.Granularity)
		g = &v
	}
	return finalizeObject(
		attrU64("threadId", a.ThreadID),
		attrBoolOptional("singleThread", a.SingleThread),
		attrStringOptional("granularity", g),
	)
}

// ReverseContinueArguments resumes execution backwards in time.
type ReverseContinueArguments struct {
	ThreadID     uint64
	SingleThread bool
}

func decodeReverseContinueArguments(obj object) (ReverseContinueArguments, error) {
	var a ReverseContinueArguments
	var err error
	if a.ThreadID, err = getU64(obj, "threadId"); err != nil {
		return ReverseContinueArguments{}, err
	}
	if a.SingleThread, err = getBoolOptional(obj, "singleThread"); err != nil {
		return ReverseContinueArguments{}, err
	}
	return a, nil
}

func (a ReverseContinueArguments) encode() json.RawMessage {
	return finalizeObject(
		attrU64("threadId", a.ThreadID),
		attrBoolOptional("singleThread", a.SingleThread),
	)
}

// StepBackArguments steps a thread to the previous source line.
type StepBackArguments struct {
	ThreadID     uint64
	SingleThread bool
	Granularity  *SteppingGranularity
}

func decodeStepBackArguments(obj object) (StepBackArguments, error) {
	var a StepBackArguments
	var err error
	if a.ThreadID, err = getU64(obj, "threadId"); err != nil {
		return StepBackArguments{}, err
	}
	if a.SingleThread, err = getBoolOptional(obj, "singleThread"); err != nil {
		return StepBackArguments{}, err
	}
	if s, err := getStringOptional(obj, "granularity"); err != nil {
		return StepBackArguments{}, err
	} else if s != nil {
		g, err := ParseSteppingGranularity("granularity", *s)
		if err != nil {
			return StepBackArguments{}, err
		}
		a.Granularity = &g
	}
	return a, nil
}

func (a StepBackArguments) encode() json.RawMessage {
	var g *string
	if a.Granularity != nil {
		v := string(*a.Granularity)
		g = &v
	}
	return finalizeObject(
		attrU64("threadId", a.ThreadID),
		attrBoolOptional("singleThread", a.SingleThread),
		attrStringOptional("granularity", g),
	)
}

// SourceBreakpoint is defined in types.go; SetBreakpointsArguments replaces
// every previously set breakpoint in a Source with this list.
type SetBreakpointsArguments struct {
	Source           Source
	Breakpoints      []SourceBreakpoint
	Lines            []uint64
	SourceModified   bool
}

func decodeSetBreakpointsArguments(obj object) (SetBreakpointsArguments, error) {
	var a SetBreakpointsArguments
	var err error
	if a.Source, err = getObject(obj, "source", decodeSource); err != nil {
		return SetBreakpointsArguments{}, err
	}
	if a.Breakpoints, err = getArrayOptional(obj, "breakpoints", func(raw json.RawMessage) (SourceBreakpoint, error) {
		nested, err := asObject("breakpoints", raw)
		if err != nil {
			return SourceBreakpoint{}, err
		}
		return decodeSourceBreakpoint(nested)
	}); err != nil {
		return SetBreakpointsArguments{}, err
	}
	if a.Lines, err = getArrayOfU64Optional(obj, "lines"); err != nil {
		return SetBreakpointsArguments{}, err
	}
	if a.SourceModified, err = getBoolOptional(obj, "sourceModified"); err != nil {
		return SetBreakpointsArguments{}, err
	}
	return a, nil
}

func (a SetBreakpointsArguments) encode() json.RawMessage {
	breakpoints := make([]json.RawMessage, len(a.Breakpoints))
	for i, b := range a.Breakpoints {
		breakpoints[i] = b.encode()
	}
	return finalizeObject(
		attrObject("source", a.Source.encode()),
		attrArrayOptional("breakpoints", breakpoints),
		attrArrayOptional("lines", a.Lines),
		attrBoolOptional("sourceModified", a.SourceModified),
	)
}

// ScopesArguments asks for the variable scopes visible at a stack frame.
type ScopesArguments struct {
	FrameID uint64
}

func decodeScopesArguments(obj object) (ScopesArguments, error) {
	id, err := getU64(obj, "frameId")
	if err != nil {
		return ScopesArguments{}, err
	}
	return ScopesArguments{FrameID: id}, nil
}

func (a ScopesArguments) encode() json.RawMessage {
	return finalizeObject(attrU64("frameId", a.FrameID))
}

// StackTraceArguments asks for a thread's call stack.
type StackTraceArguments struct {
	ThreadID   uint64
	StartFrame *uint64
	Levels     *uint64
	Format     *StackFrameFormat
}

func decodeStackTraceArguments(obj object) (StackTraceArguments, error) {
	var a StackTraceArguments
	var err error
	if a.ThreadID, err = getU64(obj, "threadId"); err != nil {
		return StackTraceArguments{}, err
	}
	if a.StartFrame, err = getU64Optional(obj, "startFrame"); err != nil {
		return StackTraceArguments{}, err
	}
	if a.Levels, err = getU64Optional(obj, "levels"); err != nil {
		return StackTraceArguments{}, err
	}
	if a.Format, err = getObjectOptional(obj, "format", decodeStackFrameFormat); err != nil {
		return StackTraceArguments{}, err
	}
	return a, nil
}

func (a StackTraceArguments) encode() json.RawMessage {
	var format *json.RawMessage
	if a.Format != nil {
		raw := a.Format.encode()
		format = &raw
	}
	return finalizeObject(
		attrU64("threadId", a.ThreadID),
		attrU64Optional("startFrame", a.StartFrame),
		attrU64Optional("levels", a.Levels),
		attrObjectOptional("format", format),
	)
}

// ThreadsArguments carries no fields; Threads takes none.
type ThreadsArguments struct{}

// VariablesArguments asks for the contents of a Scope or a nested
// container Variable.
type VariablesArguments struct {
	VariablesReference uint64
	Filter             *VariablesArgumentsFilter
	Start              *uint64
	Count              *uint64
	Format             *ValueFormat
}

func decodeVariablesArguments(obj object) (VariablesArguments, error) {
	var a VariablesArguments
	var err error
	if a.VariablesReference, err = getU64(obj, "variablesReference"); err != nil {
		return VariablesArguments{}, err
	}
	if s, err := getStringOptional(obj, "filter"); err != nil {
		return VariablesArguments{}, err
	} else if s != nil {
		f, err := ParseVariablesArgumentsFilter("filter", *s)
		if err != nil {
			return VariablesArguments{}, err
		}
		a.Filter = &f
	}
	if a.Start, err = getU64Optional(obj, "start"); err != nil {
		return VariablesArguments{}, err
	}
	if a.Count, err = getU64Optional(obj, "count"); err != nil {
		return VariablesArguments{}, err
	}
	if a.Format, err = getObjectOptional(obj, "format", decodeValueFormat); err != nil {
		return VariablesArguments{}, err
	}
	return a, nil
}

func (a VariablesArguments) encode() json.RawMessage {
	var filter *string
	if a.Filter != nil {
		v := string(*a.Filter)
		filter = &v
	}
	var format *json.RawMessage
	if a.Format != nil {
		raw := a.Format.encode()
		format = &raw
	}
	return finalizeObject(
		attrU64("variablesReference", a.VariablesReference),
		attrStringOptional("filter", filter),
		attrU64Optional("start", a.Start),
		attrU64Optional("count", a.Count),
		attrObjectOptional("format", format),
	)
}

// CustomAddBreakpointArguments is a project-specific extension that adds a
// single fully-formed Breakpoint outside the SetBreakpoints bulk-replace
// flow.
type CustomAddBreakpointArguments struct {
	Breakpoint Breakpoint
}

func decodeCustomAddBreakpointArguments(obj object) (CustomAddBreakpointArguments, error) {
	bp, err := getObject(obj, "breakpoint", decodeBreakpoint)
	if err != nil {
		return CustomAddBreakpointArguments{}, err
	}
	return CustomAddBreakpointArguments{Breakpoint: bp}, nil
}

func (a CustomAddBreakpointArguments) encode() json.RawMessage {
	return finalizeObject(attrObject("breakpoint", a.Breakpoint.encode()))
}

// CustomRemoveBreakpointArguments removes a single breakpoint previously
// added with CustomAddBreakpoint, by id.
type CustomRemoveBreakpointArguments struct {
	ID uint64
}

func decodeCustomRemoveBreakpointArguments(obj object) (CustomRemoveBreakpointArguments, error) {
	id, err := getU64(obj, "id")
	if err != nil {
		return CustomRemoveBreakpointArguments{}, err
	}
	return CustomRemoveBreakpointArguments{ID: id}, nil
}

func (a CustomRemoveBreakpointArguments) encode() json.RawMessage {
	return finalizeObject(attrU64("id", a.ID))
}

// --- Request variants ---

type AttachRequest struct{ Arguments AttachArguments }
type RestartRequest struct{ Arguments *RestartArguments }
type DisconnectRequest struct{ Arguments *DisconnectArguments }
type TerminateRequest struct{ Arguments *TerminateArguments }
type BreakpointLocationsRequest struct{ Arguments BreakpointLocationsArguments }
type ConfigurationDoneRequest struct{}
type ContinueRequest struct{ Arguments ContinueArguments }
type EvaluateRequest struct{ Arguments EvaluateArguments }
type ExceptionInfoRequest struct{ Arguments ExceptionInfoArguments }
type GotoRequest struct{ Arguments GotoArguments }
type InitializeRequest struct{ Arguments InitializeArguments }
type LaunchRequest struct{ Arguments LaunchArguments }
type LoadedSourcesRequest struct{}
type NextRequest struct{ Arguments NextArguments }
type ReverseContinueRequest struct{ Arguments ReverseContinueArguments }
type SetBreakpointsRequest struct{ Arguments SetBreakpointsArguments }
type StepBackRequest struct{ Arguments StepBackArguments }
type ScopesRequest struct{ Arguments ScopesArguments }
type StackTraceRequest struct{ Arguments StackTraceArguments }
type ThreadsRequest struct{}
type VariablesRequest struct{ Arguments VariablesArguments }
type CustomAddBreakpointRequest struct{ Arguments CustomAddBreakpointArguments }
type CustomRemoveBreakpointRequest struct{ Arguments CustomRemoveBreakpointArguments }

// CustomRequest is a catch-all for any command this catalog does not name,
// carrying the command and raw arguments through unchanged.
type CustomRequest struct {
	CommandName string
	Arguments   json.RawMessage
}

func (AttachRequest) isRequest()                  {}
func (RestartRequest) isRequest()                 {}
func (DisconnectRequest) isRequest()              {}
func (TerminateRequest) isRequest()               {}
func (BreakpointLocationsRequest) isRequest()     {}
func (ConfigurationDoneRequest) isRequest()       {}
func (ContinueRequest) isRequest()                {}
func (EvaluateRequest) isRequest()                {}
func (ExceptionInfoRequest) isRequest()           {}
func (GotoRequest) isRequest()                    {}
func (InitializeRequest) isRequest()              {}
func (LaunchRequest) isRequest()                  {}
func (LoadedSourcesRequest) isRequest()           {}
func (NextRequest) isRequest()                    {}
func (ReverseContinueRequest) isRequest()         {}
func (SetBreakpointsRequest) isRequest()          {}
func (StepBackRequest) isRequest()                {}
func (ScopesRequest) isRequest()                  {}
func (StackTraceRequest) isRequest()              {}
func (ThreadsRequest) isRequest()                 {}
func (VariablesRequest) isRequest()               {}
func (CustomAddBreakpointRequest) isRequest()     {}
func (CustomRemoveBreakpointRequest) isRequest()  {}
func (CustomRequest) isRequest()                  {}

func (AttachRequest) Command() string                 { return "attach" }
func (RestartRequest) Command() string                { return "restart" }
func (DisconnectRequest) Command() string             { return "disconnect" }
func (TerminateRequest) Command() string              { return "terminate" }
func (BreakpointLocationsRequest) Command() string    { return "breakpointLocations" }
func (ConfigurationDoneRequest) Command() string      { return "configurationDone" }
func (ContinueRequest) Command() string               { return "continue" }
func (EvaluateRequest) Command() string               { return "evaluate" }
func (ExceptionInfoRequest) Command() string          { return "exceptionInfo" }
func (GotoRequest) Command() string                   { return "goto" }
func (InitializeRequest) Command() string             { return "initialize" }
func (LaunchRequest) Command() string                 { return "launch" }
func (LoadedSourcesRequest) Command() string          { return "loadedSources" }
func (NextRequest) Command() string                   { return "next" }
func (ReverseContinueRequest) Command() string        { return "reverseContinue" }
func (SetBreakpointsRequest) Command() string         { return "setBreakpoints" }
func (StepBackRequest) Command() string               { return "stepBack" }
func (ScopesRequest) Command() string                 { return "scopes" }
func (StackTraceRequest) Command() string             { return "stackTrace" }
func (ThreadsRequest) Command() string                { return "threads" }
func (VariablesRequest) Command() string              { return "variables" }
func (CustomAddBreakpointRequest) Command() string    { return "customAddBreakpoint" }
func (CustomRemoveBreakpointRequest) Command() string { return "customRemoveBreakpoint" }
func (r CustomRequest) Command() string               { return r.CommandName }

// EncodeRequest renders r as a ProtocolRequest with the given seq.
func EncodeRequest(seq uint64, r Request) ProtocolRequest {
	var arguments json.RawMessage
	switch v := r.(type) {
	case AttachRequest:
		arguments = v.Arguments.encode()
	case RestartRequest:
		if v.Arguments != nil {
			arguments = encodeRestartArguments(*v.Arguments)
		}
	case DisconnectRequest:
		if v.Arguments != nil {
			arguments = v.Arguments.encode()
		}
	case TerminateRequest:
		if v.Arguments != nil {
			arguments = v.Arguments.encode()
		}
	case BreakpointLocationsRequest:
		arguments = v.Arguments.encode()
	case ConfigurationDoneRequest:
	case ContinueRequest:
		arguments = v.Arguments.encode()
	case EvaluateRequest:
		arguments = v.Arguments.encode()
	case ExceptionInfoRequest:
		arguments = v.Arguments.encode()
	case GotoRequest:
		arguments = v.Arguments.encode()
	case InitializeRequest:
		arguments = v.Arguments.encode()
	case LaunchRequest:
		arguments = v.Arguments.encode()
	case LoadedSourcesRequest:
	case NextRequest:
		arguments = v.Arguments.encode()
	case ReverseContinueRequest:
		arguments = v.Arguments.encode()
	case SetBreakpointsRequest:
		arguments = v.Arguments.encode()
	case StepBackRequest:
		arguments = v.Arguments.encode()
	case ScopesRequest:
		arguments = v.Arguments.encode()
	case StackTraceRequest:
		arguments = v.Arguments.encode()
	case ThreadsRequest:
	case VariablesRequest:
		arguments = v.Arguments.encode()
	case CustomAddBreakpointRequest:
		arguments = v.Arguments.encode()
	case CustomRemoveBreakpointRequest:
		arguments = v.Arguments.encode()
	case CustomRequest:
		arguments = v.Arguments
	}
	return ProtocolRequest{Seq: seq, Command: r.Command(), Arguments: arguments}
}

// DecodeRequest parses a ProtocolRequest's command and arguments into a
// typed Request. Unknown commands decode as CustomRequest rather than
// failing, so a reactor can forward project-specific extensions to its
// backend without this catalog needing to know about them.
func DecodeRequest(pr ProtocolRequest) (Request, error) {
	var obj object
	var err error
	if pr.Arguments != nil {
		if obj, err = asObject("arguments", pr.Arguments); err != nil {
			return nil, err
		}
	}

	switch pr.Command {
	case "attach":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		return AttachRequest{Arguments: decodeAttachArguments(obj)}, nil

	case "restart":
		if obj == nil {
			return RestartRequest{}, nil
		}
		args, err := decodeRestartArguments(obj)
		if err != nil {
			return nil, err
		}
		return RestartRequest{Arguments: &args}, nil

	case "disconnect":
		if obj == nil {
			return DisconnectRequest{}, nil
		}
		args, err := decodeDisconnectArguments(obj)
		if err != nil {
			return nil, err
		}
		return DisconnectRequest{Arguments: &args}, nil

	case "terminate":
		if obj == nil {
			return TerminateRequest{}, nil
		}
		args, err := decodeTerminateArguments(obj)
		if err != nil {
			return nil, err
		}
		return TerminateRequest{Arguments: &args}, nil

	case "breakpointLocations":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeBreakpointLocationsArguments(obj)
		if err != nil {
			return nil, err
		}
		return BreakpointLocationsRequest{Arguments: args}, nil

	case "configurationDone":
		return ConfigurationDoneRequest{}, nil

	case "continue":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeContinueArguments(obj)
		if err != nil {
			return nil, err
		}
		return ContinueRequest{Arguments: args}, nil

	case "evaluate":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeEvaluateArguments(obj)
		if err != nil {
			return nil, err
		}
		return EvaluateRequest{Arguments: args}, nil

	case "exceptionInfo":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeExceptionInfoArguments(obj)
		if err != nil {
			return nil, err
		}
		return ExceptionInfoRequest{Arguments: args}, nil

	case "goto":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeGotoArguments(obj)
		if err != nil {
			return nil, err
		}
		return GotoRequest{Arguments: args}, nil

	case "initialize":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeInitializeArguments(obj)
		if err != nil {
			return nil, err
		}
		return InitializeRequest{Arguments: args}, nil

	case "launch":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeLaunchArguments(obj)
		if err != nil {
			return nil, err
		}
		return LaunchRequest{Arguments: args}, nil

	case "loadedSources":
		return LoadedSourcesRequest{}, nil

	case "next":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeNextArguments(obj)
		if err != nil {
			return nil, err
		}
		return NextRequest{Arguments: args}, nil

	case "reverseContinue":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeReverseContinueArguments(obj)
		if err != nil {
			return nil, err
		}
		return ReverseContinueRequest{Arguments: args}, nil

	case "setBreakpoints":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeSetBreakpointsArguments(obj)
		if err != nil {
			return nil, err
		}
		return SetBreakpointsRequest{Arguments: args}, nil

	case "stepBack":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeStepBackArguments(obj)
		if err != nil {
			return nil, err
		}
		return StepBackRequest{Arguments: args}, nil

	case "scopes":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeScopesArguments(obj)
		if err != nil {
			return nil, err
		}
		return ScopesRequest{Arguments: args}, nil

	case "stackTrace":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeStackTraceArguments(obj)
		if err != nil {
			return nil, err
		}
		return StackTraceRequest{Arguments: args}, nil

	case "threads":
		return ThreadsRequest{}, nil

	case "variables":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeVariablesArguments(obj)
		if err != nil {
			return nil, err
		}
		return VariablesRequest{Arguments: args}, nil

	case "customAddBreakpoint":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeCustomAddBreakpointArguments(obj)
		if err != nil {
			return nil, err
		}
		return CustomAddBreakpointRequest{Arguments: args}, nil

	case "customRemoveBreakpoint":
		if obj == nil {
			return nil, NewError("arguments", IsMandatory)
		}
		args, err := decodeCustomRemoveBreakpointArguments(obj)
		if err != nil {
			return nil, err
		}
		return CustomRemoveBreakpointRequest{Arguments: args}, nil

	default:
		return CustomRequest{CommandName: pr.Command, Arguments: pr.Arguments}, nil
	}
}

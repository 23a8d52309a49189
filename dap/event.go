package dap

import "encoding/json"

// Event is an adapter-to-client notification, discriminated by
// ProtocolEvent's event field.
type Event interface{ isEvent() }

// BreakpointEvent reports that a Breakpoint's verification state changed
// after it was initially returned (e.g. the adapter resolved its actual
// location once the debuggee loaded).
type BreakpointEvent struct {
	Reason     BreakpointReason
	Breakpoint Breakpoint
}

// CapabilitiesEvent reports that the adapter's capabilities changed after
// Initialize, for example once a debuggee attaches.
type CapabilitiesEvent struct {
	Capabilities Capabilities
}

// ContinuedEvent reports that execution resumed without a matching
// Continue request (e.g. the debuggee resumed on its own).
type ContinuedEvent struct {
	ThreadID             uint64
	AllThreadsContinued bool
}

// ExitedEvent reports that the debuggee process exited.
type ExitedEvent struct {
	ExitCode uint64
}

// InitializedEvent tells the client the adapter is ready to accept
// configuration requests (SetBreakpoints, etc.) before the debuggee runs.
type InitializedEvent struct{}

// LoadedSourceEvent reports that a Source was loaded, changed, or
// unloaded.
type LoadedSourceEvent struct {
	Reason LoadedSourceReason
	Source Source
}

// OutputEvent carries text the debuggee or adapter produced.
type OutputEvent struct {
	Category           *OutputCategory
	Output             string
	Group              *OutputGroup
	VariablesReference uint32
	Source             *Source
	Line               *uint64
	Column             *uint64
	Data               json.RawMessage
}

// ProcessEvent reports that the debuggee process started.
type ProcessEvent struct {
	Name            string
	SystemProcessID *uint64
	IsLocalProcess  bool
	StartMethod     *ProcessStartMethod
	PointerSize     *uint64
}

// StoppedEvent reports that execution stopped, and why.
type StoppedEvent struct {
	Reason            StoppedReason
	Description       *string
	ThreadID          *uint64
	PreserveFocusHint bool
	Text              *string
	AllThreadsStopped bool
	HitBreakpointIDs  []int
}

// TerminatedEvent reports that debugging is ending; Restart carries opaque
// data the client may replay on a subsequent restart.
type TerminatedEvent struct {
	Restart json.RawMessage
}

// ThreadEvent reports that a thread started or exited.
type ThreadEvent struct {
	Reason   ThreadReason
	ThreadID uint64
}

// CustomEvent is the literal "custom" event, carrying an adapter-defined
// body through unchanged. It is not a catch-all: any other unrecognized
// event name is a decode error.
type CustomEvent struct {
	Body json.RawMessage
}

func (BreakpointEvent) isEvent()     {}
func (CapabilitiesEvent) isEvent()   {}
func (ContinuedEvent) isEvent()      {}
func (ExitedEvent) isEvent()         {}
func (InitializedEvent) isEvent()    {}
func (LoadedSourceEvent) isEvent()   {}
func (OutputEvent) isEvent()         {}
func (ProcessEvent) isEvent()        {}
func (StoppedEvent) isEvent()        {}
func (TerminatedEvent) isEvent()     {}
func (ThreadEvent) isEvent()         {}
func (CustomEvent) isEvent()         {}

// EncodeEvent renders e as a ProtocolEvent for the given seq.
func EncodeEvent(seq uint64, e Event) ProtocolEvent {
	switch v := e.(type) {
	case BreakpointEvent:
		return ProtocolEvent{Seq: seq, Event: "breakpoint", Body: finalizeObject(
			attrString("reason", string(v.Reason)),
			attrObject("breakpoint", v.Breakpoint.encode()),
		)}

	case CapabilitiesEvent:
		return ProtocolEvent{Seq: seq, Event: "capabilities", Body: finalizeObject(
			attrObject("capabilities", v.Capabilities.encode()),
		)}

	case ContinuedEvent:
		return ProtocolEvent{Seq: seq, Event: "continued", Body: finalizeObject(
			attrU64("threadId", v.ThreadID),
			attrBoolOptional("allThreadsContinued", v.AllThreadsContinued),
		)}

	case ExitedEvent:
		return ProtocolEvent{Seq: seq, Event: "exited", Body: finalizeObject(
			attrU64("exitCode", v.ExitCode),
		)}

	case InitializedEvent:
		return ProtocolEvent{Seq: seq, Event: "initialized"}

	case LoadedSourceEvent:
		return ProtocolEvent{Seq: seq, Event: "loadedSource", Body: finalizeObject(
			attrString("reason", string(v.Reason)),
			attrObject("source", v.Source.encode()),
		)}

	case OutputEvent:
		var category *string
		if v.Category != nil {
			s := string(*v.Category)
			category = &s
		}
		var group *string
		if v.Group != nil {
			s := string(*v.Group)
			group = &s
		}
		var source *json.RawMessage
		if v.Source != nil {
			raw := v.Source.encode()
			source = &raw
		}
		var variablesReference *uint32
		if v.VariablesReference > 0 {
			variablesReference = &v.VariablesReference
		}
		return ProtocolEvent{Seq: seq, Event: "output", Body: finalizeObject(
			attrStringOptional("category", category),
			attrString("output", v.Output),
			attrStringOptional("group", group),
			attrU32Optional("variablesReference", variablesReference),
			attrObjectOptional("source", source),
			attrU64Optional("line", v.Line),
			attrU64Optional("column", v.Column),
			attrRawOptional("data", v.Data),
		)}

	case ProcessEvent:
		var startMethod *string
		if v.StartMethod != nil {
			s := string(*v.StartMethod)
			startMethod = &s
		}
		return ProtocolEvent{Seq: seq, Event: "process", Body: finalizeObject(
			attrString("name", v.Name),
			attrU64Optional("systemProcessId", v.SystemProcessID),
			attrBoolOptional("isLocalProcess", v.IsLocalProcess),
			attrStringOptional("startMethod", startMethod),
			attrU64Optional("pointerSize", v.PointerSize),
		)}

	case StoppedEvent:
		return ProtocolEvent{Seq: seq, Event: "stopped", Body: finalizeObject(
			attrString("reason", string(v.Reason)),
			attrStringOptional("description", v.Description),
			attrU64Optional("threadId", v.ThreadID),
			attrBoolOptional("preserveFocusHint", v.PreserveFocusHint),
			attrStringOptional("text", v.Text),
			attrBoolOptional("allThreadsStopped", v.AllThreadsStopped),
			attrArrayOptional("hitBreakpointIds", v.HitBreakpointIDs),
		)}

	case TerminatedEvent:
		if v.Restart == nil {
			return ProtocolEvent{Seq: seq, Event: "terminated"}
		}
		return ProtocolEvent{Seq: seq, Event: "terminated", Body: finalizeObject(
			attrRaw("restart", v.Restart),
		)}

	case ThreadEvent:
		return ProtocolEvent{Seq: seq, Event: "thread", Body: finalizeObject(
			attrString("reason", string(v.Reason)),
			attrU64("threadId", v.ThreadID),
		)}

	case CustomEvent:
		return ProtocolEvent{Seq: seq, Event: "custom", Body: v.Body}

	default:
		return ProtocolEvent{Seq: seq}
	}
}

// DecodeEvent parses a ProtocolEvent's name and body into a typed Event.
// Only the literal "custom" name decodes to CustomEvent; any other
// unrecognized event name is a decode error.
func DecodeEvent(pe ProtocolEvent) (Event, error) {
	var obj object
	var err error
	if pe.Body != nil {
		if obj, err = asObject("body", pe.Body); err != nil {
			return nil, err
		}
	}

	switch pe.Event {
	case "breakpoint":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		reasonStr, err := getString(obj, "reason")
		if err != nil {
			return nil, err
		}
		bp, err := getObject(obj, "breakpoint", decodeBreakpoint)
		if err != nil {
			return nil, err
		}
		return BreakpointEvent{Reason: ParseBreakpointReason(reasonStr), Breakpoint: bp}, nil

	case "capabilities":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		c, err := getObject(obj, "capabilities", decodeCapabilities)
		if err != nil {
			return nil, err
		}
		return CapabilitiesEvent{Capabilities: c}, nil

	case "continued":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		threadID, err := getU64(obj, "threadId")
		if err != nil {
			return nil, err
		}
		allThreads, err := getBoolOptional(obj, "allThreadsContinued")
		if err != nil {
			return nil, err
		}
		return ContinuedEvent{ThreadID: threadID, AllThreadsContinued: allThreads}, nil

	case "exited":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		code, err := getU64(obj, "exitCode")
		if err != nil {
			return nil, err
		}
		return ExitedEvent{ExitCode: code}, nil

	case "initialized":
		return InitializedEvent{}, nil

	case "loadedSource":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		// reason is read from its own "reason" key. The upstream
		// implementation this was ported from read "category" here by
		// mistake; that bug is not reproduced.
		reasonStr, err := getString(obj, "reason")
		if err != nil {
			return nil, err
		}
		reason, err := ParseLoadedSourceReason("reason", reasonStr)
		if err != nil {
			return nil, err
		}
		src, err := getObject(obj, "source", decodeSource)
		if err != nil {
			return nil, err
		}
		return LoadedSourceEvent{Reason: reason, Source: src}, nil

	case "output":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		var o OutputEvent
		if s, err := getStringOptional(obj, "category"); err != nil {
			return nil, err
		} else if s != nil {
			c := ParseOutputCategory(*s)
			o.Category = &c
		}
		if o.Output, err = getString(obj, "output"); err != nil {
			return nil, err
		}
		if s, err := getStringOptional(obj, "group"); err != nil {
			return nil, err
		} else if s != nil {
			g, err := ParseOutputGroup("group", *s)
			if err != nil {
				return nil, err
			}
			o.Group = &g
		}
		ref, err := getU32Optional(obj, "variablesReference")
		if err != nil {
			return nil, err
		}
		if ref != nil && *ref > 0 {
			o.VariablesReference = *ref
		}
		if o.Source, err = getObjectOptional(obj, "source", decodeSource); err != nil {
			return nil, err
		}
		if o.Line, err = getU64Optional(obj, "line"); err != nil {
			return nil, err
		}
		if o.Column, err = getU64Optional(obj, "column"); err != nil {
			return nil, err
		}
		o.Data, _ = getOptional(obj, "data")
		return o, nil

	case "process":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		var p ProcessEvent
		if p.Name, err = getString(obj, "name"); err != nil {
			return nil, err
		}
		if p.SystemProcessID, err = getU64Optional(obj, "systemProcessId"); err != nil {
			return nil, err
		}
		if p.IsLocalProcess, err = getBoolOptional(obj, "isLocalProcess"); err != nil {
			return nil, err
		}
		if s, err := getStringOptional(obj, "startMethod"); err != nil {
			return nil, err
		} else if s != nil {
			m, err := ParseProcessStartMethod("startMethod", *s)
			if err != nil {
				return nil, err
			}
			p.StartMethod = &m
		}
		if p.PointerSize, err = getU64Optional(obj, "pointerSize"); err != nil {
			return nil, err
		}
		return p, nil

	case "stopped":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		var s StoppedEvent
		reasonStr, err := getString(obj, "reason")
		if err != nil {
			return nil, err
		}
		s.Reason = ParseStoppedReason(reasonStr)
		if s.Description, err = getStringOptional(obj, "description"); err != nil {
			return nil, err
		}
		if s.ThreadID, err = getU64Optional(obj, "threadId"); err != nil {
			return nil, err
		}
		if s.PreserveFocusHint, err = getBoolOptional(obj, "preserveFocusHint"); err != nil {
			return nil, err
		}
		if s.Text, err = getStringOptional(obj, "text"); err != nil {
			return nil, err
		}
		if s.AllThreadsStopped, err = getBoolOptional(obj, "allThreadsStopped"); err != nil {
			return nil, err
		}
		if s.HitBreakpointIDs, err = getArrayUsizeOptional(obj, "hitBreakpointIds"); err != nil {
			return nil, err
		}
		return s, nil

	case "terminated":
		if obj == nil {
			return TerminatedEvent{}, nil
		}
		restart, _ := getOptional(obj, "restart")
		return TerminatedEvent{Restart: restart}, nil

	case "thread":
		if obj == nil {
			return nil, NewError("body", IsMandatory)
		}
		reasonStr, err := getString(obj, "reason")
		if err != nil {
			return nil, err
		}
		threadID, err := getU64(obj, "threadId")
		if err != nil {
			return nil, err
		}
		return ThreadEvent{Reason: ParseThreadReason(reasonStr), ThreadID: threadID}, nil

	case "custom":
		return CustomEvent{Body: pe.Body}, nil

	default:
		return nil, NewError("event", ExpectsEnum)
	}
}

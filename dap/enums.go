package dap

// Open enums accept any string on the wire: known values get a named
// constant, anything else round-trips verbatim as the underlying string.
// This is the Go rendering of the upstream protocol's Custom(String)
// fallback arm — a plain defined string type already behaves that way, so
// no wrapper type is needed (see DESIGN.md).
//
// Closed enums reject unknown strings at decode time with an ExpectsEnum
// error; their Parse functions are the only way to obtain one.

// BreakpointReason is the open enum carried by Breakpoint events.
type BreakpointReason string

// Known BreakpointReason values.
const (
	BreakpointReasonChanged BreakpointReason = "changed"
	BreakpointReasonNew     BreakpointReason = "new"
	BreakpointReasonRemoved BreakpointReason = "removed"
)

// ParseBreakpointReason never fails: unrecognized strings pass through.
func ParseBreakpointReason(s string) BreakpointReason { return BreakpointReason(s) }

// StoppedReason is the open enum carried by Stopped events.
type StoppedReason string

// Known StoppedReason values.
const (
	StoppedReasonStep              StoppedReason = "step"
	StoppedReasonBreakpoint        StoppedReason = "breakpoint"
	StoppedReasonException         StoppedReason = "exception"
	StoppedReasonPause             StoppedReason = "pause"
	StoppedReasonEntry             StoppedReason = "entry"
	StoppedReasonGoto              StoppedReason = "goto"
	StoppedReasonFunctionBreakpoint StoppedReason = "function breakpoint"
	StoppedReasonDataBreakpoint    StoppedReason = "data breakpoint"
	StoppedReasonInstructionBreakpoint StoppedReason = "instruction breakpoint"
)

// ParseStoppedReason never fails: unrecognized strings pass through.
func ParseStoppedReason(s string) StoppedReason { return StoppedReason(s) }

// ThreadReason is the open enum carried by Thread events.
type ThreadReason string

// Known ThreadReason values.
const (
	ThreadReasonStarted ThreadReason = "started"
	ThreadReasonExited  ThreadReason = "exited"
)

// ParseThreadReason never fails: unrecognized strings pass through.
func ParseThreadReason(s string) ThreadReason { return ThreadReason(s) }

// OutputCategory is the open enum carried by Output events.
type OutputCategory string

// Known OutputCategory values.
const (
	OutputCategoryConsole    OutputCategory = "console"
	OutputCategoryImportant  OutputCategory = "important"
	OutputCategoryStdout     OutputCategory = "stdout"
	OutputCategoryStderr     OutputCategory = "stderr"
	OutputCategoryTelemetry  OutputCategory = "telemetry"
)

// ParseOutputCategory never fails: unrecognized strings pass through.
func ParseOutputCategory(s string) OutputCategory { return OutputCategory(s) }

// Kind classifies a Variable in its presentation hint (open enum).
type Kind string

// Known Kind values used by VariablePresentationHint.Kind.
const (
	KindProperty  Kind = "property"
	KindMethod    Kind = "method"
	KindClass     Kind = "class"
	KindData      Kind = "data"
	KindEvent     Kind = "event"
	KindBaseClass Kind = "baseClass"
	KindInnerClass Kind = "innerClass"
	KindInterface Kind = "interface"
	KindMostDerivedClass Kind = "mostDerivedClass"
	KindVirtual   Kind = "virtual"
	KindDataBreakpoint Kind = "dataBreakpoint"
)

// ParseKind never fails: unrecognized strings pass through.
func ParseKind(s string) Kind { return Kind(s) }

// Attributes refines a VariablePresentationHint (open enum).
type Attributes string

// Known Attributes values.
const (
	AttributesStatic       Attributes = "static"
	AttributesConstant     Attributes = "constant"
	AttributesReadOnly     Attributes = "readOnly"
	AttributesRawString    Attributes = "rawString"
	AttributesHasObjectID  Attributes = "hasObjectId"
	AttributesCanHaveObjectID Attributes = "canHaveObjectId"
	AttributesHasSideEffects  Attributes = "hasSideEffects"
	AttributesHasDataBreakpoint Attributes = "hasDataBreakpoint"
)

// ParseAttributes never fails: unrecognized strings pass through.
func ParseAttributes(s string) Attributes { return Attributes(s) }

// Visibility refines a VariablePresentationHint (open enum).
type Visibility string

// Known Visibility values.
const (
	VisibilityPublic    Visibility = "public"
	VisibilityPrivate   Visibility = "private"
	VisibilityProtected Visibility = "protected"
	VisibilityInternal  Visibility = "internal"
	VisibilityFinal     Visibility = "final"
)

// ParseVisibility never fails: unrecognized strings pass through.
func ParseVisibility(s string) Visibility { return Visibility(s) }

// Context describes why a client requested evaluation (open enum). It is
// the type of EvaluateArguments.Context and also serves as EvaluateContext.
type Context string

// Known Context values.
const (
	ContextWatch    Context = "watch"
	ContextRepl     Context = "repl"
	ContextHover    Context = "hover"
	ContextClipboard Context = "clipboard"
	ContextVariables Context = "variables"
)

// ParseContext never fails: unrecognized strings pass through.
func ParseContext(s string) Context { return Context(s) }

// PathFormat negotiates how Source.path is interpreted (open enum).
type PathFormat string

// Known PathFormat values.
const (
	PathFormatPath PathFormat = "path"
	PathFormatURI  PathFormat = "uri"
)

// ParsePathFormat never fails: unrecognized strings pass through.
func ParsePathFormat(s string) PathFormat { return PathFormat(s) }

// ScopePresentationHint refines a Scope (open enum).
type ScopePresentationHint string

// Known ScopePresentationHint values.
const (
	ScopePresentationHintArguments  ScopePresentationHint = "arguments"
	ScopePresentationHintLocals     ScopePresentationHint = "locals"
	ScopePresentationHintRegisters  ScopePresentationHint = "registers"
	ScopePresentationHintReturnValue ScopePresentationHint = "returnValue"
)

// ParseScopePresentationHint never fails: unrecognized strings pass through.
func ParseScopePresentationHint(s string) ScopePresentationHint { return ScopePresentationHint(s) }

// --- closed enums: unknown strings are decode errors ---

// ChecksumAlgorithm is closed: Capabilities.SupportedChecksumAlgorithms and
// Checksum.algorithm only ever carry one of these four values.
type ChecksumAlgorithm string

// The full set of ChecksumAlgorithm values.
const (
	ChecksumAlgorithmMD5     ChecksumAlgorithm = "MD5"
	ChecksumAlgorithmSHA1    ChecksumAlgorithm = "SHA1"
	ChecksumAlgorithmSHA256  ChecksumAlgorithm = "SHA256"
	ChecksumAlgorithmTimestamp ChecksumAlgorithm = "timestamp"
)

// ParseChecksumAlgorithm rejects any value outside the closed set.
func ParseChecksumAlgorithm(attribute, s string) (ChecksumAlgorithm, error) {
	switch ChecksumAlgorithm(s) {
	case ChecksumAlgorithmMD5, ChecksumAlgorithmSHA1, ChecksumAlgorithmSHA256, ChecksumAlgorithmTimestamp:
		return ChecksumAlgorithm(s), nil
	default:
		return "", NewError(attribute, ExpectsEnum)
	}
}

// OutputGroup is closed: it controls client-side output grouping.
type OutputGroup string

// The full set of OutputGroup values.
const (
	OutputGroupStart      OutputGroup = "start"
	OutputGroupStartCollapsed OutputGroup = "startCollapsed"
	OutputGroupEnd        OutputGroup = "end"
)

// ParseOutputGroup rejects any value outside the closed set.
func ParseOutputGroup(attribute, s string) (OutputGroup, error) {
	switch OutputGroup(s) {
	case OutputGroupStart, OutputGroupStartCollapsed, OutputGroupEnd:
		return OutputGroup(s), nil
	default:
		return "", NewError(attribute, ExpectsEnum)
	}
}

// LoadedSourceReason is closed.
type LoadedSourceReason string

// The full set of LoadedSourceReason values.
const (
	LoadedSourceReasonNew     LoadedSourceReason = "new"
	LoadedSourceReasonChanged LoadedSourceReason = "changed"
	LoadedSourceReasonRemoved LoadedSourceReason = "removed"
)

// ParseLoadedSourceReason rejects any value outside the closed set.
func ParseLoadedSourceReason(attribute, s string) (LoadedSourceReason, error) {
	switch LoadedSourceReason(s) {
	case LoadedSourceReasonNew, LoadedSourceReasonChanged, LoadedSourceReasonRemoved:
		return LoadedSourceReason(s), nil
	default:
		return "", NewError(attribute, ExpectsEnum)
	}
}

// ProcessStartMethod is closed.
type ProcessStartMethod string

// The full set of ProcessStartMethod values.
const (
	ProcessStartMethodLaunch  ProcessStartMethod = "launch"
	ProcessStartMethodAttach  ProcessStartMethod = "attach"
	ProcessStartMethodAttachForSuspendedLaunch ProcessStartMethod = "attachForSuspendedLaunch"
)

// ParseProcessStartMethod rejects any value outside the closed set.
func ParseProcessStartMethod(attribute, s string) (ProcessStartMethod, error) {
	switch ProcessStartMethod(s) {
	case ProcessStartMethodLaunch, ProcessStartMethodAttach, ProcessStartMethodAttachForSuspendedLaunch:
		return ProcessStartMethod(s), nil
	default:
		return "", NewError(attribute, ExpectsEnum)
	}
}

// ExceptionBreakMode is closed.
type ExceptionBreakMode string

// The full set of ExceptionBreakMode values.
const (
	ExceptionBreakModeNever    ExceptionBreakMode = "never"
	ExceptionBreakModeAlways   ExceptionBreakMode = "always"
	ExceptionBreakModeUnhandled ExceptionBreakMode = "unhandled"
	ExceptionBreakModeUserUnhandled ExceptionBreakMode = "userUnhandled"
)

// ParseExceptionBreakMode rejects any value outside the closed set.
func ParseExceptionBreakMode(attribute, s string) (ExceptionBreakMode, error) {
	switch ExceptionBreakMode(s) {
	case ExceptionBreakModeNever, ExceptionBreakModeAlways, ExceptionBreakModeUnhandled, ExceptionBreakModeUserUnhandled:
		return ExceptionBreakMode(s), nil
	default:
		return "", NewError(attribute, ExpectsEnum)
	}
}

// SteppingGranularity is closed.
type SteppingGranularity string

// The full set of SteppingGranularity values.
const (
	SteppingGranularityStatement SteppingGranularity = "statement"
	SteppingGranularityLine      SteppingGranularity = "line"
	SteppingGranularityInstruction SteppingGranularity = "instruction"
)

// ParseSteppingGranularity rejects any value outside the closed set.
func ParseSteppingGranularity(attribute, s string) (SteppingGranularity, error) {
	switch SteppingGranularity(s) {
	case SteppingGranularityStatement, SteppingGranularityLine, SteppingGranularityInstruction:
		return SteppingGranularity(s), nil
	default:
		return "", NewError(attribute, ExpectsEnum)
	}
}

// ColumnDescriptorType is closed.
type ColumnDescriptorType string

// The full set of ColumnDescriptorType values.
const (
	ColumnDescriptorTypeString    ColumnDescriptorType = "string"
	ColumnDescriptorTypeNumber    ColumnDescriptorType = "number"
	ColumnDescriptorTypeBoolean   ColumnDescriptorType = "boolean"
	ColumnDescriptorTypeUnixTimestampUTC ColumnDescriptorType = "unixTimestampUTC"
)

// ParseColumnDescriptorType rejects any value outside the closed set.
func ParseColumnDescriptorType(attribute, s string) (ColumnDescriptorType, error) {
	switch ColumnDescriptorType(s) {
	case ColumnDescriptorTypeString, ColumnDescriptorTypeNumber, ColumnDescriptorTypeBoolean, ColumnDescriptorTypeUnixTimestampUTC:
		return ColumnDescriptorType(s), nil
	default:
		return "", NewError(attribute, ExpectsEnum)
	}
}

// SourcePresentationHint is closed.
type SourcePresentationHint string

// The full set of SourcePresentationHint values.
const (
	SourcePresentationHintNormal    SourcePresentationHint = "normal"
	SourcePresentationHintEmphasize SourcePresentationHint = "emphasize"
	SourcePresentationHintDeemphasize SourcePresentationHint = "deemphasize"
)

// ParseSourcePresentationHint rejects any value outside the closed set.
func ParseSourcePresentationHint(attribute, s string) (SourcePresentationHint, error) {
	switch SourcePresentationHint(s) {
	case SourcePresentationHintNormal, SourcePresentationHintEmphasize, SourcePresentationHintDeemphasize:
		return SourcePresentationHint(s), nil
	default:
		return "", NewError(attribute, ExpectsEnum)
	}
}

// StackFramePresentationHint is closed.
type StackFramePresentationHint string

// The full set of StackFramePresentationHint values.
const (
	StackFramePresentationHintNormal   StackFramePresentationHint = "normal"
	StackFramePresentationHintLabel    StackFramePresentationHint = "label"
	StackFramePresentationHintSubtle   StackFramePresentationHint = "subtle"
)

// ParseStackFramePresentationHint rejects any value outside the closed set.
func ParseStackFramePresentationHint(attribute, s string) (StackFramePresentationHint, error) {
	switch StackFramePresentationHint(s) {
	case StackFramePresentationHintNormal, StackFramePresentationHintLabel, StackFramePresentationHintSubtle:
		return StackFramePresentationHint(s), nil
	default:
		return "", NewError(attribute, ExpectsEnum)
	}
}

// VariablesArgumentsFilter is closed: it selects which half of a Variable's
// children the Variables request returns.
type VariablesArgumentsFilter string

// The full set of VariablesArgumentsFilter values.
const (
	VariablesArgumentsFilterIndexed VariablesArgumentsFilter = "indexed"
	VariablesArgumentsFilterNamed   VariablesArgumentsFilter = "named"
)

// ParseVariablesArgumentsFilter rejects any value outside the closed set.
func ParseVariablesArgumentsFilter(attribute, s string) (VariablesArgumentsFilter, error) {
	switch VariablesArgumentsFilter(s) {
	case VariablesArgumentsFilterIndexed, VariablesArgumentsFilterNamed:
		return VariablesArgumentsFilter(s), nil
	default:
		return "", NewError(attribute, ExpectsEnum)
	}
}

// RunInTerminalKind is closed: it selects the terminal UI the client should
// use to run the reverse RunInTerminal request.
type RunInTerminalKind string

// The full set of RunInTerminalKind values.
const (
	RunInTerminalKindIntegrated RunInTerminalKind = "integrated"
	RunInTerminalKindExternal   RunInTerminalKind = "external"
)

// ParseRunInTerminalKind rejects any value outside the closed set.
func ParseRunInTerminalKind(attribute, s string) (RunInTerminalKind, error) {
	switch RunInTerminalKind(s) {
	case RunInTerminalKindIntegrated, RunInTerminalKindExternal:
		return RunInTerminalKind(s), nil
	default:
		return "", NewError(attribute, ExpectsEnum)
	}
}

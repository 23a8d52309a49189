package dap

import "encoding/json"

// Checksum pairs a ChecksumAlgorithm with its computed digest for a Source.
type Checksum struct {
	Algorithm ChecksumAlgorithm
	Value     string
}

func decodeChecksum(obj object) (Checksum, error) {
	algoStr, err := getString(obj, "algorithm")
	if err != nil {
		return Checksum{}, err
	}
	algo, err := ParseChecksumAlgorithm("algorithm", algoStr)
	if err != nil {
		return Checksum{}, err
	}
	value, err := getString(obj, "checksum")
	if err != nil {
		return Checksum{}, err
	}
	return Checksum{Algorithm: algo, Value: value}, nil
}

func (c Checksum) encode() json.RawMessage {
	return finalizeObject(
		attrString("algorithm", string(c.Algorithm)),
		attrString("checksum", c.Value),
	)
}

// Message is the structured error body carried by an Error response and by
// the ExceptionDetails tree.
type Message struct {
	ID            uint64
	Format        string
	Variables     map[string]string
	SendTelemetry bool
	ShowUser      bool
	URL           *string
	URLLabel      *string
}

func decodeMessage(obj object) (Message, error) {
	var m Message
	var err error
	if m.ID, err = getU64(obj, "id"); err != nil {
		return Message{}, err
	}
	if m.Format, err = getString(obj, "format"); err != nil {
		return Message{}, err
	}
	if m.Variables, err = getMapToStringOptional(obj, "variables"); err != nil {
		return Message{}, err
	}
	if m.SendTelemetry, err = getBoolOptional(obj, "sendTelemetry"); err != nil {
		return Message{}, err
	}
	if m.ShowUser, err = getBoolOptional(obj, "showUser"); err != nil {
		return Message{}, err
	}
	if m.URL, err = getStringOptional(obj, "url"); err != nil {
		return Message{}, err
	}
	if m.URLLabel, err = getStringOptional(obj, "urlLabel"); err != nil {
		return Message{}, err
	}
	return m, nil
}

func (m Message) encode() json.RawMessage {
	return finalizeObject(
		attrU64("id", m.ID),
		attrString("format", m.Format),
		attrMapOptional("variables", m.Variables),
		attrBoolOptional("sendTelemetry", m.SendTelemetry),
		attrBoolOptional("showUser", m.ShowUser),
		attrStringOptional("url", m.URL),
		attrStringOptional("urlLabel", m.URLLabel),
	)
}

// Breakpoint reports the actual, possibly adjusted, location and
// verification state of a requested breakpoint.
type Breakpoint struct {
	ID                   *uint64
	Verified             bool
	Message              *string
	Source               *Source
	Line                 *uint64
	Column               *uint64
	EndLine              *uint64
	EndColumn            *uint64
	InstructionReference *string
	Offset               *int64
}

func decodeBreakpoint(obj object) (Breakpoint, error) {
	var b Breakpoint
	var err error
	if b.ID, err = getU64Optional(obj, "id"); err != nil {
		return Breakpoint{}, err
	}
	if b.Verified, err = getBool(obj, "verified"); err != nil {
		return Breakpoint{}, err
	}
	if b.Message, err = getStringOptional(obj, "message"); err != nil {
		return Breakpoint{}, err
	}
	if b.Source, err = getObjectOptional(obj, "source", decodeSource); err != nil {
		return Breakpoint{}, err
	}
	if b.Line, err = getU64Optional(obj, "line"); err != nil {
		return Breakpoint{}, err
	}
	if b.Column, err = getU64Optional(obj, "column"); err != nil {
		return Breakpoint{}, err
	}
	if b.EndLine, err = getU64Optional(obj, "endLine"); err != nil {
		return Breakpoint{}, err
	}
	if b.EndColumn, err = getU64Optional(obj, "endColumn"); err != nil {
		return Breakpoint{}, err
	}
	if b.InstructionReference, err = getStringOptional(obj, "instructionReference"); err != nil {
		return Breakpoint{}, err
	}
	// offset is read from its own "offset" key. The upstream implementation
	// this was ported from read "endColumn" here by mistake, silently
	// aliasing offset to the end column; that bug is not reproduced.
	if b.Offset, err = getI64Optional(obj, "offset"); err != nil {
		return Breakpoint{}, err
	}
	return b, nil
}

func (b Breakpoint) encode() json.RawMessage {
	var source *json.RawMessage
	if b.Source != nil {
		raw := b.Source.encode()
		source = &raw
	}
	return finalizeObject(
		attrU64Optional("id", b.ID),
		attrBool("verified", b.Verified),
		attrStringOptional("message", b.Message),
		attrObjectOptional("source", source),
		attrU64Optional("line", b.Line),
		attrU64Optional("column", b.Column),
		attrU64Optional("endLine", b.EndLine),
		attrU64Optional("endColumn", b.EndColumn),
		attrStringOptional("instructionReference", b.InstructionReference),
		attrI64Optional("offset", b.Offset),
	)
}

// SourceBreakpoint is a breakpoint location supplied by the client in a
// SetBreakpoints request, before the adapter verifies it.
type SourceBreakpoint struct {
	Line         uint64
	Column       *uint64
	Condition    *string
	HitCondition *string
	LogMessage   *string
}

func decodeSourceBreakpoint(obj object) (SourceBreakpoint, error) {
	var b SourceBreakpoint
	var err error
	if b.Line, err = getU64(obj, "line"); err != nil {
		return SourceBreakpoint{}, err
	}
	if b.Column, err = getU64Optional(obj, "column"); err != nil {
		return SourceBreakpoint{}, err
	}
	if b.Condition, err = getStringOptional(obj, "condition"); err != nil {
		return SourceBreakpoint{}, err
	}
	if b.HitCondition, err = getStringOptional(obj, "hitCondition"); err != nil {
		return SourceBreakpoint{}, err
	}
	if b.LogMessage, err = getStringOptional(obj, "logMessage"); err != nil {
		return SourceBreakpoint{}, err
	}
	return b, nil
}

func (b SourceBreakpoint) encode() json.RawMessage {
	return finalizeObject(
		attrU64("line", b.Line),
		attrU64Optional("column", b.Column),
		attrStringOptional("condition", b.Condition),
		attrStringOptional("hitCondition", b.HitCondition),
		attrStringOptional("logMessage", b.LogMessage),
	)
}

// Thread identifies one execution thread in the debuggee.
type Thread struct {
	ID   uint64
	Name string
}

func decodeThread(obj object) (Thread, error) {
	var t Thread
	var err error
	if t.ID, err = getU64(obj, "id"); err != nil {
		return Thread{}, err
	}
	if t.Name, err = getString(obj, "name"); err != nil {
		return Thread{}, err
	}
	return t, nil
}

func (t Thread) encode() json.RawMessage {
	return finalizeObject(attrU64("id", t.ID), attrString("name", t.Name))
}

// StackFrameFormat controls how a client asks for StackFrame.name to be
// rendered.
type StackFrameFormat struct {
	ValueFormat
	Parameters       bool
	ParameterTypes   bool
	ParameterNames   bool
	ParameterValues  bool
	Line             bool
	Module           bool
	IncludeAll       bool
}

func decodeStackFrameFormat(obj object) (StackFrameFormat, error) {
	vf, err := decodeValueFormat(obj)
	if err != nil {
		return StackFrameFormat{}, err
	}
	f := StackFrameFormat{ValueFormat: vf}
	if f.Parameters, err = getBoolOptional(obj, "parameters"); err != nil {
		return StackFrameFormat{}, err
	}
	if f.ParameterTypes, err = getBoolOptional(obj, "parameterTypes"); err != nil {
		return StackFrameFormat{}, err
	}
	if f.ParameterNames, err = getBoolOptional(obj, "parameterNames"); err != nil {
		return StackFrameFormat{}, err
	}
	if f.ParameterValues, err = getBoolOptional(obj, "parameterValues"); err != nil {
		return StackFrameFormat{}, err
	}
	if f.Line, err = getBoolOptional(obj, "line"); err != nil {
		return StackFrameFormat{}, err
	}
	if f.Module, err = getBoolOptional(obj, "module"); err != nil {
		return StackFrameFormat{}, err
	}
	if f.IncludeAll, err = getBoolOptional(obj, "includeAll"); err != nil {
		return StackFrameFormat{}, err
	}
	return f, nil
}

func (f StackFrameFormat) encode() json.RawMessage {
	return finalizeObject(
		attrBoolOptional("hex", f.Hex),
		attrBoolOptional("parameters", f.Parameters),
		attrBoolOptional("parameterTypes", f.ParameterTypes),
		attrBoolOptional("parameterNames", f.ParameterNames),
		attrBoolOptional("parameterValues", f.ParameterValues),
		attrBoolOptional("line", f.Line),
		attrBoolOptional("module", f.Module),
		attrBoolOptional("includeAll", f.IncludeAll),
	)
}

// ValueFormat controls how a client asks for a Variable's value to be
// rendered.
type ValueFormat struct {
	Hex bool
}

func decodeValueFormat(obj object) (ValueFormat, error) {
	hex, err := getBoolOptional(obj, "hex")
	if err != nil {
		return ValueFormat{}, err
	}
	return ValueFormat{Hex: hex}, nil
}

func (f ValueFormat) encode() json.RawMessage {
	return finalizeObject(attrBoolOptional("hex", f.Hex))
}

// StackFrameModuleId is StackFrame.moduleId, which is either a plain
// number or an opaque string depending on the adapter.
type StackFrameModuleId interface{ isStackFrameModuleId() }

// StackFrameModuleIdNumber is a numeric module id.
type StackFrameModuleIdNumber struct{ Value int64 }

// StackFrameModuleIdString is an opaque string module id.
type StackFrameModuleIdString struct{ Value string }

func (StackFrameModuleIdNumber) isStackFrameModuleId() {}
func (StackFrameModuleIdString) isStackFrameModuleId() {}

func decodeStackFrameModuleId(raw json.RawMessage) (StackFrameModuleId, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		v, err := n.Int64()
		if err != nil {
			return nil, NewError("moduleId", IsInvalid)
		}
		return StackFrameModuleIdNumber{Value: v}, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return StackFrameModuleIdString{Value: s}, nil
	}
	return nil, NewError("moduleId", IsInvalid)
}

// StackFrame is one entry in a thread's call stack.
type StackFrame struct {
	ID                        uint64
	Name                      string
	Source                    *Source
	Line                      uint64
	Column                    uint64
	EndLine                   *uint64
	EndColumn                 *uint64
	CanRestart                bool
	InstructionPointerReference *string
	ModuleId                  StackFrameModuleId
	PresentationHint          *StackFramePresentationHint
}

func decodeStackFrame(obj object) (StackFrame, error) {
	var f StackFrame
	var err error
	if f.ID, err = getU64(obj, "id"); err != nil {
		return StackFrame{}, err
	}
	if f.Name, err = getString(obj, "name"); err != nil {
		return StackFrame{}, err
	}
	if f.Source, err = getObjectOptional(obj, "source", decodeSource); err != nil {
		return StackFrame{}, err
	}
	if f.Line, err = getU64(obj, "line"); err != nil {
		return StackFrame{}, err
	}
	if f.Column, err = getU64(obj, "column"); err != nil {
		return StackFrame{}, err
	}
	if f.EndLine, err = getU64Optional(obj, "endLine"); err != nil {
		return StackFrame{}, err
	}
	if f.EndColumn, err = getU64Optional(obj, "endColumn"); err != nil {
		return StackFrame{}, err
	}
	if f.CanRestart, err = getBoolOptional(obj, "canRestart"); err != nil {
		return StackFrame{}, err
	}
	if f.InstructionPointerReference, err = getStringOptional(obj, "instructionPointerReference"); err != nil {
		return StackFrame{}, err
	}
	if raw, ok := getOptional(obj, "moduleId"); ok {
		if f.ModuleId, err = decodeStackFrameModuleId(raw); err != nil {
			return StackFrame{}, err
		}
	}
	if raw, ok := getOptional(obj, "presentationHint"); ok {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return StackFrame{}, NewError("presentationHint", MustBeString)
		}
		parsed, err := ParseStackFramePresentationHint("presentationHint", s)
		if err != nil {
			return StackFrame{}, err
		}
		f.PresentationHint = &parsed
	}
	return f, nil
}

func (f StackFrame) encode() json.RawMessage {
	var source *json.RawMessage
	if f.Source != nil {
		raw := f.Source.encode()
		source = &raw
	}
	var moduleId any
	switch id := f.ModuleId.(type) {
	case StackFrameModuleIdNumber:
		moduleId = id.Value
	case StackFrameModuleIdString:
		moduleId = id.Value
	}
	var hint *string
	if f.PresentationHint != nil {
		v := string(*f.PresentationHint)
		hint = &v
	}
	fields := []*field{
		attrU64("id", f.ID),
		attrString("name", f.Name),
		attrObjectOptional("source", source),
		attrU64("line", f.Line),
		attrU64("column", f.Column),
		attrU64Optional("endLine", f.EndLine),
		attrU64Optional("endColumn", f.EndColumn),
		attrBoolOptional("canRestart", f.CanRestart),
		attrStringOptional("instructionPointerReference", f.InstructionPointerReference),
		attrStringOptional("presentationHint", hint),
	}
	if moduleId != nil {
		fields = append(fields, &field{"moduleId", moduleId})
	}
	return finalizeObject(fields...)
}

// Scope is a named container of variables visible at a stack frame.
type Scope struct {
	Name               string
	PresentationHint   *ScopePresentationHint
	VariablesReference uint64
	NamedVariables     *uint64
	IndexedVariables   *uint64
	Expensive          bool
	Source             *Source
	Line               *uint64
	Column             *uint64
	EndLine            *uint64
	EndColumn          *uint64
}

func decodeScope(obj object) (Scope, error) {
	var s Scope
	var err error
	if s.Name, err = getString(obj, "name"); err != nil {
		return Scope{}, err
	}
	if raw, ok := getOptional(obj, "presentationHint"); ok {
		var hs string
		if err := json.Unmarshal(raw, &hs); err != nil {
			return Scope{}, NewError("presentationHint", MustBeString)
		}
		parsed := ParseScopePresentationHint(hs)
		s.PresentationHint = &parsed
	}
	if s.VariablesReference, err = getU64(obj, "variablesReference"); err != nil {
		return Scope{}, err
	}
	if s.NamedVariables, err = getU64Optional(obj, "namedVariables"); err != nil {
		return Scope{}, err
	}
	if s.IndexedVariables, err = getU64Optional(obj, "indexedVariables"); err != nil {
		return Scope{}, err
	}
	if s.Expensive, err = getBool(obj, "expensive"); err != nil {
		return Scope{}, err
	}
	if s.Source, err = getObjectOptional(obj, "source", decodeSource); err != nil {
		return Scope{}, err
	}
	if s.Line, err = getU64Optional(obj, "line"); err != nil {
		return Scope{}, err
	}
	if s.Column, err = getU64Optional(obj, "column"); err != nil {
		return Scope{}, err
	}
	if s.EndLine, err = getU64Optional(obj, "endLine"); err != nil {
		return Scope{}, err
	}
	if s.EndColumn, err = getU64Optional(obj, "endColumn"); err != nil {
		return Scope{}, err
	}
	return s, nil
}

func (s Scope) encode() json.RawMessage {
	var hint *string
	if s.PresentationHint != nil {
		v := string(*s.PresentationHint)
		hint = &v
	}
	var source *json.RawMessage
	if s.Source != nil {
		raw := s.Source.encode()
		source = &raw
	}
	return finalizeObject(
		attrString("name", s.Name),
		attrStringOptional("presentationHint", hint),
		attrU64("variablesReference", s.VariablesReference),
		attrU64Optional("namedVariables", s.NamedVariables),
		attrU64Optional("indexedVariables", s.IndexedVariables),
		attrBool("expensive", s.Expensive),
		attrObjectOptional("source", source),
		attrU64Optional("line", s.Line),
		attrU64Optional("column", s.Column),
		attrU64Optional("endLine", s.EndLine),
		attrU64Optional("endColumn", s.EndColumn),
	)
}

// VariablePresentationHint refines how a client should render a Variable.
type VariablePresentationHint struct {
	Kind       *Kind
	Attributes []Attributes
	Visibility *Visibility
	LazyValue  bool
}

func decodeVariablePresentationHint(obj object) (VariablePresentationHint, error) {
	var h VariablePresentationHint
	if s, err := getStringOptional(obj, "kind"); err != nil {
		return VariablePresentationHint{}, err
	} else if s != nil {
		k := ParseKind(*s)
		h.Kind = &k
	}
	attrs, err := getArrayOfStringEnumOptional(obj, "attributes", ParseAttributes)
	if err != nil {
		return VariablePresentationHint{}, err
	}
	h.Attributes = attrs
	if s, err := getStringOptional(obj, "visibility"); err != nil {
		return VariablePresentationHint{}, err
	} else if s != nil {
		v := ParseVisibility(*s)
		h.Visibility = &v
	}
	if h.LazyValue, err = getBoolOptional(obj, "lazy"); err != nil {
		return VariablePresentationHint{}, err
	}
	return h, nil
}

func (h VariablePresentationHint) encode() json.RawMessage {
	var kind *string
	if h.Kind != nil {
		v := string(*h.Kind)
		kind = &v
	}
	var visibility *string
	if h.Visibility != nil {
		v := string(*h.Visibility)
		visibility = &v
	}
	attrs := make([]string, len(h.Attributes))
	for i, a := range h.Attributes {
		attrs[i] = string(a)
	}
	return finalizeObject(
		attrStringOptional("kind", kind),
		attrArrayOptional("attributes", attrs),
		attrStringOptional("visibility", visibility),
		attrBoolOptional("lazy", h.LazyValue),
	)
}

// Variable is one named value in a Scope or a nested container.
type Variable struct {
	Name               string
	Value              string
	Type               *string
	PresentationHint   *VariablePresentationHint
	EvaluateName       *string
	VariablesReference uint64
	NamedVariables     *uint64
	IndexedVariables   *uint64
	MemoryReference    *string
}

func decodeVariable(obj object) (Variable, error) {
	var v Variable
	var err error
	if v.Name, err = getString(obj, "name"); err != nil {
		return Variable{}, err
	}
	if v.Value, err = getString(obj, "value"); err != nil {
		return Variable{}, err
	}
	if v.Type, err = getStringOptional(obj, "type"); err != nil {
		return Variable{}, err
	}
	if v.PresentationHint, err = getObjectOptional(obj, "presentationHint", decodeVariablePresentationHint); err != nil {
		return Variable{}, err
	}
	if v.EvaluateName, err = getStringOptional(obj, "evaluateName"); err != nil {
		return Variable{}, err
	}
	if v.VariablesReference, err = getU64(obj, "variablesReference"); err != nil {
		return Variable{}, err
	}
	if v.NamedVariables, err = getU64Optional(obj, "namedVariables"); err != nil {
		return Variable{}, err
	}
	if v.IndexedVariables, err = getU64Optional(obj, "indexedVariables"); err != nil {
		return Variable{}, err
	}
	if v.MemoryReference, err = getStringOptional(obj, "memoryReference"); err != nil {
		return Variable{}, err
	}
	return v, nil
}

func (v Variable) encode() json.RawMessage {
	var hint *json.RawMessage
	if v.PresentationHint != nil {
		raw := v.PresentationHint.encode()
		hint = &raw
	}
	return finalizeObject(
		attrString("name", v.Name),
		attrString("value", v.Value),
		attrStringOptional("type", v.Type),
		attrObjectOptional("presentationHint", hint),
		attrStringOptional("evaluateName", v.EvaluateName),
		attrU64("variablesReference", v.VariablesReference),
		attrU64Optional("namedVariables", v.NamedVariables),
		attrU64Optional("indexedVariables", v.IndexedVariables),
		attrStringOptional("memoryReference", v.MemoryReference),
	)
}

// ExceptionDetails describes a caught or uncaught exception's structure,
// recursively for inner/cause exceptions.
type ExceptionDetails struct {
	Message         *string
	TypeName        *string
	FullTypeName    *string
	EvaluateName    *string
	StackTrace      *string
	InnerException  []ExceptionDetails
}

func decodeExceptionDetails(obj object) (ExceptionDetails, error) {
	var d ExceptionDetails
	var err error
	if d.Message, err = getStringOptional(obj, "message"); err != nil {
		return ExceptionDetails{}, err
	}
	if d.TypeName, err = getStringOptional(obj, "typeName"); err != nil {
		return ExceptionDetails{}, err
	}
	if d.FullTypeName, err = getStringOptional(obj, "fullTypeName"); err != nil {
		return ExceptionDetails{}, err
	}
	if d.EvaluateName, err = getStringOptional(obj, "evaluateName"); err != nil {
		return ExceptionDetails{}, err
	}
	if d.StackTrace, err = getStringOptional(obj, "stackTrace"); err != nil {
		return ExceptionDetails{}, err
	}
	if d.InnerException, err = getArrayOptional(obj, "innerException", func(raw json.RawMessage) (ExceptionDetails, error) {
		nested, err := asObject("innerException", raw)
		if err != nil {
			return ExceptionDetails{}, err
		}
		return decodeExceptionDetails(nested)
	}); err != nil {
		return ExceptionDetails{}, err
	}
	return d, nil
}

func (d ExceptionDetails) encode() json.RawMessage {
	inner := make([]json.RawMessage, len(d.InnerException))
	for i, e := range d.InnerException {
		inner[i] = e.encode()
	}
	return finalizeObject(
		attrStringOptional("message", d.Message),
		attrStringOptional("typeName", d.TypeName),
		attrStringOptional("fullTypeName", d.FullTypeName),
		attrStringOptional("evaluateName", d.EvaluateName),
		attrStringOptional("stackTrace", d.StackTrace),
		attrArrayOptional("innerException", inner),
	)
}

// ColumnDescriptor describes one column the client should render in a
// "module" view.
type ColumnDescriptor struct {
	AttributeName string
	Label         string
	Format        *string
	Type          *ColumnDescriptorType
	Width         *uint64
}

func decodeColumnDescriptor(obj object) (ColumnDescriptor, error) {
	var c ColumnDescriptor
	var err error
	if c.AttributeName, err = getString(obj, "attributeName"); err != nil {
		return ColumnDescriptor{}, err
	}
	if c.Label, err = getString(obj, "label"); err != nil {
		return ColumnDescriptor{}, err
	}
	if c.Format, err = getStringOptional(obj, "format"); err != nil {
		return ColumnDescriptor{}, err
	}
	if s, err := getStringOptional(obj, "type"); err != nil {
		return ColumnDescriptor{}, err
	} else if s != nil {
		t, err := ParseColumnDescriptorType("type", *s)
		if err != nil {
			return ColumnDescriptor{}, err
		}
		c.Type = &t
	}
	if c.Width, err = getU64Optional(obj, "width"); err != nil {
		return ColumnDescriptor{}, err
	}
	return c, nil
}

func (c ColumnDescriptor) encode() json.RawMessage {
	var typ *string
	if c.Type != nil {
		v := string(*c.Type)
		typ = &v
	}
	return finalizeObject(
		attrString("attributeName", c.AttributeName),
		attrString("label", c.Label),
		attrStringOptional("format", c.Format),
		attrStringOptional("type", typ),
		attrU64Optional("width", c.Width),
	)
}

// ExceptionBreakpointsFilter is one adapter-defined exception category a
// client can enable or disable.
type ExceptionBreakpointsFilter struct {
	Filter             string
	Label              string
	Description        *string
	Default            bool
	SupportsCondition  bool
	ConditionDescription *string
}

func decodeExceptionBreakpointsFilter(obj object) (ExceptionBreakpointsFilter, error) {
	var f ExceptionBreakpointsFilter
	var err error
	if f.Filter, err = getString(obj, "filter"); err != nil {
		return ExceptionBreakpointsFilter{}, err
	}
	if f.Label, err = getString(obj, "label"); err != nil {
		return ExceptionBreakpointsFilter{}, err
	}
	if f.Description, err = getStringOptional(obj, "description"); err != nil {
		return ExceptionBreakpointsFilter{}, err
	}
	if f.Default, err = getBoolOptional(obj, "default"); err != nil {
		return ExceptionBreakpointsFilter{}, err
	}
	if f.SupportsCondition, err = getBoolOptional(obj, "supportsCondition"); err != nil {
		return ExceptionBreakpointsFilter{}, err
	}
	if f.ConditionDescription, err = getStringOptional(obj, "conditionDescription"); err != nil {
		return ExceptionBreakpointsFilter{}, err
	}
	return f, nil
}

func (f ExceptionBreakpointsFilter) encode() json.RawMessage {
	return finalizeObject(
		attrString("filter", f.Filter),
		attrString("label", f.Label),
		attrStringOptional("description", f.Description),
		attrBoolOptional("default", f.Default),
		attrBoolOptional("supportsCondition", f.SupportsCondition),
		attrStringOptional("conditionDescription", f.ConditionDescription),
	)
}

// Capabilities is the feature negotiation vector returned from Initialize.
// All fields default to false/empty when absent, and encode elides
// defaults, per the upstream protocol's optional-with-default convention.
type Capabilities struct {
	SupportsConfigurationDoneRequest      bool
	SupportsFunctionBreakpoints           bool
	SupportsConditionalBreakpoints        bool
	SupportsHitConditionalBreakpoints     bool
	SupportsEvaluateForHovers             bool
	ExceptionBreakpointFilters            []ExceptionBreakpointsFilter
	SupportsStepBack                      bool
	SupportsSetVariable                   bool
	SupportsRestartFrame                  bool
	SupportsGotoTargetsRequest            bool
	SupportsStepInTargetsRequest          bool
	SupportsCompletionsRequest             bool
	CompletionTriggerCharacters            []string
	SupportsModulesRequest                bool
	SupportsRestartRequest                bool
	SupportsExceptionOptions              bool
	SupportsValueFormattingOptions        bool
	SupportsExceptionInfoRequest          bool
	SupportTerminateDebuggee              bool
	SupportSuspendDebuggee                bool
	SupportsDelayedStackTraceLoading      bool
	SupportsLoadedSourcesRequest          bool
	SupportsLogPoints                     bool
	SupportsTerminateThreadsRequest       bool
	SupportsSetExpression                 bool
	SupportsTerminateRequest              bool
	SupportsDataBreakpoints               bool
	SupportsReadMemoryRequest             bool
	SupportsWriteMemoryRequest            bool
	SupportsDisassembleRequest            bool
	SupportsCancelRequest                 bool
	SupportsBreakpointLocationsRequest    bool
	SupportsClipboardContext              bool
	SupportsSteppingGranularity           bool
	SupportsInstructionBreakpoints        bool
	SupportsExceptionFilterOptions        bool
	SupportsSingleThreadExecutionRequests bool
	SupportsDataBreakpointBytes           bool
	SupportsANSIStyling                   bool
	SupportsStartDebuggingRequest          bool
	SupportedChecksumAlgorithms           []ChecksumAlgorithm
	AdditionalModuleColumns                []ColumnDescriptor
}

func decodeCapabilities(obj object) (Capabilities, error) {
	var c Capabilities
	var err error
	boolFields := []struct {
		name string
		dest *bool
	}{
		{"supportsConfigurationDoneRequest", &c.SupportsConfigurationDoneRequest},
		{"supportsFunctionBreakpoints", &c.SupportsFunctionBreakpoints},
		{"supportsConditionalBreakpoints", &c.SupportsConditionalBreakpoints},
		{"supportsHitConditionalBreakpoints", &c.SupportsHitConditionalBreakpoints},
		{"supportsEvaluateForHovers", &c.SupportsEvaluateForHovers},
		{"supportsStepBack", &c.SupportsStepBack},
		{"supportsSetVariable", &c.SupportsSetVariable},
		{"supportsRestartFrame", &c.SupportsRestartFrame},
		{"supportsGotoTargetsRequest", &c.SupportsGotoTargetsRequest},
		{"supportsStepInTargetsRequest", &c.SupportsStepInTargetsRequest},
		{"supportsCompletionsRequest", &c.SupportsCompletionsRequest},
		{"supportsModulesRequest", &c.SupportsModulesRequest},
		{"supportsRestartRequest", &c.SupportsRestartRequest},
		{"supportsExceptionOptions", &c.SupportsExceptionOptions},
		{"supportsValueFormattingOptions", &c.SupportsValueFormattingOptions},
		{"supportsExceptionInfoRequest", &c.SupportsExceptionInfoRequest},
		{"supportTerminateDebuggee", &c.SupportTerminateDebuggee},
		{"supportSuspendDebuggee", &c.SupportSuspendDebuggee},
		{"supportsDelayedStackTraceLoading", &c.SupportsDelayedStackTraceLoading},
		{"supportsLoadedSourcesRequest", &c.SupportsLoadedSourcesRequest},
		{"supportsLogPoints", &c.SupportsLogPoints},
		{"supportsTerminateThreadsRequest", &c.SupportsTerminateThreadsRequest},
		{"supportsSetExpression", &c.SupportsSetExpression},
		{"supportsTerminateRequest", &c.SupportsTerminateRequest},
		{"supportsDataBreakpoints", &c.SupportsDataBreakpoints},
		{"supportsReadMemoryRequest", &c.SupportsReadMemoryRequest},
		{"supportsWriteMemoryRequest", &c.SupportsWriteMemoryRequest},
		{"supportsDisassembleRequest", &c.SupportsDisassembleRequest},
		{"supportsCancelRequest", &c.SupportsCancelRequest},
		{"supportsBreakpointLocationsRequest", &c.SupportsBreakpointLocationsRequest},
		{"supportsClipboardContext", &c.SupportsClipboardContext},
		{"supportsSteppingGranularity", &c.SupportsSteppingGranularity},
		{"supportsInstructionBreakpoints", &c.SupportsInstructionBreakpoints},
		{"supportsExceptionFilterOptions", &c.SupportsExceptionFilterOptions},
		{"supportsSingleThreadExecutionRequests", &c.SupportsSingleThreadExecutionRequests},
		{"supportsDataBreakpointBytes", &c.SupportsDataBreakpointBytes},
		{"supportsANSIStyling", &c.SupportsANSIStyling},
		{"supportsStartDebuggingRequest", &c.SupportsStartDebuggingRequest},
	}
	for _, bf := range boolFields {
		if *bf.dest, err = getBoolOptional(obj, bf.name); err != nil {
			return Capabilities{}, err
		}
	}
	if c.ExceptionBreakpointFilters, err = getArrayOptional(obj, "exceptionBreakpointFilters", func(raw json.RawMessage) (ExceptionBreakpointsFilter, error) {
		nested, err := asObject("exceptionBreakpointFilters", raw)
		if err != nil {
			return ExceptionBreakpointsFilter{}, err
		}
		return decodeExceptionBreakpointsFilter(nested)
	}); err != nil {
		return Capabilities{}, err
	}
	if c.CompletionTriggerCharacters, err = getArrayOfStringOptional(obj, "completionTriggerCharacters"); err != nil {
		return Capabilities{}, err
	}
	if c.SupportedChecksumAlgorithms, err = getArrayOptional(obj, "supportedChecksumAlgorithms", func(raw json.RawMessage) (ChecksumAlgorithm, error) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", NewError("supportedChecksumAlgorithms", MustBeString)
		}
		return ParseChecksumAlgorithm("supportedChecksumAlgorithms", s)
	}); err != nil {
		return Capabilities{}, err
	}
	if c.AdditionalModuleColumns, err = getArrayOptional(obj, "additionalModuleColumns", func(raw json.RawMessage) (ColumnDescriptor, error) {
		nested, err := asObject("additionalModuleColumns", raw)
		if err != nil {
			return ColumnDescriptor{}, err
		}
		return decodeColumnDescriptor(nested)
	}); err != nil {
		return Capabilities{}, err
	}
	return c, nil
}

func (c Capabilities) encode() json.RawMessage {
	filters := make([]json.RawMessage, len(c.ExceptionBreakpointFilters))
	for i, f := range c.ExceptionBreakpointFilters {
		filters[i] = f.encode()
	}
	algos := make([]string, len(c.SupportedChecksumAlgorithms))
	for i, a := range c.SupportedChecksumAlgorithms {
		algos[i] = string(a)
	}
	columns := make([]json.RawMessage, len(c.AdditionalModuleColumns))
	for i, col := range c.AdditionalModuleColumns {
		columns[i] = col.encode()
	}
	return finalizeObject(
		attrBoolOptional("supportsConfigurationDoneRequest", c.SupportsConfigurationDoneRequest),
		attrBoolOptional("supportsFunctionBreakpoints", c.SupportsFunctionBreakpoints),
		attrBoolOptional("supportsConditionalBreakpoints", c.SupportsConditionalBreakpoints),
		attrBoolOptional("supportsHitConditionalBreakpoints", c.SupportsHitConditionalBreakpoints),
		attrBoolOptional("supportsEvaluateForHovers", c.SupportsEvaluateForHovers),
		attrArrayOptional("exceptionBreakpointFilters", filters),
		attrBoolOptional("supportsStepBack", c.SupportsStepBack),
		attrBoolOptional("supportsSetVariable", c.SupportsSetVariable),
		attrBoolOptional("supportsRestartFrame", c.SupportsRestartFrame),
		attrBoolOptional("supportsGotoTargetsRequest", c.SupportsGotoTargetsRequest),
		attrBoolOptional("supportsStepInTargetsRequest", c.SupportsStepInTargetsRequest),
		attrBoolOptional("supportsCompletionsRequest", c.SupportsCompletionsRequest),
		attrArrayOptional("completionTriggerCharacters", c.CompletionTriggerCharacters),
		attrBoolOptional("supportsModulesRequest", c.SupportsModulesRequest),
		attrBoolOptional("supportsRestartRequest", c.SupportsRestartRequest),
		attrBoolOptional("supportsExceptionOptions", c.SupportsExceptionOptions),
		attrBoolOptional("supportsValueFormattingOptions", c.SupportsValueFormattingOptions),
		attrBoolOptional("supportsExceptionInfoRequest", c.SupportsExceptionInfoRequest),
		attrBoolOptional("supportTerminateDebuggee", c.SupportTerminateDebuggee),
		attrBoolOptional("supportSuspendDebuggee", c.SupportSuspendDebuggee),
		attrBoolOptional("supportsDelayedStackTraceLoading", c.SupportsDelayedStackTraceLoading),
		attrBoolOptional("supportsLoadedSourcesRequest", c.SupportsLoadedSourcesRequest),
		attrBoolOptional("supportsLogPoints", c.SupportsLogPoints),
		attrBoolOptional("supportsTerminateThreadsRequest", c.SupportsTerminateThreadsRequest),
		attrBoolOptional("supportsSetExpression", c.SupportsSetExpression),
		attrBoolOptional("supportsTerminateRequest", c.SupportsTerminateRequest),
		attrBoolOptional("supportsDataBreakpoints", c.SupportsDataBreakpoints),
		attrBoolOptional("supportsReadMemoryRequest", c.SupportsReadMemoryRequest),
		attrBoolOptional("supportsWriteMemoryRequest", c.SupportsWriteMemoryRequest),
		attrBoolOptional("supportsDisassembleRequest", c.SupportsDisassembleRequest),
		attrBoolOptional("supportsCancelRequest", c.SupportsCancelRequest),
		attrBoolOptional("supportsBreakpointLocationsRequest", c.SupportsBreakpointLocationsRequest),
		attrBoolOptional("supportsClipboardContext", c.SupportsClipboardContext),
		attrBoolOptional("supportsSteppingGranularity", c.SupportsSteppingGranularity),
		attrBoolOptional("supportsInstructionBreakpoints", c.SupportsInstructionBreakpoints),
		attrBoolOptional("supportsExceptionFilterOptions", c.SupportsExceptionFilterOptions),
		attrBoolOptional("supportsSingleThreadExecutionRequests", c.SupportsSingleThreadExecutionRequests),
		attrBoolOptional("supportsDataBreakpointBytes", c.SupportsDataBreakpointBytes),
		attrBoolOptional("supportsANSIStyling", c.SupportsANSIStyling),
		attrBoolOptional("supportsStartDebuggingRequest", c.SupportsStartDebuggingRequest),
		attrArrayOptional("supportedChecksumAlgorithms", algos),
		attrArrayOptional("additionalModuleColumns", columns),
	)
}

// Package dap implements the JSON wire format of the Debug Adapter Protocol:
// strict typed decoding and encoding of every envelope, domain entity, and
// message variant the protocol defines. It has no knowledge of transport or
// framing (see the sibling frame package) or of connection orchestration
// (see the sibling reactor package).
package dap

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// object is the keyed JSON value every decoder in this package reads from.
// Decoding into a map of raw messages lets each field be decoded on demand
// with its own typed reader, instead of eagerly unmarshaling the whole tree.
type object = map[string]json.RawMessage

// asObject decodes raw into a keyed object, or returns ExpectsObject.
func asObject(attribute string, raw json.RawMessage) (object, error) {
	var m object
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, NewError(attribute, ExpectsObject)
	}
	return m, nil
}

// field is a single (name, value) pair queued for emission into an encoded
// object. A nil *field means "omit this field" — this is how optional
// writers elide default values.
type field struct {
	name  string
	value any
}

// finalizeObject assembles the given fields into a JSON object, preserving
// emission order (not required by the protocol, but kept stable so tests are
// deterministic). Nil fields are skipped.
func finalizeObject(fields ...*field) json.RawMessage {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, f := range fields {
		if f == nil {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, _ := json.Marshal(f.name)
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.value)
		if err != nil {
			val = []byte("null")
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// --- unconditional writers: always emit the field ---

func attrString(name, value string) *field { return &field{name, value} }
func attrBool(name string, value bool) *field { return &field{name, value} }
func attrU64(name string, value uint64) *field { return &field{name, value} }
func attrI64(name string, value int64) *field { return &field{name, value} }
func attrRaw(name string, value json.RawMessage) *field {
	if value == nil {
		return &field{name, json.RawMessage("null")}
	}
	return &field{name, value}
}

// --- optional writers: elide on the documented default ---

func attrStringOptional(name string, value *string) *field {
	if value == nil {
		return nil
	}
	return &field{name, *value}
}

// attrBoolOptional elides the field when value is false — the "optional,
// default false" convention used throughout Capabilities and elsewhere.
func attrBoolOptional(name string, value bool) *field {
	if !value {
		return nil
	}
	return &field{name, value}
}

func attrU64Optional(name string, value *uint64) *field {
	if value == nil {
		return nil
	}
	return &field{name, *value}
}

func attrU32Optional(name string, value *uint32) *field {
	if value == nil {
		return nil
	}
	return &field{name, *value}
}

func attrI64Optional(name string, value *int64) *field {
	if value == nil {
		return nil
	}
	return &field{name, *value}
}

func attrObject(name string, value any) *field {
	return &field{name, value}
}

// attrObjectOptional elides the field when value is nil. T is the pointee
// type of an encodable domain value.
func attrObjectOptional[T any](name string, value *T) *field {
	if value == nil {
		return nil
	}
	return &field{name, *value}
}

// attrArrayOptional elides the field when the slice is empty.
func attrArrayOptional[T any](name string, value []T) *field {
	if len(value) == 0 {
		return nil
	}
	return &field{name, value}
}

// attrRawOptional elides the field when raw is empty or a JSON null.
func attrRawOptional(name string, raw json.RawMessage) *field {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	return &field{name, raw}
}

// attrMapOptional elides the field when the map is empty.
func attrMapOptional(name string, value map[string]string) *field {
	if len(value) == 0 {
		return nil
	}
	return &field{name, value}
}

// attrMapOrNullOptional elides the field when the map is empty; values may
// individually be nil, which marshal to JSON null.
func attrMapOrNullOptional(name string, value map[string]*string) *field {
	if len(value) == 0 {
		return nil
	}
	return &field{name, value}
}

// --- readers ---

func getRequired(obj object, name string) (json.RawMessage, error) {
	raw, ok := obj[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, NewError(name, IsMandatory)
	}
	return raw, nil
}

// getOptional returns the raw value for name, or (nil, false) when the key
// is absent or holds a JSON null — null is treated as absent throughout the
// protocol.
func getOptional(obj object, name string) (json.RawMessage, bool) {
	raw, ok := obj[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	return raw, true
}

func getString(obj object, name string) (string, error) {
	raw, err := getRequired(obj, name)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", NewError(name, MustBeString)
	}
	return s, nil
}

func getStringOptional(obj object, name string) (*string, error) {
	raw, ok := getOptional(obj, name)
	if !ok {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, NewError(name, MustBeString)
	}
	return &s, nil
}

func getBool(obj object, name string) (bool, error) {
	raw, err := getRequired(obj, name)
	if err != nil {
		return false, err
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, NewError(name, MustBeBoolean)
	}
	return b, nil
}

// getBoolOptional reports false when the field is absent — the protocol's
// near-universal convention for boolean flags.
func getBoolOptional(obj object, name string) (bool, error) {
	raw, ok := getOptional(obj, name)
	if !ok {
		return false, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, NewError(name, MustBeBoolean)
	}
	return b, nil
}

func getU64(obj object, name string) (uint64, error) {
	raw, err := getRequired(obj, name)
	if err != nil {
		return 0, err
	}
	return parseU64(name, raw)
}

func getU64Optional(obj object, name string) (*uint64, error) {
	raw, ok := getOptional(obj, name)
	if !ok {
		return nil, nil
	}
	v, err := parseU64(name, raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func getU32Optional(obj object, name string) (*uint32, error) {
	v, err := getU64Optional(obj, name)
	if err != nil || v == nil {
		return nil, err
	}
	u32 := uint32(*v)
	return &u32, nil
}

func getI64Optional(obj object, name string) (*int64, error) {
	raw, ok := getOptional(obj, name)
	if !ok {
		return nil, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, NewError(name, MustBeUnsignedInteger)
	}
	v, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return nil, NewError(name, MustBeUnsignedInteger)
	}
	return &v, nil
}

func parseU64(name string, raw json.RawMessage) (uint64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, NewError(name, MustBeUnsignedInteger)
	}
	v, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, NewError(name, MustBeUnsignedInteger)
	}
	return v, nil
}

func getObjectRaw(obj object, name string) (json.RawMessage, bool, error) {
	raw, ok := getOptional(obj, name)
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

// getObject decodes a mandatory nested object field using decode.
func getObject[T any](obj object, name string, decode func(object) (T, error)) (T, error) {
	var zero T
	raw, err := getRequired(obj, name)
	if err != nil {
		return zero, err
	}
	nested, err := asObject(name, raw)
	if err != nil {
		return zero, err
	}
	return decode(nested)
}

// getObjectOptional decodes an optional nested object field using decode.
func getObjectOptional[T any](obj object, name string, decode func(object) (T, error)) (*T, error) {
	raw, ok, err := getObjectRaw(obj, name)
	if err != nil || !ok {
		return nil, err
	}
	nested, err := asObject(name, raw)
	if err != nil {
		return nil, err
	}
	v, err := decode(nested)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// getArrayOptional decodes an optional array field using decode per element,
// defaulting to an empty slice when absent.
func getArrayOptional[T any](obj object, name string, decode func(json.RawMessage) (T, error)) ([]T, error) {
	raw, ok := getOptional(obj, name)
	if !ok {
		return nil, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(raw, &raws); err != nil {
		return nil, NewError(name, MustBeArray)
	}
	out := make([]T, 0, len(raws))
	for _, r := range raws {
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func getArrayOfStringOptional(obj object, name string) ([]string, error) {
	raw, ok := getOptional(obj, name)
	if !ok {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, NewError(name, MustBeArray)
	}
	return out, nil
}

// getArrayOfStringEnumOptional decodes an optional array of open-enum
// strings, mapping each element through parse (which never fails for open
// enums — unrecognized strings become Custom).
func getArrayOfStringEnumOptional[T any](obj object, name string, parse func(string) T) ([]T, error) {
	strs, err := getArrayOfStringOptional(obj, name)
	if err != nil {
		return nil, err
	}
	if strs == nil {
		return nil, nil
	}
	out := make([]T, 0, len(strs))
	for _, s := range strs {
		out = append(out, parse(s))
	}
	return out, nil
}

func getArrayUsizeOptional(obj object, name string) ([]int, error) {
	raw, ok := getOptional(obj, name)
	if !ok {
		return nil, nil
	}
	var ns []json.Number
	if err := json.Unmarshal(raw, &ns); err != nil {
		return nil, NewError(name, MustBeArray)
	}
	out := make([]int, 0, len(ns))
	for _, n := range ns {
		v, err := strconv.Atoi(n.String())
		if err != nil {
			return nil, NewError(name, MustBeUnsignedInteger)
		}
		out = append(out, v)
	}
	return out, nil
}

func getArrayOfU64Optional(obj object, name string) ([]uint64, error) {
	raw, ok := getOptional(obj, name)
	if !ok {
		return nil, nil
	}
	var ns []json.Number
	if err := json.Unmarshal(raw, &ns); err != nil {
		return nil, NewError(name, MustBeArray)
	}
	out := make([]uint64, 0, len(ns))
	for _, n := range ns {
		v, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return nil, NewError(name, MustBeUnsignedInteger)
		}
		out = append(out, v)
	}
	return out, nil
}

func getMapToStringOptional(obj object, name string) (map[string]string, error) {
	raw, ok := getOptional(obj, name)
	if !ok {
		return nil, nil
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, NewError(name, MustBeObject)
	}
	return m, nil
}

// getMapToStringOrNullOptional decodes a string-keyed map whose values are
// each either a string or null.
func getMapToStringOrNullOptional(obj object, name string) (map[string]*string, error) {
	raw, ok := getOptional(obj, name)
	if !ok {
		return nil, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, NewError(name, MustBeObject)
	}
	out := make(map[string]*string, len(m))
	for k, v := range m {
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			out[k] = nil
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, NewError(name, MustMapToStringOrNull)
		}
		out[k] = &s
	}
	return out, nil
}

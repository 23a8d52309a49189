package dap

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genOptionalString pairs a presence flag with a value, exercising both the
// present and absent cases of an optional field without relying on FlatMap.
func genOptionalString() gopter.Gen {
	return gopter.CombineGens(gen.Bool(), gen.AlphaString()).Map(func(vals []any) *string {
		if !vals[0].(bool) {
			return nil
		}
		s := vals[1].(string)
		return &s
	})
}

func genOptionalU64() gopter.Gen {
	return gopter.CombineGens(gen.Bool(), gen.UInt64Range(0, 1<<32)).Map(func(vals []any) *uint64 {
		if !vals[0].(bool) {
			return nil
		}
		n := vals[1].(uint64)
		return &n
	})
}

func genOptionalI64() gopter.Gen {
	return gopter.CombineGens(gen.Bool(), gen.Int64Range(-1<<31, 1<<31)).Map(func(vals []any) *int64 {
		if !vals[0].(bool) {
			return nil
		}
		n := vals[1].(int64)
		return &n
	})
}

func genBreakpoint() gopter.Gen {
	return gopter.CombineGens(
		genOptionalU64(),
		gen.Bool(),
		genOptionalString(),
		genOptionalU64(),
		genOptionalU64(),
		genOptionalU64(),
		genOptionalU64(),
		genOptionalString(),
		genOptionalI64(),
	).Map(func(vals []any) Breakpoint {
		return Breakpoint{
			ID:                   vals[0].(*uint64),
			Verified:             vals[1].(bool),
			Message:              vals[2].(*string),
			Line:                 vals[3].(*uint64),
			Column:               vals[4].(*uint64),
			EndLine:              vals[5].(*uint64),
			EndColumn:            vals[6].(*uint64),
			InstructionReference: vals[7].(*string),
			Offset:               vals[8].(*int64),
		}
	})
}

// TestBreakpointRoundTripProperty verifies the §8 round-trip law: for every
// valid Breakpoint value (omitting the recursive Source field, covered
// separately), decode(encode(b)) == b.
func TestBreakpointRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("breakpoint survives encode/decode", prop.ForAll(
		func(bp Breakpoint) bool {
			raw := bp.encode()
			obj, err := asObject("breakpoint", raw)
			if err != nil {
				return false
			}
			got, err := decodeBreakpoint(obj)
			if err != nil {
				return false
			}
			return breakpointsEqual(bp, got)
		},
		genBreakpoint(),
	))

	properties.TestingRun(t)
}

func breakpointsEqual(a, b Breakpoint) bool {
	return u64PtrEqual(a.ID, b.ID) &&
		a.Verified == b.Verified &&
		strPtrEqual(a.Message, b.Message) &&
		u64PtrEqual(a.Line, b.Line) &&
		u64PtrEqual(a.Column, b.Column) &&
		u64PtrEqual(a.EndLine, b.EndLine) &&
		u64PtrEqual(a.EndColumn, b.EndColumn) &&
		strPtrEqual(a.InstructionReference, b.InstructionReference) &&
		i64PtrEqual(a.Offset, b.Offset)
}

func u64PtrEqual(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func i64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// genSourceLeaf generates a Source with only the mutually-exclusive
// path/sourceReference duality varying, matching S3's three wire forms.
func genSourceLeaf() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 2),
		gen.AlphaString(),
		gen.UInt32Range(1, 1<<20),
	).Map(func(vals []any) Source {
		switch vals[0].(int) {
		case 0:
			return Source{Reference: SourceIdentityPath{Path: vals[1].(string)}}
		case 1:
			return Source{Reference: SourceIdentityReference{Reference: vals[2].(uint32)}}
		default:
			return Source{}
		}
	})
}

// TestSourceRoundTripProperty verifies the §8 round-trip law for Source's
// path/sourceReference duality across all three wire forms.
func TestSourceRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("source identity survives encode/decode", prop.ForAll(
		func(src Source) bool {
			raw := src.encode()
			obj, err := asObject("source", raw)
			if err != nil {
				return false
			}
			got, err := decodeSource(obj)
			if err != nil {
				return false
			}
			return src.Reference == got.Reference
		},
		genSourceLeaf(),
	))

	properties.TestingRun(t)
}

// TestUnknownOpenEnumPreservesValue verifies the §8 error-surface property:
// an unknown open-enum string round-trips verbatim rather than being
// rejected.
func TestUnknownOpenEnumPreservesValue(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("unknown stopped reason round-trips verbatim", prop.ForAll(
		func(s string) bool {
			reason := ParseStoppedReason(s)
			return string(reason) == s
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

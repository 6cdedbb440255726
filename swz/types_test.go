package swz_test

import (
	"testing"

	"github.com/ajroetker/go-swizzle/swz"
)

type meters float64

type flags uint16

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		got  swz.Kind
		want swz.Kind
	}{
		{"KindOf[bool]", swz.KindOf[bool](), swz.Bool},
		{"KindOf[int8]", swz.KindOf[int8](), swz.Int},
		{"KindOf[uint16]", swz.KindOf[uint16](), swz.Uint},
		{"KindOf[float32]", swz.KindOf[float32](), swz.Float32},
		{"KindOf[float64]", swz.KindOf[float64](), swz.Float64},
		{"KindOf[meters]", swz.KindOf[meters](), swz.Invalid},
		{"NumberKind[int]", swz.NumberKind[int](), swz.Int},
		{"NumberKind[int64]", swz.NumberKind[int64](), swz.Int},
		{"NumberKind[uint8]", swz.NumberKind[uint8](), swz.Uint},
		{"NumberKind[uint]", swz.NumberKind[uint](), swz.Uint},
		{"NumberKind[float32]", swz.NumberKind[float32](), swz.Float32},
		{"NumberKind[float64]", swz.NumberKind[float64](), swz.Float64},
		{"NumberKind[meters]", swz.NumberKind[meters](), swz.Float64},
		{"NumberKind[flags]", swz.NumberKind[flags](), swz.Uint},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[swz.Kind]string{
		swz.Invalid: "invalid",
		swz.Bool:    "bool",
		swz.Int:     "int",
		swz.Uint:    "uint",
		swz.Float32: "float32",
		swz.Float64: "float64",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String(): got %q, want %q", k, got, want)
		}
	}
	if !swz.Float32.IsFloat() || swz.Int.IsFloat() {
		t.Errorf("IsFloat misclassifies")
	}
	if !swz.Uint.IsInteger() || swz.Bool.IsInteger() {
		t.Errorf("IsInteger misclassifies")
	}
}

func TestDefinedTypes(t *testing.T) {
	// Operators pick their path from NumberKind, so defined types behave
	// like their underlying kinds.
	d := swz.NewVec2[meters](5.5, -5.5).Mod(swz.S[meters](2))
	if got := d.Array(); got != [2]meters{1.5, -1.5} {
		t.Errorf("Mod: got %v, want [1.5 -1.5]", got)
	}
	f := swz.NewVec2[flags](0b1010, 0b0110).And(swz.S[flags](0b0011))
	if got := f.Array(); got != [2]flags{0b0010, 0b0010} {
		t.Errorf("And: got %v, want [2 2]", got)
	}
	if got := swz.NewVec2[meters](3, 4).Length(); got != 5 {
		t.Errorf("Length: got %v, want 5", got)
	}
}

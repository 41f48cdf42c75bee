package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFrom verifies type sniffing for loosely-typed inputs.
func TestFrom(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"nil", nil, KindNull},
		{"bool", true, KindBool},
		{"float64", 3.14, KindNumber},
		{"int", 42, KindNumber},
		{"int64", int64(42), KindNumber},
		{"json number", json.Number("10.5"), KindNumber},
		{"string", "hello", KindString},
		{"nested map degrades to string", map[string]any{"a": 1}, KindString},
		{"slice degrades to string", []any{1, 2}, KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, From(tt.in).Kind())
		})
	}
}

// TestValueString verifies the canonical coerced string forms.
func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null is empty", Null(), ""},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"integer-valued number", Number(10), "10"},
		{"fractional number", Number(2.5), "2.5"},
		{"string", String("abc"), "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

// TestValueAccessors verifies the typed accessors report presence correctly.
func TestValueAccessors(t *testing.T) {
	n, ok := Number(7).Number()
	assert.True(t, ok)
	assert.InDelta(t, 7.0, n, 0)

	_, ok = String("7").Number()
	assert.False(t, ok, "no string-to-number parsing")

	b, ok := Bool(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = Null().Bool()
	assert.False(t, ok)

	assert.True(t, Null().IsNull())
	assert.False(t, String("").IsNull(), "empty string is not null")
}

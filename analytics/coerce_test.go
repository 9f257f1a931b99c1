package analytics

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name     string
		raw      interface{}
		expected string
		ok       bool
	}{
		{"int", 42, "42", true},
		{"int64", int64(-7), "-7", true},
		{"float", 12.5, "12.5", true},
		{"numeric string", " 300 ", "300", true},
		{"decimal string", "0.25", "0.25", true},
		{"json number", json.Number("99"), "99", true},
		{"decimal", decimal.RequireFromString("1.5"), "1.5", true},
		{"true", true, "1", true},
		{"false", false, "0", true},
		{"nil", nil, "0", false},
		{"empty string", "", "0", false},
		{"garbage", "abc", "0", false},
		{"nan", math.NaN(), "0", false},
		{"inf", math.Inf(1), "0", false},
		{"unsupported", []int{1}, "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Coerce(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(v), "got %s", v)
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3.0, roundHalfUp(decimal.RequireFromString("2.5"), 0))
	assert.Equal(t, -2.0, roundHalfUp(decimal.RequireFromString("-2.5"), 0))
	assert.Equal(t, 2.0, roundHalfUp(decimal.RequireFromString("2.49"), 0))
	assert.Equal(t, 1.67, roundHalfUp(decimal.RequireFromString("1.666666"), 2))
}

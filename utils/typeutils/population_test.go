package typeutils

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name     string
		raw      json.RawMessage
		expected bool
	}{
		{
			name:     "absent field",
			raw:      nil,
			expected: false,
		},
		{
			name:     "null",
			raw:      json.RawMessage(`null`),
			expected: false,
		},
		{
			name:     "false",
			raw:      json.RawMessage(`false`),
			expected: false,
		},
		{
			name:     "true",
			raw:      json.RawMessage(`true`),
			expected: true,
		},
		{
			name:     "empty string",
			raw:      json.RawMessage(`""`),
			expected: false,
		},
		{
			name:     "zero string stays truthy",
			raw:      json.RawMessage(`"0"`),
			expected: true,
		},
		{
			name:     "capital marker",
			raw:      json.RawMessage(`"primary"`),
			expected: true,
		},
		{
			name:     "zero int",
			raw:      json.RawMessage(`0`),
			expected: false,
		},
		{
			name:     "zero float",
			raw:      json.RawMessage(`0.0`),
			expected: false,
		},
		{
			name:     "negative zero",
			raw:      json.RawMessage(`-0.0`),
			expected: false,
		},
		{
			name:     "non zero number",
			raw:      json.RawMessage(`42`),
			expected: true,
		},
		{
			name:     "empty array",
			raw:      json.RawMessage(`[]`),
			expected: false,
		},
		{
			name:     "non empty array",
			raw:      json.RawMessage(`[1]`),
			expected: true,
		},
		{
			name:     "empty object",
			raw:      json.RawMessage(`{}`),
			expected: false,
		},
		{
			name:     "non empty object",
			raw:      json.RawMessage(`{"a":1}`),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Truthy(tc.raw))
		})
	}
}

func TestPopulationInt(t *testing.T) {
	tests := []struct {
		name     string
		raw      json.RawMessage
		expected int64
	}{
		{
			name:     "absent field",
			raw:      nil,
			expected: 0,
		},
		{
			name:     "null",
			raw:      json.RawMessage(`null`),
			expected: 0,
		},
		{
			name:     "empty string",
			raw:      json.RawMessage(`""`),
			expected: 0,
		},
		{
			name:     "integer string",
			raw:      json.RawMessage(`"1000000"`),
			expected: 1000000,
		},
		{
			name:     "integer string with padding",
			raw:      json.RawMessage(`" 1000000 "`),
			expected: 1000000,
		},
		{
			name:     "decimal string rejected",
			raw:      json.RawMessage(`"123.5"`),
			expected: 0,
		},
		{
			name:     "bare decimal truncates",
			raw:      json.RawMessage(`123.5`),
			expected: 123,
		},
		{
			name:     "bare integer",
			raw:      json.RawMessage(`1000000`),
			expected: 1000000,
		},
		{
			name:     "zero",
			raw:      json.RawMessage(`0`),
			expected: 0,
		},
		{
			name:     "non numeric string",
			raw:      json.RawMessage(`"abc"`),
			expected: 0,
		},
		{
			name:     "negative integer string",
			raw:      json.RawMessage(`"-42"`),
			expected: -42,
		},
		{
			name:     "negative decimal truncates toward zero",
			raw:      json.RawMessage(`-42.9`),
			expected: -42,
		},
		{
			name:     "true coerces to one",
			raw:      json.RawMessage(`true`),
			expected: 1,
		},
		{
			name:     "oversized integer saturates",
			raw:      json.RawMessage(`99999999999999999999`),
			expected: maxInt64,
		},
		{
			name:     "nan string",
			raw:      json.RawMessage(`"NaN"`),
			expected: 0,
		},
		{
			name:     "scientific string rejected",
			raw:      json.RawMessage(`"1e6"`),
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PopulationInt(tc.raw))
		})
	}
}

func TestPopulationSortKey(t *testing.T) {
	tests := []struct {
		name     string
		raw      json.RawMessage
		expected int64
	}{
		{
			name:     "absent field",
			raw:      nil,
			expected: 0,
		},
		{
			name:     "null",
			raw:      json.RawMessage(`null`),
			expected: 0,
		},
		{
			name:     "empty string",
			raw:      json.RawMessage(`""`),
			expected: 0,
		},
		{
			name:     "integer string negates",
			raw:      json.RawMessage(`"123"`),
			expected: -123,
		},
		{
			name:     "decimal string parses here",
			raw:      json.RawMessage(`"1000000.5"`),
			expected: -1000000,
		},
		{
			name:     "bare decimal",
			raw:      json.RawMessage(`123.5`),
			expected: -123,
		},
		{
			name:     "bare integer",
			raw:      json.RawMessage(`1000000`),
			expected: -1000000,
		},
		{
			name:     "zero",
			raw:      json.RawMessage(`0`),
			expected: 0,
		},
		{
			name:     "non numeric string",
			raw:      json.RawMessage(`"abc"`),
			expected: 0,
		},
		{
			name:     "scientific string accepted",
			raw:      json.RawMessage(`"1e6"`),
			expected: -1000000,
		},
		{
			name:     "negative decimal",
			raw:      json.RawMessage(`-42.9`),
			expected: 42,
		},
		{
			name:     "nan string",
			raw:      json.RawMessage(`"NaN"`),
			expected: 0,
		},
		{
			name:     "true coerces",
			raw:      json.RawMessage(`true`),
			expected: -1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PopulationSortKey(tc.raw))
		})
	}
}

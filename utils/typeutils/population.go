package typeutils

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

const (
	maxInt64 = int64(1<<63 - 1)
	minInt64 = int64(-1 << 63)
)

// Truthy reports whether a raw JSON value counts as set under loose
// typing rules. Absent fields, null, false, zero numbers, empty
// strings and empty composites are all falsy; any other value,
// including the string "0", is truthy.
func Truthy(raw json.RawMessage) bool {
	token := bytes.TrimSpace(raw)
	if len(token) == 0 {
		return false
	}

	switch token[0] {
	case 'n', 'f': // null, false
		return false
	case 't':
		return true
	case '"':
		var s string
		if err := json.Unmarshal(token, &s); err != nil {
			return false
		}
		return s != ""
	case '[':
		var arr []json.RawMessage
		if err := json.Unmarshal(token, &arr); err != nil {
			return false
		}
		return len(arr) > 0
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(token, &obj); err != nil {
			return false
		}
		return len(obj) > 0
	default:
		f, err := strconv.ParseFloat(string(token), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return false
		}
		return f != 0
	}
}

// PopulationInt reads the raw population field as an integer for
// classification. Falsy values yield 0, string values must parse as a
// base 10 integer, and bare numeric values truncate toward zero. A
// decimal string like "123.5" is not an integer and yields 0.
func PopulationInt(raw json.RawMessage) int64 {
	token := bytes.TrimSpace(raw)
	if !Truthy(token) {
		return 0
	}

	switch token[0] {
	case 't':
		return 1
	case '"':
		var s string
		if err := json.Unmarshal(token, &s); err != nil {
			return 0
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0
		}
		return n
	case '[', '{':
		return 0
	default:
		return tokenToInt64(string(token))
	}
}

// PopulationSortKey reads the raw population field for ordering,
// negated so an ascending sort runs most populous first. Unlike
// PopulationInt this reading goes through a float parse, so the two
// disagree on decimal strings: "1000000.5" classifies as 0 but sorts
// as -1000000.
func PopulationSortKey(raw json.RawMessage) int64 {
	token := bytes.TrimSpace(raw)
	if !Truthy(token) {
		return 0
	}

	switch token[0] {
	case 't':
		return -1
	case '"':
		var s string
		if err := json.Unmarshal(token, &s); err != nil {
			return 0
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0
		}
		return truncToInt64(-f)
	case '[', '{':
		return 0
	default:
		f, err := strconv.ParseFloat(string(token), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0
		}
		return truncToInt64(-f)
	}
}

// tokenToInt64 converts a bare JSON number token. Integer tokens keep
// full int64 precision; anything with a fraction or exponent goes
// through float64 and truncates.
func tokenToInt64(token string) int64 {
	n, err := strconv.ParseInt(token, 10, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		// ParseInt saturates at the int64 bounds on range errors
		return n
	}

	f, err := strconv.ParseFloat(token, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return truncToInt64(f)
}

func truncToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		// non-finite values have no integer form
		return 0
	case f >= float64(maxInt64):
		return maxInt64
	case f <= float64(minInt64):
		return minInt64
	default:
		return int64(f)
	}
}

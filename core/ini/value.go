package ini

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-e/flint/core/utils"
)

// ErrSchemaMismatch is returned when a typed accessor is called on a value
// whose shape does not match the caller's declared expectation.
var ErrSchemaMismatch = errors.New("field value does not match declared schema")

// A Value is a single occurrence of a field: the ordered tuple of scalars on
// the right-hand side of one "key = ..." line. Scalars are typed during
// reading as int, float64, bool or string.
type Value []any

// parseScalar types a raw scalar token. Integers win over floats, floats over
// booleans, and anything else stays a string.
func parseScalar(tok string) any {
	if i, err := strconv.Atoi(tok); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f
	}
	switch strings.ToLower(tok) {
	case "true":
		return true
	case "false":
		return false
	}
	return tok
}

// parseValue splits a raw right-hand side into a typed tuple.
func parseValue(raw string) Value {
	parts := strings.Split(raw, ",")
	v := make(Value, 0, len(parts))
	for _, p := range parts {
		v = append(v, parseScalar(strings.TrimSpace(p)))
	}
	return v
}

// Str returns the value as a single string scalar.
func (v Value) Str() (string, error) {
	if len(v) != 1 {
		return "", fmt.Errorf("expected single string, got %d scalars: %w", len(v), ErrSchemaMismatch)
	}
	return utils.ToString(v[0]), nil
}

// Int returns the value as a single integer scalar.
func (v Value) Int() (int, error) {
	if len(v) != 1 {
		return 0, fmt.Errorf("expected single int, got %d scalars: %w", len(v), ErrSchemaMismatch)
	}
	switch n := v[0].(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	}
	return 0, fmt.Errorf("expected int, got %T: %w", v[0], ErrSchemaMismatch)
}

// Float returns the value as a single float scalar. Integers widen.
func (v Value) Float() (float64, error) {
	if len(v) != 1 {
		return 0, fmt.Errorf("expected single float, got %d scalars: %w", len(v), ErrSchemaMismatch)
	}
	switch n := v[0].(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	}
	return 0, fmt.Errorf("expected float, got %T: %w", v[0], ErrSchemaMismatch)
}

// Bool returns the value as a single boolean scalar. The dialect also writes
// booleans as 0/1, which are accepted.
func (v Value) Bool() (bool, error) {
	if len(v) != 1 {
		return false, fmt.Errorf("expected single bool, got %d scalars: %w", len(v), ErrSchemaMismatch)
	}
	switch b := v[0].(type) {
	case bool:
		return b, nil
	case int:
		return b == 1, nil
	}
	return false, fmt.Errorf("expected bool, got %T: %w", v[0], ErrSchemaMismatch)
}

// IntPair returns the value as a pair of integers, e.g. "num_offers = 2, 4".
func (v Value) IntPair() ([2]int, error) {
	if len(v) != 2 {
		return [2]int{}, fmt.Errorf("expected int pair, got %d scalars: %w", len(v), ErrSchemaMismatch)
	}
	var pair [2]int
	for i, s := range v {
		n, ok := s.(int)
		if !ok {
			return [2]int{}, fmt.Errorf("expected int at position %d, got %T: %w", i, s, ErrSchemaMismatch)
		}
		pair[i] = n
	}
	return pair, nil
}

// Ints returns every scalar coerced to int.
func (v Value) Ints() ([]int, error) {
	out := make([]int, len(v))
	for i, s := range v {
		switch n := s.(type) {
		case int:
			out[i] = n
		case float64:
			out[i] = int(n)
		default:
			return nil, fmt.Errorf("expected int at position %d, got %T: %w", i, s, ErrSchemaMismatch)
		}
	}
	return out, nil
}

// Strings returns every scalar stringified. This never fails: the dialect
// writes nicknames that look numeric, so callers wanting strings get the
// original token back.
func (v Value) Strings() []string {
	out := make([]string, len(v))
	for i, s := range v {
		out[i] = utils.ToString(s)
	}
	return out
}

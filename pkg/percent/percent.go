package percent

import (
	"fmt"
	"strconv"
	"strings"
)

// Relation says how a percentage relates to the current brightness.
type Relation int

const (
	// Absolute sets the brightness to the percentage of the maximum.
	Absolute Relation = iota
	// IncreaseBy raises the current brightness by the percentage of the maximum.
	IncreaseBy
	// DecreaseBy lowers the current brightness by the percentage of the maximum.
	DecreaseBy
)

// Directive is a parsed brightness argument.
type Directive struct {
	Relation Relation
	Value    uint8
}

// ParseError reports input that is not a valid decimal number.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a valid number: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse turns a single CLI token into a Directive. A leading '+' or '-'
// makes the percentage relative to the current brightness; the remainder
// must be an unsigned decimal that fits in 8 bits. Values above 100 are
// accepted here; the target calculation clamps them later.
func Parse(input string) (Directive, error) {
	relation := Absolute
	digits := input

	switch {
	case strings.HasPrefix(input, "+"):
		relation = IncreaseBy
		digits = input[1:]
	case strings.HasPrefix(input, "-"):
		relation = DecreaseBy
		digits = input[1:]
	}

	value, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return Directive{}, &ParseError{Input: input, Err: err}
	}

	return Directive{Relation: relation, Value: uint8(value)}, nil
}

package percent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input    string
		relation Relation
		value    uint8
	}{
		{"+10", IncreaseBy, 10},
		{"+0", IncreaseBy, 0},
		{"+44", IncreaseBy, 44},
		{"+100", IncreaseBy, 100},
		{"+250", IncreaseBy, 250},
		{"-10", DecreaseBy, 10},
		{"-100", DecreaseBy, 100},
		{"-200", DecreaseBy, 200},
		{"10", Absolute, 10},
		{"35", Absolute, 35},
		{"100", Absolute, 100},
		{"244", Absolute, 244},
		{"255", Absolute, 255},
	}

	for _, tc := range cases {
		d, err := Parse(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.relation, d.Relation, "input %q", tc.input)
		assert.Equal(t, tc.value, d.Value, "input %q", tc.input)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"",
		"+",
		"-",
		"300",
		"+300",
		"-300",
		"42934632",
		"five",
		"not a number",
		"0x110010",
	} {
		_, err := Parse(input)
		require.Error(t, err, "input %q", input)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr, "input %q", input)
		assert.Equal(t, input, parseErr.Input)
	}
}

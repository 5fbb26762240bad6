package backlight

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoppxi/lume/pkg/percent"
)

func TestTargetAbsolute(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pct            uint8
		max, min, want uint
	}{
		{22, 100, 0, 22},
		{33, 100, 0, 33},
		{77, 4438, 0, 3417},
		{0, 100, 0, 0},
		{100, 100, 0, 100},
		{200, 100, 0, 100},
		{22, 100, 50, 50},
		{22, 1000, 0, 220},
		{0, 1000, 0, 0},
		{100, 1000, 0, 1000},
		{110, 1000, 0, 1000},
		{1, 10000, 0, 100},
		{73, 14687, 999, 10721},
	}

	for _, tc := range cases {
		d := percent.Directive{Relation: percent.Absolute, Value: tc.pct}
		got := Target(d, 0, tc.max, tc.min)
		assert.Equal(t, tc.want, got, "Absolute(%d) max=%d min=%d", tc.pct, tc.max, tc.min)
	}
}

func TestTargetIncreaseBy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pct                     uint8
		current, max, min, want uint
	}{
		{22, 0, 100, 0, 22},
		{22, 10, 100, 0, 32},
		{22, 80, 100, 0, 100},
		{122, 80, 100, 0, 100},
		{200, 80, 100, 0, 100},
		{1, 100, 100, 0, 100},
		{0, 0, 100, 0, 0},
	}

	for _, tc := range cases {
		d := percent.Directive{Relation: percent.IncreaseBy, Value: tc.pct}
		got := Target(d, tc.current, tc.max, tc.min)
		assert.Equal(t, tc.want, got, "IncreaseBy(%d) current=%d max=%d min=%d", tc.pct, tc.current, tc.max, tc.min)
	}
}

func TestTargetDecreaseBy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pct                     uint8
		current, max, min, want uint
	}{
		{22, 0, 100, 0, 0},
		{22, 50, 100, 0, 28},
		{22, 55, 100, 50, 50},
		{22, 88, 100, 0, 66},
	}

	for _, tc := range cases {
		d := percent.Directive{Relation: percent.DecreaseBy, Value: tc.pct}
		got := Target(d, tc.current, tc.max, tc.min)
		assert.Equal(t, tc.want, got, "DecreaseBy(%d) current=%d max=%d min=%d", tc.pct, tc.current, tc.max, tc.min)
	}
}

func TestSaturatingArithmetic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint(math.MaxUint), satAdd(math.MaxUint-5, 10))
	assert.Equal(t, uint(15), satAdd(5, 10))
	assert.Equal(t, uint(0), satSub(3, 5))
	assert.Equal(t, uint(2), satSub(5, 3))
}

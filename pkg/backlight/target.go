package backlight

import (
	"math"

	"github.com/hoppxi/lume/pkg/percent"
)

// Target converts a parsed directive into the absolute brightness value to
// apply. The percentage is taken of max with the fraction truncated toward
// zero, added to or subtracted from the current value for relative
// directives, and the result is clamped into [min, max].
func Target(d percent.Directive, current, max, min uint) uint {
	delta := uint(float64(max) * float64(d.Value) / 100.0)

	var value uint
	switch d.Relation {
	case percent.IncreaseBy:
		value = satAdd(current, delta)
	case percent.DecreaseBy:
		value = satSub(current, delta)
	default:
		value = delta
	}

	return clamp(value, min, max)
}

func clamp(value, min, max uint) uint {
	switch {
	case value >= max:
		return max
	case value <= min:
		return min
	default:
		return value
	}
}

func satAdd(a, b uint) uint {
	if sum := a + b; sum >= a {
		return sum
	}
	return math.MaxUint
}

func satSub(a, b uint) uint {
	if b > a {
		return 0
	}
	return a - b
}

package backlight

import (
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// DefaultStepDelay is the pause between brightness steps during a fade.
const DefaultStepDelay = 100 * time.Nanosecond

// Writer is the device capability Fade needs. *Device implements it.
type Writer interface {
	Write(value uint) error
}

// Fade walks the hardware brightness from current to target one unit at a
// time, writing and flushing every value on the way (both endpoints
// included) with a pause between steps. The first failed write aborts the
// fade; the device keeps the last value that was applied. current == target
// writes nothing.
func Fade(dev Writer, current, target uint, delay time.Duration, clk clock.Clock) error {
	if current == target {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"from":  current,
		"to":    target,
		"delay": delay,
	}).Debug("fading brightness")

	switch {
	case target > current:
		for v := current; ; v++ {
			if err := step(dev, v, delay, clk); err != nil {
				return err
			}
			if v == target {
				break
			}
		}
	default:
		for v := current; ; v-- {
			if err := step(dev, v, delay, clk); err != nil {
				return err
			}
			if v == target {
				break
			}
		}
	}
	return nil
}

func step(dev Writer, value uint, delay time.Duration, clk clock.Clock) error {
	if err := dev.Write(value); err != nil {
		return err
	}
	clk.Sleep(delay)
	return nil
}

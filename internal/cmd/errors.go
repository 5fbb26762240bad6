package cmd

import (
	"errors"

	"github.com/hoppxi/lume/pkg/backlight"
	"github.com/hoppxi/lume/pkg/percent"
)

const (
	parseMessage = "The percent value must be a number between 0 and 100."

	deviceMessage = `Could not access the backlight device.
Does it exist? Usually /sys/class/backlight/intel_backlight/ or similar.
Also, do you have permission to edit it? On most Linux distributions you
need to be part of a special group (video?).`

	fallbackMessage = "Something went wrong that lume did not expect."
)

// friendlyMessage picks the explanation shown to the user for an error.
func friendlyMessage(err error) string {
	var parseErr *percent.ParseError
	var devErr *backlight.DeviceError

	switch {
	case errors.As(err, &parseErr):
		return parseMessage
	case errors.As(err, &devErr):
		return deviceMessage
	default:
		return fallbackMessage
	}
}

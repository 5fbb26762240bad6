package backlight

import "errors"

// Info is a point-in-time snapshot of a device's brightness state.
type Info struct {
	Device  string `json:"device"`
	Current uint   `json:"current"`
	Max     uint   `json:"max"`
	Percent int    `json:"percent"`
}

// Info reads the device state and derives the brightness percentage.
func (d *Device) Info() (*Info, error) {
	current, err := d.Current()
	if err != nil {
		return nil, err
	}

	max, err := d.Max()
	if err != nil {
		return nil, err
	}
	if max == 0 {
		return nil, &DeviceError{Path: d.path, Op: "read", Err: errors.New("invalid max_brightness value")}
	}

	pct := int(float64(current) / float64(max) * 100.0)
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}

	return &Info{
		Device:  d.Name,
		Current: current,
		Max:     max,
		Percent: pct,
	}, nil
}

package backlight

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hoppxi/lume/pkg/percent"
)

// SysfsRoot is where the kernel exposes backlight devices.
const SysfsRoot = "/sys/class/backlight"

// DeviceError reports a failed read or write on a backlight device file.
type DeviceError struct {
	Path string
	Op   string
	Err  error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("backlight %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// Device is one backlight device directory under /sys/class/backlight,
// exposing its brightness and max_brightness files.
type Device struct {
	Name string
	path string
}

// Discover returns the first backlight device found on the system.
func Discover() (*Device, error) { return discoverIn(SysfsRoot) }

// Open returns the named device under /sys/class/backlight.
func Open(name string) (*Device, error) { return openIn(SysfsRoot, name) }

// List returns every backlight device present on the system.
func List() ([]*Device, error) { return listIn(SysfsRoot) }

func discoverIn(root string) (*Device, error) {
	devices, err := listIn(root)
	if err != nil {
		return nil, err
	}
	// You might need to select a different device via config or --device
	return devices[0], nil
}

func openIn(root, name string) (*Device, error) {
	path := filepath.Join(root, name)
	if _, err := os.Stat(path); err != nil {
		return nil, &DeviceError{Path: path, Op: "open", Err: err}
	}
	return &Device{Name: name, path: path}, nil
}

func listIn(root string) ([]*Device, error) {
	paths, err := filepath.Glob(filepath.Join(root, "*"))
	if err != nil {
		return nil, &DeviceError{Path: root, Op: "discover", Err: err}
	}
	if len(paths) == 0 {
		return nil, &DeviceError{Path: root, Op: "discover", Err: errors.New("no backlight devices found")}
	}

	devices := make([]*Device, 0, len(paths))
	for _, p := range paths {
		devices = append(devices, &Device{Name: filepath.Base(p), path: p})
	}
	return devices, nil
}

// Max reads the device's maximum brightness value.
func (d *Device) Max() (uint, error) {
	return readUint(filepath.Join(d.path, "max_brightness"))
}

// Current reads the brightness the device is set to right now.
func (d *Device) Current() (uint, error) {
	return readUint(filepath.Join(d.path, "brightness"))
}

// Write applies an absolute brightness value to the device and makes sure
// it reached the hardware before returning. The file handle is held only
// for the duration of the single write.
func (d *Device) Write(value uint) error {
	path := filepath.Join(d.path, "brightness")

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return &DeviceError{Path: path, Op: "write", Err: err}
	}
	defer f.Close()

	if _, err := f.WriteString(strconv.FormatUint(uint64(value), 10)); err != nil {
		return &DeviceError{Path: path, Op: "write", Err: err}
	}
	if err := f.Sync(); err != nil {
		return &DeviceError{Path: path, Op: "sync", Err: err}
	}
	return nil
}

func readUint(path string) (uint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, &DeviceError{Path: path, Op: "read", Err: err}
	}

	s := strings.TrimSpace(string(data))
	// bit size matches uint so an oversized value is a ParseError
	// instead of a silent truncation on 32-bit platforms
	value, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil {
		return 0, &percent.ParseError{Input: s, Err: err}
	}
	return uint(value), nil
}

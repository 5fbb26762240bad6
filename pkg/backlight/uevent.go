package backlight

import (
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
)

// Events subscribes to kernel uevents and delivers a signal whenever a
// backlight device reports a change. sysfs attribute files do not produce
// inotify events, so this is the only way to observe brightness changes
// made by other writers. The channel stays open for the life of the
// process.
func Events() (<-chan struct{}, error) {
	fd, err := syscall.Socket(syscall.AF_NETLINK, syscall.SOCK_RAW, syscall.NETLINK_KOBJECT_UEVENT)
	if err != nil {
		return nil, &DeviceError{Path: "netlink", Op: "subscribe", Err: err}
	}

	addr := &syscall.SockaddrNetlink{
		Family: syscall.AF_NETLINK,
		Groups: 1, // broadcast uevents
	}
	if err := syscall.Bind(fd, addr); err != nil {
		syscall.Close(fd)
		return nil, &DeviceError{Path: "netlink", Op: "subscribe", Err: err}
	}

	events := make(chan struct{}, 1)

	go func() {
		defer syscall.Close(fd)

		buf := make([]byte, 4096)
		for {
			n, _, err := syscall.Recvfrom(fd, buf, 0)
			if err != nil {
				logrus.WithError(err).Warn("uevent recv failed")
				continue
			}

			msg := string(buf[:n])
			if !strings.Contains(msg, "SUBSYSTEM=backlight") || !strings.Contains(msg, "ACTION=change") {
				continue
			}

			select {
			case events <- struct{}{}:
			default:
			}
		}
	}()

	return events, nil
}

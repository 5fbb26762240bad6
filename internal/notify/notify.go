package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Brightness shows a transient desktop popup with the new brightness
// level. The synchronous hint makes repeated invocations replace the
// previous popup instead of stacking, which is what you want when holding
// a brightness key.
func Brightness(device string, pct int) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")

	hints := map[string]dbus.Variant{
		"value":                           dbus.MakeVariant(int32(pct)),
		"x-canonical-private-synchronous": dbus.MakeVariant("lume"),
	}

	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		"lume",
		uint32(0),
		"display-brightness-symbolic",
		"Brightness",
		fmt.Sprintf("%s: %d%%", device, pct),
		[]string{},
		hints,
		int32(1500),
	)
	if call.Err != nil {
		return fmt.Errorf("failed to send notification: %w", call.Err)
	}
	return nil
}

//go:build linux

package notify

import (
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsName = "org.freedesktop.Notifications"
	notificationsPath = dbus.ObjectPath("/org/freedesktop/Notifications")

	desktopEntry = "pulse"
)

type dbusNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus notification server.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return &dbusNotifier{obj: conn.Object(notificationsName, notificationsPath)}, nil
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout)
	call := n.obj.Call(notificationsName+".Notify", 0,
		AppName, notif.ReplacesID, notif.Icon, notif.Title, notif.Body,
		[]string{}, hints(notif), notif.Timeout)

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("notify: %w", err)
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	if err := n.obj.Call(notificationsName+".CloseNotification", 0, id).Err; err != nil {
		return fmt.Errorf("close notification %d: %w", id, err)
	}
	return nil
}

// hints builds the freedesktop hint map. Absolute icon paths are also sent
// as image-path so servers that ignore app_icon files still show the cover.
func hints(notif Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
		"transient":     dbus.MakeVariant(true),
	}
	if filepath.IsAbs(notif.Icon) {
		u := url.URL{Scheme: "file", Path: notif.Icon}
		h["image-path"] = dbus.MakeVariant(u.String())
	}
	return h
}

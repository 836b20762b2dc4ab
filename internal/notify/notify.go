// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"errors"
	"sync"
)

// AppName is reported to the notification server.
const AppName = "Pulse"

// Urgency is the freedesktop notification urgency level.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// ErrUnavailable is returned by New when no notification server can be reached.
var ErrUnavailable = errors.New("notification service unavailable")

// Discard drops every notification.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Notification) (uint32, error) { return 0, nil }
func (discard) Close(uint32) error { return nil }

// Replacer sends notifications that replace the previous one it sent,
// so a stream of updates occupies a single popup.
type Replacer struct {
	notifier Notifier

	mu     sync.Mutex
	lastID uint32
}

// NewReplacer wraps n.
func NewReplacer(n Notifier) *Replacer {
	return &Replacer{notifier: n}
}

// Send shows notif in place of the last notification sent.
func (r *Replacer) Send(notif Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notif.ReplacesID = r.lastID
	id, err := r.notifier.Notify(notif)
	if err != nil {
		return err
	}
	r.lastID = id
	return nil
}

// Dismiss closes the last notification sent, if any.
func (r *Replacer) Dismiss() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastID == 0 {
		return nil
	}
	id := r.lastID
	r.lastID = 0
	return r.notifier.Close(id)
}

//go:build !linux

package notify

// New returns Discard on non-Linux platforms.
func New() (Notifier, error) {
	return Discard, nil
}

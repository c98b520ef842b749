package alert

import (
	"github.com/gen2brain/beeep"
)

// desktopPlatform shows native alerts through the OS notification daemon.
// The daemons beeep talks to have no runtime permission prompt; the
// permission request degrades to a capability probe.
type desktopPlatform struct{}

// NewDesktopPlatform creates the native desktop notification capability.
func NewDesktopPlatform() Platform {
	return desktopPlatform{}
}

func (desktopPlatform) QueryPermission() Permission {
	return PermissionUnrequested
}

func (desktopPlatform) RequestPermission() Permission {
	// Probe with an empty notification handle: if the daemon is not
	// reachable, treat the capability as denied for this session.
	if err := beeep.Notify("liftray", "Desktop notifications enabled", ""); err != nil {
		return PermissionDenied
	}
	return PermissionGranted
}

func (desktopPlatform) Show(title, body, tag string) error {
	return beeep.Notify(title, body, "")
}

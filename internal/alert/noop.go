package alert

// noopPlatform is used where the native notification capability is
// absent or disabled by configuration.
type noopPlatform struct{}

// NewNoopPlatform creates a platform that silently drops every alert.
func NewNoopPlatform() Platform {
	return noopPlatform{}
}

func (noopPlatform) QueryPermission() Permission {
	return PermissionDenied
}

func (noopPlatform) RequestPermission() Permission {
	return PermissionDenied
}

func (noopPlatform) Show(title, body, tag string) error {
	return nil
}

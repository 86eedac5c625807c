package hotkey

// Package hotkey registers an optional system-wide key combination. Platforms
// without support report ErrUnavailable and the caller carries on without it.

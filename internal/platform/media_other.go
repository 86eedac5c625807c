//go:build !windows

package platform

import (
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// Media helpers
const (
	PlayerctlCommand = "playerctl"
	OsascriptCommand = "osascript"
)

var appleScriptMedia = map[MediaKey]string{
	MediaPlayPause: `tell application "Music" to playpause`,
	MediaPrevious:  `tell application "Music" to previous track`,
	MediaNext:      `tell application "Music" to next track`,
}

func (s *System) sendMediaKey(k MediaKey) error {
	switch s.goos {
	case OSLinux:
		if _, err := exec.LookPath(PlayerctlCommand); err != nil {
			return fmt.Errorf("%s not found: %w", PlayerctlCommand, ErrUnsupported)
		}
		s.log.Debug("media key sent", zap.Stringer("key", k))
		return s.Start(PlayerctlCommand, k.String())
	case OSDarwin:
		script, ok := appleScriptMedia[k]
		if !ok {
			return fmt.Errorf("media key %d: %w", k, ErrUnsupported)
		}
		return s.Start(OsascriptCommand, "-e", script)
	default:
		return fmt.Errorf("media keys on %s: %w", s.goos, ErrUnsupported)
	}
}

//go:build !windows

package hotkey

import (
	"context"
	"fmt"
	"runtime"
)

// listen is a stub: global hotkeys are only wired up on Windows
func listen(_ context.Context, _ Binding, _ func(), _ chan struct{}) error {
	return fmt.Errorf("%s: %w", runtime.GOOS, ErrUnavailable)
}

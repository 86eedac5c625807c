//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const showNormal = 1

// shellExecute opens uri with its registered handler, like double-clicking it
func shellExecute(uri string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(uri)
	if err != nil {
		return err
	}
	if err := windows.ShellExecute(0, verb, file, nil, nil, showNormal); err != nil {
		return fmt.Errorf("shell execute %s: %w", uri, err)
	}
	return nil
}

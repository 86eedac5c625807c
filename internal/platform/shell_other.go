//go:build !windows

package platform

import "fmt"

func shellExecute(uri string) error {
	return fmt.Errorf("shell execute %s: %w", uri, ErrUnsupported)
}

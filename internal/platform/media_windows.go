//go:build windows

package platform

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

// Virtual key codes of the media keys
const (
	vkMediaNextTrack = 0xB0
	vkMediaPrevTrack = 0xB1
	vkMediaPlayPause = 0xB3

	keyEventFKeyUp = 0x0002
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procKeybdEvent = user32.NewProc("keybd_event")
)

var virtualKeys = map[MediaKey]uintptr{
	MediaPlayPause: vkMediaPlayPause,
	MediaPrevious:  vkMediaPrevTrack,
	MediaNext:      vkMediaNextTrack,
}

func (s *System) sendMediaKey(k MediaKey) error {
	vk, ok := virtualKeys[k]
	if !ok {
		return fmt.Errorf("media key %d: %w", k, ErrUnsupported)
	}
	if err := procKeybdEvent.Find(); err != nil {
		return fmt.Errorf("keybd_event: %w", err)
	}
	procKeybdEvent.Call(vk, 0, 0, 0)
	procKeybdEvent.Call(vk, 0, keyEventFKeyUp, 0)
	s.log.Debug("media key sent", zap.Stringer("key", k))
	return nil
}

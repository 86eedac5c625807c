//go:build windows

package hotkey

import (
	"context"
	"fmt"

	xhotkey "golang.design/x/hotkey"
)

var modifiers = map[Modifier]xhotkey.Modifier{
	ModCtrl:  xhotkey.ModCtrl,
	ModShift: xhotkey.ModShift,
	ModAlt:   xhotkey.ModAlt,
}

var keys = map[string]xhotkey.Key{
	"0": xhotkey.Key0, "1": xhotkey.Key1, "2": xhotkey.Key2, "3": xhotkey.Key3, "4": xhotkey.Key4,
	"5": xhotkey.Key5, "6": xhotkey.Key6, "7": xhotkey.Key7, "8": xhotkey.Key8, "9": xhotkey.Key9,
	"a": xhotkey.KeyA, "b": xhotkey.KeyB, "c": xhotkey.KeyC, "d": xhotkey.KeyD, "e": xhotkey.KeyE,
	"f": xhotkey.KeyF, "g": xhotkey.KeyG, "h": xhotkey.KeyH, "i": xhotkey.KeyI, "j": xhotkey.KeyJ,
	"k": xhotkey.KeyK, "l": xhotkey.KeyL, "m": xhotkey.KeyM, "n": xhotkey.KeyN, "o": xhotkey.KeyO,
	"p": xhotkey.KeyP, "q": xhotkey.KeyQ, "r": xhotkey.KeyR, "s": xhotkey.KeyS, "t": xhotkey.KeyT,
	"u": xhotkey.KeyU, "v": xhotkey.KeyV, "w": xhotkey.KeyW, "x": xhotkey.KeyX, "y": xhotkey.KeyY,
	"z": xhotkey.KeyZ,
}

func listen(ctx context.Context, b Binding, onPress func(), done chan struct{}) error {
	key, ok := keys[b.Key]
	if !ok {
		return fmt.Errorf("key %q: %w", b.Key, ErrUnavailable)
	}
	mods := make([]xhotkey.Modifier, 0, len(b.Modifiers))
	for _, m := range b.Modifiers {
		mods = append(mods, modifiers[m])
	}

	hk := xhotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	go func() {
		defer close(done)
		defer hk.Unregister()
		for {
			select {
			case <-ctx.Done():
				return
			case <-hk.Keydown():
				if onPress != nil {
					onPress()
				}
			}
		}
	}()
	return nil
}

package hotkey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// DefaultBinding toggles the island's visibility
const DefaultBinding = "ctrl+1"

// ErrUnavailable means global hotkeys cannot be registered on this system
var ErrUnavailable = errors.New("global hotkey unavailable")

// Modifier is a key held together with the main key
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
)

// Binding is a parsed key combination such as ctrl+1
type Binding struct {
	Modifiers []Modifier
	Key       string
}

// Parse reads a combination written as modifier+...+key, case insensitive
func Parse(s string) (Binding, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	if len(parts) < 2 {
		return Binding{}, fmt.Errorf("hotkey %q needs at least one modifier and a key", s)
	}
	var b Binding
	for _, p := range parts[:len(parts)-1] {
		switch m := Modifier(strings.TrimSpace(p)); m {
		case ModCtrl, ModShift, ModAlt:
			b.Modifiers = append(b.Modifiers, m)
		default:
			return Binding{}, fmt.Errorf("hotkey %q: unknown modifier %q", s, p)
		}
	}
	b.Key = strings.TrimSpace(parts[len(parts)-1])
	if len(b.Key) != 1 || !isAlnum(b.Key[0]) {
		return Binding{}, fmt.Errorf("hotkey %q: key must be a single letter or digit", s)
	}
	return b, nil
}

// String formats the binding the way Parse reads it
func (b Binding) String() string {
	parts := make([]string, 0, len(b.Modifiers)+1)
	for _, m := range b.Modifiers {
		parts = append(parts, string(m))
	}
	return strings.Join(append(parts, b.Key), "+")
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z')
}

// Manager owns one registered hotkey. onPress runs on the listener goroutine;
// callers post to the UI thread themselves.
type Manager struct {
	binding Binding
	log     *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewManager creates a manager for binding
func NewManager(binding Binding, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{binding: binding, log: log}
}

// Binding returns the managed combination
func (m *Manager) Binding() Binding {
	return m.binding
}

// Active reports whether the hotkey is registered
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel != nil
}

// Start registers the hotkey and begins listening. It returns an error
// wrapping ErrUnavailable when the platform has no global hotkey support.
func (m *Manager) Start(onPress func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	if err := listen(ctx, m.binding, onPress, done); err != nil {
		cancel()
		return fmt.Errorf("register %s: %w", m.binding, err)
	}
	m.cancel = cancel
	m.done = done
	m.log.Info("global hotkey registered", zap.Stringer("binding", m.binding))
	return nil
}

// Stop unregisters the hotkey and waits for the listener to exit
func (m *Manager) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	m.log.Info("global hotkey unregistered", zap.Stringer("binding", m.binding))
}

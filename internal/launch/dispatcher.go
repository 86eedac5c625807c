package launch

import (
	"errors"
	"fmt"
	"runtime"

	homedir "github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
)

// Operating systems a strategy can be restricted to
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// Sentinel errors
var (
	ErrNotFound            = errors.New("not found")
	ErrStrategiesExhausted = errors.New("all launch strategies failed")
	ErrUnknownAction       = errors.New("unknown action")
)

// Host performs the side effects of launching. platform.System is the real one.
type Host interface {
	OpenURL(raw string) error
	OpenProtocol(uri string) error
	Start(name string, args ...string) error
	Shell(command string) error
	Exists(path string) bool
	LookPath(file string) (string, error)
	Glob(pattern string) ([]string, error)
	Getenv(key string) string
}

// Dispatcher executes actions. It is used from the UI thread only.
type Dispatcher struct {
	host       Host
	log        *zap.Logger
	goos       string
	strategies map[AppID][]Strategy

	onError   func(error)
	onFeature func(Feature)
}

// NewDispatcher creates a dispatcher with the default strategy table
func NewDispatcher(host Host, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		host:       host,
		log:        log,
		goos:       runtime.GOOS,
		strategies: DefaultStrategies(),
	}
}

// OnError sets the callback that reports failed launches to the user
func (d *Dispatcher) OnError(fn func(error)) {
	d.onError = fn
}

// OnFeature sets the callback that toggles in-widget features
func (d *Dispatcher) OnFeature(fn func(Feature)) {
	d.onFeature = fn
}

// SetOS overrides the platform used to filter strategies
func (d *Dispatcher) SetOS(goos string) {
	d.goos = goos
}

// SetStrategies replaces the table for one app
func (d *Dispatcher) SetStrategies(id AppID, s []Strategy) {
	d.strategies[id] = s
}

// Strategies returns the strategies that apply on the current platform
func (d *Dispatcher) Strategies(id AppID) []Strategy {
	var out []Strategy
	for _, s := range d.strategies[id] {
		if s.OS == "" || s.OS == d.goos {
			out = append(out, s)
		}
	}
	return out
}

// Launch runs one action and returns its error
func (d *Dispatcher) Launch(a Action) error {
	switch a.Kind {
	case ActionNone:
		return nil
	case ActionURL:
		return d.openURL(a.URL)
	case ActionWellKnown:
		return d.launchWellKnown(a.App)
	case ActionCustom:
		return d.runCustom(a.Path)
	case ActionSpecial:
		if d.onFeature != nil {
			d.onFeature(a.Feature)
		}
		return nil
	default:
		return fmt.Errorf("%d: %w", a.Kind, ErrUnknownAction)
	}
}

// Dispatch runs an action and reports any failure, including a panic, through
// the error callback. It never propagates failures to the caller.
func (d *Dispatcher) Dispatch(a Action) {
	err := d.safeLaunch(a)
	if err == nil {
		return
	}
	d.log.Warn("launch failed", zap.String("label", a.Label), zap.Stringer("kind", a.Kind), zap.Error(err))
	if d.onError != nil {
		d.onError(fmt.Errorf("%s: %w", a.Label, err))
	}
}

// Callback binds an action to a zero-argument button callback
func (d *Dispatcher) Callback(a Action) func() {
	return func() { d.Dispatch(a) }
}

func (d *Dispatcher) safeLaunch(a Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while launching: %v", r)
		}
	}()
	return d.Launch(a)
}

func (d *Dispatcher) openURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("empty url: %w", ErrNotFound)
	}
	d.log.Info("opening url", zap.String("url", raw))
	if err := d.host.OpenURL(raw); err != nil {
		return fmt.Errorf("failed to open %s: %w", raw, err)
	}
	return nil
}

func (d *Dispatcher) launchWellKnown(id AppID) error {
	var errs []error
	for _, s := range d.Strategies(id) {
		err := s.Try(d.host)
		if err == nil {
			d.log.Info("launched", zap.String("app", string(id)), zap.String("strategy", s.Name))
			return nil
		}
		d.log.Debug("strategy failed", zap.String("app", string(id)), zap.String("strategy", s.Name), zap.Error(err))
		errs = append(errs, err)
	}
	return fmt.Errorf("failed to open %s: %w", id, errors.Join(append([]error{ErrStrategiesExhausted}, errs...)...))
}

func (d *Dispatcher) runCustom(path string) error {
	if path == "" {
		return fmt.Errorf("empty path: %w", ErrNotFound)
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		expanded = path
	}
	if d.host.Exists(expanded) {
		d.log.Info("starting", zap.String("path", expanded))
		if err := d.host.Start(expanded); err != nil {
			return fmt.Errorf("failed to start %s: %w", expanded, err)
		}
		return nil
	}
	d.log.Info("running through shell", zap.String("command", path))
	if err := d.host.Shell(path); err != nil {
		return fmt.Errorf("failed to run %s: %w", path, err)
	}
	return nil
}

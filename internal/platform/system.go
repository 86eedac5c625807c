package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	ShCommand      = "sh"
	AppBundleExt   = ".app"
)

// Command parameters
const (
	WindowsCmdFlag = "/C"
	ShCommandFlag  = "-c"
	OpenAppFlag    = "-a"
)

// ErrUnsupported is returned for operations the current OS cannot perform
var ErrUnsupported = errors.New("not supported on this platform")

// System performs launches against the real operating system
type System struct {
	goos    string
	openURL func(*url.URL) error
	log     *zap.Logger
}

// NewSystem creates a System. openURL is normally fyne.App.OpenURL; when nil
// URLs go through the OS protocol handler.
func NewSystem(openURL func(*url.URL) error, log *zap.Logger) *System {
	if log == nil {
		log = zap.NewNop()
	}
	return &System{goos: runtime.GOOS, openURL: openURL, log: log}
}

// OpenURL opens a web address in the default browser
func (s *System) OpenURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if s.openURL != nil {
		return s.openURL(u)
	}
	return s.OpenProtocol(u.String())
}

// OpenProtocol hands a URI to the registered handler. On Windows this fails
// when no handler is registered for the scheme.
func (s *System) OpenProtocol(uri string) error {
	switch s.goos {
	case OSWindows:
		return shellExecute(uri)
	case OSDarwin:
		return s.Start(OpenCommand, uri)
	case OSLinux:
		return s.Start(XDGOpenCommand, uri)
	default:
		return fmt.Errorf("open %s on %s: %w", uri, s.goos, ErrUnsupported)
	}
}

// Start spawns a process without waiting for it to finish
func (s *System) Start(name string, args ...string) error {
	if s.goos == OSDarwin && strings.HasSuffix(name, AppBundleExt) {
		args = append([]string{OpenAppFlag, name}, args...)
		name = OpenCommand
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	s.log.Debug("process started", zap.String("name", name), zap.Int("pid", cmd.Process.Pid))
	go func() {
		// reap the child so it does not linger as a zombie
		_ = cmd.Wait()
	}()
	return nil
}

// Shell runs a command line through the platform command interpreter
func (s *System) Shell(command string) error {
	if s.goos == OSWindows {
		return s.Start(CmdCommand, WindowsCmdFlag, command)
	}
	return s.Start(ShCommand, ShCommandFlag, command)
}

// Exists reports whether path names an existing file or directory
func (s *System) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LookPath searches PATH for an executable
func (s *System) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Glob returns the files matching a pattern; ** is supported
func (s *System) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	return matches, nil
}

// Getenv reads an environment variable
func (s *System) Getenv(key string) string {
	return os.Getenv(key)
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

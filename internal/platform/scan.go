package platform

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxScannedApps caps how many executables a scan reports
const MaxScannedApps = 200

// SkippedExecutableWords mark installers, updaters and helpers
var SkippedExecutableWords = []string{"unins", "update", "install", "setup", "crash", "helper", "service", "launcher"}

// InstalledApp is a scan result the app editor can turn into an entry
type InstalledApp struct {
	Name string
	Path string
}

// CommonWindowsApps are offered before anything found on disk
var CommonWindowsApps = []InstalledApp{
	{Name: "Calculator", Path: "calc"},
	{Name: "Notepad", Path: "notepad"},
	{Name: "Paint", Path: "mspaint"},
	{Name: "WordPad", Path: "wordpad"},
	{Name: "Command Prompt", Path: "cmd"},
	{Name: "PowerShell", Path: "powershell"},
	{Name: "File Explorer", Path: "explorer"},
	{Name: "Snipping Tool", Path: "snippingtool"},
}

// Scanner lists installed applications
type Scanner struct {
	goos   string
	getenv func(string) string
	dirFS  func(string) fs.FS
	max    int
	log    *zap.Logger
}

// NewScanner creates a scanner for the running OS
func NewScanner(log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{
		goos:   runtime.GOOS,
		getenv: os.Getenv,
		dirFS:  os.DirFS,
		max:    MaxScannedApps,
		log:    log,
	}
}

// Scan returns installed applications, common ones first, without duplicate names
func (s *Scanner) Scan() []InstalledApp {
	switch s.goos {
	case OSWindows:
		return s.scanWindows()
	case OSLinux:
		return s.scanDesktopEntries()
	case OSDarwin:
		return s.scanBundles()
	default:
		return nil
	}
}

func (s *Scanner) scanWindows() []InstalledApp {
	apps := append([]InstalledApp(nil), CommonWindowsApps...)
	seen := map[string]bool{}
	for _, a := range apps {
		seen[a.Name] = true
	}

	var roots []string
	if local := s.getenv("LOCALAPPDATA"); local != "" {
		roots = append(roots, filepath.Join(local, "Programs"))
	}
	if programs := s.getenv("PROGRAMFILES"); programs != "" {
		roots = append(roots, programs)
	}
	found := 0
	for _, root := range roots {
		// one directory deep only; deeper trees make the scan slow
		matches, err := doublestar.Glob(s.dirFS(root), "*/*.exe", doublestar.WithFilesOnly())
		if err != nil {
			s.log.Debug("scan failed", zap.String("root", root), zap.Error(err))
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			if found >= s.max {
				return apps
			}
			base := path.Base(m)
			if isSkippedExecutable(base) {
				continue
			}
			name := CleanAppName(base)
			if seen[name] {
				continue
			}
			seen[name] = true
			apps = append(apps, InstalledApp{Name: name, Path: filepath.Join(root, filepath.FromSlash(m))})
			found++
		}
	}
	return apps
}

func (s *Scanner) scanDesktopEntries() []InstalledApp {
	var apps []InstalledApp
	seen := map[string]bool{}
	for _, dir := range s.desktopDirs() {
		fsys := s.dirFS(dir)
		matches, err := doublestar.Glob(fsys, "**/*.desktop", doublestar.WithFilesOnly())
		if err != nil {
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			if len(apps) >= s.max {
				return apps
			}
			data, err := fs.ReadFile(fsys, m)
			if err != nil {
				continue
			}
			app, ok := ParseDesktopEntry(string(data))
			if !ok || seen[app.Name] {
				continue
			}
			seen[app.Name] = true
			apps = append(apps, app)
		}
	}
	return apps
}

func (s *Scanner) desktopDirs() []string {
	dirs := []string{"/usr/share/applications"}
	if home := s.getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "applications"))
	}
	return dirs
}

func (s *Scanner) scanBundles() []InstalledApp {
	var apps []InstalledApp
	root := "/Applications"
	matches, err := doublestar.Glob(s.dirFS(root), "*.app")
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	for _, m := range matches {
		if len(apps) >= s.max {
			break
		}
		apps = append(apps, InstalledApp{
			Name: strings.TrimSuffix(m, AppBundleExt),
			Path: filepath.Join(root, m),
		})
	}
	return apps
}

// ParseDesktopEntry reads Name and Exec from the [Desktop Entry] group of a
// freedesktop .desktop file. Field codes such as %U are dropped from Exec.
func ParseDesktopEntry(data string) (InstalledApp, bool) {
	var app InstalledApp
	inEntry := false
	hidden := false

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		if len(line) > 2 && line[0] == '[' && line[len(line)-1] == ']' {
			inEntry = line == "[Desktop Entry]"
			continue
		}
		if !inEntry {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "Name":
			if app.Name == "" {
				app.Name = value
			}
		case "Exec":
			if app.Path == "" {
				app.Path = stripFieldCodes(value)
			}
		case "NoDisplay", "Hidden":
			if strings.EqualFold(value, "true") {
				hidden = true
			}
		}
	}
	return app, !hidden && app.Name != "" && app.Path != ""
}

func stripFieldCodes(exec string) string {
	fields := strings.Fields(exec)
	out := fields[:0]
	for _, f := range fields {
		if len(f) == 2 && f[0] == '%' {
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}

// CleanAppName turns an executable file name into a display name:
// "my_cool-app.exe" becomes "My Cool App"
func CleanAppName(file string) string {
	name := strings.TrimSuffix(file, path.Ext(file))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return cases.Title(language.Und).String(name)
}

func isSkippedExecutable(file string) bool {
	lower := strings.ToLower(file)
	for _, word := range SkippedExecutableWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

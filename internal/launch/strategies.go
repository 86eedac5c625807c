package launch

import (
	"fmt"
	"path/filepath"
)

// Environment variables the install paths are rooted at
const (
	EnvLocalAppData   = "LOCALAPPDATA"
	EnvProgramFiles   = "PROGRAMFILES"
	EnvProgramFilesX6 = "PROGRAMFILES(X86)"
)

// Web fallbacks
const (
	WhatsAppWebURL = "https://web.whatsapp.com"
	LinkedInURL    = "https://linkedin.com"
)

// StickyNotesAppsFolder is the packaged app id explorer understands
const StickyNotesAppsFolder = `shell:appsFolder\Microsoft.MicrosoftStickyNotes_8wekyb3d8bbwe!App`

// Strategy is one way of starting an application. OS restricts it to one
// platform; an empty OS means any.
type Strategy struct {
	Name string
	OS   string
	Try  func(h Host) error
}

// Protocol asks the system to open a registered protocol handler
func Protocol(uri string) Strategy {
	return Strategy{
		Name: "protocol " + uri,
		OS:   OSWindows,
		Try: func(h Host) error {
			return h.OpenProtocol(uri)
		},
	}
}

// InstallPath starts an executable at env\elems... when it exists
func InstallPath(env string, elems ...string) Strategy {
	return Strategy{
		Name: "path %" + env + "%\\" + filepath.Join(elems...),
		OS:   OSWindows,
		Try: func(h Host) error {
			root := h.Getenv(env)
			if root == "" {
				return fmt.Errorf("%s is not set: %w", env, ErrNotFound)
			}
			path := filepath.Join(append([]string{root}, elems...)...)
			if !h.Exists(path) {
				return fmt.Errorf("%s: %w", path, ErrNotFound)
			}
			return h.Start(path)
		},
	}
}

// GlobSearch starts the first executable matching env\pattern
func GlobSearch(env, pattern string) Strategy {
	return Strategy{
		Name: "glob %" + env + "%\\" + pattern,
		OS:   OSWindows,
		Try: func(h Host) error {
			root := h.Getenv(env)
			if root == "" {
				return fmt.Errorf("%s is not set: %w", env, ErrNotFound)
			}
			matches, err := h.Glob(filepath.Join(root, pattern))
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				return fmt.Errorf("no match for %s: %w", pattern, ErrNotFound)
			}
			return h.Start(matches[0])
		},
	}
}

// Command starts a program found on PATH
func Command(name string) Strategy {
	return Strategy{
		Name: "command " + name,
		Try: func(h Host) error {
			path, err := h.LookPath(name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, ErrNotFound)
			}
			return h.Start(path)
		},
	}
}

// Exec starts a fixed command line
func Exec(name string, args ...string) Strategy {
	return Strategy{
		Name: "exec " + name,
		OS:   OSWindows,
		Try: func(h Host) error {
			return h.Start(name, args...)
		},
	}
}

// Web opens a vendor page in the browser
func Web(url string) Strategy {
	return Strategy{
		Name: "web " + url,
		Try: func(h Host) error {
			return h.OpenURL(url)
		},
	}
}

// DefaultStrategies returns the strategy table for the well-known apps, most
// native first
func DefaultStrategies() map[AppID][]Strategy {
	return map[AppID][]Strategy{
		AppWhatsApp: {
			Protocol("whatsapp:"),
			InstallPath(EnvLocalAppData, "WhatsApp", "WhatsApp.exe"),
			InstallPath(EnvLocalAppData, "Programs", "WhatsApp", "WhatsApp.exe"),
			GlobSearch(EnvProgramFiles, filepath.Join("WindowsApps", "*WhatsApp*", "WhatsApp.exe")),
			Web(WhatsAppWebURL),
		},
		AppLinkedIn: {
			Protocol("linkedin:"),
			Web(LinkedInURL),
		},
		AppVSCode: {
			InstallPath(EnvLocalAppData, "Programs", "Microsoft VS Code", "Code.exe"),
			InstallPath(EnvProgramFiles, "Microsoft VS Code", "Code.exe"),
			Command("code"),
		},
		AppBrave: {
			InstallPath(EnvProgramFiles, "BraveSoftware", "Brave-Browser", "Application", "brave.exe"),
			InstallPath(EnvProgramFilesX6, "BraveSoftware", "Brave-Browser", "Application", "brave.exe"),
			InstallPath(EnvLocalAppData, "BraveSoftware", "Brave-Browser", "Application", "brave.exe"),
			Command("brave"),
			Command("brave-browser"),
		},
		AppStickyNotes: {
			Exec("explorer.exe", StickyNotesAppsFolder),
			Protocol("ms-stickynotes:"),
			GlobSearch(EnvProgramFiles, filepath.Join("WindowsApps", "Microsoft.MicrosoftStickyNotes*", "*.exe")),
			Exec("cmd", "/c", "start", "ms-stickynotes:"),
		},
	}
}

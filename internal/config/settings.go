package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyConfigPath    = "config_path"
	KeyLanguage      = "app_language"
	KeyHotkeyEnabled = "hotkey_enabled"
	KeyConfirmExit   = "confirm_exit"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultHotkeyEnabled = true
	DefaultConfirmExit   = true
)

// Settings manages per-user preferences that live outside the island document
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetConfigPath returns the configured document path
func (s *Settings) GetConfigPath() string {
	path := s.app.Preferences().String(KeyConfigPath)
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			defaultPath = ConfigFileName
		}
		s.SetConfigPath(defaultPath)
		return defaultPath
	}
	return path
}

// SetConfigPath sets the document path
func (s *Settings) SetConfigPath(path string) {
	s.app.Preferences().SetString(KeyConfigPath, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetHotkeyEnabled returns whether the global toggle hotkey should be registered
func (s *Settings) GetHotkeyEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyHotkeyEnabled, DefaultHotkeyEnabled)
}

// SetHotkeyEnabled sets whether the global toggle hotkey should be registered
func (s *Settings) SetHotkeyEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyHotkeyEnabled, enabled)
}

// GetConfirmExit returns whether closing the island asks for confirmation
func (s *Settings) GetConfirmExit() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmExit, DefaultConfirmExit)
}

// SetConfirmExit sets whether closing the island asks for confirmation
func (s *Settings) SetConfirmExit(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmExit, confirm)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pt":     "Português",
	}
}

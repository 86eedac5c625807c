package cli

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"go.uber.org/zap"

	"github.com/ytget/dynamic-island/internal/config"
	"github.com/ytget/dynamic-island/internal/hotkey"
	"github.com/ytget/dynamic-island/internal/launch"
	"github.com/ytget/dynamic-island/internal/logger"
	"github.com/ytget/dynamic-island/internal/platform"
	"github.com/ytget/dynamic-island/internal/ui"
)

// Run starts the island and blocks until it quits
func Run(o *Options, version string) error {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	configPath := ConfigPath(o, settings)
	log, err := logger.New(LoggerConfig(o, configPath))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log.Info("starting", zap.String("version", version), zap.String("config", configPath))

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(configPath)); err != nil {
		log.Warn("failed to ensure config dir", zap.Error(err))
	}

	// Apply island theme
	myApp.Settings().SetTheme(ui.NewIslandTheme())

	window := newIslandWindow(myApp)
	window.SetTitle(fmt.Sprintf("%s v%s", AppName, version))

	system := platform.NewSystem(myApp.OpenURL, log.Named("platform"))
	dispatcher := launch.NewDispatcher(system, log.Named("launch"))

	var hk *hotkey.Manager
	if !o.NoHotkey && settings.GetHotkeyEnabled() {
		binding, err := hotkey.Parse(o.Hotkey)
		if err != nil {
			return err
		}
		hk = hotkey.NewManager(binding, log.Named("hotkey"))
	}

	island := ui.NewIslandUI(window, myApp, ui.Services{
		Store:      config.NewStore(configPath),
		Settings:   settings,
		Dispatcher: dispatcher,
		Media:      system,
		Scanner:    platform.NewScanner(log.Named("scan")),
		Hotkey:     hk,
		Log:        log.Named("ui"),
	})
	island.StartBackground()
	defer island.Stop()

	window.ShowAndRun()
	log.Info("stopped")
	return nil
}

// ConfigPath picks the document path: the flag, then the saved preference
func ConfigPath(o *Options, settings *config.Settings) string {
	if o.ConfigPath != "" {
		return o.ConfigPath
	}
	return settings.GetConfigPath()
}

// LoggerConfig maps the flags to a logger configuration
func LoggerConfig(o *Options, configPath string) logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = o.LogLevel
	cfg.Development = o.Dev
	if o.LogFile {
		cfg.File = filepath.Join(filepath.Dir(configPath), logger.LogFileName)
	}
	return cfg
}

// newIslandWindow prefers a borderless splash window where the driver has one
func newIslandWindow(a fyne.App) fyne.Window {
	if drv, ok := a.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	return a.NewWindow(AppName)
}

package ui

import (
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"go.uber.org/zap"

	"github.com/ytget/dynamic-island/internal/anim"
	"github.com/ytget/dynamic-island/internal/config"
	"github.com/ytget/dynamic-island/internal/hotkey"
	"github.com/ytget/dynamic-island/internal/island"
	"github.com/ytget/dynamic-island/internal/launch"
	"github.com/ytget/dynamic-island/internal/model"
	"github.com/ytget/dynamic-island/internal/platform"
)

// MediaController sends media keys to the system
type MediaController interface {
	SendMediaKey(k platform.MediaKey) error
}

// AppScanner lists installed applications for the app editor
type AppScanner interface {
	Scan() []platform.InstalledApp
}

// Services are the non-UI collaborators of the island
type Services struct {
	Store      *config.Store
	Settings   *config.Settings
	Dispatcher *launch.Dispatcher
	Media      MediaController
	Scanner    AppScanner
	Hotkey     *hotkey.Manager // nil when the hotkey is disabled
	Log        *zap.Logger
}

// IslandUI represents the island window and everything it owns
type IslandUI struct {
	window       fyne.Window
	app          fyne.App
	svc          Services
	log          *zap.Logger
	localization *Localization

	doc  config.Document
	view *IslandView

	mediaRow     *fyne.Container
	mediaButtons []*GlowButton
	mediaVisible bool

	hidden  bool
	watcher *config.Watcher
}

// NewIslandUI loads the document, builds the island and puts it in window
func NewIslandUI(window fyne.Window, app fyne.App, svc Services) *IslandUI {
	if svc.Log == nil {
		svc.Log = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(svc.Settings.GetLanguage())

	ui := &IslandUI{
		window:       window,
		app:          app,
		svc:          svc,
		log:          svc.Log,
		localization: localization,
	}

	svc.Dispatcher.OnError(ui.showLaunchError)
	svc.Dispatcher.OnFeature(ui.onFeature)

	doc := ui.loadDocument()
	ui.view = NewIslandView(island.New(anim.Rect{}, optionsFor(doc)))
	ui.createMediaRow()
	ui.apply(doc)

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetContent(ui.view)
	window.Resize(ui.windowSize())

	ui.log.Info("island ui initialized",
		zap.Int("apps", len(doc.Apps)),
		zap.Int("enabled", len(model.EnabledEntries(doc.Apps))))
	return ui
}

// optionsFor converts document settings to island options
func optionsFor(doc config.Document) island.Options {
	return island.Options{
		ExpandedWidth:     float64(doc.ExpandedWidth),
		CollapsedWidth:    float64(doc.CollapsedWidth),
		AutoCollapseDelay: time.Duration(doc.AutoCollapseDelay) * time.Millisecond,
	}
}

// Document returns the document currently shown
func (ui *IslandUI) Document() config.Document {
	return ui.doc.Clone()
}

// View returns the island widget
func (ui *IslandUI) View() *IslandView {
	return ui.view
}

// Localization returns the text catalog in use
func (ui *IslandUI) Localization() *Localization {
	return ui.localization
}

func (ui *IslandUI) loadDocument() config.Document {
	doc, err := ui.svc.Store.Load()
	if err != nil {
		ui.log.Warn("config unreadable, using defaults", zap.String("path", ui.svc.Store.Path()), zap.Error(err))
	}
	return doc
}

// Reload replaces the whole document with the one on disk
func (ui *IslandUI) Reload() {
	ui.log.Info("reloading config", zap.String("path", ui.svc.Store.Path()))
	ui.apply(ui.loadDocument())
}

// onConfigChanged reloads after the file changed on disk. Our own saves are
// already applied, so a document equal to the current one is skipped.
func (ui *IslandUI) onConfigChanged() {
	doc := ui.loadDocument()
	if doc.Equal(ui.doc) {
		ui.log.Debug("config unchanged, skipping reload")
		return
	}
	ui.log.Info("config changed on disk", zap.String("path", ui.svc.Store.Path()))
	ui.apply(doc)
}

// SaveDocument writes doc and applies it. New widths and the collapse delay
// are used from the next expand or collapse.
func (ui *IslandUI) SaveDocument(doc config.Document) error {
	if err := ui.svc.Store.Save(doc); err != nil {
		ui.log.Error("failed to save config", zap.Error(err))
		return err
	}
	ui.apply(doc)
	return nil
}

func (ui *IslandUI) apply(doc config.Document) {
	ui.doc = doc.Clone()
	ui.view.Island().SetOptions(optionsFor(ui.doc))
	ui.rebuildButtons()
	if ui.window != nil {
		ui.window.Resize(ui.windowSize())
	}
}

func (ui *IslandUI) windowSize() fyne.Size {
	return fyne.NewSize(
		float32(ui.doc.ExpandedWidth)+2*WindowPadding,
		island.TopMargin+island.ExpandedHeight+WindowPadding,
	)
}

func (ui *IslandUI) createMediaRow() {
	l := ui.localization
	ui.mediaButtons = []*GlowButton{
		NewGlowButton(island.NewControl(IconPrevious, l.GetText(KeyPrevious),
			func() { ui.sendMedia(platform.MediaPrevious) }, HexColor(AccentMedia)).WithSize(island.SmallControlSize)),
		NewGlowButton(island.NewControl(IconPlayPause, l.GetText(KeyPlayPause),
			func() { ui.sendMedia(platform.MediaPlayPause) }, HexColor(AccentPlay)).WithSize(island.MediaPlaySize)),
		NewGlowButton(island.NewControl(IconNext, l.GetText(KeyNext),
			func() { ui.sendMedia(platform.MediaNext) }, HexColor(AccentMedia)).WithSize(island.SmallControlSize)),
	}
	objects := make([]fyne.CanvasObject, 0, len(ui.mediaButtons))
	for _, b := range ui.mediaButtons {
		objects = append(objects, b)
	}
	ui.mediaRow = NewRow(MediaRowSpacing, 0, MediaRowMargin, objects...)
	ui.mediaRow.Hide()
}

// rebuildButtons recreates the row from the document: media controls, one
// button per enabled entry, then settings and close
func (ui *IslandUI) rebuildButtons() {
	l := ui.localization
	row := []fyne.CanvasObject{ui.mediaRow}
	buttons := append([]*GlowButton(nil), ui.mediaButtons...)

	for _, entry := range model.EnabledEntries(ui.doc.Apps) {
		action := launch.Resolve(entry)
		b := NewGlowButton(island.NewControl(GlyphFor(entry), entry.GetDisplayName(),
			ui.svc.Dispatcher.Callback(action), entry.RGB()))
		row = append(row, b)
		buttons = append(buttons, b)
	}

	settings := NewGlowButton(island.NewControl(IconSettings, l.GetText(KeySettings),
		ui.onShowSettings, HexColor(AccentSettings)).WithSize(island.SmallControlSize))
	closeBtn := NewGlowButton(island.NewControl(IconClose, l.GetText(KeyClose),
		ui.onClose, HexColor(AccentClose)).WithSize(island.SmallControlSize))
	row = append(row, settings, closeBtn)
	buttons = append(buttons, settings, closeBtn)

	ui.updateMediaRow()
	ui.view.SetContent(row, buttons)
}

// MediaVisible reports whether the media controls are shown
func (ui *IslandUI) MediaVisible() bool {
	return ui.mediaVisible && ui.doc.MusicControlsEnabled
}

// ToggleMedia shows or hides the media controls
func (ui *IslandUI) ToggleMedia() {
	ui.mediaVisible = !ui.mediaVisible
	ui.updateMediaRow()
	ui.log.Debug("media controls toggled", zap.Bool("visible", ui.MediaVisible()))
}

func (ui *IslandUI) updateMediaRow() {
	if ui.MediaVisible() {
		ui.mediaRow.Show()
	} else {
		ui.mediaRow.Hide()
	}
	ui.view.content.Refresh()
	ui.view.Refresh()
}

func (ui *IslandUI) onFeature(f launch.Feature) {
	switch f {
	case launch.FeatureMediaControls:
		ui.ToggleMedia()
	default:
		ui.log.Warn("unknown feature", zap.String("feature", string(f)))
	}
}

func (ui *IslandUI) sendMedia(k platform.MediaKey) {
	if ui.svc.Media == nil {
		return
	}
	if err := ui.svc.Media.SendMediaKey(k); err != nil {
		ui.log.Warn("media key failed", zap.Stringer("key", k), zap.Error(err))
		ui.showError(ui.localization.GetText(KeyMediaFailed), err)
	}
}

// Hidden reports whether the hotkey has hidden the island
func (ui *IslandUI) Hidden() bool {
	return ui.hidden
}

// ToggleVisibility shows or hides the island window
func (ui *IslandUI) ToggleVisibility() {
	if ui.hidden {
		ui.window.Show()
	} else {
		ui.window.Hide()
	}
	ui.hidden = !ui.hidden
}

// StartBackground starts the config watcher and the global hotkey. Neither
// is required; failures are logged and the island keeps working.
func (ui *IslandUI) StartBackground() {
	ui.watcher = config.NewWatcher(ui.svc.Store.Path(), func() {
		fyne.Do(ui.onConfigChanged)
	}, ui.log)
	if err := ui.watcher.Start(); err != nil {
		ui.log.Warn("config watcher disabled", zap.Error(err))
		ui.watcher = nil
	}

	if ui.svc.Hotkey == nil {
		return
	}
	err := ui.svc.Hotkey.Start(func() {
		fyne.Do(ui.ToggleVisibility)
	})
	switch {
	case errors.Is(err, hotkey.ErrUnavailable):
		ui.log.Info("global hotkey not available", zap.Error(err))
	case err != nil:
		ui.log.Warn("global hotkey disabled", zap.Error(err))
	}
}

// Stop releases background resources
func (ui *IslandUI) Stop() {
	if ui.watcher != nil {
		ui.watcher.Close()
		ui.watcher = nil
	}
	if ui.svc.Hotkey != nil {
		ui.svc.Hotkey.Stop()
	}
}

func (ui *IslandUI) onShowSettings() {
	NewSettingsDialog(ui).Show()
}

func (ui *IslandUI) onClose() {
	if !ui.svc.Settings.GetConfirmExit() {
		ui.quit()
		return
	}
	l := ui.localization
	w := ui.dialogWindow(l.GetText(KeyClose))
	d := dialog.NewConfirm(l.GetText(KeyClose), l.GetText(KeyConfirmClose), func(ok bool) {
		if ok {
			ui.quit()
		}
	}, w)
	d.SetOnClosed(w.Close)
	d.Show()
	w.Show()
}

func (ui *IslandUI) quit() {
	ui.log.Info("quitting")
	ui.Stop()
	ui.app.Quit()
}

func (ui *IslandUI) showLaunchError(err error) {
	ui.showError(ui.localization.GetText(KeyError), err)
}

// showError shows one blocking error dialog in its own window; the island
// window is too small to host dialogs
func (ui *IslandUI) showError(title string, err error) {
	w := ui.dialogWindow(title)
	d := dialog.NewError(err, w)
	d.SetOnClosed(w.Close)
	d.Show()
	w.Show()
}

func (ui *IslandUI) showInfo(title, message string) {
	w := ui.dialogWindow(title)
	d := dialog.NewInformation(title, message, w)
	d.SetOnClosed(w.Close)
	d.Show()
	w.Show()
}

func (ui *IslandUI) dialogWindow(title string) fyne.Window {
	w := ui.app.NewWindow(title)
	w.Resize(fyne.NewSize(DialogWindowWidth, DialogWindowHeight))
	w.CenterOnScreen()
	return w
}

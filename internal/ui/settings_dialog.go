package ui

import (
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/dynamic-island/internal/config"
	"github.com/ytget/dynamic-island/internal/model"
)

// SettingsDialog represents the settings configuration dialog. It edits a
// copy of the document and writes it back only on save.
type SettingsDialog struct {
	ui           *IslandUI
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	doc      config.Document
	selected int

	// UI components
	musicCheck     *widget.Check
	delaySlider    *widget.Slider
	delayLabel     *widget.Label
	widthSlider    *widget.Slider
	widthLabel     *widget.Label
	languageSelect *widget.Select
	hotkeyCheck    *widget.Check
	confirmCheck   *widget.Check
	appList        *widget.List

	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog in its own window
func NewSettingsDialog(ui *IslandUI) *SettingsDialog {
	sd := &SettingsDialog{
		ui:           ui,
		settings:     ui.svc.Settings,
		localization: ui.localization,
		doc:          ui.Document(),
		selected:     -1,
	}
	sd.window = ui.app.NewWindow(sd.localization.GetText(KeySettings))
	sd.window.Resize(fyne.NewSize(SettingsWindowWidth, SettingsWindowHeight))
	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
	sd.window.CenterOnScreen()
	sd.window.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.musicCheck = widget.NewCheck(l.GetText(KeyMusicControls), nil)

	sd.delayLabel = widget.NewLabel("")
	sd.delaySlider = widget.NewSlider(config.MinAutoCollapseDelay, config.MaxAutoCollapseDelay)
	sd.delaySlider.Step = config.AutoCollapseDelayStep
	sd.delaySlider.OnChanged = func(v float64) {
		sd.delayLabel.SetText(fmt.Sprintf("%s: %d ms", l.GetText(KeyCollapseDelay), int(v)))
	}

	sd.widthLabel = widget.NewLabel("")
	sd.widthSlider = widget.NewSlider(config.MinExpandedWidth, config.MaxExpandedWidth)
	sd.widthSlider.Step = config.ExpandedWidthStep
	sd.widthSlider.OnChanged = func(v float64) {
		sd.widthLabel.SetText(fmt.Sprintf("%s: %d px", l.GetText(KeyExpandedWidth), int(v)))
	}

	// Language selection shows labels and stores codes
	sd.languageCodes = make(map[string]string)
	options := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == config.DefaultLanguage {
			return true
		}
		if codes[j] == config.DefaultLanguage {
			return false
		}
		return codes[i] < codes[j]
	})
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		labels = append(labels, options[code])
		sd.languageCodes[options[code]] = code
	}
	sd.languageSelect = widget.NewSelect(labels, nil)

	sd.hotkeyCheck = widget.NewCheck(l.GetText(KeyHotkey), nil)
	sd.confirmCheck = widget.NewCheck(l.GetText(KeyConfirmExit), nil)

	general := container.NewVBox(
		sd.musicCheck,
		widget.NewSeparator(),
		sd.delayLabel,
		sd.delaySlider,
		sd.widthLabel,
		sd.widthSlider,
		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
		sd.hotkeyCheck,
		sd.confirmCheck,
	)

	sd.appList = widget.NewList(
		func() int { return len(sd.doc.Apps) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(sd.doc.Apps) {
				obj.(*widget.Label).SetText(sd.describe(sd.doc.Apps[id]))
			}
		},
	)
	sd.appList.OnSelected = func(id widget.ListItemID) { sd.selected = id }
	sd.appList.OnUnselected = func(widget.ListItemID) { sd.selected = -1 }

	buttons := container.NewGridWithColumns(4,
		widget.NewButton(l.GetText(KeyAdd), sd.onAdd),
		widget.NewButton(l.GetText(KeyEdit), sd.onEdit),
		widget.NewButton(l.GetText(KeyRemove), sd.onRemove),
		widget.NewButton(l.GetText(KeyToggle), sd.onToggle),
	)
	listArea := container.NewGridWrap(fyne.NewSize(SettingsWindowWidth-2*WindowPadding, AppListHeight), sd.appList)
	apps := container.NewBorder(nil, buttons, nil, nil, listArea)

	tabs := container.NewAppTabs(
		container.NewTabItem(l.GetText(KeyGeneral), general),
		container.NewTabItem(l.GetText(KeyApps), apps),
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		tabs,
		sd.onSave,
		sd.window,
	)
	sd.dialog.SetOnClosed(sd.window.Close)
	sd.dialog.Resize(fyne.NewSize(SettingsWindowWidth-WindowPadding, SettingsWindowHeight-WindowPadding))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.musicCheck.SetChecked(sd.doc.MusicControlsEnabled)
	sd.delaySlider.SetValue(float64(config.ClampAutoCollapseDelay(sd.doc.AutoCollapseDelay)))
	sd.widthSlider.SetValue(float64(sd.doc.ExpandedWidth))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.hotkeyCheck.SetChecked(sd.settings.GetHotkeyEnabled())
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmExit())
	sd.appList.Refresh()
}

func (sd *SettingsDialog) describe(e model.AppEntry) string {
	parts := []string{GlyphFor(e) + " " + e.GetDisplayName(), sd.kindLabel(e.Kind)}
	text := strings.Join(parts, MiddleDotSeparator)
	if !e.Enabled {
		text += DisabledSuffix
	}
	return text
}

func (sd *SettingsDialog) kindLabel(k model.AppKind) string {
	switch k {
	case model.KindURL:
		return sd.localization.GetText(KeyTypeURL)
	case model.KindSpecial:
		return sd.localization.GetText(KeyTypeSpecial)
	default:
		return sd.localization.GetText(KeyTypeLocal)
	}
}

func (sd *SettingsDialog) selectedEntry() (model.AppEntry, bool) {
	if sd.selected < 0 || sd.selected >= len(sd.doc.Apps) {
		dialog.ShowInformation(sd.localization.GetText(KeyApps), sd.localization.GetText(KeyNoSelection), sd.window)
		return model.AppEntry{}, false
	}
	return sd.doc.Apps[sd.selected], true
}

func (sd *SettingsDialog) onAdd() {
	entry := model.NewAppEntry("", model.KindLocal)
	NewAppEditor(sd.localization, sd.ui.svc.Scanner, sd.window, entry, sd.addEntry).Show()
}

func (sd *SettingsDialog) onEdit() {
	entry, ok := sd.selectedEntry()
	if !ok {
		return
	}
	index := sd.selected
	NewAppEditor(sd.localization, sd.ui.svc.Scanner, sd.window, entry, func(e model.AppEntry) {
		sd.replaceEntry(index, e)
	}).Show()
}

func (sd *SettingsDialog) onRemove() {
	entry, ok := sd.selectedEntry()
	if !ok {
		return
	}
	index := sd.selected
	msg := sd.localization.Format(KeyConfirmRemove, entry.GetDisplayName())
	dialog.ShowConfirm(sd.localization.GetText(KeyRemove), msg, func(ok bool) {
		if ok {
			sd.removeEntry(index)
		}
	}, sd.window)
}

func (sd *SettingsDialog) onToggle() {
	if _, ok := sd.selectedEntry(); !ok {
		return
	}
	sd.toggleEntry(sd.selected)
}

func (sd *SettingsDialog) addEntry(e model.AppEntry) {
	sd.doc.AddApp(e)
	sd.appList.Refresh()
}

func (sd *SettingsDialog) replaceEntry(index int, e model.AppEntry) {
	if sd.doc.ReplaceApp(index, e) {
		sd.appList.Refresh()
	}
}

func (sd *SettingsDialog) removeEntry(index int) {
	if sd.doc.RemoveApp(index) {
		sd.appList.UnselectAll()
		sd.selected = -1
		sd.appList.Refresh()
	}
}

func (sd *SettingsDialog) toggleEntry(index int) {
	if sd.doc.ToggleApp(index) {
		sd.appList.RefreshItem(index)
	}
}

// collect copies the form state into the working document
func (sd *SettingsDialog) collect() config.Document {
	doc := sd.doc.Clone()
	doc.MusicControlsEnabled = sd.musicCheck.Checked
	doc.SetAutoCollapseDelay(int(sd.delaySlider.Value))
	doc.SetExpandedWidth(int(sd.widthSlider.Value))
	doc.SetCollapsedWidth(doc.CollapsedWidth)
	return doc
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	l := sd.localization

	hotkeyChanged := sd.hotkeyCheck.Checked != sd.settings.GetHotkeyEnabled()
	sd.settings.SetHotkeyEnabled(sd.hotkeyCheck.Checked)
	sd.settings.SetConfirmExit(sd.confirmCheck.Checked)
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
		l.SetLanguage(code)
	}

	if err := sd.ui.SaveDocument(sd.collect()); err != nil {
		sd.ui.showError(l.GetText(KeySaveFailed), err)
		return
	}
	sd.ui.log.Info("settings saved", zap.Bool("hotkey_changed", hotkeyChanged))

	msg := l.GetText(KeySettingsSaved)
	if hotkeyChanged {
		msg += "\n" + l.GetText(KeyHotkeyRestart)
	}
	sd.ui.showInfo(l.GetText(KeySettings), msg)
}

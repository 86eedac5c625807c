package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/dynamic-island/internal/config"
	"github.com/ytget/dynamic-island/internal/model"
	"github.com/ytget/dynamic-island/internal/platform"
)

func TestSettingsDialogLoadsDocument(t *testing.T) {
	f := newFixture(t, sampleDocument())
	sd := NewSettingsDialog(f.ui)
	sd.loadCurrentSettings()

	assert.True(t, sd.musicCheck.Checked)
	assert.Equal(t, 3000.0, sd.delaySlider.Value)
	assert.Equal(t, 650.0, sd.widthSlider.Value)
	assert.Equal(t, "English", sd.languageSelect.Selected)
	assert.Equal(t, "🌐 Docs · Website", sd.describe(model.AppEntry{Name: "Docs", Kind: model.KindURL, CustomIcon: "🌐", Enabled: true}))
	assert.Equal(t, "• Hidden · Website (off)", sd.describe(sd.doc.Apps[1]))
}

func TestSettingsDialogSaveWritesDocument(t *testing.T) {
	f := newFixture(t, sampleDocument())
	sd := NewSettingsDialog(f.ui)
	sd.loadCurrentSettings()

	sd.musicCheck.SetChecked(false)
	sd.delaySlider.SetValue(6500)
	sd.widthSlider.SetValue(800)
	sd.addEntry(model.AppEntry{Name: "VS Code", Kind: model.KindLocal, Enabled: true, Color: "#007ACC"})
	sd.toggleEntry(0)
	sd.removeEntry(1)
	sd.onSave(true)

	doc := f.ui.Document()
	assert.False(t, doc.MusicControlsEnabled)
	assert.Equal(t, 6500, doc.AutoCollapseDelay)
	assert.Equal(t, 800, doc.ExpandedWidth)
	require.Len(t, doc.Apps, 4)
	assert.False(t, doc.Apps[0].Enabled)
	assert.Equal(t, "Music Player", doc.Apps[1].Name)
	assert.Equal(t, "VS Code", doc.Apps[3].Name)

	loaded, err := f.store.Load()
	require.NoError(t, err)
	assert.Equal(t, doc.ExpandedWidth, loaded.ExpandedWidth)
	assert.Len(t, loaded.Apps, 4)

	assert.Contains(t, labels(f.ui.View().Buttons()), "VS Code")
	assert.NotContains(t, labels(f.ui.View().Buttons()), "Docs")
}

func TestSettingsDialogCancelKeepsDocument(t *testing.T) {
	f := newFixture(t, sampleDocument())
	sd := NewSettingsDialog(f.ui)
	sd.loadCurrentSettings()

	sd.widthSlider.SetValue(1200)
	sd.removeEntry(0)
	sd.onSave(false)

	assert.Equal(t, config.DefaultExpandedWidth, f.ui.Document().ExpandedWidth)
	assert.Len(t, f.ui.Document().Apps, 4)
}

func TestSettingsDialogIgnoresBadIndexes(t *testing.T) {
	f := newFixture(t, sampleDocument())
	sd := NewSettingsDialog(f.ui)

	sd.toggleEntry(10)
	sd.removeEntry(-1)
	sd.replaceEntry(4, model.AppEntry{Name: "x"})
	assert.Len(t, sd.doc.Apps, 4)
	assert.True(t, sd.doc.Apps[0].Enabled)
}

func TestSettingsDialogStoresPreferences(t *testing.T) {
	f := newFixture(t, config.DefaultDocument())
	sd := NewSettingsDialog(f.ui)
	sd.loadCurrentSettings()

	sd.confirmCheck.SetChecked(false)
	sd.hotkeyCheck.SetChecked(false)
	sd.languageSelect.SetSelected("Português")
	sd.onSave(true)

	assert.False(t, f.ui.svc.Settings.GetConfirmExit())
	assert.False(t, f.ui.svc.Settings.GetHotkeyEnabled())
	assert.Equal(t, "pt", f.ui.svc.Settings.GetLanguage())
	assert.Equal(t, "pt", f.ui.Localization().GetCurrentLanguage())
}

func newEditor(entry model.AppEntry) *AppEditor {
	a := test.NewApp()
	l := NewLocalization()
	return NewAppEditor(l, nil, a.NewWindow("editor"), entry, nil)
}

func TestAppEditorResultKeepsMatchingTarget(t *testing.T) {
	e := newEditor(model.NewAppEntry("", model.KindLocal))

	e.nameEntry.SetText(" My Tool ")
	e.kindSelect.SetSelected("Website")
	e.urlEntry.SetText(" https://tool.example.com ")
	e.pathEntry.SetText("C:\\tool.exe")

	got, err := e.Result()
	require.NoError(t, err)
	assert.Equal(t, model.AppEntry{
		Name:     "My Tool",
		Kind:     model.KindURL,
		Enabled:  true,
		URL:      "https://tool.example.com",
		Color:    model.DefaultEntryColor,
		IconName: "CUSTOM_MY_TOOL",
	}, got)
}

func TestAppEditorValidation(t *testing.T) {
	e := newEditor(model.NewAppEntry("", model.KindLocal))

	_, err := e.Result()
	assert.EqualError(t, err, "Name is required")

	e.nameEntry.SetText("Tool")
	e.colorEntry.SetText("green")
	_, err = e.Result()
	assert.EqualError(t, err, "Color must look like #RRGGBB")

	e.colorEntry.SetText("#00ff00")
	got, err := e.Result()
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", got.Color)
}

func TestAppEditorSpecialDefaultsName(t *testing.T) {
	e := newEditor(model.NewAppEntry("", model.KindLocal))
	e.kindSelect.SetSelected("Special")

	assert.Equal(t, "Music Player", e.nameEntry.Text)
	assert.True(t, e.urlEntry.Disabled())
	assert.True(t, e.pathEntry.Disabled())
}

func TestAppEditorLoadsEntry(t *testing.T) {
	entry := model.AppEntry{Name: "Notes", Kind: model.KindLocal, Path: "notepad.exe", Color: "#FFD700", CustomIcon: "📝"}
	e := newEditor(entry)

	assert.Equal(t, "Notes", e.nameEntry.Text)
	assert.Equal(t, "Local app", e.kindSelect.Selected)
	assert.Equal(t, "notepad.exe", e.pathEntry.Text)
	assert.False(t, e.enabledCheck.Checked)
	assert.True(t, e.urlEntry.Disabled())
}

func TestFilterApps(t *testing.T) {
	apps := []platform.InstalledApp{
		{Name: "Calculator", Path: "calc"},
		{Name: "Notepad", Path: "notepad"},
		{Name: "Obsidian", Path: "C:\\Obsidian.exe"},
	}

	assert.Equal(t, apps, FilterApps(apps, ""))
	assert.Equal(t, apps[1:2], FilterApps(apps, "NOTE"))
	assert.Empty(t, FilterApps(apps, "zzz"))
}

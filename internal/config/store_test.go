package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/dynamic-island/internal/model"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.json"))

	doc, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, Document{
		Apps:                 []model.AppEntry{},
		MusicControlsEnabled: true,
		AutoCollapseDelay:    3000,
		ExpandedWidth:        650,
		CollapsedWidth:       220,
	}, doc)
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	doc, err := NewStore(path).Load()
	assert.Error(t, err)
	assert.Equal(t, DefaultDocument(), doc)
}

func TestLoad_MissingFieldsUseDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
  "auto_collapse_delay": 5000,
  "apps": [
    {"name": "Docs", "type": "url", "url": "https://example.com"},
    {"path": "notepad", "enabled": false}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	doc, err := NewStore(path).Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, doc.AutoCollapseDelay)
	assert.Equal(t, DefaultExpandedWidth, doc.ExpandedWidth)
	assert.Equal(t, DefaultCollapsedWidth, doc.CollapsedWidth)
	assert.True(t, doc.MusicControlsEnabled)

	require.Len(t, doc.Apps, 2)
	assert.Equal(t, model.AppEntry{
		Name:    "Docs",
		Kind:    model.KindURL,
		Enabled: true,
		URL:     "https://example.com",
		Color:   model.DefaultEntryColor,
	}, doc.Apps[0])
	assert.Equal(t, model.DefaultEntryName, doc.Apps[1].Name)
	assert.Equal(t, model.KindLocal, doc.Apps[1].Kind)
	assert.False(t, doc.Apps[1].Enabled)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	store := NewStore(path)

	doc := DefaultDocument()
	doc.MusicControlsEnabled = false
	doc.SetAutoCollapseDelay(4500)
	doc.SetExpandedWidth(800)
	doc.AddApp(model.AppEntry{
		Name: "WhatsApp", Kind: model.KindLocal, Enabled: true,
		Color: "#25D366", IconName: "ICON_WHATSAPP",
	})
	doc.AddApp(model.AppEntry{
		Name: "Docs", Kind: model.KindURL, Enabled: false,
		URL: "https://example.com/?a=1&b=<2>", Color: "#0A66C2", CustomIcon: "📄",
		IconName: model.IconNameFor("Docs"),
	})
	doc.AddApp(model.AppEntry{
		Name: "Music Player", Kind: model.KindSpecial, Enabled: true,
		Color: "#C239B3", IconName: "ICON_MUSIC",
	})

	require.NoError(t, store.Save(doc))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestSaveWritesReadableUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	doc := DefaultDocument()
	doc.AddApp(model.AppEntry{Name: "Música", CustomIcon: "🎵", URL: "https://a.b/?x=1&y=2"})

	require.NoError(t, NewStore(path).Save(doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "\n  \"apps\"")
	assert.Contains(t, text, "🎵")
	assert.Contains(t, text, "Música")
	assert.Contains(t, text, "&y=2")
	assert.True(t, strings.HasSuffix(text, "\n"))
}

func TestSaveOverwritesInFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := NewStore(path)

	doc := DefaultDocument()
	doc.AddApp(model.NewAppEntry("A", model.KindLocal))
	doc.AddApp(model.NewAppEntry("B", model.KindLocal))
	require.NoError(t, store.Save(doc))

	doc.RemoveApp(0)
	require.NoError(t, store.Save(doc))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Apps, 1)
	assert.Equal(t, "B", loaded.Apps[0].Name)
}

func TestDisabledEntryStaysInStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := NewStore(path)

	doc := DefaultDocument()
	doc.AddApp(model.NewAppEntry("Keep", model.KindLocal))
	doc.AddApp(model.NewAppEntry("Hide", model.KindLocal))
	require.True(t, doc.ToggleApp(1))
	require.NoError(t, store.Save(doc))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.Apps, 2)

	visible := model.EnabledEntries(loaded.Apps)
	require.Len(t, visible, 1)
	assert.Equal(t, "Keep", visible[0].Name)
}

func TestEditorClamps(t *testing.T) {
	doc := DefaultDocument()

	doc.SetAutoCollapseDelay(500)
	assert.Equal(t, MinAutoCollapseDelay, doc.AutoCollapseDelay)
	doc.SetAutoCollapseDelay(20000)
	assert.Equal(t, MaxAutoCollapseDelay, doc.AutoCollapseDelay)
	doc.SetAutoCollapseDelay(2500)
	assert.Equal(t, 2500, doc.AutoCollapseDelay)

	doc.SetExpandedWidth(100)
	assert.Equal(t, MinExpandedWidth, doc.ExpandedWidth)
	doc.SetExpandedWidth(5000)
	assert.Equal(t, MaxExpandedWidth, doc.ExpandedWidth)

	doc.SetExpandedWidth(500)
	doc.SetCollapsedWidth(900)
	assert.Equal(t, 500, doc.CollapsedWidth)
	doc.SetCollapsedWidth(10)
	assert.Equal(t, MinCollapsedWidth, doc.CollapsedWidth)
}

func TestDocumentEditing(t *testing.T) {
	doc := DefaultDocument()
	doc.AddApp(model.NewAppEntry("A", model.KindLocal))

	assert.False(t, doc.ReplaceApp(3, model.AppEntry{}))
	assert.False(t, doc.RemoveApp(-1))
	assert.False(t, doc.ToggleApp(1))

	assert.True(t, doc.ReplaceApp(0, model.NewAppEntry("Z", model.KindURL)))
	assert.Equal(t, "Z", doc.Apps[0].Name)

	clone := doc.Clone()
	clone.Apps[0].Name = "changed"
	assert.Equal(t, "Z", doc.Apps[0].Name)
}

func TestDocumentEqual(t *testing.T) {
	doc := DefaultDocument()
	doc.AddApp(model.AppEntry{Name: "Docs", Kind: model.KindURL, Enabled: true, URL: "https://example.com"})

	assert.True(t, doc.Equal(doc.Clone()))
	assert.True(t, DefaultDocument().Equal(Document{
		MusicControlsEnabled: true, AutoCollapseDelay: 3000, ExpandedWidth: 650, CollapsedWidth: 220,
	}), "nil and empty app lists are equal")

	other := doc.Clone()
	other.ToggleApp(0)
	assert.False(t, doc.Equal(other))

	other = doc.Clone()
	other.SetExpandedWidth(900)
	assert.False(t, doc.Equal(other))

	other = doc.Clone()
	other.AddApp(model.NewAppEntry("VS Code", model.KindLocal))
	assert.False(t, doc.Equal(other))

	// saved and reloaded documents compare equal
	store := NewStore(filepath.Join(t.TempDir(), ConfigFileName))
	require.NoError(t, store.Save(doc))
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.True(t, doc.Equal(loaded))
}

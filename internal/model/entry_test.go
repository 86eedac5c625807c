package model

import (
	"image/color"
	"testing"
)

func TestAppEntry_RGB(t *testing.T) {
	tests := []struct {
		hex      string
		expected color.NRGBA
	}{
		{"#25D366", color.NRGBA{R: 0x25, G: 0xd3, B: 0x66, A: 0xff}},
		{"#ff4444", color.NRGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}},
		{" #0A66C2 ", color.NRGBA{R: 0x0a, G: 0x66, B: 0xc2, A: 0xff}},
		{"", color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}},
		{"not-a-color", color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}},
	}

	for _, test := range tests {
		entry := AppEntry{Color: test.hex}
		result := entry.RGB()
		if result != test.expected {
			t.Errorf("RGB() with Color=%q = %v, expected %v", test.hex, result, test.expected)
		}
	}
}

func TestAppEntry_GetDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Docs", "Docs"},
		{"  Spotify  ", "Spotify"},
		{"", DefaultEntryName},
	}

	for _, test := range tests {
		entry := AppEntry{Name: test.name}
		if result := entry.GetDisplayName(); result != test.expected {
			t.Errorf("GetDisplayName() with name=%q = %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestAppEntry_Glyph(t *testing.T) {
	if g := (AppEntry{CustomIcon: "🎵"}).Glyph(); g != "🎵" {
		t.Errorf("Expected custom glyph, got %q", g)
	}
	if g := (AppEntry{}).Glyph(); g != DefaultEntryIcon {
		t.Errorf("Expected default glyph, got %q", g)
	}
}

func TestNewAppEntry(t *testing.T) {
	entry := NewAppEntry("Notes", AppKind("bogus"))

	if entry.Kind != KindLocal {
		t.Errorf("Expected invalid kind to fall back to local, got %s", entry.Kind)
	}
	if !entry.Enabled {
		t.Error("New entries should be enabled")
	}
	if entry.Color != DefaultEntryColor {
		t.Errorf("Expected default color, got %s", entry.Color)
	}
}

func TestIconNameFor(t *testing.T) {
	if got := IconNameFor("Sticky Notes"); got != "CUSTOM_STICKY_NOTES" {
		t.Errorf("IconNameFor() = %s", got)
	}
}

func TestEnabledEntries(t *testing.T) {
	entries := []AppEntry{
		{Name: "A", Enabled: true},
		{Name: "B", Enabled: false},
		{Name: "C", Enabled: true},
	}

	result := EnabledEntries(entries)
	if len(result) != 2 {
		t.Fatalf("Expected 2 enabled entries, got %d", len(result))
	}
	if result[0].Name != "A" || result[1].Name != "C" {
		t.Errorf("Enabled entries lost their order: %v", result)
	}
	if len(entries) != 3 {
		t.Error("Filtering must not modify the stored entries")
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/ytget/dynamic-island/internal/model"
)

// File locations
const (
	AppDirName     = "dynamic-island"
	ConfigFileName = "config.json"

	DefaultFilePermissions = 0644
	DefaultDirPermissions  = 0755
)

// codec writes UTF-8 as-is (no \u escaping of emoji icons, no HTML escaping)
var codec = sonic.Config{
	EscapeHTML:       false,
	SortMapKeys:      false,
	ValidateString:   true,
	CompactMarshaler: false,
}.Froze()

// fileEntry mirrors model.AppEntry with pointers so missing keys can be told apart from zero values
type fileEntry struct {
	Name       *string `json:"name"`
	Kind       *string `json:"type"`
	Enabled    *bool   `json:"enabled"`
	URL        *string `json:"url"`
	Path       *string `json:"path"`
	Color      *string `json:"color"`
	CustomIcon *string `json:"custom_icon"`
	IconName   *string `json:"icon_name"`
}

type fileDocument struct {
	Apps                 []fileEntry `json:"apps"`
	MusicControlsEnabled *bool       `json:"music_controls_enabled"`
	AutoCollapseDelay    *int        `json:"auto_collapse_delay"`
	ExpandedWidth        *int        `json:"expanded_width"`
	CollapsedWidth       *int        `json:"collapsed_width"`
}

// Store reads and writes the island document at a fixed path
type Store struct {
	path string
}

// NewStore creates a store for the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// DefaultPath returns <user config dir>/dynamic-island/config.json
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, AppDirName, ConfigFileName), nil
}

// Load reads the document. A missing file yields the defaults with no error; a
// malformed file yields the defaults together with the decode error so the
// caller can log it.
func (s *Store) Load() (Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultDocument(), nil
	}
	if err != nil {
		return DefaultDocument(), fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return Decode(data)
}

// Save overwrites the backing file with the whole document
func (s *Store) Save(doc Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Encode renders the document as indented JSON
func Encode(doc Document) ([]byte, error) {
	if doc.Apps == nil {
		doc.Apps = []model.AppEntry{}
	}
	data, err := codec.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a document, substituting defaults for every missing field
func Decode(data []byte) (Document, error) {
	var raw fileDocument
	if err := codec.Unmarshal(data, &raw); err != nil {
		return DefaultDocument(), fmt.Errorf("failed to decode config: %w", err)
	}

	doc := DefaultDocument()
	if raw.MusicControlsEnabled != nil {
		doc.MusicControlsEnabled = *raw.MusicControlsEnabled
	}
	if raw.AutoCollapseDelay != nil {
		doc.AutoCollapseDelay = *raw.AutoCollapseDelay
	}
	if raw.ExpandedWidth != nil {
		doc.ExpandedWidth = *raw.ExpandedWidth
	}
	if raw.CollapsedWidth != nil {
		doc.CollapsedWidth = *raw.CollapsedWidth
	}
	for _, fe := range raw.Apps {
		doc.Apps = append(doc.Apps, fe.toEntry())
	}
	return doc, nil
}

func (fe fileEntry) toEntry() model.AppEntry {
	entry := model.AppEntry{
		Name:    stringOr(fe.Name, model.DefaultEntryName),
		Kind:    model.AppKind(stringOr(fe.Kind, string(model.KindLocal))),
		Enabled: true,
		URL:     stringOr(fe.URL, ""),
		Path:    stringOr(fe.Path, ""),
		Color:   stringOr(fe.Color, model.DefaultEntryColor),
	}
	if fe.Enabled != nil {
		entry.Enabled = *fe.Enabled
	}
	entry.CustomIcon = stringOr(fe.CustomIcon, "")
	entry.IconName = stringOr(fe.IconName, "")
	return entry
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

package launch

import (
	"strings"

	"github.com/ytget/dynamic-island/internal/model"
)

// ActionKind tags the variant held by an Action
type ActionKind int

const (
	// ActionNone does nothing when activated
	ActionNone ActionKind = iota
	// ActionURL opens a web address with the system handler
	ActionURL
	// ActionWellKnown runs the strategy table of a known application
	ActionWellKnown
	// ActionCustom starts a user supplied path or command
	ActionCustom
	// ActionSpecial toggles an in-widget feature
	ActionSpecial
)

// String returns a short name for logs
func (k ActionKind) String() string {
	switch k {
	case ActionURL:
		return "url"
	case ActionWellKnown:
		return "well-known"
	case ActionCustom:
		return "custom"
	case ActionSpecial:
		return "special"
	default:
		return "none"
	}
}

// AppID names an application with a built-in launch strategy table
type AppID string

// Known applications, matched by entry name
const (
	AppWhatsApp    AppID = "WhatsApp"
	AppLinkedIn    AppID = "LinkedIn"
	AppVSCode      AppID = "VS Code"
	AppBrave       AppID = "Brave"
	AppStickyNotes AppID = "Sticky Notes"
)

// Feature names an in-widget feature a special entry can toggle
type Feature string

// FeatureMediaControls shows or hides the previous/play/next row
const FeatureMediaControls Feature = "Music Player"

// Action is the resolved behavior of one button. Only the field matching
// Kind is meaningful.
type Action struct {
	Kind    ActionKind
	Label   string
	URL     string
	App     AppID
	Path    string
	Feature Feature
}

// WellKnownApps returns the ids that have a strategy table, in menu order
func WellKnownApps() []AppID {
	return []AppID{AppWhatsApp, AppLinkedIn, AppVSCode, AppBrave, AppStickyNotes}
}

// Resolve maps an entry to its action. Local entries whose name matches a
// well-known app use that app's strategies and ignore Path.
func Resolve(e model.AppEntry) Action {
	a := Action{Label: e.GetDisplayName()}
	name := strings.TrimSpace(e.Name)

	switch e.Kind {
	case model.KindURL:
		a.Kind = ActionURL
		a.URL = strings.TrimSpace(e.URL)
	case model.KindSpecial:
		if Feature(name) == FeatureMediaControls {
			a.Kind = ActionSpecial
			a.Feature = FeatureMediaControls
		}
	case model.KindLocal, "":
		for _, id := range WellKnownApps() {
			if string(id) == name {
				a.Kind = ActionWellKnown
				a.App = id
				return a
			}
		}
		a.Kind = ActionCustom
		a.Path = e.Path
	}
	return a
}

// ResolveAll resolves the enabled entries, preserving their order
func ResolveAll(entries []model.AppEntry) []Action {
	enabled := model.EnabledEntries(entries)
	out := make([]Action, 0, len(enabled))
	for _, e := range enabled {
		out = append(out, Resolve(e))
	}
	return out
}

package answers

// ActionMode selects which toolbar surface the extension exposes.
type ActionMode int

const (
	// ActionNone exposes no action icon.
	ActionNone ActionMode = iota
	// ActionBrowser exposes a browser-toolbar icon.
	ActionBrowser
	// ActionPage exposes an address-bar page icon.
	ActionPage
)

// String returns the manifest-facing name of the mode.
func (m ActionMode) String() string {
	switch m {
	case ActionBrowser:
		return "browser"
	case ActionPage:
		return "page"
	default:
		return "none"
	}
}

// UI feature identifiers accepted in RawAnswers.UIFeatures.
const (
	FeatureOptions       = "options"
	FeatureContentScript = "contentscript"
	FeatureOmnibox       = "omnibox"
)

// UIFeatures lists the optional UI features in prompt order.
var UIFeatures = []string{FeatureOptions, FeatureContentScript, FeatureOmnibox}

// Action choices as offered to the user.
const (
	ChoiceNo      = "No"
	ChoiceBrowser = "Browser"
	ChoicePage    = "Page"
)

// ActionChoices lists the action choices in prompt order.
var ActionChoices = []string{ChoiceNo, ChoiceBrowser, ChoicePage}

// RawAnswers is the untrusted record produced by prompting or flags.
type RawAnswers struct {
	Name        string
	Description string
	Action      string
	UIFeatures  []string
	Permissions []string
}

// Permission is one catalog permission and whether the user selected it.
type Permission struct {
	Name     string
	Selected bool
}

// Config is the canonical configuration derived from RawAnswers. It is never
// mutated after Normalize returns it.
type Config struct {
	Name          string // quote-escaped
	Description   string // quote-escaped
	Action        ActionMode
	Options       bool
	Omnibox       bool
	ContentScript bool

	// Permissions has one entry per catalog permission, in catalog order.
	Permissions []Permission
}

// Permission reports whether name was selected.
func (c Config) Permission(name string) bool {
	for _, p := range c.Permissions {
		if p.Name == name {
			return p.Selected
		}
	}
	return false
}

// SelectedPermissions returns the selected permission names in catalog order.
func (c Config) SelectedPermissions() []string {
	var out []string
	for _, p := range c.Permissions {
		if p.Selected {
			out = append(out, p.Name)
		}
	}
	return out
}

// HasAction reports whether the extension exposes an action icon.
func (c Config) HasAction() bool {
	return c.Action != ActionNone
}

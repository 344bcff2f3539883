package manifest

// Field names emitted by Synthesize.
const (
	FieldBrowserAction  = "browser_action"
	FieldPageAction     = "page_action"
	FieldOptionsPage    = "options_page"
	FieldOptionsUI      = "options_ui"
	FieldOmnibox        = "omnibox"
	FieldContentScripts = "content_scripts"
	FieldPermissions    = "permissions"
)

// Host match patterns appended to the permission list when tabs is selected,
// and used as content script matches.
const (
	MatchHTTP  = "http://*/*"
	MatchHTTPS = "https://*/*"
)

// Action is the value of browser_action / page_action.
type Action struct {
	DefaultIcon  ActionIcons `json:"default_icon"`
	DefaultTitle string      `json:"default_title"`
	DefaultPopup string      `json:"default_popup"`
}

// ActionIcons lists the toolbar icon sizes.
type ActionIcons struct {
	Size19 string `json:"19"`
	Size38 string `json:"38"`
}

// OptionsUI is the value of options_ui.
type OptionsUI struct {
	Page        string `json:"page"`
	ChromeStyle bool   `json:"chrome_style"`
}

// Omnibox is the value of omnibox.
type Omnibox struct {
	Keyword string `json:"keyword"`
}

// ContentScript is one entry of content_scripts.
type ContentScript struct {
	Matches   []string `json:"matches"`
	JS        []string `json:"js"`
	RunAt     string   `json:"run_at"`
	AllFrames bool     `json:"all_frames"`
}

// Background declares the event page scripts.
type Background struct {
	Scripts    []string `json:"scripts"`
	Persistent *bool    `json:"persistent,omitempty"`
}

// Document is a decoded manifest.json. Fields the generator never writes are
// not modelled.
type Document struct {
	Name            string            `json:"name"`
	ShortName       string            `json:"short_name,omitempty"`
	Version         string            `json:"version"`
	ManifestVersion int               `json:"manifest_version"`
	Description     string            `json:"description"`
	Icons           map[string]string `json:"icons,omitempty"`
	DefaultLocale   string            `json:"default_locale,omitempty"`
	Background      *Background       `json:"background,omitempty"`
	BrowserAction   *Action           `json:"browser_action,omitempty"`
	PageAction      *Action           `json:"page_action,omitempty"`
	OptionsPage     string            `json:"options_page,omitempty"`
	OptionsUI       *OptionsUI        `json:"options_ui,omitempty"`
	Omnibox         *Omnibox          `json:"omnibox,omitempty"`
	ContentScripts  []ContentScript   `json:"content_scripts,omitempty"`
	Permissions     []string          `json:"permissions,omitempty"`
}

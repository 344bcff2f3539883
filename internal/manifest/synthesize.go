package manifest

import (
	"github.com/crxgen-labs/crxgen/internal/answers"
)

// Field is one top-level manifest key and its pre-encoded value.
type Field struct {
	Name     string
	Value    any
	Fragment string
}

// Descriptor is the ordered, variable tail of the manifest.
type Descriptor struct {
	Fields []Field
}

// Names returns the field names in emission order.
func (d Descriptor) Names() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the field called name.
func (d Descriptor) Lookup(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// rule contributes zero or more fields for a config.
type rule func(cfg answers.Config) []Field

// rules run in this order; the order is visible in the generated manifest.
var rules = []rule{
	actionRule,
	optionsRule,
	omniboxRule,
	contentScriptRule,
	permissionsRule,
}

// Synthesize derives the manifest descriptor for cfg. It is total over
// Config and has no side effects.
func Synthesize(cfg answers.Config) Descriptor {
	var d Descriptor
	for _, r := range rules {
		d.Fields = append(d.Fields, r(cfg)...)
	}
	return d
}

func actionRule(cfg answers.Config) []Field {
	var name string
	switch cfg.Action {
	case answers.ActionBrowser:
		name = FieldBrowserAction
	case answers.ActionPage:
		name = FieldPageAction
	default:
		return nil
	}

	return []Field{newField(name, Action{
		DefaultIcon: ActionIcons{
			Size19: "images/icon-19.png",
			Size38: "images/icon-38.png",
		},
		DefaultTitle: cfg.Name,
		DefaultPopup: "popup.html",
	})}
}

func optionsRule(cfg answers.Config) []Field {
	if !cfg.Options {
		return nil
	}
	return []Field{
		newField(FieldOptionsPage, "options.html"),
		newField(FieldOptionsUI, OptionsUI{Page: "options.html", ChromeStyle: true}),
	}
}

func omniboxRule(cfg answers.Config) []Field {
	if !cfg.Omnibox {
		return nil
	}
	return []Field{newField(FieldOmnibox, Omnibox{Keyword: cfg.Name})}
}

func contentScriptRule(cfg answers.Config) []Field {
	if !cfg.ContentScript {
		return nil
	}
	return []Field{newField(FieldContentScripts, []ContentScript{{
		Matches:   []string{MatchHTTP, MatchHTTPS},
		JS:        []string{"scripts/contentscript.js"},
		RunAt:     "document_end",
		AllFrames: false,
	}})}
}

// permissionsRule lists selected permissions in catalog order. The host
// patterns implied by tabs always go last.
func permissionsRule(cfg answers.Config) []Field {
	perms := cfg.SelectedPermissions()
	if cfg.Permission("tabs") {
		perms = append(perms, MatchHTTP, MatchHTTPS)
	}
	if len(perms) == 0 {
		return nil
	}
	return []Field{newField(FieldPermissions, perms)}
}

func newField(name string, value any) Field {
	return Field{Name: name, Value: value, Fragment: Fragment(value)}
}

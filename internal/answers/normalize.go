package answers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPermission is returned when a selected permission is not in
	// the catalog.
	ErrInvalidPermission = errors.New("invalid permission")
	// ErrInvalidActionChoice is returned for an action outside No/Browser/Page.
	ErrInvalidActionChoice = errors.New("invalid action choice")
	// ErrInvalidUIFeature is returned for an unknown UI feature.
	ErrInvalidUIFeature = errors.New("invalid UI feature")
)

// Catalog is the ordered set of permission names offered to the user.
type Catalog interface {
	Names() []string
}

// Normalize validates raw and builds the canonical Config. It fails on the
// first invalid value and has no side effects.
func Normalize(raw RawAnswers, catalog Catalog) (Config, error) {
	action, err := ParseActionChoice(raw.Action)
	if err != nil {
		return Config{}, err
	}

	features := make(map[string]bool, len(raw.UIFeatures))
	for _, f := range raw.UIFeatures {
		switch f {
		case FeatureOptions, FeatureContentScript, FeatureOmnibox:
			features[f] = true
		default:
			return Config{}, fmt.Errorf("%w: %q (expected one of %s)",
				ErrInvalidUIFeature, f, strings.Join(UIFeatures, ", "))
		}
	}

	names := catalog.Names()
	offered := make(map[string]bool, len(names))
	for _, n := range names {
		offered[n] = true
	}
	selected := make(map[string]bool, len(raw.Permissions))
	for _, p := range raw.Permissions {
		if !offered[p] {
			return Config{}, fmt.Errorf("%w: %q is not in the permission catalog", ErrInvalidPermission, p)
		}
		selected[p] = true
	}

	perms := make([]Permission, len(names))
	for i, n := range names {
		perms[i] = Permission{Name: n, Selected: selected[n]}
	}

	return Config{
		Name:          EscapeQuotes(raw.Name),
		Description:   EscapeQuotes(raw.Description),
		Action:        action,
		Options:       features[FeatureOptions],
		Omnibox:       features[FeatureOmnibox],
		ContentScript: features[FeatureContentScript],
		Permissions:   perms,
	}, nil
}

// ParseActionChoice maps a user-facing action choice to an ActionMode.
// Matching is case-insensitive and "none" is accepted as an alias of "No".
func ParseActionChoice(choice string) (ActionMode, error) {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "", "no", "none":
		return ActionNone, nil
	case "browser":
		return ActionBrowser, nil
	case "page":
		return ActionPage, nil
	default:
		return ActionNone, fmt.Errorf("%w: %q (expected %s)",
			ErrInvalidActionChoice, choice, strings.Join(ActionChoices, ", "))
	}
}

// EscapeQuotes prefixes every double quote with a backslash. Names and
// descriptions are spliced into JSON string literals by templates, so this
// must run before any other use of the value.
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

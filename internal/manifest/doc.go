// Package manifest derives the variable part of a Chrome extension manifest
// from an answers.Config and validates rendered manifests.
//
// Synthesis runs a fixed, ordered list of rules (action, options, omnibox,
// content scripts, permissions). Each rule contributes zero or more fields
// whose values are pre-encoded as indented JSON fragments, ready to be
// spliced under their key in the manifest template. Validation checks a
// rendered manifest.json against the JSON schema embedded in schema/.
package manifest

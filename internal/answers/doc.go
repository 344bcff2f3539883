// Package answers turns the raw choices collected from a user into the
// canonical, immutable Config that every later stage of the generator reads.
// Normalization escapes strings that are spliced into JSON literals, maps the
// action choice onto a fixed enum, and closes the permission set over the
// catalog the user was offered.
package answers

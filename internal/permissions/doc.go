// Package permissions holds the catalog of Chrome permission identifiers the
// generator offers. The catalog is embedded metadata: an ordered list of
// permissions, each with a human-readable label, the release channel it is
// available on, and the extension types that may request it. Declaration
// order is preserved by every query because manifests list permissions in
// catalog order.
package permissions

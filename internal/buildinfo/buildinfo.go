// Package buildinfo normalises the version string injected at build time so
// it can be stamped into generated project files.
package buildinfo

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// fallback is used when the build carries no parseable version (e.g. "dev").
const fallback = "0.0.0-dev"

// Normalize returns version as a canonical semver string without the "v"
// prefix. Unparseable versions map to "0.0.0-dev".
func Normalize(version string) string {
	v, err := parseSemver(version)
	if err != nil {
		return fallback
	}
	return v.String()
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

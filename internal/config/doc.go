// Package config manages user-level settings stored at ~/.crxgen/config.yaml.
// Settings provide the defaults for generator toggles such as the Babel
// compile mode, the Sass stylesheet mode, the test framework and whether
// dependency installation runs after scaffolding. Every key can be
// overridden through a CRXGEN_* environment variable.
package config

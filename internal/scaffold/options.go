package scaffold

import "fmt"

// CompileMode selects whether scripts are authored as ES2015 sources that a
// Babel build step compiles into app/scripts.
type CompileMode int

const (
	// CompilePlain places scripts directly under app/scripts.
	CompilePlain CompileMode = iota
	// CompileBabel places scripts under app/scripts.babel.
	CompileBabel
)

// StyleMode selects the stylesheet flavor.
type StyleMode int

const (
	// StyleCSS places a plain .css stylesheet.
	StyleCSS StyleMode = iota
	// StyleSass places a .scss stylesheet compiled by Compass.
	StyleSass
)

// Supported test frameworks.
const (
	TestFrameworkMocha   = "mocha"
	TestFrameworkJasmine = "jasmine"
)

// Options carries the global toggles that are independent of the user's
// answers but shape the placement plan.
type Options struct {
	Compile          CompileMode
	Style            StyleMode
	TestFramework    string
	GeneratorName    string
	GeneratorVersion string
}

// DefaultOptions mirrors the CLI defaults: Babel on, plain CSS, mocha.
func DefaultOptions() Options {
	return Options{
		Compile:          CompileBabel,
		Style:            StyleCSS,
		TestFramework:    TestFrameworkMocha,
		GeneratorName:    "crxgen",
		GeneratorVersion: "0.0.0-dev",
	}
}

// Validate checks fields that are free-form strings.
func (o Options) Validate() error {
	switch o.TestFramework {
	case TestFrameworkMocha, TestFrameworkJasmine:
		return nil
	default:
		return fmt.Errorf("unsupported test framework %q: expected %q or %q",
			o.TestFramework, TestFrameworkMocha, TestFrameworkJasmine)
	}
}

// CompileModeFor maps the --babel flag to a CompileMode.
func CompileModeFor(babel bool) CompileMode {
	if babel {
		return CompileBabel
	}
	return CompilePlain
}

// StyleModeFor maps the --compass flag to a StyleMode.
func StyleModeFor(compass bool) StyleMode {
	if compass {
		return StyleSass
	}
	return StyleCSS
}

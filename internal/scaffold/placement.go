package scaffold

import (
	"github.com/crxgen-labs/crxgen/internal/answers"
	"github.com/crxgen-labs/crxgen/internal/manifest"
)

// Base directories of the generated tree.
const (
	AppDir   = "app"
	BowerDir = "app/bower_components"
)

// Context holds the named values a template body is rendered with.
type Context map[string]any

// Placement is one file to materialize. A nil Context means the template
// body is copied verbatim.
type Placement struct {
	Template string
	Dest     string
	Context  Context
}

// Plan is the ordered output of Synthesize.
type Plan struct {
	Dirs       []string
	Placements []Placement
}

// Dests returns the destination paths in placement order.
func (p Plan) Dests() []string {
	out := make([]string, len(p.Placements))
	for i, pl := range p.Placements {
		out[i] = pl.Dest
	}
	return out
}

// Find returns the placement whose destination is dest.
func (p Plan) Find(dest string) (Placement, bool) {
	for _, pl := range p.Placements {
		if pl.Dest == dest {
			return pl, true
		}
	}
	return Placement{}, false
}

// placementRule contributes placements for a config; rules never look at
// each other's output.
type placementRule func(cfg answers.Config, opts Options) []Placement

// placementRules run in this order, which is also the order files are
// handed to the writer.
var placementRules = []placementRule{
	manifestPlacement,
	projectPlacements,
	actionPlacements,
	eventPagePlacements,
	optionsPlacements,
	contentScriptPlacements,
	compilerPlacements,
	stylesheetPlacements,
	assetPlacements,
	testPlacements,
}

// Synthesize derives the placement plan for cfg under opts.
func Synthesize(cfg answers.Config, opts Options) Plan {
	plan := Plan{Dirs: []string{AppDir, BowerDir}}
	for _, r := range placementRules {
		plan.Placements = append(plan.Placements, r(cfg, opts)...)
	}
	return plan
}

// ScriptPath returns the destination of a script in the app tree. Babel
// sources live in scripts.babel and compile into scripts.
func ScriptPath(mode CompileMode, name string) string {
	if mode == CompileBabel {
		return AppDir + "/scripts.babel/" + name
	}
	return AppDir + "/scripts/" + name
}

// script places templates/scripts/<src> at ScriptPath(dest).
func script(opts Options, src, dest string) Placement {
	return Placement{
		Template: "scripts/" + src,
		Dest:     ScriptPath(opts.Compile, dest),
		Context:  Context{"Babel": opts.Compile == CompileBabel},
	}
}

// copyFile places a template verbatim.
func copyFile(src, dest string) Placement {
	return Placement{Template: src, Dest: dest}
}

func manifestPlacement(cfg answers.Config, _ Options) []Placement {
	return []Placement{{
		Template: "manifest.json",
		Dest:     AppDir + "/manifest.json",
		Context:  Context{"Items": manifest.Synthesize(cfg).Tail()},
	}}
}

func projectPlacements(cfg answers.Config, opts Options) []Placement {
	slug := Slugify(cfg.Name)
	babel := opts.Compile == CompileBabel
	compass := opts.Style == StyleSass

	return []Placement{
		{
			Template: "Gruntfile.js",
			Dest:     "Gruntfile.js",
			Context: Context{
				"Name":             cfg.Name,
				"Slug":             slug,
				"Babel":            babel,
				"Compass":          compass,
				"TestFramework":    opts.TestFramework,
				"GeneratorName":    opts.GeneratorName,
				"GeneratorVersion": opts.GeneratorVersion,
			},
		},
		{
			Template: "_package.json",
			Dest:     "package.json",
			Context: Context{
				"Slug":          slug,
				"Babel":         babel,
				"Compass":       compass,
				"TestFramework": opts.TestFramework,
			},
		},
		{Template: "gitignore", Dest: ".gitignore", Context: Context{"Babel": babel}},
		copyFile("gitattributes", ".gitattributes"),
		copyFile("bowerrc", ".bowerrc"),
		{Template: "_bower.json", Dest: "bower.json", Context: Context{"Slug": slug}},
		{Template: "jshintrc", Dest: ".jshintrc", Context: Context{"TestFramework": opts.TestFramework}},
		copyFile("editorconfig", ".editorconfig"),
	}
}

func actionPlacements(cfg answers.Config, opts Options) []Placement {
	if !cfg.HasAction() {
		return nil
	}
	return []Placement{
		copyFile("popup.html", AppDir+"/popup.html"),
		script(opts, "popup.js", "popup.js"),
		copyFile("images/icon-19.png", AppDir+"/images/icon-19.png"),
		copyFile("images/icon-38.png", AppDir+"/images/icon-38.png"),
	}
}

// BackgroundTemplate returns the event page template for an action mode.
// Every variant is placed as background.js.
func BackgroundTemplate(mode answers.ActionMode) string {
	switch mode {
	case answers.ActionBrowser:
		return "background.browseraction.js"
	case answers.ActionPage:
		return "background.pageaction.js"
	default:
		return "background.js"
	}
}

func eventPagePlacements(cfg answers.Config, opts Options) []Placement {
	return []Placement{
		script(opts, BackgroundTemplate(cfg.Action), "background.js"),
		script(opts, "chromereload.js", "chromereload.js"),
	}
}

func optionsPlacements(cfg answers.Config, opts Options) []Placement {
	if !cfg.Options {
		return nil
	}
	return []Placement{
		copyFile("options.html", AppDir+"/options.html"),
		script(opts, "options.js", "options.js"),
	}
}

func contentScriptPlacements(cfg answers.Config, opts Options) []Placement {
	if !cfg.ContentScript {
		return nil
	}
	return []Placement{script(opts, "contentscript.js", "contentscript.js")}
}

func compilerPlacements(_ answers.Config, opts Options) []Placement {
	if opts.Compile != CompileBabel {
		return nil
	}
	return []Placement{copyFile("babelrc", ".babelrc")}
}

// stylesheetPlacements adds the shared stylesheet used by the popup and
// options pages; without either page there is nothing to style.
func stylesheetPlacements(cfg answers.Config, opts Options) []Placement {
	if !cfg.HasAction() && !cfg.Options {
		return nil
	}
	css := "styles/main." + StylesheetExt(opts.Style)
	return []Placement{copyFile(css, AppDir+"/"+css)}
}

// StylesheetExt returns "scss" for StyleSass and "css" otherwise.
func StylesheetExt(mode StyleMode) string {
	if mode == StyleSass {
		return "scss"
	}
	return "css"
}

func assetPlacements(cfg answers.Config, _ Options) []Placement {
	return []Placement{
		{
			Template: "_locales/en/messages.json",
			Dest:     AppDir + "/_locales/en/messages.json",
			Context: Context{
				"Name":        cfg.Name,
				"Description": cfg.Description,
			},
		},
		copyFile("images/icon-16.png", AppDir+"/images/icon-16.png"),
		copyFile("images/icon-128.png", AppDir+"/images/icon-128.png"),
	}
}

// testPlacements adds the browser spec runner for the chosen framework.
func testPlacements(_ answers.Config, opts Options) []Placement {
	dir := "test/" + opts.TestFramework
	return []Placement{
		copyFile(dir+"/index.html", "test/index.html"),
		copyFile(dir+"/spec/test.js", "test/spec/test.js"),
	}
}

package scaffold

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/crxgen-labs/crxgen/internal/answers"
	"github.com/crxgen-labs/crxgen/internal/manifest"
	"github.com/crxgen-labs/crxgen/internal/templates"
	"github.com/google/go-cmp/cmp"
)

func generate(t *testing.T, raw answers.RawAnswers, opts Options) (*FSWriter, *Result) {
	t.Helper()
	w := newMemWriter(ConflictFail)
	plan := Synthesize(mustNormalize(t, raw), opts)

	res, err := NewGenerator(templates.Embedded(), w, nil).Generate(plan)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return w, res
}

func readManifest(t *testing.T, w *FSWriter) *manifest.Document {
	t.Helper()
	data, err := w.ReadFile(ManifestPath)
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	doc, err := manifest.Parse(data)
	if err != nil {
		t.Fatalf("generated manifest does not parse: %v\n%s", err, data)
	}
	return doc
}

func TestGenerate_BrowserAction(t *testing.T) {
	w, res := generate(t, answers.RawAnswers{Name: "Foo", Description: "Bar", Action: "Browser"}, plainOptions())

	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
	for _, f := range res.Files {
		if f.Status != StatusCreated {
			t.Errorf("%s status = %v, want create", f.Path, f.Status)
		}
	}

	doc := readManifest(t, w)
	if doc.BrowserAction == nil {
		t.Fatal("browser_action missing")
	}
	if doc.BrowserAction.DefaultTitle != "Foo" {
		t.Errorf("default_title = %q, want Foo", doc.BrowserAction.DefaultTitle)
	}
	if doc.PageAction != nil {
		t.Error("page_action should be absent")
	}
	if len(doc.Permissions) != 0 {
		t.Errorf("permissions = %v, want none", doc.Permissions)
	}

	bg, _ := w.ReadFile("app/scripts/background.js")
	if !strings.Contains(string(bg), "chrome.browserAction") {
		t.Errorf("background.js is not the browser action variant:\n%s", bg)
	}

	var messages map[string]map[string]string
	data, _ := w.ReadFile("app/_locales/en/messages.json")
	if err := json.Unmarshal(data, &messages); err != nil {
		t.Fatalf("messages.json: %v", err)
	}
	if messages["appName"]["message"] != "Foo" {
		t.Errorf("appName = %q, want Foo", messages["appName"]["message"])
	}
}

func TestGenerate_ManifestFieldOrder(t *testing.T) {
	w, res := generate(t, answers.RawAnswers{
		Name:        "Foo",
		Action:      "Page",
		UIFeatures:  []string{answers.FeatureOmnibox, answers.FeatureContentScript, answers.FeatureOptions},
		Permissions: []string{"tabs", "activeTab"},
	}, DefaultOptions())

	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}

	data, _ := w.ReadFile(ManifestPath)
	text := string(data)
	order := []string{
		`"background"`,
		`"page_action"`,
		`"options_page"`,
		`"options_ui"`,
		`"omnibox"`,
		`"content_scripts"`,
		`"permissions"`,
	}
	last := -1
	for _, key := range order {
		i := strings.Index(text, key)
		if i < 0 {
			t.Fatalf("manifest missing %s:\n%s", key, text)
		}
		if i < last {
			t.Errorf("%s out of order:\n%s", key, text)
		}
		last = i
	}

	doc := readManifest(t, w)
	want := []string{"activeTab", "tabs", manifest.MatchHTTP, manifest.MatchHTTPS}
	if diff := cmp.Diff(want, doc.Permissions); diff != "" {
		t.Errorf("permissions mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_EscapedNameRoundTrips(t *testing.T) {
	w, _ := generate(t, answers.RawAnswers{Name: `Say "hi"`, Action: "Browser", UIFeatures: []string{answers.FeatureOmnibox}}, plainOptions())

	doc := readManifest(t, w)
	if doc.Omnibox == nil || doc.Omnibox.Keyword != `Say \"hi\"` {
		t.Errorf("omnibox = %+v, want keyword %q", doc.Omnibox, `Say \"hi\"`)
	}

	var messages map[string]map[string]string
	data, _ := w.ReadFile("app/_locales/en/messages.json")
	if err := json.Unmarshal(data, &messages); err != nil {
		t.Fatalf("messages.json does not parse: %v\n%s", err, data)
	}
	if messages["appName"]["message"] != `Say "hi"` {
		t.Errorf("appName = %q", messages["appName"]["message"])
	}
}

func TestGenerate_RenderedProjectFilesAreValidJSON(t *testing.T) {
	for _, compass := range []bool{false, true} {
		for _, fw := range []string{TestFrameworkMocha, TestFrameworkJasmine} {
			opts := DefaultOptions()
			opts.Style = StyleModeFor(compass)
			opts.TestFramework = fw

			w, _ := generate(t, answers.RawAnswers{Name: "Foo", Action: "Browser"}, opts)
			for _, p := range []string{"package.json", "bower.json", ".jshintrc", ".bowerrc", ".babelrc"} {
				data, err := w.ReadFile(p)
				if err != nil {
					t.Fatalf("%s: %v", p, err)
				}
				var v any
				if err := json.Unmarshal(data, &v); err != nil {
					t.Errorf("compass=%v framework=%s: %s is not JSON: %v\n%s", compass, fw, p, err, data)
				}
			}
		}
	}
}

func TestGenerate_RerunIsIdentical(t *testing.T) {
	raw := answers.RawAnswers{Name: "Foo", Action: "Browser"}
	plan := Synthesize(mustNormalize(t, raw), DefaultOptions())
	w := newMemWriter(ConflictFail)
	g := NewGenerator(templates.Embedded(), w, nil)

	if _, err := g.Generate(plan); err != nil {
		t.Fatalf("first Generate() error: %v", err)
	}
	res, err := g.Generate(plan)
	if err != nil {
		t.Fatalf("second Generate() error: %v", err)
	}
	for _, f := range res.Files {
		if f.Status != StatusIdentical {
			t.Errorf("%s status = %v, want identical", f.Path, f.Status)
		}
	}
}

func TestGenerate_MissingTemplate(t *testing.T) {
	store := templates.NewFSStore(fstest.MapFS{})
	plan := Plan{Placements: []Placement{{Template: "popup.html", Dest: "app/popup.html"}}}

	_, err := NewGenerator(store, newMemWriter(ConflictFail), nil).Generate(plan)
	if !errors.Is(err, templates.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestRender_MissingContextKey(t *testing.T) {
	store := templates.NewFSStore(fstest.MapFS{
		"x.txt": &fstest.MapFile{Data: []byte("{{.Name}}")},
	})

	if _, err := Render(store, Placement{Template: "x.txt", Dest: "x.txt", Context: Context{}}); err == nil {
		t.Error("expected error for missing context key")
	}

	got, err := Render(store, Placement{Template: "x.txt", Dest: "x.txt"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if string(got) != "{{.Name}}" {
		t.Errorf("verbatim copy = %q", got)
	}
}

func TestGenerate_EveryPlanTemplateExists(t *testing.T) {
	store := templates.Embedded()
	for _, action := range answers.ActionChoices {
		for _, compile := range []CompileMode{CompilePlain, CompileBabel} {
			for _, style := range []StyleMode{StyleCSS, StyleSass} {
				opts := DefaultOptions()
				opts.Compile = compile
				opts.Style = style
				cfg := mustNormalize(t, answers.RawAnswers{Name: "Foo", Action: action, UIFeatures: answers.UIFeatures})
				for _, p := range Synthesize(cfg, opts).Placements {
					if _, err := Render(store, p); err != nil {
						t.Errorf("action=%s compile=%d style=%d: %v", action, compile, style, err)
					}
				}
			}
		}
	}
}

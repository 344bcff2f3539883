package scaffold

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/crxgen-labs/crxgen/internal/manifest"
	"github.com/crxgen-labs/crxgen/internal/templates"
	"go.uber.org/zap"
)

// ManifestPath is where the manifest placement writes, relative to the
// output root.
const ManifestPath = AppDir + "/manifest.json"

// FileResult records what happened to one placement.
type FileResult struct {
	Path   string
	Status WriteStatus
}

// Result holds the outcome of a generation.
type Result struct {
	Files    []FileResult
	Warnings []string
}

// Reader is implemented by writers that can read back what they wrote.
// Generator uses it to validate the generated manifest.
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// Generator executes plans.
type Generator struct {
	Store  templates.Store
	Writer Writer
	Logger *zap.Logger
}

// NewGenerator returns a generator; a nil logger is replaced by a no-op one.
func NewGenerator(store templates.Store, w Writer, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{Store: store, Writer: w, Logger: logger}
}

// Generate creates the plan's directories and writes every placement in
// order. It stops at the first error; files written before it stay on disk.
// Manifest schema issues are reported as warnings.
func (g *Generator) Generate(plan Plan) (*Result, error) {
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, dir := range plan.Dirs {
		if err := g.Writer.MkdirAll(dir); err != nil {
			return nil, err
		}
	}

	result := &Result{}
	for _, p := range plan.Placements {
		body, err := Render(g.Store, p)
		if err != nil {
			return result, err
		}

		status, err := g.Writer.Write(p.Dest, body)
		if err != nil {
			return result, err
		}
		logger.Debug("placed template",
			zap.String("template", p.Template),
			zap.String("dest", p.Dest),
			zap.Stringer("status", status))

		result.Files = append(result.Files, FileResult{Path: p.Dest, Status: status})
	}

	result.Warnings = append(result.Warnings, g.checkManifest(plan)...)
	return result, nil
}

// checkManifest validates the written manifest when the writer can read it
// back.
func (g *Generator) checkManifest(plan Plan) []string {
	r, ok := g.Writer.(Reader)
	if !ok {
		return nil
	}
	if _, planned := plan.Find(ManifestPath); !planned {
		return nil
	}

	data, err := r.ReadFile(ManifestPath)
	if err != nil {
		return []string{fmt.Sprintf("Could not read %s: %v", ManifestPath, err)}
	}

	res, err := manifest.Validate(data)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate manifest: %v", err)}
	}

	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, ManifestPath+": "+issue.String())
	}
	return warnings
}

// Render produces the body for a placement: the template rendered against
// its context, or the raw template when the context is nil.
func Render(store templates.Store, p Placement) ([]byte, error) {
	raw, err := store.Open(p.Template)
	if err != nil {
		return nil, fmt.Errorf("placing %s: %w", p.Dest, err)
	}
	if p.Context == nil {
		return raw, nil
	}

	tmpl, err := template.New(p.Template).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", p.Template, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(p.Context)); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", p.Template, err)
	}
	return buf.Bytes(), nil
}

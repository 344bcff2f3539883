//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crxgen-labs/crxgen/internal/answers"
	"github.com/crxgen-labs/crxgen/internal/permissions"
	"github.com/crxgen-labs/crxgen/internal/scaffold"
	"github.com/crxgen-labs/crxgen/internal/templates"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, so ~/.crxgen/config.yaml is sandboxed
	ProjectDir string // where the extension is generated
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: filepath.Join(t.TempDir(), "extension"),
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// generate normalizes raw against the stable catalog and writes the project
// into dir.
func generate(t *testing.T, dir string, raw answers.RawAnswers, opts scaffold.Options) *scaffold.Result {
	t.Helper()

	all, err := permissions.Default()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	catalog, err := all.Query(permissions.ChannelStable, permissions.TypeExtension)
	if err != nil {
		t.Fatalf("querying catalog: %v", err)
	}

	cfg, err := answers.Normalize(raw, catalog)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	gen := scaffold.NewGenerator(templates.Embedded(), scaffold.NewFSWriter(dir, scaffold.ConflictFail), nil)
	res, err := gen.Generate(scaffold.Synthesize(cfg, opts))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return res
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

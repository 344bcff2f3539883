package manifest

import (
	"path/filepath"
	"strings"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid-full.json"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid manifest, got issues: %v", result.Issues)
	}
}

func TestValidateFile_MissingVersion(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-missing-version.json"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid manifest")
	}
	if !hasIssue(result, "", "required") {
		t.Errorf("expected a 'required' issue, got: %v", result.Issues)
	}
}

func TestValidateFile_TypeErrors(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-types.json"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid manifest")
	}

	for _, want := range []struct {
		path    string
		keyword string
	}{
		{"/version", "pattern"},
		{"/manifest_version", "const"},
		{"/permissions", "uniqueItems"},
		{"/content_scripts/0/matches/0", "pattern"},
		{"/content_scripts/0/run_at", "enum"},
	} {
		if !hasIssue(result, want.path, want.keyword) {
			t.Errorf("missing %s issue at %s; got: %v", want.keyword, want.path, result.Issues)
		}
	}
}

func TestValidateFile_BothActions(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-both-actions.json"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("a manifest with both browser_action and page_action should be invalid")
	}
}

func TestValidateFile_NotJSON(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-not-json.json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	if _, err := ValidateFile(testPath("nonexistent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidationIssue_String(t *testing.T) {
	i := ValidationIssue{Path: "/version", Message: "bad"}
	if got := i.String(); got != "/version: bad" {
		t.Errorf("String() = %q", got)
	}
	if got := (ValidationIssue{Message: "bad"}).String(); got != "bad" {
		t.Errorf("String() = %q", got)
	}
}

func hasIssue(r *ValidationResult, path, keyword string) bool {
	for _, i := range r.Issues {
		if i.Keyword == keyword && (path == "" || i.Path == path || strings.HasPrefix(i.Path, path+"/")) {
			return true
		}
	}
	return false
}

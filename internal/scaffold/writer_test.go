package scaffold

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func newMemWriter(policy ConflictPolicy) *FSWriter {
	return &FSWriter{Fs: afero.NewMemMapFs(), Root: "/out", Policy: policy}
}

func TestFSWriter_CreatesFileAndParents(t *testing.T) {
	w := newMemWriter(ConflictFail)

	status, err := w.Write("app/scripts/popup.js", []byte("x"))
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if status != StatusCreated {
		t.Errorf("status = %v, want %v", status, StatusCreated)
	}

	got, err := afero.ReadFile(w.Fs, "/out/app/scripts/popup.js")
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(got) != "x" {
		t.Errorf("content = %q, want %q", got, "x")
	}
}

func TestFSWriter_IdenticalContentIsNotAConflict(t *testing.T) {
	w := newMemWriter(ConflictFail)
	if _, err := w.Write("a.txt", []byte("same")); err != nil {
		t.Fatal(err)
	}

	status, err := w.Write("a.txt", []byte("same"))
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if status != StatusIdentical {
		t.Errorf("status = %v, want %v", status, StatusIdentical)
	}
}

func TestFSWriter_ConflictPolicies(t *testing.T) {
	tests := []struct {
		policy     ConflictPolicy
		wantStatus WriteStatus
		wantBody   string
		wantErr    error
	}{
		{ConflictFail, 0, "old", ErrConflict},
		{ConflictSkip, StatusSkipped, "old", nil},
		{ConflictOverwrite, StatusOverwritten, "new", nil},
	}

	for _, tt := range tests {
		w := newMemWriter(tt.policy)
		if err := afero.WriteFile(w.Fs, "/out/a.txt", []byte("old"), 0644); err != nil {
			t.Fatal(err)
		}

		status, err := w.Write("a.txt", []byte("new"))
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("policy %d: error = %v, want %v", tt.policy, err, tt.wantErr)
		}
		if err == nil && status != tt.wantStatus {
			t.Errorf("policy %d: status = %v, want %v", tt.policy, status, tt.wantStatus)
		}

		got, _ := afero.ReadFile(w.Fs, "/out/a.txt")
		if string(got) != tt.wantBody {
			t.Errorf("policy %d: content = %q, want %q", tt.policy, got, tt.wantBody)
		}
	}
}

func TestFSWriter_MkdirAllIsIdempotent(t *testing.T) {
	w := newMemWriter(ConflictFail)
	for i := 0; i < 2; i++ {
		if err := w.MkdirAll("app/bower_components"); err != nil {
			t.Fatalf("MkdirAll() call %d error: %v", i, err)
		}
	}
	ok, err := afero.DirExists(w.Fs, "/out/app/bower_components")
	if err != nil || !ok {
		t.Errorf("directory missing: exists=%v err=%v", ok, err)
	}
}

func TestWriteStatus_String(t *testing.T) {
	tests := map[WriteStatus]string{
		StatusCreated:     "create",
		StatusOverwritten: "force",
		StatusSkipped:     "skip",
		StatusIdentical:   "identical",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(s), got, want)
		}
	}
}

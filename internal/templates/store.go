package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed all:files
var embedded embed.FS

// root is the directory inside the embedded FS that holds template bodies.
const root = "files"

// ErrNotFound is returned when a template key has no body.
var ErrNotFound = errors.New("template not found")

// Store serves template bodies by key.
type Store interface {
	Open(key string) ([]byte, error)
}

// FSStore serves templates from an fs.FS. Keys are slash-separated paths
// relative to the FS root.
type FSStore struct {
	fsys fs.FS
}

// NewFSStore returns a store reading from fsys.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// Embedded returns the store compiled into the binary.
func Embedded() *FSStore {
	sub, err := fs.Sub(embedded, root)
	if err != nil {
		// fs.Sub only fails on an invalid path, and root is a constant.
		panic(fmt.Sprintf("templates: %v", err))
	}
	return NewFSStore(sub)
}

// Open returns the body of the template at key.
func (s *FSStore) Open(key string) ([]byte, error) {
	if !fs.ValidPath(key) {
		return nil, fmt.Errorf("%w: invalid key %q", ErrNotFound, key)
	}
	data, err := fs.ReadFile(s.fsys, key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("reading template %s: %w", key, err)
	}
	return data, nil
}

// Keys lists every template key in lexical order.
func (s *FSStore) Keys() ([]string, error) {
	var keys []string
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			keys = append(keys, path.Clean(p))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Package adapter contains the filesystem and subprocess adapters the scanner
// domain depends on.
package adapter

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	m "cleanrec.dev/pkg/cleanrec/internal/model"
)

// DirFSAdapter abstracts the directory operations the traversal engine needs.
// It hides direct `os` access so the walk can be tested on an in-memory tree.
type DirFSAdapter interface {
	// ReadDir lists the immediate children of path. Symbolic links are
	// reported as they are, without following them.
	ReadDir(path m.Path) ([]os.FileInfo, error)

	// Exists reports whether path exists, following symbolic links.
	Exists(path m.Path) (bool, error)

	// IsDir reports whether path exists and is a directory, following
	// symbolic links.
	IsDir(path m.Path) (bool, error)

	// Abs resolves path against the working directory.
	Abs(path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// AferoDirFSAdapter implements DirFSAdapter on top of an afero filesystem.
type AferoDirFSAdapter struct {
	fs afero.Fs
}

// NewLocalDirFSAdapter returns an adapter backed by the operating system filesystem.
func NewLocalDirFSAdapter() *AferoDirFSAdapter {
	return NewDirFSAdapter(afero.NewOsFs())
}

// NewDirFSAdapter wraps the provided afero filesystem.
func NewDirFSAdapter(fs afero.Fs) *AferoDirFSAdapter {
	return &AferoDirFSAdapter{fs: fs}
}

// ReadDir lists the children of path, sorted by name.
func (a *AferoDirFSAdapter) ReadDir(path m.Path) ([]os.FileInfo, error) {
	return afero.ReadDir(a.fs, string(path))
}

// Exists reports whether path exists.
func (a *AferoDirFSAdapter) Exists(path m.Path) (bool, error) {
	return afero.Exists(a.fs, string(path))
}

// IsDir reports whether path is an existing directory. A missing path is not
// an error.
func (a *AferoDirFSAdapter) IsDir(path m.Path) (bool, error) {
	ok, err := afero.IsDir(a.fs, string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return ok, nil
}

// Abs returns an absolute representation of path.
func (a *AferoDirFSAdapter) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath joins path elements into a single path.
func (a *AferoDirFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

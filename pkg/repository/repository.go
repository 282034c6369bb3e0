// Package repository persists downloaded product files in a local directory
// tree mirroring the remote layout. Writes go through a temporary file in the
// destination directory followed by a rename, so a crash mid-write never
// leaves a partial file under a final name.
package repository

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wxtools/satdl/internal/logger"
	"github.com/wxtools/satdl/pkg/errors"
	"github.com/wxtools/satdl/pkg/fsutil"
)

// Repository stores files below a base directory.
type Repository struct {
	baseDir string
}

// New creates a repository rooted at baseDir, creating the directory when it
// does not exist. An existing non-directory at baseDir is an error.
func New(baseDir string) (*Repository, error) {
	info, err := os.Stat(baseDir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, errors.Wrapf(errors.ErrNotDirectory, "'%s'", baseDir)
		}
	case os.IsNotExist(err):
		if err := fsutil.EnsureDir(baseDir); err != nil {
			return nil, errors.Wrapf(err, "failed to create repository directory '%s'", baseDir)
		}
	default:
		return nil, errors.Wrapf(err, "failed to stat '%s'", baseDir)
	}
	return &Repository{baseDir: baseDir}, nil
}

// BaseDir returns the repository root.
func (r *Repository) BaseDir() string {
	return r.baseDir
}

// Exists reports whether filePath is already stored.
func (r *Repository) Exists(filePath string) bool {
	info, err := os.Stat(r.resolve(filePath))
	return err == nil && !info.IsDir()
}

// Save writes data under filePath, creating intermediate directories as
// needed. Saving over an existing file is refused; delete it first or accept
// the stored copy.
func (r *Repository) Save(filePath string, data []byte) error {
	target := r.resolve(filePath)
	if _, err := os.Stat(target); err == nil {
		return errors.Wrapf(errors.ErrFileExists, "'%s'", filePath)
	}

	if err := fsutil.EnsureFileDir(target); err != nil {
		return errors.Wrapf(err, "failed to create directory for '%s'", filePath)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".tmp*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file for '%s'", filePath)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "failed to write '%s'", filePath)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "failed to close '%s'", filePath)
	}
	if err := os.Chmod(tmpName, fsutil.FileModeDefault); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "failed to set permissions on '%s'", filePath)
	}

	if err := fsutil.Move(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "failed to move '%s' into place", filePath)
	}

	logger.Debug("saved file", logger.Fields{"path": filePath, "bytes": len(data)})
	return nil
}

// Read returns the stored bytes of filePath.
func (r *Repository) Read(filePath string) ([]byte, error) {
	data, err := os.ReadFile(r.resolve(filePath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrFileNotFound, "'%s'", filePath)
		}
		return nil, errors.Wrapf(err, "failed to read '%s'", filePath)
	}
	return data, nil
}

// Delete removes the stored file at filePath.
func (r *Repository) Delete(filePath string) error {
	if err := os.Remove(r.resolve(filePath)); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(errors.ErrFileNotFound, "'%s'", filePath)
		}
		return errors.Wrapf(err, "failed to delete '%s'", filePath)
	}
	return nil
}

// List returns the relative paths of every stored file, sorted.
func (r *Repository) List() ([]string, error) {
	var files []string
	err := filepath.WalkDir(r.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(r.baseDir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list repository")
	}
	sort.Strings(files)
	return files, nil
}

// resolve maps a remote-style slash path onto the local tree.
func (r *Repository) resolve(filePath string) string {
	return filepath.Join(r.baseDir, filepath.FromSlash(strings.TrimPrefix(filePath, "/")))
}

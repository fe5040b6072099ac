package rom

import (
	"io"
	"os"
	"path/filepath"
)

// CreateFS is a file system the ROM artifacts are created in.
type CreateFS interface {
	// Create creates a new file for writing.
	Create(name string) (file io.WriteCloser, err error)
}

// DirFS creates files relative to a directory. A file only replaces its
// previous contents once it is successfully closed.
type DirFS string

// FileMode is the permission of the files created by DirFS.
const FileMode = os.FileMode(0o644)

var _ CreateFS = DirFS("")

// pendingFile is written to a temporary file, renamed into place on Close.
type pendingFile struct {
	*os.File
	path string
}

// Create creates a file. Absolute names are not relative to the directory.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(string(dir), name)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return
	}

	// Temporary files are private to their owner.
	err = tmp.Chmod(FileMode)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return
	}

	file = &pendingFile{File: tmp, path: path}
	return
}

// Close commits the file.
func (pf *pendingFile) Close() (err error) {
	err = pf.File.Close()
	if err != nil {
		os.Remove(pf.File.Name())
		return
	}

	err = os.Rename(pf.File.Name(), pf.path)
	if err != nil {
		os.Remove(pf.File.Name())
	}

	return
}

// Abort discards the file.
func (pf *pendingFile) Abort() {
	pf.File.Close()
	os.Remove(pf.File.Name())
}

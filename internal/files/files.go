// Package files stores and serves named files below a single root directory.
package files

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Brownie44l1/httpd/internal/httperr"
)

// Dir is a directory whose files are addressed by name. A name must stay
// below the root; concurrent writers to one name race and the last write wins.
type Dir struct {
	root string
}

func NewDir(root string) *Dir {
	if root == "" {
		root = "."
	}
	return &Dir{root: root}
}

func (d *Dir) Root() string {
	return d.root
}

// Path resolves name under the root. Empty names, absolute names and names
// climbing out through ".." are IncorrectPath.
func (d *Dir) Path(name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", httperr.Newf(httperr.IncorrectPath, "file name %q escapes %s", name, d.root)
	}
	return filepath.Join(d.root, name), nil
}

func (d *Dir) Exists(name string) (bool, error) {
	path, err := d.Path(name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	return err == nil, nil
}

func (d *Dir) ReadAll(name string) ([]byte, error) {
	path, err := d.Path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, httperr.Wrap(httperr.FileReading, err)
	}
	return data, nil
}

// Create opens name for writing, truncating any previous content.
func (d *Dir) Create(name string) (io.WriteCloser, error) {
	path, err := d.Path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, httperr.Wrap(httperr.FileCreating, err)
	}
	return f, nil
}

// WriteAll writes data to w and closes it.
func WriteAll(w io.WriteCloser, data []byte) error {
	if _, err := w.Write(data); err != nil {
		w.Close()
		return httperr.Wrap(httperr.FileWriting, err)
	}
	if err := w.Close(); err != nil {
		return httperr.Wrap(httperr.FileWriting, err)
	}
	return nil
}

// Store creates or overwrites name with data.
func (d *Dir) Store(name string, data []byte) error {
	w, err := d.Create(name)
	if err != nil {
		return err
	}
	return WriteAll(w, data)
}

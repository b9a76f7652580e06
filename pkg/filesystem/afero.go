package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/spf13/afero"
)

// defaultFileMode applies when a written file did not exist before
const defaultFileMode fs.FileMode = 0644

// NewOS returns the real filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// ReadFile reads name, refusing directories. Missing files map to
// ErrFileNotFound, every other failure to ErrFileRead.
func ReadFile(fsys afero.Fs, name string) ([]byte, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "%s does not exist", name).
				WithDetail("path", name)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", name).
			WithDetail("path", name)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrFileRead, "%s is a directory", name).
			WithDetail("path", name)
	}

	data, err := afero.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", name).
			WithDetail("path", name)
	}
	return data, nil
}

// WriteFile replaces the content of name, keeping the permissions of an
// existing file
func WriteFile(fsys afero.Fs, name string, data []byte) error {
	mode := defaultFileMode
	if info, err := fsys.Stat(name); err == nil {
		mode = info.Mode().Perm()
	}

	if err := afero.WriteFile(fsys, name, data, mode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", name).
			WithDetail("path", name)
	}
	return nil
}

// Exists reports whether name can be stat'ed
func Exists(fsys afero.Fs, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}

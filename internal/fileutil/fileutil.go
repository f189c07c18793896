// Package fileutil holds the file modes and the write helper used for
// generated output.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// OwnerReadWrite is the file permission mode for private files such as
	// test fixtures.
	OwnerReadWrite os.FileMode = 0o600

	// ReadableByAll is the file permission mode for generated source code
	// files intended to be read by build tools and other users.
	ReadableByAll os.FileMode = 0o644

	// DirMode is the permission mode for directories created for output.
	DirMode os.FileMode = 0o755
)

// WriteFile writes data to path with mode perm, creating parent directories
// as needed. The data goes to a temporary file in the target directory that
// is renamed into place, so readers never observe a partly written file.
func WriteFile(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Package output writes rendered artifacts to the filesystem.
//
// The sink creates intermediate directories as needed and reports failures
// with the FILE_WRITE_FAILED code, keeping write failures distinct from the
// validation failures raised before rendering. Directories created before a
// failing write are not rolled back.
package output

import (
	"os"
	"path/filepath"

	"github.com/tkurosawa/quotecard/pkg/errors"
)

// Write stores data at path, creating parent directories as needed.
func Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(errors.ErrCodeFileWrite, err, "failed to create directory %s", dir)
		}
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return errors.New(errors.ErrCodeFileWrite, "destination %s is a directory", path)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "failed to write %s", path)
	}
	return nil
}

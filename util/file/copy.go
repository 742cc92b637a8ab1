package file

import (
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
)

// Copy copies <src> file path to <dst> file path, overwriting <dst> if it exists
func Copy(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrap(err, "Read source file")
	}
	err = os.WriteFile(dst, input, 0644)
	if err != nil {
		return errors.Wrap(err, "Write destination file")
	}
	return nil
}

// Stat returns file info of <path> and false if nothing exists at <path>.
//
// Errors other than fs.ErrNotExist are returned as is.
func Stat(path string) (fs.FileInfo, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return info, true, nil
}

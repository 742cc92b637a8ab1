package copier

import (
	"io/fs"
	"os"
	"path/filepath"

	"asset_copy/cfg"
	"asset_copy/deps"
	"asset_copy/util/file"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// repo represents dependencies holder for this package
type repo struct {
	log *logrus.Logger
	cfg cfg.Root
}

// NewRepo returns new dependencies holder for this package
func NewRepo(log *logrus.Logger, cfg cfg.Root) repo {
	return repo{log: log, cfg: cfg}
}

// Log used to satisfy deps.Global interface
func (r repo) Log() *logrus.Logger {
	return r.log
}

// Cfg used to satisfy deps.Global interface
func (r repo) Cfg() cfg.Root {
	return r.cfg
}

// Run copies every entry of source directory from config to destination directory and returns names of copied
// entries.
//
// Creates destination directory first if Copy.EnsureDest is set.
//
// Stops at the first failed entry, entries copied before it are left as is.
//
// Can return errors defined in this package: NotFoundError, IOError.
func (r repo) Run() ([]string, error) {
	c := r.cfg.Copy

	if c.EnsureDest {
		if err := r.EnsureDestination(c.DestDir); err != nil {
			return nil, errors.Wrap(err, "Ensure destination directory")
		}
	}

	names, err := r.ListEntries(c.SourceDir)
	if err != nil {
		return nil, errors.Wrap(err, "List source entries")
	}

	copied := make([]string, 0, len(names))
	for _, name := range names {
		if err := CopyEntry(r, c.SourceDir, c.DestDir, name); err != nil {
			return copied, errors.Wrapf(err, "Copy entry %v", name)
		}
		copied = append(copied, name)
	}

	r.log.Infof("Copied %v entries from %v to %v", len(copied), c.SourceDir, c.DestDir)
	return copied, nil
}

// EnsureDestination creates <destDir> if it does not exist. Parent directories are not created.
//
// Can return errors defined in this package: IOError.
func (r repo) EnsureDestination(destDir string) error {
	info, exist, err := file.Stat(destDir)
	if err != nil {
		return errors.WithStack(IOError{Op: "check", Path: destDir, Err: err})
	}
	if exist {
		if !info.IsDir() {
			return errors.WithStack(IOError{Op: "create directory", Path: destDir, Err: fs.ErrExist})
		}
		r.log.Debugf("Destination directory %v already exists", destDir)
		return nil
	}

	r.log.Debugf("Creating destination directory %v", destDir)
	if err := os.Mkdir(destDir, 0755); err != nil {
		return errors.WithStack(IOError{Op: "create directory", Path: destDir, Err: err})
	}
	return nil
}

// ListEntries returns names of immediate children of <sourceDir>, both files and directories
//
// Can return errors defined in this package: NotFoundError, IOError.
func (r repo) ListEntries(sourceDir string) ([]string, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithStack(NotFoundError{Path: sourceDir})
		}
		return nil, errors.WithStack(IOError{Op: "list", Path: sourceDir, Err: err})
	}
	names := lo.Map(entries, func(entry fs.DirEntry, _ int) string {
		return entry.Name()
	})
	r.log.Debugf("Found %v entries in %v", len(names), sourceDir)
	return names, nil
}

// CopyEntry copies content of <sourceDir>/<name> to <destDir>/<name>, overwriting the destination file
//
// Can return errors defined in this package: IOError.
func CopyEntry(r deps.Global, sourceDir, destDir, name string) error {
	src := filepath.Join(sourceDir, name)
	dst := filepath.Join(destDir, name)
	r.Log().Debugf("Copying %v to %v", src, dst)
	if err := file.Copy(src, dst); err != nil {
		return errors.WithStack(IOError{Op: "copy", Path: src, Err: err})
	}
	return nil
}

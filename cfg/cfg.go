package cfg

import (
	_ "embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

//go:embed default.yaml
var defCfgBytes []byte

// Root represents root settings of the program
type Root struct {
	Copy Copy `koanf:"copy"`
}

// Copy represents settings of copying entries from source to destination directory
type Copy struct {
	// SourceDir represents directory to copy entries from. Only immediate children are copied.
	SourceDir string `koanf:"source_dir"`

	// DestDir represents directory to copy entries to.
	//
	// Existing files with the same names are overwritten.
	DestDir string `koanf:"dest_dir"`

	// EnsureDest specifies if DestDir should be created if it does not exist.
	//
	// If false, DestDir is expected to exist before the run.
	EnsureDest bool `koanf:"ensure_dest"`
}

// DamagedConfigError represents error thrown if program config is missing fields
type DamagedConfigError struct {
	MissingFields []string
}

// Error is used to satisfy golang error interface
func (e DamagedConfigError) Error() string {
	msg := "Existing program config is missing fields. Create new config or add missing fields manually"
	return fmt.Sprintf("%v: %v", msg, strings.Join(e.MissingFields, ", "))
}

// BadPathError represents error thrown if program config has invalid directory path
type BadPathError struct {
	Reason string
	Path   string
}

// Error is used to satisfy golang error interface
func (e BadPathError) Error() string {
	return fmt.Sprintf("%v; Path: '%v'", e.Reason, e.Path)
}

// Init returns config instance and false if config at <cfgFilePath> already exist.
//
// If <cfgFilePath> is empty, returns default config and false.
//
// If config does not exist, creates a default, returns empty instance and true.
//
// Can return errors defined in this package: DamagedConfigError.
func Init(log *logrus.Logger, cfgFilePath string) (Root, bool, error) {
	if cfgFilePath == "" {
		log.Debug("Program config path is not specified, using defaults")
		return NewDefCfg(), false, nil
	}

	log.Infof("Reading program config from %v", cfgFilePath)

	ko := koanf.New(".")

	loadConfig := func() error {
		return ko.Load(file.Provider(cfgFilePath), yaml.Parser())
	}

	writeDefConfig := func() error {
		return os.WriteFile(cfgFilePath, defCfgBytes, 0644)
	}

	// Load config file into koanf or create a new if not exist
	var root Root
	if err := loadConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("Config file not found, creating a default")
			if err := writeDefConfig(); err != nil {
				return root, false, errors.Wrap(err, "Write default config")
			}
			return root, true, nil
		} else {
			return root, false, errors.Wrap(err, "Load config")
		}
	}

	// Decode loaded config file into structure
	metadata := mapstructure.Metadata{}
	err := ko.UnmarshalWithConf("", &root, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:          true,
			IgnoreUntaggedFields: true,
			Metadata:             &metadata,
			Result:               &root,
			WeaklyTypedInput:     true,
			ZeroFields:           true,
		},
	})
	if err != nil {
		return root, false, errors.Wrap(err, "Decode config")
	}

	// Every field is required, config has no versions to migrate from
	if len(metadata.Unset) > 0 {
		err := DamagedConfigError{MissingFields: metadata.Unset}
		return root, false, errors.Wrap(err, "Check config")
	}

	return root, false, nil
}

// Validate returns error if directory paths in <r> are not usable.
//
// Can return errors defined in this package: BadPathError.
func (r Root) Validate() error {
	if strings.TrimSpace(r.Copy.SourceDir) == "" {
		return errors.WithStack(BadPathError{Reason: "Source directory is empty", Path: r.Copy.SourceDir})
	}
	if strings.TrimSpace(r.Copy.DestDir) == "" {
		return errors.WithStack(BadPathError{Reason: "Destination directory is empty", Path: r.Copy.DestDir})
	}
	if filepath.Clean(r.Copy.SourceDir) == filepath.Clean(r.Copy.DestDir) {
		return errors.WithStack(BadPathError{Reason: "Source and destination directories are the same",
			Path: r.Copy.DestDir})
	}
	// Destination created inside of source would be listed as an entry and fail to copy
	if isNested(r.Copy.SourceDir, r.Copy.DestDir) {
		return errors.WithStack(BadPathError{Reason: "Destination directory is inside of source directory",
			Path: r.Copy.DestDir})
	}
	return nil
}

// isNested returns true if <child> path is located inside of <parent> path.
//
// Paths are made absolute first so relative and absolute forms of the same path can be compared.
func isNested(parent, child string) bool {
	parentAbs, err := filepath.Abs(parent)
	if err != nil {
		return false
	}
	childAbs, err := filepath.Abs(child)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(parentAbs, childAbs)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// NewDefCfg returns new default config
func NewDefCfg() Root {
	return Root{
		Copy: Copy{
			SourceDir:  "public",
			DestDir:    "dist",
			EnsureDest: true,
		},
	}
}

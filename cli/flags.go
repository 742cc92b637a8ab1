package cli

import (
	"asset_copy/cfg"

	"github.com/cockroachdb/errors"
	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

// Flags represents command line flags
type Flags struct {
	Version        bool         `short:"v" long:"version"        description:"Print the program version"`
	LogLevel       logrus.Level `short:"l" long:"logLevel"       description:"Logging level. Can be from 0 (least verbose) to 6 (most verbose)"`
	ProgramCfgPath string       `short:"c" long:"programCfgPath" description:"Program config file path to read from or initialize a default. Defaults are used if not specified"`
	SourceDir      string       `short:"s" long:"sourceDir"      description:"Directory to copy entries from. Overrides the config value"`
	DestDir        string       `short:"d" long:"destDir"        description:"Directory to copy entries to. Overrides the config value"`
	NoEnsureDest   bool         `short:"n" long:"noEnsureDest"   description:"Do not create destination directory if it does not exist"`
}

// Parse returns a structure initialized with command line arguments and error if parsing failed
func Parse() (Flags, error) {
	flags := Flags{
		// Set defaults
		LogLevel: logrus.WarnLevel,
	}
	parser := goFlags.NewParser(&flags, goFlags.Options(goFlags.Default))
	_, err := parser.Parse()
	return flags, errors.Wrap(err, "Parse CLI arguments")
}

// IsErrOfType returns true if <err> is of type <t>
func IsErrOfType(err error, t goFlags.ErrorType) bool {
	goFlagsErr := &goFlags.Error{}
	if ok := errors.As(err, &goFlagsErr); ok && goFlagsErr.Type == t {
		return true
	}
	return false
}

// Apply returns copy of <root> with values overridden by flags which were specified
func (f Flags) Apply(root cfg.Root) cfg.Root {
	if f.SourceDir != "" {
		root.Copy.SourceDir = f.SourceDir
	}
	if f.DestDir != "" {
		root.Copy.DestDir = f.DestDir
	}
	if f.NoEnsureDest {
		root.Copy.EnsureDest = false
	}
	return root
}

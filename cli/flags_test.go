package cli

import (
	"os"
	"testing"

	"asset_copy/cfg"

	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/zenizh/go-capturer"
)

func TestParse(t *testing.T) {
	os.Args = []string{""}
	flags, err := Parse()
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, logrus.WarnLevel, flags.LogLevel, "should have default log level")
	assert.Exactly(t, "", flags.ProgramCfgPath, "should not have default config path")

	os.Args = []string{"", "--help"}
	capturer.CaptureStdout(func() {
		_, err = Parse()
	})
	assert.True(t, IsErrOfType(err, goFlags.ErrHelp), "should return help error")

	os.Args = []string{"", "--version"}
	flags, err = Parse()
	assert.NoError(t, err, "should not return error")
	assert.True(t, flags.Version, "flag should be specified")

	os.Args = []string{"", "--logLevel=-1"}
	capturer.CaptureStderr(func() {
		_, err = Parse()
	})
	assert.Error(t, err, "should return error for negative log level")
	assert.True(t, IsErrOfType(err, goFlags.ErrMarshal), "should return marshal error")

	os.Args = []string{"", "--logLevel=5"}
	flags, err = Parse()
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, logrus.DebugLevel, flags.LogLevel, "flag should have this value")

	os.Args = []string{"", "--unknown"}
	capturer.CaptureStderr(func() {
		_, err = Parse()
	})
	assert.True(t, IsErrOfType(err, goFlags.ErrUnknownFlag), "should return unknown flag error")

	os.Args = []string{"", "--programCfgPath=/cfg/path", "--sourceDir=static", "--destDir=build", "--noEnsureDest"}
	flags, err = Parse()
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, logrus.WarnLevel, flags.LogLevel, "flag should have this value")
	assert.Exactly(t, "/cfg/path", flags.ProgramCfgPath, "flag should have this value")
	assert.Exactly(t, "static", flags.SourceDir, "flag should have this value")
	assert.Exactly(t, "build", flags.DestDir, "flag should have this value")
	assert.True(t, flags.NoEnsureDest, "flag should be specified")

	os.Args = []string{"", "-c", "/cfg/path", "-s", "static", "-d", "build", "-n"}
	shortFlags, err := Parse()
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, flags, shortFlags, "short flags should give the same result")
}

func TestIsErrOfType(t *testing.T) {
	assert.True(t, IsErrOfType(&goFlags.Error{Type: goFlags.ErrUnknown}, goFlags.ErrUnknown))
	assert.False(t, IsErrOfType(&goFlags.Error{Type: goFlags.ErrUnknown}, goFlags.ErrHelp))
	assert.False(t, IsErrOfType(nil, goFlags.ErrHelp))
}

func TestApply(t *testing.T) {
	root := cfg.NewDefCfg()

	assert.Exactly(t, root, Flags{}.Apply(root), "should not change config without flags")

	actual := Flags{SourceDir: "static"}.Apply(root)
	assert.Exactly(t, cfg.Copy{SourceDir: "static", DestDir: "dist", EnsureDest: true}, actual.Copy)

	actual = Flags{DestDir: "build", NoEnsureDest: true}.Apply(root)
	assert.Exactly(t, cfg.Copy{SourceDir: "public", DestDir: "build", EnsureDest: false}, actual.Copy)

	assert.Exactly(t, cfg.NewDefCfg(), root, "should not modify the source config")
}

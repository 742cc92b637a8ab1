package main

import (
	"fmt"
	"os"

	"asset_copy/cfg"
	"asset_copy/cli"
	"asset_copy/copier"
	"asset_copy/util/interrupt"
	"asset_copy/util/logger"

	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

func main() {
	// Init logger
	log := logger.New(logrus.WarnLevel)

	// Parse command line arguments
	flags, err := cli.Parse()
	if flags.Version {
		fmt.Println("v1.0.0")
		os.Exit(0)
	}
	if cli.IsErrOfType(err, goFlags.ErrHelp) {
		// Help message will be printed by go-flags
		os.Exit(0)
	}
	if err != nil {
		log.Panic(err)
	}
	log.SetLevel(flags.LogLevel)

	interrupt.Listen(log, os.Exit)

	// Read program config
	root, isNewCfg, err := cfg.Init(log, flags.ProgramCfgPath)
	if err != nil {
		log.Panic(err)
	}
	if isNewCfg {
		log.Warnf("New config is written to %v, please verify it and start this program again", flags.ProgramCfgPath)
		os.Exit(0)
	}
	root = flags.Apply(root)
	if err := root.Validate(); err != nil {
		log.Panic(err)
	}

	// Copy entries
	if _, err := copier.NewRepo(log, root).Run(); err != nil {
		log.Panic(err)
	}
}

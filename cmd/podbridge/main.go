// Package main is the entry point for the podbridge tool.
package main

import (
	"fmt"
	"os"

	urfavecli "github.com/urfave/cli/v2"

	"github.com/chmouel/podbridge/internal/buildinfo"
	"github.com/chmouel/podbridge/internal/config"
	"github.com/chmouel/podbridge/internal/log"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date, builtBy)
	buildinfo.Enrich()

	cliApp := &urfavecli.App{
		Name:                 "podbridge",
		Usage:                "Coordinate CocoaPods for an app's iOS sub-project",
		Version:              buildinfo.Describe(),
		EnableBashCompletion: true,

		Flags: globalFlags(),

		Commands: []*urfavecli.Command{
			doctorCommand(),
			setupCommand(),
			syncCommand(),
			checkCommand(),
			watchCommand(),
			completionCommand(),
		},

		BashComplete: completeGlobalFlags,
	}

	err := cliApp.Run(os.Args)
	_ = log.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadConfigAndLogging loads the YAML config and wires up the debug log,
// flags taking precedence over file values.
func loadConfigAndLogging(c *urfavecli.Context) *config.AppConfig {
	cfg, err := config.LoadConfig(c.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	debugLog := c.String("debug-log")
	if debugLog == "" {
		debugLog = cfg.DebugLog
	}
	if err := log.SetFile(debugLog); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", debugLog, err)
	}

	return cfg
}

// Package main provides CLI command definitions for podbridge.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	urfavecli "github.com/urfave/cli/v2"

	"github.com/chmouel/podbridge/internal/cocoapods"
	"github.com/chmouel/podbridge/internal/completion"
	"github.com/chmouel/podbridge/internal/config"
	"github.com/chmouel/podbridge/internal/log"
	"github.com/chmouel/podbridge/internal/project"
	"github.com/chmouel/podbridge/internal/run"
	"github.com/chmouel/podbridge/internal/status"
	"github.com/chmouel/podbridge/internal/watch"
)

// env holds the wired-up collaborators shared by the subcommands.
type env struct {
	cfg      *config.AppConfig
	platform project.Platform
	service  *cocoapods.Service
	reporter status.Reporter
}

func newEnv(c *urfavecli.Context) (*env, error) {
	cfg := loadConfigAndLogging(c)

	appRoot := c.String("project")
	if appRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		appRoot = cwd
	}

	verbose := c.Bool("verbose") || cfg.Verbose
	reporter := status.NewTerminal()
	service := cocoapods.NewService(
		run.NewRunner(),
		reporter,
		cocoapods.WithVerbose(verbose),
		cocoapods.WithStatsDisabled(cfg.StatsDisabled()),
	)

	return &env{
		cfg:      cfg,
		platform: project.ForAppRoot(appRoot),
		service:  service,
		reporter: reporter,
	}, nil
}

func (e *env) engineDir(c *urfavecli.Context) string {
	if dir := c.String("engine-dir"); dir != "" {
		return dir
	}
	return e.cfg.EngineDir
}

func engineDirFlag() *urfavecli.StringFlag {
	return &urfavecli.StringFlag{
		Name:  "engine-dir",
		Usage: "Engine framework directory exported to the Podfile",
	}
}

func changedFlag() *urfavecli.BoolFlag {
	return &urfavecli.BoolFlag{
		Name:  "changed",
		Usage: "Treat dependencies as changed and force a sync",
	}
}

// doctorCommand reports the probed CocoaPods installation state.
func doctorCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "doctor",
		Usage: "Report the CocoaPods installation state",
		Action: func(c *urfavecli.Context) error {
			e, err := newEnv(c)
			if err != nil {
				return err
			}

			path, lookErr := run.LookupPath("pod")
			if lookErr != nil {
				path = "not found"
			}
			text, ok := e.service.VersionText(c.Context)
			if !ok {
				text = "unavailable"
			}
			tier := e.service.EvaluateInstallation(c.Context)
			repoCache := "missing"
			if e.service.IsInitialized() {
				repoCache = "present"
			}

			e.reporter.Printf("pod binary:  %s", path)
			e.reporter.Printf("pod version: %s (minimum %s, recommended %s)", text, cocoapods.MinimumVersion, cocoapods.RecommendedVersion)
			e.reporter.Printf("assessment:  %s", tier)
			e.reporter.Printf("repo cache:  %s", repoCache)
			return nil
		},
	}
}

// setupCommand scaffolds the Podfile and xcconfig includes.
func setupCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "setup",
		Usage: "Scaffold the Podfile and xcconfig includes",
		Action: func(c *urfavecli.Context) error {
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			return e.service.EnsurePodfile(c.Context, e.platform)
		},
	}
}

// syncCommand scaffolds and then runs pod install when needed.
func syncCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "sync",
		Usage: "Run pod install when the project is stale",
		Flags: []urfavecli.Flag{engineDirFlag(), changedFlag()},
		Action: func(c *urfavecli.Context) error {
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			if err := e.service.EnsurePodfile(c.Context, e.platform); err != nil {
				return err
			}
			outcome, err := e.service.Process(c.Context, e.platform, e.engineDir(c), c.Bool("changed"))
			if err != nil {
				return err
			}
			e.reporter.Printf("pod install %s", outcome)
			return nil
		},
	}
}

// checkCommand reports whether a sync would run; exit status 1 means stale.
func checkCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "check",
		Usage: "Report whether a sync would run",
		Flags: []urfavecli.Flag{changedFlag()},
		Action: func(c *urfavecli.Context) error {
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			if cocoapods.ShouldSynchronize(e.platform, c.Bool("changed")) {
				return urfavecli.Exit("sync needed", 1)
			}
			e.reporter.Printf("up to date")
			return nil
		},
	}
}

// watchCommand re-syncs whenever the Podfile changes.
func watchCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "watch",
		Usage: "Re-sync whenever the Podfile changes",
		Flags: []urfavecli.Flag{engineDirFlag()},
		Action: func(c *urfavecli.Context) error {
			e, err := newEnv(c)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer cancel()

			sync := func() {
				if err := e.service.EnsurePodfile(ctx, e.platform); err != nil {
					e.reporter.Errorf("%v", err)
					return
				}
				outcome, err := e.service.Process(ctx, e.platform, e.engineDir(c), false)
				if err != nil {
					// Keep watching: failures here are environment
					// problems the user can fix between saves.
					e.reporter.Errorf("%v", err)
					return
				}
				log.Printf("watch sync: %s", outcome)
			}

			sync()
			w := watch.New(e.platform, e.cfg.WatchDebounceDuration(), sync)
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}

// completionCommand generates shell completion scripts.
func completionCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "completion",
		Usage:     "Generate shell completion scripts",
		ArgsUsage: "<bash|zsh>",
		Action: func(c *urfavecli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("usage: podbridge completion <bash|zsh>")
			}
			switch shell := c.Args().First(); shell {
			case "bash":
				fmt.Print(completion.Bash())
			case "zsh":
				fmt.Print(completion.Zsh())
			default:
				return fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell)
			}
			return nil
		},
	}
}

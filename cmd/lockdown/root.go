package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/puffsec/lockdown/internal/adapters/command"
	"github.com/puffsec/lockdown/internal/adapters/filesystem"
	"github.com/puffsec/lockdown/internal/adapters/logging"
	"github.com/puffsec/lockdown/internal/adapters/prompt"
	"github.com/puffsec/lockdown/internal/adapters/report"
	"github.com/puffsec/lockdown/internal/collab"
	"github.com/puffsec/lockdown/internal/domain/catalog"
	"github.com/puffsec/lockdown/internal/domain/config"
	"github.com/puffsec/lockdown/internal/domain/execution"
	"github.com/puffsec/lockdown/internal/domain/step"
	"github.com/puffsec/lockdown/internal/fileedit"
	"github.com/puffsec/lockdown/internal/ports"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lockdown",
	Short: "Interactive workstation hardening",
	Long: `Lockdown walks a fixed catalog of hardening steps for this host.

Each step probes current state first and is skipped when its effect is
already present. Everything else is applied only after an explicit y/n
confirmation, with the prior file content backed up alongside the
original. A failed step is reported and the run continues.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runHardening,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}

func runHardening(cmd *cobra.Command, _ []string) error {
	if err := requireRoot(); err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	level := ports.LevelInfo
	if verbose {
		level = ports.LevelDebug
	}
	logger := logging.NewConsoleLogger(
		logging.WithOutput(cmd.ErrOrStderr()),
		logging.WithLevel(level),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prompter := prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())

	username := cfg.TargetUser
	if username == "" {
		username, err = prompter.Ask("Which user account should this machine be hardened for?")
		if err != nil {
			return fmt.Errorf("reading target user: %w", err)
		}
	}

	fs := filesystem.NewRealFileSystem()
	runner := command.NewRealRunner()
	deps := catalog.Deps{
		FS:        fs,
		Runner:    runner,
		Mutator:   fileedit.NewMutator(fs),
		Packages:  collab.NewPkgTools(runner),
		Services:  collab.NewRcctl(runner, fs),
		Firewall:  collab.NewPfctl(runner),
		Scheduler: collab.NewCrontab(runner),
		FileFlags: collab.NewChflags(runner),
	}
	steps := catalog.Build(cfg, deps)

	runCtx := step.NewRunContext(ctx).WithUsername(username)
	executor := execution.NewExecutor(prompter, logger)

	startedAt := time.Now()
	results := executor.Run(runCtx, steps)
	finishedAt := time.Now()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	runReport := execution.NewReport(hostname, startedAt, finishedAt, results)

	fmt.Fprint(cmd.OutOrStdout(), runReport.Render())

	writer := report.NewYAMLWriter(fs, report.DefaultDir)
	if path, err := writer.Save(runReport); err != nil {
		logger.Warn(ctx, "could not persist run report", ports.F("error", err))
	} else {
		logger.Info(ctx, "run report saved", ports.F("path", path))
	}

	return nil
}

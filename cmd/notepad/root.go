// ABOUTME: Root command wiring configuration, logging and the note store.
// ABOUTME: Runs the terminal UI when invoked without a subcommand.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/harper/notepad/internal/config"
	"github.com/harper/notepad/internal/logging"
	"github.com/harper/notepad/internal/notepad"
	"github.com/harper/notepad/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger = logging.Nop()
	store  *notepad.Store
)

var rootCmd = &cobra.Command{
	Use:   "notepad",
	Short: "A small note-taking app",
	Long: `notepad keeps notes in memory and edits them in a terminal UI.

Every run starts from a fresh store seeded with sample notes (disable with
samples: false in the config file). Notes are never written to disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

// skipConfigAnnotation marks commands that must work with a broken config
// file. They get defaults, a no-op logger and no store.
const skipConfigAnnotation = "notepad/skip-config"

func setup(cmd *cobra.Command) error {
	if cmd.Annotations[skipConfigAnnotation] == "true" {
		cfg = config.DefaultConfig()
		return nil
	}

	configPath, _ := cmd.Flags().GetString("config")
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}

	logger, err = newLogger(cmd, cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	store = newStore()
	logger.Debug().
		Str("command", cmd.Name()).
		Int("notes", len(store.State().Notes)).
		Msg("store ready")
	return nil
}

// newLogger writes to the configured log file or stderr. The terminal UI
// owns the screen, so it only logs when a file is configured.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*logging.Logger, error) {
	b := logging.New().WithLevel(cfg.LogLevel).WithFormat(cfg.LogFormat)
	switch {
	case cfg.LogFile != "":
		b = b.FromPath(cfg.LogFile)
	case cmd.Root() == cmd || cmd.Name() == "tui":
		b = b.FromWriter(io.Discard)
	default:
		b = b.FromWriter(cmd.ErrOrStderr())
	}
	return b.Make()
}

func newStore() *notepad.Store {
	opts := []notepad.Option{notepad.WithLogger(logger.With().Str("component", "store").Logger())}
	if !cfg.Samples {
		opts = append(opts, notepad.WithoutSamples())
	}
	return notepad.New(opts...)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/notepad/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace|debug|info|warn|error|disabled)")
}

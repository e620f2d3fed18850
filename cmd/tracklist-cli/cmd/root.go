package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tracklist/internal/app"
	"tracklist/internal/config"
	"tracklist/internal/logging"
)

var (
	designDir string
	logLevel  string

	cfg      *config.Config
	log      *logrus.Logger
	stack    *app.Stack
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "tracklist-cli",
	Short: "CLI for browsing and managing track designs",
	Long: `tracklist-cli lists, inspects and manages saved track designs.

Designs are read from the directories named in the config file
(TRACKLIST_CONFIG) or TRACKLIST_DESIGN_DIR, grouped by ride type and
vehicle the same way the design list window groups them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.FromEnv()
		if err != nil {
			return err
		}
		if designDir != "" {
			cfg.Designs.Dirs = filepath.SplitList(designDir)
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}

		log, closeLog, err = logging.New(cfg.Log, os.Stderr)
		if err != nil {
			return err
		}

		stack, err = app.Open(cmd.Context(), cfg, log)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if stack != nil {
			if err := stack.Close(); err != nil {
				return err
			}
		}
		if closeLog != nil {
			return closeLog()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&designDir, "designs", "d", "", "design directories (path list), overrides the config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// GetStack returns the initialized design storage
func GetStack() *app.Stack {
	return stack
}

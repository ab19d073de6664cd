package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/project-tracker/internal/config"
	"github.com/nhle/project-tracker/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the root command for the tracker CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "tracker",
		Short:         "Project tracker backend",
		Long:          "A multi-user project tracking backend serving a JSON HTTP API over a SQLite store.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", config.DefaultConfigPath, "path to the YAML config file")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSecretCommand(opts))

	return cmd
}

// loadRuntime reads the configuration and builds the logger every
// subcommand needs.
func loadRuntime(opts *RootOptions) (*config.AppConfig, *zap.Logger, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

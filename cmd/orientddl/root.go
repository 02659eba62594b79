package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli holds the state shared by the subcommands of one invocation.
type cli struct {
	configFile string
	cfg        *viper.Viper
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "orientddl",
		Short: "Compile schema blueprints into class/property DDL",
		Long: `orientddl reads blueprint files (YAML or JSON) describing classes,
properties, indexes and drops, and prints the DDL statements that apply
them. Each blueprint prints on one line, statements joined with ";".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			cfg, err := loadConfig(c.configFile, cmd)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.GetString(cfgKeyLogLevel))
			if err != nil {
				return err
			}
			c.cfg, c.logger = cfg, logger
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: ./orientddl.yaml)")
	root.PersistentFlags().String("log-level", defaultLogLevel, "log level: debug, info, warn or error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newCompileCmd(c))
	return root
}

// newLogger returns a text logger writing to w at the given level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

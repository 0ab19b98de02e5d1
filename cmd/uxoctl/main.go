package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uxo-chatbot/config"
	"uxo-chatbot/pkg/log"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "uxoctl",
		Short:         "UXO chatbot operations",
		Long:          "uxoctl ingests documents, chats with the assistant from a terminal and manages admin accounts.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (default: search ./config, . and /etc/app)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at the configured level instead of warnings only")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newIngestCmd(opts))
	cmd.AddCommand(newAskCmd(opts))
	cmd.AddCommand(newAdminCmd(opts))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "uxoctl %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

func (o *rootOptions) load() (*config.Config, log.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	level := "warn"
	if o.verbose {
		level = cfg.Logger.Level
	}
	l := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return cfg, l, nil
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}

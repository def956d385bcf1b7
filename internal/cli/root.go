// Package cli implements the jarray demonstration commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/jarray/internal/config"
	"github.com/marcodamonte/jarray/internal/logger"
	"github.com/marcodamonte/jarray/metrics"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// session carries what PersistentPreRunE prepared for the subcommands.
type session struct {
	log      *slog.Logger
	logClose io.Closer
	registry *prometheus.Registry
	growth   *metrics.Registry
}

// observer returns the growth observer for the named array, or nil when
// metrics are disabled.
func (s *session) observer(name string) *metrics.GrowthMetrics {
	if s.growth == nil {
		return nil
	}
	return s.growth.For(name)
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	s := &session{}

	rootCmd := &cobra.Command{
		Use:   "jarray",
		Short: "Growable array demonstrations",
		Long: `jarray exercises a contiguous array with a doubling growth policy.

Use "jarray [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.teardown(cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().Bool("metrics", false, "Dump growth metrics after the command")

	rootCmd.AddCommand(newSortCmd(s))
	rootCmd.AddCommand(newTraceCmd(s))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (s *session) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.Logging.Level = f.Value.String()
	}
	if f := cmd.Flags().Lookup("metrics"); f != nil && f.Changed {
		cfg.Metrics.Enabled, _ = cmd.Flags().GetBool("metrics")
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	log, closer, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	s.log = log
	s.logClose = closer
	if cfg.Metrics.Enabled {
		s.registry = prometheus.NewRegistry()
		s.growth = metrics.NewRegistry(s.registry)
	}
	return nil
}

func (s *session) teardown(w io.Writer) error {
	if s.registry != nil {
		if err := dumpMetrics(w, s.registry); err != nil {
			return err
		}
	}
	if s.logClose != nil {
		return s.logClose.Close()
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "jarray %s (commit %s, built %s)\n", Version, Commit, Date)
			return err
		},
	}
}

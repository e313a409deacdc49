package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/zerohall/internal/config"
	"github.com/abhisek/zerohall/internal/logging"
	"github.com/abhisek/zerohall/internal/store"
)

var (
	v      = config.New()
	cfg    config.Config
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "zerohall",
	Short: "Walk the Hall of Zero Limits in your terminal",
	Long: "Zero Hall is a terminal rendition of the Hall of Zero Limits: eight rooms of " +
		"stories, statues and a short quiz that tells you which gift is yours.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(v)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
		return nil
	},
	RunE: runApp,
}

// Execute runs the command tree until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides ZEROHALL_DB)")
	pf.String("config", "", "Path to a zerohall.yaml config file")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text, json")
	pf.String("log-file", "", "Log file used while the hall is open")
	cobra.CheckErr(config.BindFlags(v, pf))

	rootCmd.Flags().Bool("skip-intro", false, "Skip the loading screen")
	rootCmd.Flags().Bool("muted", false, "Start with sound off")

	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore opens the journey database at the configured path.
func openStore() (*store.Store, error) {
	p, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug("store opened", "path", p)
	return s, nil
}

// loggerTo rebuilds the configured logger on another writer.
func loggerTo(f *os.File) *slog.Logger {
	return logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: f})
}

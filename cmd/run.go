package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/zerohall/internal/app"
	"github.com/abhisek/zerohall/internal/journey"
	"github.com/abhisek/zerohall/internal/llm"
	"github.com/abhisek/zerohall/internal/logging"
	"github.com/abhisek/zerohall/internal/navigator"
	"github.com/abhisek/zerohall/internal/quiz"
	"github.com/abhisek/zerohall/internal/reflection"
	"github.com/abhisek/zerohall/internal/store"
)

// runApp opens the store, builds the shared state and launches the TUI.
func runApp(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	logFile, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := loggerTo(logFile)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	repo := st.EventRepo()

	nav := navigator.New(navigator.WithLogger(log))
	engine := quiz.NewEngine(log)
	rec := journey.NewRecorder(repo, log)
	defer rec.Close()
	rec.Attach(nav, engine)
	log.Info("visit started", "session", rec.SessionID())

	svc, err := newReflectionService(ctx, repo, log)
	if err != nil {
		return err
	}

	skipIntro, _ := cmd.Flags().GetBool("skip-intro")
	muted, _ := cmd.Flags().GetBool("muted")
	return app.Run(ctx, app.Options{
		Nav:        nav,
		Quiz:       engine,
		Trackers:   app.NewTrackers(nil),
		Reflection: svc,
		Logger:     log,
		Muted:      muted,
		SkipIntro:  skipIntro,
	})
}

// newReflectionService builds the reflection service. A missing or broken
// provider leaves it disabled rather than failing the command.
func newReflectionService(ctx context.Context, rec store.LLMRecorder, log *slog.Logger) (*reflection.Service, error) {
	var provider llm.Provider
	if cfg.LLMEnabled {
		p, err := llm.NewProvider(ctx, cfg.LLM, rec, log, reflection.Canned)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Gift reflections will be unavailable.")
		} else {
			provider = p
		}
	}
	rcfg := reflection.DefaultConfig()
	rcfg.CacheSize = cfg.Reflection.CacheSize
	if cfg.Reflection.Timeout > 0 {
		rcfg.Timeout = cfg.Reflection.Timeout
	}
	return reflection.NewService(provider, rcfg, log)
}

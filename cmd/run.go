package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/tenk/internal/app"
	"github.com/abhisek/tenk/internal/config"
	"github.com/abhisek/tenk/internal/notify"
	"github.com/abhisek/tenk/internal/session"
	"github.com/abhisek/tenk/internal/store"
)

// runApp opens the store, restores any persisted session, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var events session.Events
	if cfg.Notifications {
		logPath := cfg.LogFile
		if logPath == "" {
			if logPath, err = config.DefaultLogPath(); err != nil {
				logPath = ""
			}
		}
		announcer := notify.NewAnnouncer(logPath)
		defer announcer.Close()
		events = announcer
	}

	tracker := session.NewTracker(st.SkillRepo(), st.ActiveRepo(), events)
	if err := tracker.Restore(cmd.Context()); err != nil {
		fmt.Fprintln(os.Stderr, "Could not restore previous session:", err)
	}

	return app.Run(app.Options{
		Store:   st,
		Tracker: tracker,
		Config:  cfg,
	})
}

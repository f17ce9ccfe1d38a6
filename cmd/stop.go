package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tenk/internal/session"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running practice session and log its minutes",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tracker := session.NewTracker(st.SkillRepo(), st.ActiveRepo(), nil)
		if err := tracker.Restore(cmd.Context()); err != nil {
			return fmt.Errorf("restore session: %w", err)
		}

		sk := tracker.Skill()
		commit, err := tracker.Stop(cmd.Context())
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				fmt.Println("No session is running.")
				return nil
			}
			return err
		}

		fmt.Printf("Stopped %q: practiced %s, logged %d min on %s (%d min total)\n",
			sk.Title, session.FormatClock(commit.Seconds), commit.Minutes,
			commit.Date, commit.TotalMinutes)
		if commit.NewlyMastered {
			fmt.Println("★ 10,000 minutes reached — skill mastered!")
		}
		return nil
	},
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/tenk/internal/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running practice session, if any",
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
		if sk == nil {
			fmt.Println("No session is running.")
			return nil
		}

		secs := tracker.SessionSeconds(time.Now())
		fmt.Printf("Practicing %q for %s (%d min total before this session)\n",
			sk.Title, session.FormatClock(secs), sk.TotalMinutes)
		return nil
	},
}

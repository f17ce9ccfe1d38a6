package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tenk/internal/session"
)

var startCmd = &cobra.Command{
	Use:   "start <skill>",
	Short: "Start a practice session without the TUI",
	Long: "Start a practice session for a skill and exit. The session keeps\n" +
		"counting from its start time; stop it later with 'tenk stop' or from the TUI.",
	Args: cobra.ExactArgs(1),
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

		sk, err := findSkill(cmd.Context(), st.SkillRepo(), args[0])
		if err != nil {
			return err
		}

		if err := tracker.Start(cmd.Context(), sk.ID); err != nil {
			return err
		}
		fmt.Printf("Practicing %q. Stop with: tenk stop\n", sk.Title)
		return nil
	},
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tenk/internal/mastery"
	"github.com/abhisek/tenk/internal/skill"
	"github.com/abhisek/tenk/internal/store"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage tracked skills",
}

var skillAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new skill to track",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		motivation, _ := cmd.Flags().GetString("why")

		sk, err := skill.New(args[0], category, motivation)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SkillRepo().Save(cmd.Context(), sk); err != nil {
			return fmt.Errorf("save skill: %w", err)
		}
		fmt.Printf("Added %q (%s)\n", sk.Title, sk.ID)
		return nil
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills with progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		skills, err := st.SkillRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list skills: %w", err)
		}
		if len(skills) == 0 {
			fmt.Println("No skills yet. Add one with: tenk skill add <title>")
			return nil
		}

		activeID, err := st.ActiveRepo().ActiveSkillID(cmd.Context())
		if err != nil {
			return fmt.Errorf("read active skill: %w", err)
		}

		fmt.Printf("%-36s  %-24s  %-12s  %8s  %7s  %s\n",
			"ID", "Title", "Category", "Minutes", "Done", "Status")
		fmt.Println(strings.Repeat("─", 100))

		for _, sk := range skills {
			title := sk.Title
			if len(title) > 24 {
				title = title[:21] + "..."
			}
			status := ""
			switch {
			case sk.ID == activeID:
				status = "active"
			case mastery.IsMastered(sk.TotalMinutes):
				status = "mastered"
			}
			fmt.Printf("%-36s  %-24s  %-12s  %8d  %6.1f%%  %s\n",
				sk.ID, title, sk.Category, sk.TotalMinutes,
				mastery.Progress(sk.TotalMinutes)*100, status)
		}

		fmt.Printf("\n%d skills\n", len(skills))
		return nil
	},
}

var skillRmCmd = &cobra.Command{
	Use:   "rm <skill>",
	Short: "Delete a skill and its practice history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sk, err := findSkill(cmd.Context(), st.SkillRepo(), args[0])
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this deletes %q and %d logged minutes; re-run with --yes to confirm",
				sk.Title, sk.TotalMinutes)
		}

		if err := st.SkillRepo().Delete(cmd.Context(), sk.ID); err != nil {
			return fmt.Errorf("delete skill: %w", err)
		}
		fmt.Printf("Deleted %q\n", sk.Title)
		return nil
	},
}

// findSkill resolves a CLI argument to a skill by exact id, id prefix,
// or case-insensitive title.
func findSkill(ctx context.Context, repo store.SkillRepo, query string) (*skill.Skill, error) {
	if sk, err := repo.Get(ctx, query); err == nil {
		return sk, nil
	}

	skills, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	var matches []*skill.Skill
	for _, sk := range skills {
		if strings.HasPrefix(sk.ID, query) || strings.EqualFold(sk.Title, query) {
			matches = append(matches, sk)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no skill matches %q", query)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%q is ambiguous: matches %d skills", query, len(matches))
	}
}

func init() {
	skillAddCmd.Flags().String("category", "General", "Skill category (Music, Sport, ...)")
	skillAddCmd.Flags().String("why", "", "Why you are learning this skill")
	skillRmCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	skillCmd.AddCommand(skillAddCmd)
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillRmCmd)
}

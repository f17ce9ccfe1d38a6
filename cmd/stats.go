package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/tenk/internal/mastery"
	"github.com/abhisek/tenk/internal/skill"
)

var statsCmd = &cobra.Command{
	Use:   "stats [skill]",
	Short: "Show practice statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if len(args) == 1 {
			sk, err := findSkill(cmd.Context(), st.SkillRepo(), args[0])
			if err != nil {
				return err
			}
			printSkillStats(sk)
			return nil
		}

		skills, err := st.SkillRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list skills: %w", err)
		}
		if len(skills) == 0 {
			fmt.Println("No skills yet. Add one with: tenk skill add <title>")
			return nil
		}

		var totalMinutes, totalDays int
		for _, sk := range skills {
			totalMinutes += sk.TotalMinutes
			totalDays += sk.PracticeDays()
		}
		fmt.Printf("%d skills, %.1f hours practiced over %d skill-days\n\n",
			len(skills), float64(totalMinutes)/60, totalDays)
		for _, sk := range skills {
			printSkillStats(sk)
			fmt.Println()
		}
		return nil
	},
}

func printSkillStats(sk *skill.Skill) {
	now := time.Now()
	fmt.Printf("%s (%s)\n", sk.Title, sk.Category)
	fmt.Printf("  %.1f hours (%d minutes), %.1f%% of the 10,000-minute goal\n",
		float64(sk.TotalMinutes)/60, sk.TotalMinutes, mastery.Progress(sk.TotalMinutes)*100)
	fmt.Printf("  %d practice days, %.1f min/day average, today %d min\n",
		sk.PracticeDays(), sk.AverageDailyMinutes(now), sk.MinutesOn(skill.Today(now)))
	if mastery.IsMastered(sk.TotalMinutes) {
		fmt.Println("  ★ mastered")
	}
}

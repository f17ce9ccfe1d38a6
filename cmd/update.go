package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/tenk/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace this binary with the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))

		if checkOnly, _ := cmd.Flags().GetBool("check"); checkOnly {
			return runUpdateCheck(ctx, checker)
		}

		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("This is a development build; there is nothing to update it against.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Printf("%s is already the latest version.\n", version)
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nThe binary's directory is not writable; retry with: sudo tenk update", err)
		default:
			return err
		}
	},
}

// runUpdateCheck reports whether a newer release exists without touching
// the installed binary.
func runUpdateCheck(ctx context.Context, checker *selfupdate.Checker) error {
	res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil {
		return err
	}
	if !res.UpdateAvailable {
		fmt.Printf("%s is up to date.\n", version)
		return nil
	}
	fmt.Printf("%s is available (running %s). Run `tenk update` to install it.\n", res.LatestVersion, res.CurrentVersion)
	return nil
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only check for a newer release, do not install")
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/studyweave/studyweave/internal/cli/formatter"
	"github.com/studyweave/studyweave/internal/domain"
)

func newEnergyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Manage the daily energy profile",
	}

	cmd.AddCommand(
		newEnergyShowCmd(app),
		newEnergySetCmd(app),
	)

	return cmd
}

func newEnergyShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the energy profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Energy.GetProfile(context.Background(), app.DefaultUser)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatEnergyProfile(profile))
			return nil
		},
	}
}

func newEnergySetCmd(app *App) *cobra.Command {
	var profileType, scores string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Select an energy profile preset or custom curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.EnergyProfile{Type: domain.EnergyProfileType(profileType)}

			if p.Type == domain.ProfileCustom {
				parts := strings.Split(scores, ",")
				if len(parts) != 24 {
					return fmt.Errorf("custom profile needs 24 comma-separated scores, got %d", len(parts))
				}
				for i, part := range parts {
					v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
					if err != nil {
						return fmt.Errorf("invalid score %q at hour %d", part, i)
					}
					p.HourlyScores[i] = v
				}
			}

			if err := app.Energy.SetProfile(context.Background(), app.DefaultUser, p); err != nil {
				return err
			}

			fmt.Printf("Set energy profile to %s\n", p.Type)
			return nil
		},
	}

	cmd.Flags().StringVar(&profileType, "type", "", "Profile (morning_person|night_owl|balanced|custom)")
	cmd.Flags().StringVar(&scores, "scores", "", "24 comma-separated 0-1 scores (custom only)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

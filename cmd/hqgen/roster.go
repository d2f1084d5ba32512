package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dither001/mekhq/internal/domain/campaign"
	"github.com/dither001/mekhq/internal/generator"
)

func newRosterCmd() *cobra.Command {
	var (
		campaignID string
		asOf       string
	)

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "List stored personnel of a campaign",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoster(cmd, campaignID, asOf)
		},
	}

	cmd.Flags().StringVar(&campaignID, "campaign-id", "", "Campaign ID (required)")
	cmd.Flags().StringVar(&asOf, "date", "", "Compute ages on this date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("campaign-id")

	return cmd
}

func runRoster(cmd *cobra.Command, campaignID, asOf string) error {
	var on time.Time
	if asOf != "" {
		var err error
		on, err = time.Parse(campaign.DateLayout, asOf)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", asOf, err)
		}
	}

	ctx := cmd.Context()

	return withDeps(ctx, depsOptions{RequireRedis: true}, func(d *deps) error {
		people, err := d.provider(generator.NewDefaultGenerator(nil)).PersonnelService.ListPersonnel(ctx, campaignID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(people) == 0 {
			fmt.Fprintln(out, "No personnel found.")
			return nil
		}
		return printRoster(out, people, on)
	})
}

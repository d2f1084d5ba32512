package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dither001/mekhq/internal/domain/campaign"
)

func newCampaignCmd() *cobra.Command {
	var (
		name    string
		faction string
		date    string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Write a new campaign file with default options",
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := time.Parse(campaign.DateLayout, date)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", date, err)
			}

			c, err := campaign.New(&campaign.Config{
				Name:        name,
				FactionCode: faction,
				Date:        on,
			})
			if err != nil {
				return err
			}

			data, err := campaign.Marshal(c)
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing campaign file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote campaign %s to %s\n", c.ID(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "New Campaign", "Campaign name")
	cmd.Flags().StringVarP(&faction, "faction", "f", "MERC", "Faction code (see 'hqgen factions')")
	cmd.Flags().StringVarP(&date, "date", "d", "3025-01-01", "Campaign start date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file, stdout when empty")

	return cmd
}

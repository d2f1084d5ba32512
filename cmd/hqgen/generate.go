package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/dither001/mekhq/internal/domain/campaign"
	"github.com/dither001/mekhq/internal/domain/personnel"
	"github.com/dither001/mekhq/internal/generator"
	personnelService "github.com/dither001/mekhq/internal/services/personnel"
)

type generateFlags struct {
	campaignFile string
	role         string
	secondary    string
	count        int
	seed         int64
	save         bool
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate new personnel for a campaign",
		Long: "Generates personnel for the campaign described by a campaign file and prints them. " +
			"With --save they are also stored in the personnel store.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.campaignFile, "campaign", "c", "", "Campaign file (required)")
	cmd.Flags().StringVarP(&f.role, "role", "r", "", "Primary role key (required, see 'hqgen roles')")
	cmd.Flags().StringVar(&f.secondary, "secondary", "", "Secondary role key")
	cmd.Flags().IntVarP(&f.count, "count", "n", 1, "Number of personnel to generate")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed, overrides HQ_SEED")
	cmd.Flags().BoolVar(&f.save, "save", false, "Store the generated personnel")
	_ = cmd.MarkFlagRequired("campaign")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func runGenerate(cmd *cobra.Command, f generateFlags) error {
	if f.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", f.count)
	}
	primary, err := personnel.ParseRole(f.role)
	if err != nil {
		return err
	}
	secondary, err := personnel.ParseRole(f.secondary)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	return withDeps(ctx, depsOptions{Seed: f.seed}, func(d *deps) error {
		c, err := campaign.Load(f.campaignFile, d.Roller)
		if err != nil {
			return fmt.Errorf("loading campaign: %w", err)
		}
		if f.save && c.IDGenerated() {
			return fmt.Errorf("campaign file %s has no id, --save needs one so 'hqgen roster' can find the recruits (files written by 'hqgen campaign' carry one)", f.campaignFile)
		}

		gen := generator.NewDefaultGenerator(&generator.StepsConfig{
			NameGenerator:    d.Names,
			SkillPreferences: c.SkillPreferences(),
		})
		svc := d.provider(gen).PersonnelService

		if f.save && !d.Persistent {
			log.Println("HQ_REDIS_URL is not set, saved personnel will not outlive this run")
		}

		roles := make([]personnelService.RoleAssignment, f.count)
		for i := range roles {
			roles[i] = personnelService.RoleAssignment{Primary: primary, Secondary: secondary}
		}

		people, err := svc.RecruitBatch(ctx, &personnelService.RecruitBatchInput{
			Campaign: c,
			Roles:    roles,
			DryRun:   !f.save,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s) on %s, campaign %s\n\n", c.Name(), c.Faction().Name, c.CurrentDate().Format(campaign.DateLayout), c.ID())
		return printRoster(out, people, c.CurrentDate())
	})
}

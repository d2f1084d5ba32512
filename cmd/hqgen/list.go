package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dither001/mekhq/internal/domain/campaign"
	"github.com/dither001/mekhq/internal/domain/personnel"
)

func newRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List role keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tCOMBAT")
			for _, r := range personnel.Roles() {
				if r == personnel.RoleNone {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%t\n", r, r.Name(), r.IsCombat())
			}
			return w.Flush()
		},
	}
}

func newFactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factions",
		Short: "List faction codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tCLAN")
			for _, code := range campaign.FactionCodes() {
				f, err := campaign.LookupFaction(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%t\n", f.Code, f.Name, f.Clan)
			}
			return w.Flush()
		},
	}
}

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dither001/mekhq/internal/domain/campaign"
	"github.com/dither001/mekhq/internal/domain/personnel"
)

// printRoster writes people as a table. Ages are computed on the given
// date; a zero date hides the age column.
func printRoster(out io.Writer, people []*personnel.Person, on time.Time) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if on.IsZero() {
		fmt.Fprintln(w, "ID\tNAME\tGENDER\tROLE\tLEVEL\tXP\tPHENOTYPE\tBIRTHDAY")
	} else {
		fmt.Fprintln(w, "ID\tNAME\tGENDER\tROLE\tLEVEL\tXP\tPHENOTYPE\tBIRTHDAY\tAGE")
	}

	for _, p := range people {
		role := p.PrimaryRole.Name()
		if p.SecondaryRole != personnel.RoleNone && p.SecondaryRole != "" {
			role += "/" + p.SecondaryRole.Name()
		}

		phenotype := "-"
		if p.IsClanner() {
			phenotype = p.Phenotype.Name()
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s",
			shortID(p.ID), p.Name, p.Gender, role, p.ExperienceLevel, p.XP,
			phenotype, p.Birthday.Format(campaign.DateLayout))
		if !on.IsZero() {
			fmt.Fprintf(w, "\t%d", p.Age(on))
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

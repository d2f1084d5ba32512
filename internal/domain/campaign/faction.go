package campaign

import (
	"sort"
	"strings"

	hqerr "github.com/dither001/mekhq/internal/errors"
)

// Faction is a playable faction
type Faction struct {
	Code      string
	Name      string
	Clan      bool
	Periphery bool
}

var factions = map[string]*Faction{
	"MERC": {Code: "MERC", Name: "Mercenary"},
	"CC":   {Code: "CC", Name: "Capellan Confederation"},
	"DC":   {Code: "DC", Name: "Draconis Combine"},
	"FS":   {Code: "FS", Name: "Federated Suns"},
	"FWL":  {Code: "FWL", Name: "Free Worlds League"},
	"LA":   {Code: "LA", Name: "Lyran Commonwealth"},
	"FC":   {Code: "FC", Name: "Federated Commonwealth"},
	"FRR":  {Code: "FRR", Name: "Free Rasalhague Republic"},
	"CS":   {Code: "CS", Name: "ComStar"},
	"WOB":  {Code: "WOB", Name: "Word of Blake"},
	"TC":   {Code: "TC", Name: "Taurian Concordat", Periphery: true},
	"MOC":  {Code: "MOC", Name: "Magistracy of Canopus", Periphery: true},
	"OA":   {Code: "OA", Name: "Outworlds Alliance", Periphery: true},
	"MH":   {Code: "MH", Name: "Marian Hegemony", Periphery: true},
	"PIR":  {Code: "PIR", Name: "Pirates", Periphery: true},
	"PER":  {Code: "PER", Name: "Periphery", Periphery: true},
	"CLAN": {Code: "CLAN", Name: "Clan (generic)", Clan: true},
	"CBS":  {Code: "CBS", Name: "Clan Blood Spirit", Clan: true},
	"CB":   {Code: "CB", Name: "Clan Burrock", Clan: true},
	"CCC":  {Code: "CCC", Name: "Clan Cloud Cobra", Clan: true},
	"CCO":  {Code: "CCO", Name: "Clan Coyote", Clan: true},
	"CDS":  {Code: "CDS", Name: "Clan Diamond Shark", Clan: true},
	"CFM":  {Code: "CFM", Name: "Clan Fire Mandrill", Clan: true},
	"CGS":  {Code: "CGS", Name: "Clan Goliath Scorpion", Clan: true},
	"CGB":  {Code: "CGB", Name: "Clan Ghost Bear", Clan: true},
	"CHH":  {Code: "CHH", Name: "Clan Hell's Horses", Clan: true},
	"CIH":  {Code: "CIH", Name: "Clan Ice Hellion", Clan: true},
	"CJF":  {Code: "CJF", Name: "Clan Jade Falcon", Clan: true},
	"CNC":  {Code: "CNC", Name: "Clan Nova Cat", Clan: true},
	"CSJ":  {Code: "CSJ", Name: "Clan Smoke Jaguar", Clan: true},
	"CSR":  {Code: "CSR", Name: "Clan Snow Raven", Clan: true},
	"CSA":  {Code: "CSA", Name: "Clan Star Adder", Clan: true},
	"CSV":  {Code: "CSV", Name: "Clan Steel Viper", Clan: true},
	"CW":   {Code: "CW", Name: "Clan Wolf", Clan: true},
	"CWIE": {Code: "CWIE", Name: "Clan Wolf-in-Exile", Clan: true},
}

// LookupFaction finds a faction by code, ignoring case
func LookupFaction(code string) (*Faction, error) {
	f, ok := factions[strings.ToUpper(code)]
	if !ok {
		return nil, hqerr.NotFoundf("faction '%s' not found", code).
			WithMeta("faction_code", code)
	}
	return f, nil
}

// IsClan reports whether code names a clan faction. Unknown codes are not clan.
func IsClan(code string) bool {
	f, err := LookupFaction(code)
	if err != nil {
		return false
	}
	return f.Clan
}

// FactionCodes lists every known faction code in sorted order
func FactionCodes() []string {
	codes := make([]string, 0, len(factions))
	for code := range factions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

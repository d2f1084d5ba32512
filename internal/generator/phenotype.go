package generator

import (
	"github.com/dither001/mekhq/internal/domain/personnel"
)

var phenotypeFamilies = map[personnel.Role]personnel.Phenotype{
	personnel.RoleMechWarrior: personnel.PhenotypeMechWarrior,

	personnel.RoleGroundVehicleDriver: personnel.PhenotypeVehicle,
	personnel.RoleNavalVehicleDriver:  personnel.PhenotypeVehicle,
	personnel.RoleVTOLPilot:           personnel.PhenotypeVehicle,
	personnel.RoleVehicleGunner:       personnel.PhenotypeVehicle,

	personnel.RoleConventionalPilot: personnel.PhenotypeAerospace,
	personnel.RoleAeroPilot:         personnel.PhenotypeAerospace,
	personnel.RoleProtoMechPilot:    personnel.PhenotypeAerospace,

	personnel.RoleBattleArmor: personnel.PhenotypeBattleArmor,
}

// PhenotypeForRole returns the phenotype family a role can be bred for
func PhenotypeForRole(role personnel.Role) (personnel.Phenotype, bool) {
	ph, ok := phenotypeFamilies[role]
	return ph, ok
}

func phenotypeProbability(c Context, ph personnel.Phenotype) int {
	probs := c.Options().PhenotypeProbabilities
	switch ph {
	case personnel.PhenotypeMechWarrior:
		return probs.MechWarrior
	case personnel.PhenotypeVehicle:
		return probs.Vehicle
	case personnel.PhenotypeAerospace:
		return probs.Aerospace
	case personnel.PhenotypeBattleArmor:
		return probs.BattleArmor
	default:
		return 0
	}
}

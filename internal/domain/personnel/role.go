package personnel

import (
	"sort"

	hqerr "github.com/dither001/mekhq/internal/errors"
)

// Role is the job a person fills in the unit
type Role string

const (
	RoleNone                Role = "none"
	RoleMechWarrior         Role = "mechwarrior"
	RoleAeroPilot           Role = "aero-pilot"
	RoleGroundVehicleDriver Role = "ground-vehicle-driver"
	RoleNavalVehicleDriver  Role = "naval-vehicle-driver"
	RoleVTOLPilot           Role = "vtol-pilot"
	RoleVehicleGunner       Role = "vehicle-gunner"
	RoleBattleArmor         Role = "battle-armor"
	RoleInfantry            Role = "infantry"
	RoleProtoMechPilot      Role = "protomech-pilot"
	RoleConventionalPilot   Role = "conventional-pilot"
	RoleVesselPilot         Role = "vessel-pilot"
	RoleVesselCrew          Role = "vessel-crew"
	RoleVesselGunner        Role = "vessel-gunner"
	RoleNavigator           Role = "navigator"
	RoleMechTech            Role = "mech-tech"
	RoleMechanic            Role = "mechanic"
	RoleAeroTech            Role = "aero-tech"
	RoleBattleArmorTech     Role = "battle-armor-tech"
	RoleAstech              Role = "astech"
	RoleDoctor              Role = "doctor"
	RoleMedic               Role = "medic"
	RoleAdminCommand        Role = "admin-command"
	RoleAdminLogistics      Role = "admin-logistics"
	RoleAdminTransport      Role = "admin-transport"
	RoleAdminHR             Role = "admin-hr"
	RoleLAMPilot            Role = "lam-pilot"
	RoleVehicleCrew         Role = "vehicle-crew"
)

var roleNames = map[Role]string{
	RoleNone:                "None",
	RoleMechWarrior:         "MechWarrior",
	RoleAeroPilot:           "Aerospace Pilot",
	RoleGroundVehicleDriver: "Vehicle Driver (Ground)",
	RoleNavalVehicleDriver:  "Vehicle Driver (Naval)",
	RoleVTOLPilot:           "VTOL Pilot",
	RoleVehicleGunner:       "Vehicle Gunner",
	RoleBattleArmor:         "Battle Armor Pilot",
	RoleInfantry:            "Soldier",
	RoleProtoMechPilot:      "ProtoMech Pilot",
	RoleConventionalPilot:   "Conventional Aircraft Pilot",
	RoleVesselPilot:         "Vessel Pilot",
	RoleVesselCrew:          "Vessel Crew",
	RoleVesselGunner:        "Vessel Gunner",
	RoleNavigator:           "Hyperspace Navigator",
	RoleMechTech:            "Mech Tech",
	RoleMechanic:            "Mechanic",
	RoleAeroTech:            "Aero Tech",
	RoleBattleArmorTech:     "Battle Armor Tech",
	RoleAstech:              "Astech",
	RoleDoctor:              "Doctor",
	RoleMedic:               "Medic",
	RoleAdminCommand:        "Admin/Command",
	RoleAdminLogistics:      "Admin/Logistical",
	RoleAdminTransport:      "Admin/Transport",
	RoleAdminHR:             "Admin/HR",
	RoleLAMPilot:            "LAM Pilot",
	RoleVehicleCrew:         "Vehicle Crew",
}

// Name is the display name of the role
func (r Role) Name() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return string(r)
}

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// IsCombat reports whether the role fights in or crews a combat unit
func (r Role) IsCombat() bool {
	switch r {
	case RoleMechWarrior, RoleAeroPilot, RoleGroundVehicleDriver, RoleNavalVehicleDriver,
		RoleVTOLPilot, RoleVehicleGunner, RoleBattleArmor, RoleInfantry, RoleProtoMechPilot,
		RoleConventionalPilot, RoleVesselPilot, RoleVesselCrew, RoleVesselGunner, RoleNavigator,
		RoleLAMPilot, RoleVehicleCrew:
		return true
	default:
		return false
	}
}

// ParseRole resolves a role key. The empty string is RoleNone.
func ParseRole(key string) (Role, error) {
	if key == "" {
		return RoleNone, nil
	}
	r := Role(key)
	if !r.Valid() {
		return RoleNone, hqerr.InvalidArgumentf("unknown role '%s'", key).
			WithMeta("role", key)
	}
	return r, nil
}

// Roles lists every role key in sorted order
func Roles() []Role {
	out := make([]Role, 0, len(roleNames))
	for r := range roleNames {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

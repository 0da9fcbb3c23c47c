package models

import "fmt"

// CanAssign decides whether a new active assignment under the given role is
// permitted at a plantel. It is a pure decision over a point-in-time
// occupancy snapshot supplied by the caller; it performs no queries.
//
// Both the role-specific ceiling and the aggregate user ceiling must pass.
// Administrators are exempt from per-role ceilings but still consume an
// aggregate slot. A nil ceiling means unlimited.
func CanAssign(limits PlantelLimits, occupancy Occupancy, role Role) (bool, string) {
	switch role {
	case RoleTeacher:
		if limits.MaxProfesores != nil && occupancy.Teachers >= *limits.MaxProfesores {
			return false, fmt.Sprintf("teacher limit reached (%d)", *limits.MaxProfesores)
		}
	case RoleDirector:
		if limits.MaxDirectores != nil && occupancy.Directors >= *limits.MaxDirectores {
			return false, fmt.Sprintf("director limit reached (%d)", *limits.MaxDirectores)
		}
	case RoleAdministrator:
		// no per-role ceiling
	default:
		return false, fmt.Sprintf("unknown role %q", role)
	}

	if limits.MaxUsuarios != nil && occupancy.Users >= *limits.MaxUsuarios {
		return false, fmt.Sprintf("user limit reached (%d)", *limits.MaxUsuarios)
	}

	return true, ""
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func limit(v int) *int { return &v }

func TestCanAssignRoleCeiling(t *testing.T) {
	limits := PlantelLimits{
		MaxUsuarios:   limit(50),
		MaxProfesores: limit(10),
	}
	occupancy := Occupancy{Users: 12, Teachers: 10, Directors: 2}

	// Aggregate room remains, but the teacher ceiling is full.
	ok, reason := CanAssign(limits, occupancy, RoleTeacher)
	assert.False(t, ok)
	assert.Contains(t, reason, "teacher limit")

	ok, _ = CanAssign(limits, occupancy, RoleDirector)
	assert.True(t, ok)
}

func TestCanAssignAggregateCeiling(t *testing.T) {
	limits := PlantelLimits{
		MaxUsuarios:   limit(12),
		MaxProfesores: limit(20),
	}
	occupancy := Occupancy{Users: 12, Teachers: 5}

	// Role ceiling has room, but the plantel is full overall.
	ok, reason := CanAssign(limits, occupancy, RoleTeacher)
	assert.False(t, ok)
	assert.Contains(t, reason, "user limit")
}

func TestCanAssignDirectorCeiling(t *testing.T) {
	limits := PlantelLimits{MaxDirectores: limit(1)}
	occupancy := Occupancy{Users: 3, Directors: 1}

	ok, reason := CanAssign(limits, occupancy, RoleDirector)
	assert.False(t, ok)
	assert.Contains(t, reason, "director limit")
}

func TestCanAssignAdministratorExemptFromRoleCeilings(t *testing.T) {
	limits := PlantelLimits{
		MaxUsuarios:   limit(20),
		MaxProfesores: limit(0),
		MaxDirectores: limit(0),
	}
	occupancy := Occupancy{Users: 5, Administrators: 3}

	ok, _ := CanAssign(limits, occupancy, RoleAdministrator)
	assert.True(t, ok)
}

func TestCanAssignAdministratorCountsTowardAggregate(t *testing.T) {
	limits := PlantelLimits{MaxUsuarios: limit(5)}
	occupancy := Occupancy{Users: 5, Administrators: 5}

	ok, reason := CanAssign(limits, occupancy, RoleAdministrator)
	assert.False(t, ok)
	assert.Contains(t, reason, "user limit")
}

func TestCanAssignNilCeilingsUnlimited(t *testing.T) {
	occupancy := Occupancy{Users: 100000, Teachers: 90000, Directors: 5000}

	for _, role := range []Role{RoleTeacher, RoleDirector, RoleAdministrator} {
		ok, reason := CanAssign(PlantelLimits{}, occupancy, role)
		assert.True(t, ok, "role %s: %s", role, reason)
	}
}

func TestCanAssignBoundary(t *testing.T) {
	limits := PlantelLimits{MaxProfesores: limit(10), MaxUsuarios: limit(30)}

	// One below the ceiling still fits.
	ok, _ := CanAssign(limits, Occupancy{Users: 15, Teachers: 9}, RoleTeacher)
	assert.True(t, ok)

	// At the ceiling it does not.
	ok, _ = CanAssign(limits, Occupancy{Users: 15, Teachers: 10}, RoleTeacher)
	assert.False(t, ok)
}

func TestCanAssignUnknownRole(t *testing.T) {
	ok, reason := CanAssign(PlantelLimits{}, Occupancy{}, Role("janitor"))
	assert.False(t, ok)
	assert.Contains(t, reason, "unknown role")
}

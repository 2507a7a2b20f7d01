package domain

import "strings"

// Role is a job role label. Known roles have constants below, but the set
// is open: snapshots written by newer clients may carry labels this build
// does not know, and they must still load.
type Role string

const (
	RolePM                   Role = "PM"
	RoleGM                   Role = "GM"
	RoleForeman              Role = "Foreman"
	RoleSuper                Role = "Super"
	RoleElectrician          Role = "Electrician"
	RoleFireAlarmElectrician Role = "Fire Alarm Electrician"
	RoleRoughingElectrician  Role = "Roughing Electrician"
)

// IsElectrician reports whether the role belongs to the electrician family
// and therefore rides in a hub's roster rather than a fixed slot.
func (r Role) IsElectrician() bool {
	switch r {
	case RoleElectrician, RoleFireAlarmElectrician, RoleRoughingElectrician:
		return true
	}
	return false
}

// AllowedSick reports whether the role is eligible for automatic absence
// marking. Administrative roles (PM, GM, Super) are not tracked for daily
// attendance and must never be auto-marked absent.
func (r Role) AllowedSick() bool {
	switch r {
	case RoleElectrician, RoleRoughingElectrician, RoleForeman, RoleFireAlarmElectrician:
		return true
	}
	return false
}

// Status is an employee's current attendance status.
type Status string

const (
	StatusOnSite     Status = "On-site"
	StatusSick       Status = "Sick"
	StatusUnassigned Status = "Unassigned"
)

// UnassignedSite is the sentinel job-site reference for employees that are
// not placed anywhere.
const UnassignedSite = "Unassigned"

// SickLabel is the reserved feed location label meaning "absent today".
const SickLabel = "Sick"

// Employee is a single person in the directory. Identity is the full name,
// compared case-insensitively via NameKey. Employees are never deleted;
// they go Unassigned or Sick instead.
type Employee struct {
	Name    string
	Role    Role
	Skills  []string
	Status  Status
	JobSite string // hub name, or UnassignedSite
}

// NameKey normalizes a full name into the directory lookup key: leading and
// trailing space trimmed, internal whitespace runs collapsed to one space,
// lowercased.
func NameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// CleanName trims and collapses whitespace but keeps the original casing,
// producing the canonical display form of a name.
func CleanName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

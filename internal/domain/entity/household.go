// Package entity contains the core business objects of the registry,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// HouseholdStatus is the lifecycle state of a household record.
type HouseholdStatus string

const (
	// HouseholdInactive is the state of a newly created household before a
	// head of household has been assigned.
	HouseholdInactive HouseholdStatus = "inactive"
	// HouseholdActive is the state of a household with an assigned head.
	HouseholdActive HouseholdStatus = "active"
)

// Household is an administrative unit grouping residents at one registered
// address (so ho khau). A household is created inactive with no head and
// becomes active only through an explicit activation that assigns the head.
type Household struct {
	ID       uint
	SoHoKhau string // Unique household code, e.g. "HK-7F3KQ2MD".
	DiaChi   string // Registered street address.
	Phuong   string // Ward.
	Quan     string // District.
	ThanhPho string // City/province.
	Status   HouseholdStatus
	ChuHoID  *uint // Head of household; nil while inactive.

	NhanKhaus []*Resident // Members, when loaded.

	CreatedAt time.Time
	UpdatedAt time.Time
}

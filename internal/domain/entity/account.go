package entity

import "time"

// Role is the authorization role carried by an account.
type Role string

const (
	// RoleToTruong is the neighborhood-group leader; full review authority.
	RoleToTruong Role = "to_truong"
	// RoleToPho is the deputy leader; same review authority as to_truong.
	RoleToPho Role = "to_pho"
	// RoleCanBo is a registry officer.
	RoleCanBo Role = "can_bo"
	// RoleNguoiDan is a citizen account.
	RoleNguoiDan Role = "nguoi_dan"
)

// IsValid reports whether r is one of the accepted role values.
func (r Role) IsValid() bool {
	switch r {
	case RoleToTruong, RoleToPho, RoleCanBo, RoleNguoiDan:
		return true
	}
	return false
}

// CanReview reports whether the role may approve or reject requests.
func (r Role) CanReview() bool {
	return r == RoleToTruong || r == RoleToPho || r == RoleCanBo
}

// Account is a login account (tai khoan), optionally linked to a resident.
// Accounts are provisioned administratively; there is no self-registration.
type Account struct {
	ID           uint
	Username     string
	PasswordHash string
	Role         Role
	NhanKhauID   *uint // Linked resident, when the account belongs to one.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor is the authenticated identity attached to every registry call by the
// delivery layer. The core trusts it and performs no credential checks.
type Actor struct {
	ID         uint
	Role       Role
	NhanKhauID *uint
}

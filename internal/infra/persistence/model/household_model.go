package model

import "time"

// HouseholdModel is the GORM-specific struct for the 'ho_khau' table.
type HouseholdModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	SoHoKhau  string `gorm:"type:varchar(32);not null;uniqueIndex"`
	DiaChi    string `gorm:"type:varchar(255);not null"`
	Phuong    string `gorm:"type:varchar(100)"`
	Quan      string `gorm:"type:varchar(100)"`
	ThanhPho  string `gorm:"type:varchar(100)"`
	Status    string `gorm:"type:varchar(16);not null;default:'inactive';index"`
	ChuHoID   *uint  `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HouseholdModel) TableName() string {
	return "ho_khau"
}

package model

import "time"

// TempResidenceModel is the GORM-specific struct for the 'tam_tru_vang'
// table, holding both temporary residence and temporary absence periods.
type TempResidenceModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	NhanKhauID    uint      `gorm:"not null;index"`
	Type          string    `gorm:"type:varchar(16);not null"`
	TuNgay        time.Time `gorm:"not null"`
	DenNgay       *time.Time
	DiaChi        string `gorm:"type:varchar(255)"`
	LyDo          string `gorm:"type:text"`
	NguoiDangKyID uint   `gorm:"not null"`
	NguoiDuyetID  *uint
	Status        string `gorm:"type:varchar(16);not null;default:'cho_duyet';index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (TempResidenceModel) TableName() string {
	return "tam_tru_vang"
}

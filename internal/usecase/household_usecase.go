package usecase

import (
	"context"

	"hokhau/internal/domain/entity"
)

// CreateHouseholdInput carries the address of a household to register.
// New households start inactive with no head.
type CreateHouseholdInput struct {
	DiaChi   string `json:"diaChi" validate:"required"`
	Phuong   string `json:"phuong"`
	Quan     string `json:"quan"`
	ThanhPho string `json:"thanhPho"`
}

// HouseholdUsecase covers household administration outside the request flow.
type HouseholdUsecase interface {
	// List retrieves all households.
	List(ctx context.Context) ([]*entity.Household, error)

	// Get retrieves a household together with its members.
	Get(ctx context.Context, id uint) (*entity.Household, error)

	// Create registers a new inactive household with a generated code.
	Create(ctx context.Context, input *CreateHouseholdInput) (*entity.Household, error)

	// Activate assigns the head of household and marks the household active,
	// atomically. The designated resident must belong to the household and
	// no other member may already hold the chu_ho relation.
	Activate(ctx context.Context, id uint, chuHoID uint) (*entity.Household, error)

	// ListResidents retrieves the household's members.
	ListResidents(ctx context.Context, id uint) ([]*entity.Resident, error)

	// ListAudit retrieves the household's change history, newest first.
	ListAudit(ctx context.Context, id uint) ([]*entity.AuditEntry, error)
}

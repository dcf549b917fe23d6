// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hokhau/internal/domain/entity"
)

// ErrHouseholdNotFound is a domain-specific error returned when a household is not found.
var ErrHouseholdNotFound = errors.New("household not found")

// HouseholdRepository defines the standard operations for household persistence.
type HouseholdRepository interface {
	// FindByID retrieves a single household by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Household, error)

	// FindBySoHoKhau retrieves a household by its unique code.
	FindBySoHoKhau(ctx context.Context, soHoKhau string) (*entity.Household, error)

	// List retrieves all households ordered by ID.
	List(ctx context.Context) ([]*entity.Household, error)

	// Create persists a new household entity to the storage.
	Create(ctx context.Context, household *entity.Household) error

	// SetHead updates the household's head-of-household reference only.
	SetHead(ctx context.Context, id uint, chuHoID *uint) error

	// Activate marks the household active and assigns its head in one update.
	Activate(ctx context.Context, id uint, chuHoID uint) error

	// Deactivate marks the household inactive and clears its head.
	Deactivate(ctx context.Context, id uint) error
}

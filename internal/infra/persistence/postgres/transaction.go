package postgres

import (
	"context"
	"fmt"

	"hokhau/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewRequestRepository creates a request repository bound to the transaction.
func (f *gormRepositoryFactory) NewRequestRepository() repository.RequestRepository {
	return NewRequestRepository(f.tx)
}

// NewHouseholdRepository creates a household repository bound to the transaction.
func (f *gormRepositoryFactory) NewHouseholdRepository() repository.HouseholdRepository {
	return NewHouseholdRepository(f.tx)
}

// NewResidentRepository creates a resident repository bound to the transaction.
func (f *gormRepositoryFactory) NewResidentRepository() repository.ResidentRepository {
	return NewResidentRepository(f.tx)
}

// NewTempResidenceRepository creates a temporary-record repository bound to the transaction.
func (f *gormRepositoryFactory) NewTempResidenceRepository() repository.TempResidenceRepository {
	return NewTempResidenceRepository(f.tx)
}

// NewLifeEventRepository creates a life-event repository bound to the transaction.
func (f *gormRepositoryFactory) NewLifeEventRepository() repository.LifeEventRepository {
	return NewLifeEventRepository(f.tx)
}

// NewAuditRepository creates an audit repository bound to the transaction.
func (f *gormRepositoryFactory) NewAuditRepository() repository.AuditRepository {
	return NewAuditRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

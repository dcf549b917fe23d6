package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// Every approval handler runs entirely against one factory so that all of its
// mutations commit or roll back together.
type RepositoryFactory interface {
	// NewRequestRepository returns a RequestRepository bound to the current transaction.
	NewRequestRepository() RequestRepository

	// NewHouseholdRepository returns a HouseholdRepository bound to the current transaction.
	NewHouseholdRepository() HouseholdRepository

	// NewResidentRepository returns a ResidentRepository bound to the current transaction.
	NewResidentRepository() ResidentRepository

	// NewTempResidenceRepository returns a TempResidenceRepository bound to the current transaction.
	NewTempResidenceRepository() TempResidenceRepository

	// NewLifeEventRepository returns a LifeEventRepository bound to the current transaction.
	NewLifeEventRepository() LifeEventRepository

	// NewAuditRepository returns an AuditRepository bound to the current transaction.
	NewAuditRepository() AuditRepository
}

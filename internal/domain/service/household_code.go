package service

// HouseholdCodeGenerator produces unique household codes (so ho khau) on
// demand. The split handler and household creation call it; collision
// handling is the caller's responsibility via the unique column.
type HouseholdCodeGenerator interface {
	// Generate returns a new opaque household code.
	Generate() string
}

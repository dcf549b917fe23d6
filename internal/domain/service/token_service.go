package service

import (
	"github.com/golang-jwt/jwt/v5"

	"hokhau/internal/domain/entity"
)

// Claims defines the custom claims carried by registry access tokens.
type Claims struct {
	AccountID  uint        `json:"accountId"`
	Role       entity.Role `json:"role"`
	NhanKhauID *uint       `json:"nhanKhauId,omitempty"`
	jwt.RegisteredClaims
}

// Actor converts the claims into the authenticated actor the usecases trust.
func (c *Claims) Actor() entity.Actor {
	return entity.Actor{
		ID:         c.AccountID,
		Role:       c.Role,
		NhanKhauID: c.NhanKhauID,
	}
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the given account.
	GenerateToken(account *entity.Account) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}

package usecase

import (
	"context"

	"hokhau/internal/domain/entity"
)

// LoginInput carries login credentials.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued token and the account it belongs to.
type LoginOutput struct {
	Token      string      `json:"token"`
	AccountID  uint        `json:"accountId"`
	Username   string      `json:"username"`
	Role       entity.Role `json:"role"`
	NhanKhauID *uint       `json:"nhanKhauId,omitempty"`
}

// AuthUsecase covers account authentication. Accounts are provisioned
// administratively; there is no self-registration flow.
type AuthUsecase interface {
	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

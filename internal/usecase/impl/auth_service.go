package impl

import (
	"context"

	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/domain/service"
	"hokhau/internal/errors"
	"hokhau/internal/usecase"

	"go.uber.org/fx"
)

type authService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokenSvc    service.TokenService
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	TokenSvc    service.TokenService
}

// NewAuthService creates the authentication service.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		tokenSvc:    params.TokenSvc,
	}
}

// Login verifies credentials and issues an access token. Unknown usernames and
// wrong passwords return the same error so callers cannot probe for accounts.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := s.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "failed to load account")
	}

	if !s.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.GenerateToken(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.LoginOutput{
		Token:      token,
		AccountID:  account.ID,
		Username:   account.Username,
		Role:       account.Role,
		NhanKhauID: account.NhanKhauID,
	}, nil
}

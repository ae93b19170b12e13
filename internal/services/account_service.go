package services

import (
	"context"
	"time"

	"insura/internal/models/db_models"
	"insura/internal/models/request_models"
	"insura/internal/models/response_models"
	"insura/internal/repositories"
	mem "insura/pkg/memcache"
	"insura/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Logout(token string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	denylist    mem.TokenDenylist
}

func NewAccountService(accountRepo repositories.AccountRepository, denylist mem.TokenDenylist) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		denylist:    denylist,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		User: response_models.UserProfile{
			ID:    account.ID,
			Name:  account.Name,
			Email: account.Email,
			Role:  account.Role,
		},
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// Logout denylists the token for the rest of its lifetime so the
// stateless JWT cannot be replayed.
func (a *AccountService) Logout(token string) error {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return utils.ErrInvalidCredentials
	}

	ttl := 12 * time.Hour
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}
	a.denylist.Revoke(token, ttl)
	return nil
}

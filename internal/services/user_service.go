package services

import (
	"context"
	"fmt"

	"github.com/farmledger/api/internal/auth"
	"github.com/farmledger/api/internal/logger"
	"github.com/farmledger/api/internal/models"
	"github.com/farmledger/api/internal/repository"
)

// RegisterInput carries the attributes of a new account.
type RegisterInput struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginInput carries a credential pair.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResult is a signed token together with the account it belongs to.
type AuthResult struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UserService defines registration and login.
type UserService interface {
	// Register creates an account. Returns ErrDuplicate when the email or
	// the account name is already taken.
	Register(ctx context.Context, input RegisterInput) (*UserDTO, error)

	// Login verifies a credential pair and issues a token.
	// Returns ErrCredentials when the pair does not match; a missing account
	// is indistinguishable from a wrong password.
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
}

type userService struct {
	store  *repository.Store
	issuer *auth.TokenIssuer
	log    *logger.Logger
}

// NewUserService creates a new UserService.
func NewUserService(store *repository.Store, issuer *auth.TokenIssuer, log *logger.Logger) UserService {
	return &userService{store: store, issuer: issuer, log: log}
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (*UserDTO, error) {
	if existing, err := s.store.Users.ByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("email %q: %w", input.Email, ErrDuplicate)
	}
	if existing, err := s.store.Users.ByName(ctx, input.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("account name %q: %w", input.Name, ErrDuplicate)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := s.store.Users.Add(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.log.Info("User registered", map[string]interface{}{
		"user_id": user.ID,
	})
	dto := userDTO(user)
	return &dto, nil
}

func (s *userService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.store.Users.ByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, input.Password) {
		return nil, ErrCredentials
	}
	token, err := s.issuer.Sign(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	s.log.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
	})
	return &AuthResult{Token: token, User: userDTO(user)}, nil
}

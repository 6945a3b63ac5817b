package service

import (
	"context"
	"errors"

	"github.com/blogapi/blogapi-go/internal/crypto"
	"github.com/blogapi/blogapi-go/internal/model"
	"github.com/blogapi/blogapi-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

// TokenTypeBearer is the token_type of every issued access token.
const TokenTypeBearer = "bearer"

// AuthService handles authentication business logic.
type AuthService struct {
	users  UserStore
	hasher *crypto.Hasher
	tokens *crypto.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher *crypto.Hasher, tokens *crypto.TokenService) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Login authenticates a user by email and password and returns an access token.
// Unknown emails and wrong passwords fail with the same error.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenResponse{}, ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
	}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogapi/blogapi-go/internal/crypto"
	"github.com/blogapi/blogapi-go/internal/model"
	"github.com/blogapi/blogapi-go/internal/repository"
)

var (
	ErrEmailTaken      = errors.New("email already taken")
	ErrUserNotFound    = errors.New("user not found")
	ErrPasswordTooLong = errors.New("password too long")
)

// UserService handles user registration and lookup.
type UserService struct {
	users  UserStore
	hasher *crypto.Hasher
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, hasher *crypto.Hasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// Create registers a new user. The password is stored only as a bcrypt hash.
func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (model.UserResponse, error) {
	email := normalizeEmail(req.Email)

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return model.UserResponse{}, ErrEmailTaken
	case !errors.Is(err, repository.ErrUserNotFound):
		return model.UserResponse{}, fmt.Errorf("looking up email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return model.UserResponse{}, ErrPasswordTooLong
		}
		return model.UserResponse{}, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return model.ToUserResponse(user), nil
}

// Get retrieves the public view of a user.
func (s *UserService) Get(ctx context.Context, id int64) (model.ShowUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.ShowUser{}, ErrUserNotFound
		}
		return model.ShowUser{}, err
	}

	return model.ToShowUser(user), nil
}

// normalizeEmail folds case so lookups agree with MySQL's case-insensitive
// collation on users.email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

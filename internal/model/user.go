package model

import "time"

// User represents a registered user in the database.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// CreateUserRequest represents a user registration request.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// LoginRequest carries OAuth2 password-flow credentials. Username is the email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse represents a newly created user (no password hash).
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ShowUser is the public view of a user.
type ShowUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToUserResponse projects a persisted user onto its creation response.
func ToUserResponse(u *User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// ToShowUser projects a persisted user onto its public view.
func ToShowUser(u *User) ShowUser {
	return ShowUser{Name: u.Name, Email: u.Email}
}

package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogapi/blogapi-go/internal/model"
)

func TestCreateUser(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/user", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, strings.ToLower(rec.Body.String()), "password")

	var resp model.UserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, model.UserResponse{ID: 1, Name: "Alice", Email: "alice@example.com"}, resp)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "Alice", "alice@example.com", "first")

	rec := s.do(t, http.MethodPost, "/user", "", map[string]string{
		"name": "Mallory", "email": "alice@example.com", "password": "second",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email alice@example.com already exists", decodeDetail(t, rec))

	// The first account still logs in with its original password.
	s.login(t, "alice@example.com", "first")
}

func TestCreateUserValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{"missing name", map[string]string{"email": "a@example.com", "password": "pw"}, http.StatusUnprocessableEntity},
		{"bad email", map[string]string{"name": "A", "email": "not-an-email", "password": "pw"}, http.StatusUnprocessableEntity},
		{"missing password", map[string]string{"name": "A", "email": "a@example.com"}, http.StatusUnprocessableEntity},
		{"password over bcrypt limit", map[string]string{"name": "A", "email": "a@example.com", "password": strings.Repeat("x", 73)}, http.StatusUnprocessableEntity},
		{"multibyte password over bcrypt limit", map[string]string{"name": "A", "email": "a@example.com", "password": strings.Repeat("é", 40)}, http.StatusUnprocessableEntity},
		{"not json", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/user", "", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestCreateUserMultibytePassword(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/user", "", map[string]string{
		"name": "A", "email": "a@example.com", "password": strings.Repeat("é", 40),
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "password failed on the 'maxbytes' rule", decodeDetail(t, rec))

	// 36 two-byte runes fill the 72-byte limit exactly.
	s.register(t, "A", "a@example.com", strings.Repeat("é", 36))
	s.login(t, "a@example.com", strings.Repeat("é", 36))
}

func TestGetUser(t *testing.T) {
	s := newTestServer(t)
	alice := s.register(t, "Alice", "alice@example.com", "s3cret")

	rec := s.do(t, http.MethodGet, "/user/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var show model.ShowUser
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&show))
	assert.Equal(t, model.ShowUser{Name: alice.Name, Email: alice.Email}, show)
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestServer(t)

	for _, id := range []string{"42", "abc"} {
		rec := s.do(t, http.MethodGet, "/user/"+id, "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User with id = "+id+" does not exist", decodeDetail(t, rec))
	}
}

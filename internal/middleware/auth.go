package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/blogapi/blogapi-go/internal/model"
	"github.com/blogapi/blogapi-go/internal/repository"
)

type contextKey string

const userKey contextKey = "user"

const credentialsDetail = "Could not validate credentials"

// TokenVerifier returns the subject of a valid bearer token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserLookup resolves a token subject to a user.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header and stores the matching user in the request context.
func JWTAuth(tokens TokenVerifier, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				Unauthorized(w, credentialsDetail)
				return
			}

			email, err := tokens.Verify(token)
			if err != nil {
				Unauthorized(w, credentialsDetail)
				return
			}

			user, err := users.GetByEmail(r.Context(), email)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					Unauthorized(w, credentialsDetail)
					return
				}
				slog.Error("resolving token subject", "error", err)
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// AuthenticatedHandlerFunc is a handler that receives the authenticated user
// explicitly.
type AuthenticatedHandlerFunc func(w http.ResponseWriter, r *http.Request, user *model.User)

// RequireUser adapts h to a plain handler. Requests without an authenticated
// user are rejected with 401.
func RequireUser(h AuthenticatedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			Unauthorized(w, credentialsDetail)
			return
		}
		h(w, r, user)
	}
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok && user != nil
}

// Unauthorized writes a 401 with a Bearer challenge.
func Unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeJSONError(w, http.StatusUnauthorized, detail)
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeJSONError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Detail: detail})
}

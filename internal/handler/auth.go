package handler

import (
	"errors"
	"mime"
	"net/http"

	"github.com/blogapi/blogapi-go/internal/middleware"
	"github.com/blogapi/blogapi-go/internal/model"
	"github.com/blogapi/blogapi-go/internal/service"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleLogin handles POST /login requests. It accepts the OAuth2 password
// form (username, password) as well as the same fields as JSON.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLogin(w, r)
	if err != nil {
		writeRequestError(w, r, err)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.Unauthorized(w, "Incorrect username or password")
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func decodeLogin(w http.ResponseWriter, r *http.Request) (model.LoginRequest, error) {
	var req model.LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/x-www-form-urlencoded" {
		err := decodeJSON(w, r, &req)
		return req, err
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, &requestError{http.StatusRequestEntityTooLarge, "request body too large"}
		}
		return req, &requestError{http.StatusBadRequest, "invalid request body"}
	}

	req.Username = r.PostFormValue("username")
	req.Password = r.PostFormValue("password")
	return req, validateRequest(&req)
}

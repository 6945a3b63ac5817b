package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/blogapi/blogapi-go/internal/model"
	"github.com/blogapi/blogapi-go/internal/service"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleCreateUser handles POST /user requests.
func (h *UserHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeRequestError(w, r, err)
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeJSON(w, http.StatusConflict, errorResponse(fmt.Sprintf("Email %s already exists", req.Email)))
			return
		}
		if errors.Is(err, service.ErrPasswordTooLong) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse("password failed on the 'maxbytes' rule"))
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGetUser handles GET /user/{id} requests.
func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	raw, id, ok := idParam(r)
	if !ok {
		writeUserNotFound(w, raw)
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeUserNotFound(w, raw)
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeUserNotFound(w http.ResponseWriter, id string) {
	writeJSON(w, http.StatusNotFound, errorResponse(fmt.Sprintf("User with id = %s does not exist", id)))
}

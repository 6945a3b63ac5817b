package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/blogapi/blogapi-go/internal/model"
)

const maxBodyBytes = 1 << 20 // 1MB

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	return v
}

// maxBytes limits a string's length in bytes rather than runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// requestError is a client error with the status it should be reported with.
type requestError struct {
	status int
	detail string
}

func (e *requestError) Error() string { return e.detail }

// decodeJSON reads a size-limited JSON body into v and validates it.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &requestError{http.StatusRequestEntityTooLarge, "request body too large"}
		}
		return &requestError{http.StatusBadRequest, "invalid request body"}
	}

	return validateRequest(v)
}

// validateRequest reports the first failing field as a 422.
func validateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &requestError{http.StatusUnprocessableEntity, fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())}
	}
	return &requestError{http.StatusUnprocessableEntity, "invalid request"}
}

// writeRequestError writes a requestError with its status. Any other error
// is reported as an internal error.
func writeRequestError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *requestError
	if !errors.As(err, &reqErr) {
		writeInternalError(w, r, err)
		return
	}
	writeJSON(w, reqErr.status, errorResponse(reqErr.detail))
}

// idParam parses the {id} URL parameter. ok is false for non-numeric ids,
// which callers treat as missing entities.
func idParam(r *http.Request) (raw string, id int64, ok bool) {
	raw = chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	return raw, id, err == nil
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(detail string) model.ErrorResponse {
	return model.ErrorResponse{Detail: detail}
}

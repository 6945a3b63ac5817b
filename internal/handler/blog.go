package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/blogapi/blogapi-go/internal/model"
	"github.com/blogapi/blogapi-go/internal/service"
)

const defaultPageLimit = 10

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	service *service.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(svc *service.BlogService) *BlogHandler {
	return &BlogHandler{service: svc}
}

// HandleListBlogs handles GET /blogs?offset=&limit= requests.
func (h *BlogHandler) HandleListBlogs(w http.ResponseWriter, r *http.Request) {
	params, err := pageParams(r)
	if err != nil {
		writeRequestError(w, r, err)
		return
	}

	blogs, err := h.service.List(r.Context(), params)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, blogs)
}

// HandleGetBlog handles GET /blog/{id} requests.
func (h *BlogHandler) HandleGetBlog(w http.ResponseWriter, r *http.Request) {
	raw, id, ok := idParam(r)
	if !ok {
		writeBlogNotFound(w, raw)
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeBlogError(w, r, raw, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCreateBlog handles POST /blog requests.
func (h *BlogHandler) HandleCreateBlog(w http.ResponseWriter, r *http.Request, user *model.User) {
	var req model.CreateBlogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeRequestError(w, r, err)
		return
	}

	resp, err := h.service.Create(r.Context(), user, req)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdateBlog handles PATCH /blog/{id} requests.
func (h *BlogHandler) HandleUpdateBlog(w http.ResponseWriter, r *http.Request, user *model.User) {
	raw, id, ok := idParam(r)
	if !ok {
		writeBlogNotFound(w, raw)
		return
	}

	var req model.UpdateBlogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeRequestError(w, r, err)
		return
	}

	resp, err := h.service.Update(r.Context(), user, id, req)
	if err != nil {
		h.writeBlogError(w, r, raw, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeleteBlog handles DELETE /blog/{id} requests.
func (h *BlogHandler) HandleDeleteBlog(w http.ResponseWriter, r *http.Request, user *model.User) {
	raw, id, ok := idParam(r)
	if !ok {
		writeBlogNotFound(w, raw)
		return
	}

	if err := h.service.Delete(r.Context(), user, id); err != nil {
		h.writeBlogError(w, r, raw, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *BlogHandler) writeBlogError(w http.ResponseWriter, r *http.Request, id string, err error) {
	switch {
	case errors.Is(err, service.ErrBlogNotFound):
		writeBlogNotFound(w, id)
	case errors.Is(err, service.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse(fmt.Sprintf("Not allowed to modify blog with id = %s", id)))
	default:
		writeInternalError(w, r, err)
	}
}

func writeBlogNotFound(w http.ResponseWriter, id string) {
	writeJSON(w, http.StatusNotFound, errorResponse(fmt.Sprintf("Blog with id = %s does not exist", id)))
}

func pageParams(r *http.Request) (model.ListBlogsParams, error) {
	params := model.ListBlogsParams{Limit: defaultPageLimit}
	q := r.URL.Query()

	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, &requestError{http.StatusUnprocessableEntity, "offset must be an integer"}
		}
		params.Offset = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, &requestError{http.StatusUnprocessableEntity, "limit must be an integer"}
		}
		params.Limit = n
	}

	return params, validateRequest(&params)
}

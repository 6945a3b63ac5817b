package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/blogapi/blogapi-go/internal/middleware"
)

// Routes bundles everything the HTTP surface needs.
type Routes struct {
	Auth        *AuthHandler
	Users       *UserHandler
	Blogs       *BlogHandler
	Tokens      middleware.TokenVerifier
	UserLookup  middleware.UserLookup
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the chi router for the blog API.
func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if rt.RateLimiter != nil {
			r.Use(rt.RateLimiter.Handler)
		}
		r.Post("/login", rt.Auth.HandleLogin)
		r.Post("/user", rt.Users.HandleCreateUser)
	})

	r.Get("/user/{id}", rt.Users.HandleGetUser)
	r.Get("/blogs", rt.Blogs.HandleListBlogs)
	r.Get("/blog/{id}", rt.Blogs.HandleGetBlog)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(rt.Tokens, rt.UserLookup))
		r.Post("/blog", middleware.RequireUser(rt.Blogs.HandleCreateBlog))
		r.Patch("/blog/{id}", middleware.RequireUser(rt.Blogs.HandleUpdateBlog))
		r.Delete("/blog/{id}", middleware.RequireUser(rt.Blogs.HandleDeleteBlog))
	})

	return r
}

package service

import (
	"context"

	"github.com/blogapi/blogapi-go/internal/model"
)

// UserStore persists users. Implementations return repository.ErrUserNotFound
// and repository.ErrDuplicateEmail.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// BlogStore persists blogs. Implementations return repository.ErrBlogNotFound.
type BlogStore interface {
	Create(ctx context.Context, blog *model.Blog) error
	GetByID(ctx context.Context, id int64) (*model.Blog, error)
	List(ctx context.Context, offset, limit int) ([]model.Blog, error)
	Update(ctx context.Context, blog *model.Blog) error
	Delete(ctx context.Context, id int64) error
}

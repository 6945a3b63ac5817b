package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/blogapi/blogapi-go/internal/model"
)

// MemoryUserRepository is an in-process user store used when no database
// is configured. Data is lost on restart.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]model.User
}

// NewMemoryUserRepository creates an empty MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[int64]model.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicateEmail
		}
	}

	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

// MemoryBlogRepository is an in-process blog store used when no database
// is configured.
type MemoryBlogRepository struct {
	mu     sync.RWMutex
	nextID int64
	blogs  map[int64]model.Blog
}

// NewMemoryBlogRepository creates an empty MemoryBlogRepository.
func NewMemoryBlogRepository() *MemoryBlogRepository {
	return &MemoryBlogRepository{blogs: make(map[int64]model.Blog)}
}

func (r *MemoryBlogRepository) Create(_ context.Context, blog *model.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	r.nextID++
	blog.ID = r.nextID
	blog.CreatedAt = now
	blog.UpdatedAt = now
	r.blogs[blog.ID] = copyBlog(*blog)
	return nil
}

func (r *MemoryBlogRepository) GetByID(_ context.Context, id int64) (*model.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.blogs[id]
	if !ok {
		return nil, ErrBlogNotFound
	}
	b = copyBlog(b)
	return &b, nil
}

func (r *MemoryBlogRepository) List(_ context.Context, offset, limit int) ([]model.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.blogs))
	for id := range r.blogs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	blogs := []model.Blog{}
	for i := offset; i < len(ids) && len(blogs) < limit; i++ {
		blogs = append(blogs, copyBlog(r.blogs[ids[i]]))
	}
	return blogs, nil
}

func (r *MemoryBlogRepository) Update(_ context.Context, blog *model.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.blogs[blog.ID]
	if !ok {
		return ErrBlogNotFound
	}

	stored.Title = blog.Title
	stored.Body = blog.Body
	stored.UpdatedAt = time.Now().UTC()
	r.blogs[blog.ID] = stored
	blog.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *MemoryBlogRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blogs[id]; !ok {
		return ErrBlogNotFound
	}
	delete(r.blogs, id)
	return nil
}

// copyBlog detaches the AuthorID pointer so callers cannot mutate stored rows.
func copyBlog(b model.Blog) model.Blog {
	if b.AuthorID != nil {
		id := *b.AuthorID
		b.AuthorID = &id
	}
	return b
}

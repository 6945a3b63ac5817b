package service

import (
	"context"
	"errors"

	"github.com/blogapi/blogapi-go/internal/model"
	"github.com/blogapi/blogapi-go/internal/repository"
)

var (
	ErrBlogNotFound = errors.New("blog not found")
	ErrForbidden    = errors.New("not the owner of this blog")
)

// BlogService handles blog business logic and ownership checks.
type BlogService struct {
	blogs BlogStore
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogs BlogStore) *BlogService {
	return &BlogService{blogs: blogs}
}

// List returns a page of blogs.
func (s *BlogService) List(ctx context.Context, params model.ListBlogsParams) ([]model.ShowBlog, error) {
	blogs, err := s.blogs.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, err
	}

	return model.ToShowBlogs(blogs), nil
}

// Get retrieves a single blog.
func (s *BlogService) Get(ctx context.Context, id int64) (model.BlogResponse, error) {
	blog, err := s.find(ctx, id)
	if err != nil {
		return model.BlogResponse{}, err
	}

	return model.ToBlogResponse(blog), nil
}

// Create stores a new blog authored by actor.
func (s *BlogService) Create(ctx context.Context, actor *model.User, req model.CreateBlogRequest) (model.BlogResponse, error) {
	authorID := actor.ID
	blog := &model.Blog{
		Title:    req.Title,
		Body:     req.Body,
		AuthorID: &authorID,
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		return model.BlogResponse{}, err
	}

	return model.ToBlogResponse(blog), nil
}

// Update applies a partial update to a blog owned by actor.
func (s *BlogService) Update(ctx context.Context, actor *model.User, id int64, req model.UpdateBlogRequest) (model.BlogResponse, error) {
	blog, err := s.findOwned(ctx, actor, id)
	if err != nil {
		return model.BlogResponse{}, err
	}

	req.Apply(blog)
	if err := s.blogs.Update(ctx, blog); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return model.BlogResponse{}, ErrBlogNotFound
		}
		return model.BlogResponse{}, err
	}

	return model.ToBlogResponse(blog), nil
}

// Delete removes a blog owned by actor.
func (s *BlogService) Delete(ctx context.Context, actor *model.User, id int64) error {
	if _, err := s.findOwned(ctx, actor, id); err != nil {
		return err
	}

	err := s.blogs.Delete(ctx, id)
	if errors.Is(err, repository.ErrBlogNotFound) {
		return ErrBlogNotFound
	}
	return err
}

func (s *BlogService) find(ctx context.Context, id int64) (*model.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

// findOwned loads a blog and rejects actors that are not its author. Blogs
// without an author cannot be modified.
func (s *BlogService) findOwned(ctx context.Context, actor *model.User, id int64) (*model.Blog, error) {
	blog, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor == nil || !blog.OwnedBy(actor.ID) {
		return nil, ErrForbidden
	}
	return blog, nil
}

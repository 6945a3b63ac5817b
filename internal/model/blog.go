package model

import "time"

// Blog represents a blog post in the database. AuthorID is nil for posts
// created before ownership was tracked.
type Blog struct {
	ID        int64
	Title     string
	Body      string
	AuthorID  *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether userID is the author of the blog.
func (b *Blog) OwnedBy(userID int64) bool {
	return b.AuthorID != nil && *b.AuthorID == userID
}

// CreateBlogRequest represents a new blog post.
type CreateBlogRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Body  string `json:"body" validate:"required"`
}

// UpdateBlogRequest is a partial update; nil fields are left unchanged.
type UpdateBlogRequest struct {
	Title *string `json:"title" validate:"omitnil,min=1,max=255"`
	Body  *string `json:"body" validate:"omitnil,min=1"`
}

// Apply copies the fields set in req onto b.
func (req UpdateBlogRequest) Apply(b *Blog) {
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Body != nil {
		b.Body = *req.Body
	}
}

// BlogResponse is the full wire representation of a blog post.
type BlogResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	AuthorID *int64 `json:"author_id"`
}

// ShowBlog is the list view of a blog post.
type ShowBlog struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ListBlogsParams bounds a page of blogs.
type ListBlogsParams struct {
	Offset int `validate:"min=0"`
	Limit  int `validate:"min=1,max=10"`
}

// ToBlogResponse projects a persisted blog onto its wire representation.
func ToBlogResponse(b *Blog) BlogResponse {
	return BlogResponse{ID: b.ID, Title: b.Title, Body: b.Body, AuthorID: b.AuthorID}
}

// ToShowBlogs projects a page of blogs onto list views.
func ToShowBlogs(blogs []Blog) []ShowBlog {
	result := make([]ShowBlog, len(blogs))
	for i, b := range blogs {
		result[i] = ShowBlog{Title: b.Title, Body: b.Body}
	}
	return result
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/blogapi/blogapi-go/internal/model"
)

var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository handles blog persistence operations.
type BlogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

const blogColumns = `id, title, body, author_id, created_at, updated_at`

// Create inserts a new blog and sets the generated ID on the blog struct.
func (r *BlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	query := `INSERT INTO blogs (title, body, author_id) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, blog.Title, blog.Body, nullableID(blog.AuthorID))
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	blog.ID = id
	blog.CreatedAt = now
	blog.UpdatedAt = now
	return nil
}

// GetByID retrieves a blog by its ID.
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = ?`

	blog, err := scanBlog(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	return blog, nil
}

// List retrieves a page of blogs ordered by ID.
func (r *BlogRepository) List(ctx context.Context, offset, limit int) ([]model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs ORDER BY id LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []model.Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *blog)
	}

	return blogs, rows.Err()
}

// Update overwrites the title and body of an existing blog.
func (r *BlogRepository) Update(ctx context.Context, blog *model.Blog) error {
	query := `UPDATE blogs SET title = ?, body = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, blog.Title, blog.Body, blog.ID); err != nil {
		return err
	}

	blog.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete removes a blog by ID.
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBlogNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlog(row rowScanner) (*model.Blog, error) {
	var (
		blog     model.Blog
		authorID sql.NullInt64
	)
	if err := row.Scan(&blog.ID, &blog.Title, &blog.Body, &authorID, &blog.CreatedAt, &blog.UpdatedAt); err != nil {
		return nil, err
	}
	if authorID.Valid {
		id := authorID.Int64
		blog.AuthorID = &id
	}
	return &blog, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

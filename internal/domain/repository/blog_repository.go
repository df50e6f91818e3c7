package repository

import (
	"context"

	"github.com/oksasatya/dailyhub/internal/domain/entity"
)

// PostRepository defines the interface for blog post database operations.
// List and GetByID load the author and the comments with their authors.
type PostRepository interface {
	List(ctx context.Context) ([]entity.Post, error)
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	Create(ctx context.Context, p *entity.Post) error
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines the interface for comment database operations.
// GetByID loads the comment's author.
type CommentRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	Create(ctx context.Context, c *entity.Comment) error
	Update(ctx context.Context, c *entity.Comment) error
	Delete(ctx context.Context, id string) error
}

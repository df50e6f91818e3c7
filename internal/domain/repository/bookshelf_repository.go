package repository

import (
	"context"

	"github.com/oksasatya/dailyhub/internal/domain/entity"
)

// CategoryRepository defines the interface for category database operations.
// All genre arguments are expected in normalized (upper-cased, trimmed) form.
type CategoryRepository interface {
	ListWithBooks(ctx context.Context) ([]entity.Category, error)
	GetByGenre(ctx context.Context, genre string) (*entity.Category, error)
	Create(ctx context.Context, c *entity.Category) error
	Rename(ctx context.Context, id int64, newGenre string) error
	DeleteByGenre(ctx context.Context, genre string) error
}

// BookRepository defines the interface for book database operations.
type BookRepository interface {
	ListAll(ctx context.Context) ([]entity.Book, error)
	GetByGenreAndID(ctx context.Context, genre string, id int64) (*entity.Book, error)
	Create(ctx context.Context, b *entity.Book) error
	Update(ctx context.Context, b *entity.Book) error
	Delete(ctx context.Context, id int64) error
}

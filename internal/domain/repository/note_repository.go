package repository

import (
	"context"

	"github.com/oksasatya/dailyhub/internal/domain/entity"
)

// NoteRepository defines the interface for note database operations.
// Reads and deletes are owner-scoped: a note belonging to another user is
// reported as missing.
type NoteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entity.Note, error)
	GetByID(ctx context.Context, id int64, userID string) (*entity.Note, error)
	Create(ctx context.Context, n *entity.Note) error
	Update(ctx context.Context, n *entity.Note) error
	Delete(ctx context.Context, id int64, userID string) error
}

package repository

import (
	"context"

	"github.com/oksasatya/dailyhub/internal/domain/entity"
)

// TaskRepository defines the interface for task database operations.
type TaskRepository interface {
	List(ctx context.Context) ([]entity.Task, error)
	GetByID(ctx context.Context, id int64) (*entity.Task, error)
	Create(ctx context.Context, t *entity.Task) error
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id int64) error
}

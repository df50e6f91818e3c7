package repository

import (
	"context"

	"github.com/oksasatya/dailyhub/internal/domain/entity"
)

// SearchHistoryRepository records weather lookups and lists recent ones.
type SearchHistoryRepository interface {
	Add(ctx context.Context, city string) error
	Recent(ctx context.Context, limit int) ([]entity.CitySearch, error)
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/dailyhub/internal/domain/entity"
	"github.com/oksasatya/dailyhub/internal/domain/repository"
)

type SearchHistoryRepository struct {
	pool *pgxpool.Pool
}

func NewSearchHistoryRepository(pool *pgxpool.Pool) *SearchHistoryRepository {
	return &SearchHistoryRepository{pool: pool}
}

func (r *SearchHistoryRepository) Add(ctx context.Context, city string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO search_history (city) VALUES ($1)`, city)
	return mapError(err)
}

func (r *SearchHistoryRepository) Recent(ctx context.Context, limit int) ([]entity.CitySearch, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, city, searched_at
		FROM search_history
		ORDER BY searched_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	searches := make([]entity.CitySearch, 0)
	for rows.Next() {
		var s entity.CitySearch
		if err := rows.Scan(&s.ID, &s.City, &s.SearchedAt); err != nil {
			return nil, err
		}
		searches = append(searches, s)
	}
	return searches, rows.Err()
}

var _ repository.SearchHistoryRepository = (*SearchHistoryRepository)(nil)

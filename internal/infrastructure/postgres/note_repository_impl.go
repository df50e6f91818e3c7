package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/dailyhub/internal/apperrors"
	"github.com/oksasatya/dailyhub/internal/domain/entity"
	"github.com/oksasatya/dailyhub/internal/domain/repository"
)

// NoteRepository filters every read and delete by owner so that another
// user's note is indistinguishable from a missing one.
type NoteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

func (r *NoteRepository) ListByUser(ctx context.Context, userID string) ([]entity.Note, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, content, color, pinned, is_private, created_at
		FROM notes
		WHERE user_id = $1
		ORDER BY pinned DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	notes := make([]entity.Note, 0)
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Color,
			&n.Pinned, &n.IsPrivate, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) GetByID(ctx context.Context, id int64, userID string) (*entity.Note, error) {
	n := &entity.Note{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, content, color, pinned, is_private, created_at
		FROM notes
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Color,
		&n.Pinned, &n.IsPrivate, &n.CreatedAt); err != nil {
		return nil, mapError(err)
	}

	return n, nil
}

func (r *NoteRepository) Create(ctx context.Context, n *entity.Note) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO notes (user_id, title, content, color, pinned, is_private)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, n.UserID, n.Title, n.Content, n.Color, n.Pinned, n.IsPrivate)

	return mapError(row.Scan(&n.ID, &n.CreatedAt))
}

func (r *NoteRepository) Update(ctx context.Context, n *entity.Note) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE notes
		SET title = $1, content = $2, color = $3, pinned = $4, is_private = $5
		WHERE id = $6 AND user_id = $7
	`, n.Title, n.Content, n.Color, n.Pinned, n.IsPrivate, n.ID, n.UserID)
	if err != nil {
		return mapError(err)
	}

	if res.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id int64, userID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM notes WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return mapError(err)
	}

	if res.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

var _ repository.NoteRepository = (*NoteRepository)(nil)

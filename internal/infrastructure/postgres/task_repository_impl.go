package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/dailyhub/internal/apperrors"
	"github.com/oksasatya/dailyhub/internal/domain/entity"
	"github.com/oksasatya/dailyhub/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) List(ctx context.Context) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, completed
		FROM tasks
		ORDER BY id
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0)
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*entity.Task, error) {
	t := &entity.Task{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, title, completed
		FROM tasks
		WHERE id = $1
	`, id)

	if err := row.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
		return nil, mapError(err)
	}

	return t, nil
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, completed)
		VALUES ($1, $2)
		RETURNING id
	`, t.Title, t.Completed)

	return mapError(row.Scan(&t.ID))
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, completed = $2
		WHERE id = $3
	`, t.Title, t.Completed, t.ID)
	if err != nil {
		return mapError(err)
	}

	if res.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	if res.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

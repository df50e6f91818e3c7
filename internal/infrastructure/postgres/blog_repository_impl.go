package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/dailyhub/internal/apperrors"
	"github.com/oksasatya/dailyhub/internal/domain/entity"
	"github.com/oksasatya/dailyhub/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postSelect = `
	SELECT p.id, p.author_id, p.title, p.body, p.color, p.created_at, p.updated_at,
	       u.name,
	       c.id, c.post_id, c.author_id, c.body, c.created_at, c.updated_at,
	       cu.name
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN comments c ON c.post_id = p.id
	LEFT JOIN users cu ON cu.id = c.author_id
`

// scanPosts folds the joined rows into posts with author and comments
// populated. Row ordering decides both post order and comment order, so
// callers choose it in the query.
func scanPosts(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]entity.Post, error) {
	posts := make([]entity.Post, 0)
	index := map[string]int{}
	for rows.Next() {
		var p entity.Post
		var authorName string
		var cID, cPostID, cAuthorID, cBody, cAuthorName *string
		var cCreated, cUpdated *time.Time
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.Color, &p.CreatedAt, &p.UpdatedAt,
			&authorName,
			&cID, &cPostID, &cAuthorID, &cBody, &cCreated, &cUpdated,
			&cAuthorName); err != nil {
			return nil, err
		}
		pos, ok := index[p.ID]
		if !ok {
			p.Author = &entity.UserRef{ID: p.AuthorID, Username: authorName}
			p.Comments = make([]entity.Comment, 0)
			posts = append(posts, p)
			pos = len(posts) - 1
			index[p.ID] = pos
		}
		if cID != nil {
			posts[pos].Comments = append(posts[pos].Comments, entity.Comment{
				ID:        *cID,
				PostID:    *cPostID,
				AuthorID:  *cAuthorID,
				Body:      *cBody,
				CreatedAt: *cCreated,
				UpdatedAt: *cUpdated,
				Author:    &entity.UserRef{ID: *cAuthorID, Username: *cAuthorName},
			})
		}
	}
	return posts, rows.Err()
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, postSelect+`ORDER BY p.created_at DESC, c.created_at ASC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	rows, err := r.pool.Query(ctx, postSelect+`WHERE p.id = $1 ORDER BY c.created_at ASC`, id)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &posts[0], nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (id, author_id, title, body, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, p.ID, p.AuthorID, p.Title, p.Body, p.Color)

	return mapError(row.Scan(&p.CreatedAt, &p.UpdatedAt))
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, body = $2, updated_at = $3
		WHERE id = $4
	`, p.Title, p.Body, p.UpdatedAt, p.ID)
	if err != nil {
		return mapError(err)
	}

	if res.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete removes the post; its comments follow through ON DELETE CASCADE.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	if res.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	c := &entity.Comment{}
	var authorName string

	row := r.pool.QueryRow(ctx, `
		SELECT c.id, c.post_id, c.author_id, c.body, c.created_at, c.updated_at, u.name
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`, id)

	if err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Body,
		&c.CreatedAt, &c.UpdatedAt, &authorName); err != nil {
		return nil, mapError(err)
	}

	c.Author = &entity.UserRef{ID: c.AuthorID, Username: authorName}
	return c, nil
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (id, post_id, author_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, c.ID, c.PostID, c.AuthorID, c.Body)

	return mapError(row.Scan(&c.CreatedAt, &c.UpdatedAt))
}

func (r *CommentRepository) Update(ctx context.Context, c *entity.Comment) error {
	c.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE comments
		SET body = $1, updated_at = $2
		WHERE id = $3
	`, c.Body, c.UpdatedAt, c.ID)
	if err != nil {
		return mapError(err)
	}

	if res.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	if res.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

var (
	_ repository.PostRepository    = (*PostRepository)(nil)
	_ repository.CommentRepository = (*CommentRepository)(nil)
)

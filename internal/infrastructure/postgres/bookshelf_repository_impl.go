package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/dailyhub/internal/apperrors"
	"github.com/oksasatya/dailyhub/internal/domain/entity"
	"github.com/oksasatya/dailyhub/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// ListWithBooks eager-loads every category with its books in one joined
// read, mirroring the relation loading the list endpoint needs.
func (r *CategoryRepository) ListWithBooks(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.genre, c.created_at, c.updated_at,
		       b.id, b.category_id, b.title, b.author, b.description, b.genre, b.date_published, b.created_at, b.updated_at
		FROM categories c
		LEFT JOIN books b ON b.category_id = c.id
		ORDER BY c.id, b.id
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	categories := make([]entity.Category, 0)
	index := map[int64]int{}
	for rows.Next() {
		var c entity.Category
		var bookID, catID *int64
		var title, author, description, genre, datePublished *string
		var createdAt, updatedAt *time.Time
		if err := rows.Scan(&c.ID, &c.Genre, &c.CreatedAt, &c.UpdatedAt,
			&bookID, &catID, &title, &author, &description, &genre, &datePublished,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}
		pos, ok := index[c.ID]
		if !ok {
			c.Books = make([]entity.Book, 0)
			categories = append(categories, c)
			pos = len(categories) - 1
			index[c.ID] = pos
		}
		if bookID != nil {
			categories[pos].Books = append(categories[pos].Books, entity.Book{
				ID:            *bookID,
				CategoryID:    *catID,
				Title:         *title,
				Author:        *author,
				Description:   *description,
				Genre:         *genre,
				DatePublished: *datePublished,
				CreatedAt:     *createdAt,
				UpdatedAt:     *updatedAt,
			})
		}
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetByGenre(ctx context.Context, genre string) (*entity.Category, error) {
	c := &entity.Category{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, genre, created_at, updated_at
		FROM categories
		WHERE genre = $1
	`, genre)

	if err := row.Scan(&c.ID, &c.Genre, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, mapError(err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, category_id, title, author, description, genre, date_published, created_at, updated_at
		FROM books
		WHERE category_id = $1
		ORDER BY id
	`, c.ID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	c.Books = make([]entity.Book, 0)
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.CategoryID, &b.Title, &b.Author, &b.Description,
			&b.Genre, &b.DatePublished, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		c.Books = append(c.Books, b)
	}
	return c, rows.Err()
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (genre)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`, c.Genre)

	return mapError(row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt))
}

// Rename updates the genre on the category and its books in one transaction;
// books keep their category_id so they stay attached, and the denormalized
// books.genre column follows so every read path reports the new genre.
func (r *CategoryRepository) Rename(ctx context.Context, id int64, newGenre string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		UPDATE categories
		SET genre = $1, updated_at = now()
		WHERE id = $2
	`, newGenre, id)
	if err != nil {
		return mapError(err)
	}

	if res.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `
		UPDATE books
		SET genre = $1, updated_at = now()
		WHERE category_id = $2
	`, newGenre, id); err != nil {
		return mapError(err)
	}

	return tx.Commit(ctx)
}

// DeleteByGenre removes the category; books go with it through the
// ON DELETE CASCADE foreign key.
func (r *CategoryRepository) DeleteByGenre(ctx context.Context, genre string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE genre = $1`, genre)
	if err != nil {
		return mapError(err)
	}

	if res.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

type BookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

func (r *BookRepository) ListAll(ctx context.Context) ([]entity.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.id, b.category_id, b.title, b.author, b.description, c.genre, b.date_published, b.created_at, b.updated_at
		FROM books b
		JOIN categories c ON c.id = b.category_id
		ORDER BY b.id
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	books := make([]entity.Book, 0)
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.CategoryID, &b.Title, &b.Author, &b.Description,
			&b.Genre, &b.DatePublished, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *BookRepository) GetByGenreAndID(ctx context.Context, genre string, id int64) (*entity.Book, error) {
	b := &entity.Book{}

	row := r.pool.QueryRow(ctx, `
		SELECT b.id, b.category_id, b.title, b.author, b.description, b.genre, b.date_published, b.created_at, b.updated_at
		FROM books b
		JOIN categories c ON c.id = b.category_id
		WHERE b.id = $1 AND c.genre = $2
	`, id, genre)

	if err := row.Scan(&b.ID, &b.CategoryID, &b.Title, &b.Author, &b.Description,
		&b.Genre, &b.DatePublished, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, mapError(err)
	}

	return b, nil
}

func (r *BookRepository) Create(ctx context.Context, b *entity.Book) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO books (category_id, title, author, description, genre, date_published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, b.CategoryID, b.Title, b.Author, b.Description, b.Genre, b.DatePublished)

	return mapError(row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt))
}

func (r *BookRepository) Update(ctx context.Context, b *entity.Book) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE books
		SET title = $1, author = $2, description = $3, updated_at = now()
		WHERE id = $4
	`, b.Title, b.Author, b.Description, b.ID)
	if err != nil {
		return mapError(err)
	}

	if res.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	if res.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

var (
	_ repository.CategoryRepository = (*CategoryRepository)(nil)
	_ repository.BookRepository     = (*BookRepository)(nil)
)

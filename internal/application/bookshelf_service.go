package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/dailyhub/internal/apperrors"
	"github.com/oksasatya/dailyhub/internal/domain/entity"
	repo "github.com/oksasatya/dailyhub/internal/domain/repository"
)

// BookshelfService manages genre categories and the books under them.
// Genres are unique on their normalized (upper-cased, trimmed) form and
// deleting a category cascades to its books.
type BookshelfService struct {
	Categories repo.CategoryRepository
	Books      repo.BookRepository
	Logger     *logrus.Logger
}

func NewBookshelfService(categories repo.CategoryRepository, books repo.BookRepository, logger *logrus.Logger) *BookshelfService {
	return &BookshelfService{Categories: categories, Books: books, Logger: logger}
}

// NormalizeGenre is the canonical comparison key for category uniqueness.
func NormalizeGenre(genre string) string {
	return strings.ToUpper(strings.TrimSpace(genre))
}

func (s *BookshelfService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.Categories.ListWithBooks(ctx)
}

func (s *BookshelfService) GetCategory(ctx context.Context, genre string) (*entity.Category, error) {
	return s.Categories.GetByGenre(ctx, NormalizeGenre(genre))
}

func (s *BookshelfService) CreateCategory(ctx context.Context, genre string) (*entity.Category, error) {
	normalized := NormalizeGenre(genre)

	if _, err := s.Categories.GetByGenre(ctx, normalized); err == nil {
		return nil, apperrors.ErrConflict
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	c := &entity.Category{Genre: normalized}
	if err := s.Categories.Create(ctx, c); err != nil {
		return nil, err
	}
	c.Books = make([]entity.Book, 0)
	return c, nil
}

// RenameCategory renames a category; its books stay attached. Renaming to
// a normalized name held by a different category is a Conflict; renaming a
// category to itself (case change only) is allowed.
func (s *BookshelfService) RenameCategory(ctx context.Context, genre, newGenre string) (*entity.Category, error) {
	c, err := s.Categories.GetByGenre(ctx, NormalizeGenre(genre))
	if err != nil {
		return nil, err
	}

	normalized := NormalizeGenre(newGenre)
	if existing, err := s.Categories.GetByGenre(ctx, normalized); err == nil {
		if existing.ID != c.ID {
			return nil, apperrors.ErrConflict
		}
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if err := s.Categories.Rename(ctx, c.ID, normalized); err != nil {
		return nil, err
	}
	return s.Categories.GetByGenre(ctx, normalized)
}

func (s *BookshelfService) DeleteCategory(ctx context.Context, genre string) error {
	return s.Categories.DeleteByGenre(ctx, NormalizeGenre(genre))
}

// ListBooks returns all books across categories, flattened.
func (s *BookshelfService) ListBooks(ctx context.Context) ([]entity.Book, error) {
	return s.Books.ListAll(ctx)
}

func (s *BookshelfService) GetBook(ctx context.Context, genre string, id int64) (*entity.Book, error) {
	return s.Books.GetByGenreAndID(ctx, NormalizeGenre(genre), id)
}

type CreateBookInput struct {
	Genre       string
	Title       string
	Author      string
	Description string
}

// AddBook files a book under an existing category; a missing category is
// NotFound, not an implicit create.
func (s *BookshelfService) AddBook(ctx context.Context, in CreateBookInput) (*entity.Book, error) {
	c, err := s.Categories.GetByGenre(ctx, NormalizeGenre(in.Genre))
	if err != nil {
		return nil, err
	}

	b := &entity.Book{
		CategoryID:    c.ID,
		Title:         in.Title,
		Author:        in.Author,
		Description:   in.Description,
		Genre:         c.Genre,
		DatePublished: time.Now().UTC().Format("2006-01-02"),
	}
	if err := s.Books.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateBookInput keeps prior values for empty fields, matching the merge
// semantics the bookshelf frontend relies on.
type UpdateBookInput struct {
	Title       string
	Author      string
	Description string
}

func (s *BookshelfService) UpdateBook(ctx context.Context, genre string, id int64, in UpdateBookInput) (*entity.Book, error) {
	b, err := s.Books.GetByGenreAndID(ctx, NormalizeGenre(genre), id)
	if err != nil {
		return nil, err
	}
	if in.Title != "" {
		b.Title = in.Title
	}
	if in.Author != "" {
		b.Author = in.Author
	}
	if in.Description != "" {
		b.Description = in.Description
	}
	if err := s.Books.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookshelfService) DeleteBook(ctx context.Context, genre string, id int64) error {
	b, err := s.Books.GetByGenreAndID(ctx, NormalizeGenre(genre), id)
	if err != nil {
		return err
	}
	return s.Books.Delete(ctx, b.ID)
}

package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/dailyhub/internal/apperrors"
)

func newBookshelf() *BookshelfService {
	books := newFakeBookRepo()
	return NewBookshelfService(newFakeCategoryRepo(books), books, nil)
}

func TestBookshelfService_GenreNormalization(t *testing.T) {
	svc := newBookshelf()
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, "  fantasy ")
	require.NoError(t, err)
	require.Equal(t, "FANTASY", c.Genre)

	// Same genre in a different case collides.
	_, err = svc.CreateCategory(ctx, "Fantasy")
	require.ErrorIs(t, err, apperrors.ErrConflict)

	// Lookups normalize too.
	got, err := svc.GetCategory(ctx, "fantasy")
	require.NoError(t, err)
	require.Equal(t, c.ID, got.ID)
}

func TestBookshelfService_RenameCategory(t *testing.T) {
	svc := newBookshelf()
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "FANTASY")
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, "HISTORY")
	require.NoError(t, err)

	b, err := svc.AddBook(ctx, CreateBookInput{Genre: "FANTASY", Title: "The Hobbit", Author: "Tolkien"})
	require.NoError(t, err)

	// Renaming onto another category is a conflict; books stay put.
	_, err = svc.RenameCategory(ctx, "FANTASY", "history")
	require.ErrorIs(t, err, apperrors.ErrConflict)

	renamed, err := svc.RenameCategory(ctx, "FANTASY", "epic fantasy")
	require.NoError(t, err)
	require.Equal(t, "EPIC FANTASY", renamed.Genre)

	// The book followed the rename, and its own genre field agrees with the
	// flattened listing so no read path reports the old name.
	moved, err := svc.GetBook(ctx, "EPIC FANTASY", b.ID)
	require.NoError(t, err)
	require.Equal(t, "The Hobbit", moved.Title)
	require.Equal(t, "EPIC FANTASY", moved.Genre)

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "EPIC FANTASY", books[0].Genre)

	_, err = svc.GetBook(ctx, "FANTASY", b.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBookshelfService_AddBookRequiresCategory(t *testing.T) {
	svc := newBookshelf()
	ctx := context.Background()

	_, err := svc.AddBook(ctx, CreateBookInput{Genre: "UNKNOWN", Title: "x", Author: "y"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.CreateCategory(ctx, "SCIFI")
	require.NoError(t, err)

	b, err := svc.AddBook(ctx, CreateBookInput{Genre: "scifi", Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)
	require.Equal(t, "SCIFI", b.Genre)
	require.Equal(t, time.Now().UTC().Format("2006-01-02"), b.DatePublished)
}

func TestBookshelfService_UpdateBookKeepsPriorValues(t *testing.T) {
	svc := newBookshelf()
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "SCIFI")
	require.NoError(t, err)
	b, err := svc.AddBook(ctx, CreateBookInput{Genre: "SCIFI", Title: "Dune", Author: "Herbert", Description: "sand"})
	require.NoError(t, err)

	// Empty fields keep their prior values.
	updated, err := svc.UpdateBook(ctx, "SCIFI", b.ID, UpdateBookInput{Title: "Dune Messiah"})
	require.NoError(t, err)
	require.Equal(t, "Dune Messiah", updated.Title)
	require.Equal(t, "Herbert", updated.Author)
	require.Equal(t, "sand", updated.Description)
}

func TestBookshelfService_DeleteCategoryCascades(t *testing.T) {
	svc := newBookshelf()
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "SCIFI")
	require.NoError(t, err)
	b, err := svc.AddBook(ctx, CreateBookInput{Genre: "SCIFI", Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, "SCIFI"))

	_, err = svc.GetBook(ctx, "SCIFI", b.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	require.Empty(t, books)
}

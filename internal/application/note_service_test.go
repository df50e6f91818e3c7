package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/dailyhub/internal/apperrors"
)

func TestNoteService_CreateDefaultsColor(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo(), nil)
	ctx := context.Background()

	n, err := svc.Create(ctx, "alice", CreateNoteInput{Title: "groceries", Content: "eggs"})
	require.NoError(t, err)
	require.Equal(t, "#ffffff", n.Color)

	n, err = svc.Create(ctx, "alice", CreateNoteInput{Title: "ideas", Content: "...", Color: "#fce4ec"})
	require.NoError(t, err)
	require.Equal(t, "#fce4ec", n.Color)
}

func TestNoteService_OwnerScoping(t *testing.T) {
	repo := newFakeNoteRepo()
	svc := NewNoteService(repo, nil)
	ctx := context.Background()

	n, err := svc.Create(ctx, "alice", CreateNoteInput{Title: "secret", Content: "shh", IsPrivate: true})
	require.NoError(t, err)

	// Another user sees the note as missing, on reads and writes alike.
	_, err = svc.Get(ctx, n.ID, "bob")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	title := "hijacked"
	_, err = svc.Update(ctx, n.ID, "bob", UpdateNoteInput{Title: &title})
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, n.ID, "bob"), apperrors.ErrNotFound)

	// The failed foreign write left the note untouched.
	got, err := svc.Get(ctx, n.ID, "alice")
	require.NoError(t, err)
	require.Equal(t, "secret", got.Title)
}

func TestNoteService_PartialUpdate(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo(), nil)
	ctx := context.Background()

	n, err := svc.Create(ctx, "alice", CreateNoteInput{Title: "draft", Content: "v1", Pinned: false})
	require.NoError(t, err)

	pinned := true
	updated, err := svc.Update(ctx, n.ID, "alice", UpdateNoteInput{Pinned: &pinned})
	require.NoError(t, err)
	require.True(t, updated.Pinned)
	require.Equal(t, "draft", updated.Title)
	require.Equal(t, "v1", updated.Content)
}

func TestNoteService_ListPinnedFirst(t *testing.T) {
	svc := NewNoteService(newFakeNoteRepo(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", CreateNoteInput{Title: "old", Content: "a"})
	require.NoError(t, err)
	pinnedNote, err := svc.Create(ctx, "alice", CreateNoteInput{Title: "pinned", Content: "b", Pinned: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob", CreateNoteInput{Title: "other user", Content: "c"})
	require.NoError(t, err)

	notes, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	require.Equal(t, pinnedNote.ID, notes[0].ID)
}

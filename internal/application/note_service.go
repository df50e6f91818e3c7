package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/dailyhub/internal/domain/entity"
	repo "github.com/oksasatya/dailyhub/internal/domain/repository"
)

const defaultNoteColor = "#ffffff"

// NoteService mediates access to a user's notes. Every operation is scoped
// to the acting user; a note owned by someone else is reported as missing,
// never as forbidden, so existence does not leak.
type NoteService struct {
	Repo   repo.NoteRepository
	Logger *logrus.Logger
}

func NewNoteService(r repo.NoteRepository, logger *logrus.Logger) *NoteService {
	return &NoteService{Repo: r, Logger: logger}
}

// List returns the user's notes, pinned first, then newest first.
func (s *NoteService) List(ctx context.Context, userID string) ([]entity.Note, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *NoteService) Get(ctx context.Context, id int64, userID string) (*entity.Note, error) {
	return s.Repo.GetByID(ctx, id, userID)
}

type CreateNoteInput struct {
	Title     string
	Content   string
	Color     string
	Pinned    bool
	IsPrivate bool
}

func (s *NoteService) Create(ctx context.Context, userID string, in CreateNoteInput) (*entity.Note, error) {
	color := in.Color
	if color == "" {
		color = defaultNoteColor
	}
	n := &entity.Note{
		UserID:    userID,
		Title:     in.Title,
		Content:   in.Content,
		Color:     color,
		Pinned:    in.Pinned,
		IsPrivate: in.IsPrivate,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// UpdateNoteInput uses pointers so absent fields stay untouched.
type UpdateNoteInput struct {
	Title     *string
	Content   *string
	Color     *string
	Pinned    *bool
	IsPrivate *bool
}

func (s *NoteService) Update(ctx context.Context, id int64, userID string, in UpdateNoteInput) (*entity.Note, error) {
	n, err := s.Repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		n.Title = *in.Title
	}
	if in.Content != nil {
		n.Content = *in.Content
	}
	if in.Color != nil {
		n.Color = *in.Color
	}
	if in.Pinned != nil {
		n.Pinned = *in.Pinned
	}
	if in.IsPrivate != nil {
		n.IsPrivate = *in.IsPrivate
	}
	if err := s.Repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NoteService) Delete(ctx context.Context, id int64, userID string) error {
	return s.Repo.Delete(ctx, id, userID)
}

package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/dailyhub/internal/domain/entity"
	repo "github.com/oksasatya/dailyhub/internal/domain/repository"
)

// TaskService mediates access to the shared to-do list. Tasks carry no
// owner, so there is no authorization beyond the route layer.
type TaskService struct {
	Repo   repo.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(r repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Repo: r, Logger: logger}
}

func (s *TaskService) List(ctx context.Context) ([]entity.Task, error) {
	return s.Repo.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, id int64) (*entity.Task, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create stores a new task; completion always starts false.
func (s *TaskService) Create(ctx context.Context, title string) (*entity.Task, error) {
	t := &entity.Task{Title: title, Completed: false}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTaskInput uses pointers so absent fields stay untouched.
type UpdateTaskInput struct {
	Title     *string
	Completed *bool
}

func (s *TaskService) Update(ctx context.Context, id int64, in UpdateTaskInput) (*entity.Task, error) {
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if err := s.Repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"main/model"

	"github.com/google/uuid"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	GetByID(ctx context.Context, todoID string) (*model.Todo, error)
	Find(ctx context.Context, filter model.TodoFilter) ([]*model.Todo, error)
	Update(ctx context.Context, todo *model.Todo) error
	Delete(ctx context.Context, todoID string) (bool, error)
	DeleteByProject(ctx context.Context, projectID string) (int64, error)
}

// ProjectGetter is the slice of the project repository the other services
// need for reference checks.
type ProjectGetter interface {
	GetByID(ctx context.Context, projectID string) (*model.Project, error)
}

type TodoService struct {
	repo     TodoRepository
	projects ProjectGetter
}

func NewTodoService(repo TodoRepository, projects ProjectGetter) *TodoService {
	return &TodoService{repo: repo, projects: projects}
}

func (svc *TodoService) Create(ctx context.Context, todo *model.Todo) error {
	if todo.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if todo.ProjectID != "" {
		if err := svc.checkProjectExists(ctx, todo.ProjectID); err != nil {
			return err
		}
	}

	if todo.TodoID == "" {
		todo.TodoID = uuid.New().String()
	}
	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now
	return svc.repo.Create(ctx, todo)
}

func (svc *TodoService) Get(ctx context.Context, todoID string) (*model.Todo, error) {
	todo, err := svc.repo.GetByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, fmt.Errorf("%w: todo %s", ErrNotFound, todoID)
	}
	return todo, nil
}

func (svc *TodoService) List(ctx context.Context, filter model.TodoFilter) ([]*model.Todo, error) {
	return svc.repo.Find(ctx, filter)
}

func (svc *TodoService) Update(ctx context.Context, todoID string, upd *model.TodoUpdate) (*model.Todo, error) {
	existing, err := svc.Get(ctx, todoID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		existing.Title = *upd.Title
	}
	if upd.Description != nil {
		existing.Description = *upd.Description
	}
	if upd.IsCompleted != nil && *upd.IsCompleted != existing.IsCompleted {
		existing.IsCompleted = *upd.IsCompleted
		if existing.IsCompleted {
			existing.CompletedDate = time.Now()
		} else {
			existing.CompletedDate = time.Time{}
		}
	}
	if upd.DueDate != nil {
		existing.DueDate = *upd.DueDate
	}
	if upd.StartDate != nil {
		existing.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		existing.EndDate = *upd.EndDate
	}
	if upd.ProjectID != nil {
		if *upd.ProjectID != "" {
			if err := svc.checkProjectExists(ctx, *upd.ProjectID); err != nil {
				return nil, err
			}
		}
		existing.ProjectID = *upd.ProjectID
	}

	if err := svc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (svc *TodoService) Delete(ctx context.Context, todoID string) error {
	deleted, err := svc.repo.Delete(ctx, todoID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: todo %s", ErrNotFound, todoID)
	}
	return nil
}

func (svc *TodoService) checkProjectExists(ctx context.Context, projectID string) error {
	project, err := svc.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return fmt.Errorf("%w: project %s does not exist", ErrValidation, projectID)
	}
	return nil
}

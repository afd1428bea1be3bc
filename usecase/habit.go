package usecase

import (
	"context"
	"fmt"
	"time"

	"main/model"

	"github.com/google/uuid"
)

type HabitRepository interface {
	Create(ctx context.Context, habit *model.Habit) error
	GetByID(ctx context.Context, habitID string) (*model.Habit, error)
	GetAll(ctx context.Context) ([]*model.Habit, error)
	GetByCategory(ctx context.Context, categoryID string) ([]*model.Habit, error)
	Update(ctx context.Context, habit *model.Habit) error
	Delete(ctx context.Context, habitID string) (bool, error)
	AddCompletedDate(ctx context.Context, habitID string, day time.Time) (*model.Habit, error)
	RemoveCompletedDate(ctx context.Context, habitID string, day time.Time) (*model.Habit, error)
	PullDateByCategory(ctx context.Context, categoryID string, day time.Time) (int64, error)
	SetSortOrder(ctx context.Context, habitID string, order int) (bool, error)
}

// CategoryGetter is the slice of the category repository used for
// reference checks.
type CategoryGetter interface {
	GetByID(ctx context.Context, categoryID string) (*model.HabitCategory, error)
}

type HabitService struct {
	repo       HabitRepository
	categories CategoryGetter
	projects   ProjectGetter
}

func NewHabitService(repo HabitRepository, categories CategoryGetter, projects ProjectGetter) *HabitService {
	return &HabitService{repo: repo, categories: categories, projects: projects}
}

func (svc *HabitService) Create(ctx context.Context, habit *model.Habit) error {
	if habit.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if habit.HabitCategoryID == "" {
		return fmt.Errorf("%w: habit_category_id is required", ErrValidation)
	}
	if err := svc.checkCategoryExists(ctx, habit.HabitCategoryID); err != nil {
		return err
	}
	if habit.ProjectID != "" {
		project, err := svc.projects.GetByID(ctx, habit.ProjectID)
		if err != nil {
			return err
		}
		if project == nil {
			return fmt.Errorf("%w: project %s does not exist", ErrValidation, habit.ProjectID)
		}
	}

	if habit.HabitID == "" {
		habit.HabitID = uuid.New().String()
	}
	if habit.CompletedDates == nil {
		habit.CompletedDates = []time.Time{}
	}
	now := time.Now()
	habit.CreatedAt = now
	habit.UpdatedAt = now
	return svc.repo.Create(ctx, habit)
}

func (svc *HabitService) Get(ctx context.Context, habitID string) (*model.Habit, error) {
	habit, err := svc.repo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, fmt.Errorf("%w: habit %s", ErrNotFound, habitID)
	}
	return habit, nil
}

// List returns all habits, or the habits of one category when categoryID is
// set, ordered by sort order.
func (svc *HabitService) List(ctx context.Context, categoryID string) ([]*model.Habit, error) {
	if categoryID != "" {
		return svc.repo.GetByCategory(ctx, categoryID)
	}
	return svc.repo.GetAll(ctx)
}

// Toggle applies set-semantics add/remove of a calendar day to the habit's
// completed dates. Both directions are idempotent.
func (svc *HabitService) Toggle(ctx context.Context, habitID string, action model.ToggleAction, day time.Time) (*model.Habit, error) {
	var (
		habit *model.Habit
		err   error
	)
	switch action {
	case model.ToggleAdd:
		habit, err = svc.repo.AddCompletedDate(ctx, habitID, day)
	case model.ToggleRemove:
		habit, err = svc.repo.RemoveCompletedDate(ctx, habitID, day)
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrValidation, action)
	}
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, fmt.Errorf("%w: habit %s", ErrNotFound, habitID)
	}
	return habit, nil
}

func (svc *HabitService) Update(ctx context.Context, habitID string, upd *model.HabitUpdate) (*model.Habit, error) {
	existing, err := svc.Get(ctx, habitID)
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
	if upd.HabitCategoryID != nil {
		if err := svc.checkCategoryExists(ctx, *upd.HabitCategoryID); err != nil {
			return nil, err
		}
		existing.HabitCategoryID = *upd.HabitCategoryID
	}
	if upd.ProjectID != nil {
		if *upd.ProjectID != "" {
			project, err := svc.projects.GetByID(ctx, *upd.ProjectID)
			if err != nil {
				return nil, err
			}
			if project == nil {
				return nil, fmt.Errorf("%w: project %s does not exist", ErrValidation, *upd.ProjectID)
			}
		}
		existing.ProjectID = *upd.ProjectID
	}

	if err := svc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (svc *HabitService) Delete(ctx context.Context, habitID string) error {
	deleted, err := svc.repo.Delete(ctx, habitID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: habit %s", ErrNotFound, habitID)
	}
	return nil
}

// ResetCompletions clears one day from every habit in the category and
// returns how many habits actually changed. An unknown category yields
// zero, not an error.
func (svc *HabitService) ResetCompletions(ctx context.Context, categoryID string, day time.Time) (int64, error) {
	if categoryID == "" {
		return 0, fmt.Errorf("%w: categoryId is required", ErrValidation)
	}
	return svc.repo.PullDateByCategory(ctx, categoryID, day)
}

// Reorder rewrites sort order to match the given id sequence.
func (svc *HabitService) Reorder(ctx context.Context, habitIDs []string) error {
	if len(habitIDs) == 0 {
		return fmt.Errorf("%w: ids are required", ErrValidation)
	}
	for i, habitID := range habitIDs {
		matched, err := svc.repo.SetSortOrder(ctx, habitID, i)
		if err != nil {
			return err
		}
		if !matched {
			return fmt.Errorf("%w: habit %s", ErrNotFound, habitID)
		}
	}
	return nil
}

func (svc *HabitService) checkCategoryExists(ctx context.Context, categoryID string) error {
	category, err := svc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: habit category %s does not exist", ErrValidation, categoryID)
	}
	return nil
}

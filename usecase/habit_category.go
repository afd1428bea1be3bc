package usecase

import (
	"context"
	"fmt"
	"time"

	"main/model"

	"github.com/google/uuid"
)

type HabitCategoryRepository interface {
	Create(ctx context.Context, category *model.HabitCategory) error
	GetByID(ctx context.Context, categoryID string) (*model.HabitCategory, error)
	GetAll(ctx context.Context) ([]*model.HabitCategory, error)
	Update(ctx context.Context, category *model.HabitCategory) error
	Delete(ctx context.Context, categoryID string) (bool, error)
	AddSelectedDate(ctx context.Context, categoryID string, day time.Time) (*model.HabitCategory, error)
	RemoveSelectedDate(ctx context.Context, categoryID string, day time.Time) (*model.HabitCategory, error)
}

// HabitLister is the slice of the habit repository the category service
// needs to guard deletes.
type HabitLister interface {
	GetByCategory(ctx context.Context, categoryID string) ([]*model.Habit, error)
}

type HabitCategoryService struct {
	repo   HabitCategoryRepository
	habits HabitLister
}

func NewHabitCategoryService(repo HabitCategoryRepository, habits HabitLister) *HabitCategoryService {
	return &HabitCategoryService{repo: repo, habits: habits}
}

func (svc *HabitCategoryService) Create(ctx context.Context, category *model.HabitCategory) error {
	if category.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if category.CategoryID == "" {
		category.CategoryID = uuid.New().String()
	}
	if category.SelectedDates == nil {
		category.SelectedDates = []time.Time{}
	}
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	return svc.repo.Create(ctx, category)
}

func (svc *HabitCategoryService) Get(ctx context.Context, categoryID string) (*model.HabitCategory, error) {
	category, err := svc.repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: habit category %s", ErrNotFound, categoryID)
	}
	return category, nil
}

func (svc *HabitCategoryService) List(ctx context.Context) ([]*model.HabitCategory, error) {
	return svc.repo.GetAll(ctx)
}

// Toggle applies set-semantics add/remove of a calendar day to the
// category's selected dates.
func (svc *HabitCategoryService) Toggle(ctx context.Context, categoryID string, action model.ToggleAction, day time.Time) (*model.HabitCategory, error) {
	var (
		category *model.HabitCategory
		err      error
	)
	switch action {
	case model.ToggleAdd:
		category, err = svc.repo.AddSelectedDate(ctx, categoryID, day)
	case model.ToggleRemove:
		category, err = svc.repo.RemoveSelectedDate(ctx, categoryID, day)
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrValidation, action)
	}
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: habit category %s", ErrNotFound, categoryID)
	}
	return category, nil
}

func (svc *HabitCategoryService) Update(ctx context.Context, categoryID string, upd *model.HabitCategoryUpdate) (*model.HabitCategory, error) {
	existing, err := svc.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		existing.Title = *upd.Title
	}
	if err := svc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete refuses to remove a category that still owns habits; delete or
// move the habits first.
func (svc *HabitCategoryService) Delete(ctx context.Context, categoryID string) error {
	habits, err := svc.habits.GetByCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if len(habits) > 0 {
		return fmt.Errorf("%w: category %s still has %d habits", ErrValidation, categoryID, len(habits))
	}
	deleted, err := svc.repo.Delete(ctx, categoryID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: habit category %s", ErrNotFound, categoryID)
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/model"
	"main/utils"
)

type fakeCategoryRepo struct {
	categories map[string]*model.HabitCategory
}

func newFakeCategoryRepo(categories ...*model.HabitCategory) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: map[string]*model.HabitCategory{}}
	for _, c := range categories {
		repo.categories[c.CategoryID] = c
	}
	return repo
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *model.HabitCategory) error {
	r.categories[category.CategoryID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, categoryID string) (*model.HabitCategory, error) {
	return r.categories[categoryID], nil
}

func (r *fakeCategoryRepo) GetAll(_ context.Context) ([]*model.HabitCategory, error) {
	var out []*model.HabitCategory
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *model.HabitCategory) error {
	r.categories[category.CategoryID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, categoryID string) (bool, error) {
	_, ok := r.categories[categoryID]
	delete(r.categories, categoryID)
	return ok, nil
}

func (r *fakeCategoryRepo) AddSelectedDate(_ context.Context, categoryID string, d time.Time) (*model.HabitCategory, error) {
	c, ok := r.categories[categoryID]
	if !ok {
		return nil, nil
	}
	start, end := utils.DayRange(d)
	for _, existing := range c.SelectedDates {
		if inWindow(existing, start, end) {
			return c, nil
		}
	}
	c.SelectedDates = append(c.SelectedDates, start)
	return c, nil
}

func (r *fakeCategoryRepo) RemoveSelectedDate(_ context.Context, categoryID string, d time.Time) (*model.HabitCategory, error) {
	c, ok := r.categories[categoryID]
	if !ok {
		return nil, nil
	}
	start, end := utils.DayRange(d)
	kept := c.SelectedDates[:0]
	for _, existing := range c.SelectedDates {
		if !inWindow(existing, start, end) {
			kept = append(kept, existing)
		}
	}
	c.SelectedDates = kept
	return c, nil
}

func TestCategoryToggleIsIdempotent(t *testing.T) {
	repo := newFakeCategoryRepo(&model.HabitCategory{CategoryID: "cat", Title: "Morning", SelectedDates: []time.Time{}})
	svc := NewHabitCategoryService(repo, newFakeHabitRepo())

	target := day(2025, 3, 1)
	for i := 0; i < 2; i++ {
		category, err := svc.Toggle(context.Background(), "cat", model.ToggleAdd, target)
		if err != nil {
			t.Fatalf("Toggle add #%d failed: %v", i+1, err)
		}
		if len(category.SelectedDates) != 1 {
			t.Fatalf("after add #%d: %d dates, want 1", i+1, len(category.SelectedDates))
		}
	}

	category, err := svc.Toggle(context.Background(), "cat", model.ToggleRemove, target)
	if err != nil {
		t.Fatalf("Toggle remove failed: %v", err)
	}
	if len(category.SelectedDates) != 0 {
		t.Errorf("%d dates left after remove, want 0", len(category.SelectedDates))
	}
}

func TestCategoryDeleteRefusedWhileHabitsRemain(t *testing.T) {
	repo := newFakeCategoryRepo(&model.HabitCategory{CategoryID: "cat", Title: "Morning"})
	habits := newFakeHabitRepo(&model.Habit{HabitID: "h1", HabitCategoryID: "cat"})
	svc := NewHabitCategoryService(repo, habits)

	err := svc.Delete(context.Background(), "cat")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	if _, ok := repo.categories["cat"]; !ok {
		t.Error("category must survive a refused delete")
	}

	// After the habit is gone the delete goes through.
	if _, err := habits.Delete(context.Background(), "h1"); err != nil {
		t.Fatalf("habit delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "cat"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestCategoryDeleteUnknown(t *testing.T) {
	svc := NewHabitCategoryService(newFakeCategoryRepo(), newFakeHabitRepo())

	err := svc.Delete(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCategoryCreateRequiresTitle(t *testing.T) {
	svc := NewHabitCategoryService(newFakeCategoryRepo(), newFakeHabitRepo())

	err := svc.Create(context.Background(), &model.HabitCategory{})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

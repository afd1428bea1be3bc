package handler

import (
	"context"
	"testing"
	"time"

	"main/model"
	"main/utils"
)

// In-memory repository fakes shared by the handler tests. They mirror the
// day-window semantics of the Mongo repositories.

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

type fakeCategoryRepo struct {
	categories map[string]*model.HabitCategory
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*model.HabitCategory{}}
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

type fakeHabitRepo struct {
	habits map[string]*model.Habit
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{habits: map[string]*model.Habit{}}
}

func (r *fakeHabitRepo) Create(_ context.Context, habit *model.Habit) error {
	r.habits[habit.HabitID] = habit
	return nil
}

func (r *fakeHabitRepo) GetByID(_ context.Context, habitID string) (*model.Habit, error) {
	return r.habits[habitID], nil
}

func (r *fakeHabitRepo) GetAll(_ context.Context) ([]*model.Habit, error) {
	var out []*model.Habit
	for _, h := range r.habits {
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHabitRepo) GetByCategory(_ context.Context, categoryID string) ([]*model.Habit, error) {
	var out []*model.Habit
	for _, h := range r.habits {
		if h.HabitCategoryID == categoryID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHabitRepo) Update(_ context.Context, habit *model.Habit) error {
	r.habits[habit.HabitID] = habit
	return nil
}

func (r *fakeHabitRepo) Delete(_ context.Context, habitID string) (bool, error) {
	_, ok := r.habits[habitID]
	delete(r.habits, habitID)
	return ok, nil
}

func (r *fakeHabitRepo) DeleteByProject(_ context.Context, projectID string) (int64, error) {
	var n int64
	for id, h := range r.habits {
		if h.ProjectID == projectID {
			delete(r.habits, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeHabitRepo) AddCompletedDate(_ context.Context, habitID string, d time.Time) (*model.Habit, error) {
	h, ok := r.habits[habitID]
	if !ok {
		return nil, nil
	}
	start, end := utils.DayRange(d)
	for _, existing := range h.CompletedDates {
		if inWindow(existing, start, end) {
			return h, nil
		}
	}
	h.CompletedDates = append(h.CompletedDates, start)
	return h, nil
}

func (r *fakeHabitRepo) RemoveCompletedDate(_ context.Context, habitID string, d time.Time) (*model.Habit, error) {
	h, ok := r.habits[habitID]
	if !ok {
		return nil, nil
	}
	start, end := utils.DayRange(d)
	kept := h.CompletedDates[:0]
	for _, existing := range h.CompletedDates {
		if !inWindow(existing, start, end) {
			kept = append(kept, existing)
		}
	}
	h.CompletedDates = kept
	return h, nil
}

func (r *fakeHabitRepo) PullDateByCategory(_ context.Context, categoryID string, d time.Time) (int64, error) {
	start, end := utils.DayRange(d)
	var modified int64
	for _, h := range r.habits {
		if h.HabitCategoryID != categoryID {
			continue
		}
		kept := h.CompletedDates[:0]
		for _, existing := range h.CompletedDates {
			if !inWindow(existing, start, end) {
				kept = append(kept, existing)
			}
		}
		if len(kept) != len(h.CompletedDates) {
			modified++
		}
		h.CompletedDates = kept
	}
	return modified, nil
}

func (r *fakeHabitRepo) SetSortOrder(_ context.Context, habitID string, order int) (bool, error) {
	h, ok := r.habits[habitID]
	if !ok {
		return false, nil
	}
	h.SortOrder = order
	return true, nil
}

func categoryFixture(id string) *model.HabitCategory {
	return &model.HabitCategory{
		CategoryID:    id,
		Title:         "Fixture",
		SelectedDates: []time.Time{},
	}
}

func habitFixture(id, categoryID string) *model.Habit {
	return &model.Habit{
		HabitID:         id,
		Title:           "Fixture",
		HabitCategoryID: categoryID,
		CompletedDates:  []time.Time{},
	}
}

type fakeProjectGetter struct {
	projects map[string]*model.Project
}

func (g *fakeProjectGetter) GetByID(_ context.Context, projectID string) (*model.Project, error) {
	return g.projects[projectID], nil
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDay(s)
	if err != nil {
		t.Fatalf("bad day %q: %v", s, err)
	}
	return d
}

type fakeProjectRepo struct {
	projects map[string]*model.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]*model.Project{}}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *model.Project) error {
	r.projects[project.ProjectID] = project
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, projectID string) (*model.Project, error) {
	return r.projects[projectID], nil
}

func (r *fakeProjectRepo) GetAll(_ context.Context) ([]*model.Project, error) {
	var out []*model.Project
	for _, p := range r.projects {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProjectRepo) GetChildren(_ context.Context, parentID string) ([]*model.Project, error) {
	var out []*model.Project
	for _, p := range r.projects {
		if p.ParentProjectID == parentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) GetRoots(_ context.Context) ([]*model.Project, error) {
	var out []*model.Project
	for _, p := range r.projects {
		if p.ParentProjectID == "" {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project *model.Project) error {
	r.projects[project.ProjectID] = project
	return nil
}

func (r *fakeProjectRepo) SetStatus(_ context.Context, projectID string, status model.ProjectStatus) (bool, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return false, nil
	}
	p.Status = status
	return true, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, projectID string) (bool, error) {
	_, ok := r.projects[projectID]
	delete(r.projects, projectID)
	return ok, nil
}

func (r *fakeProjectRepo) AddItem(_ context.Context, projectID string, item model.ProjectItem) (*model.Project, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return nil, nil
	}
	p.Items = append(p.Items, item)
	return p, nil
}

func (r *fakeProjectRepo) UpdateItem(_ context.Context, projectID, itemID string, upd model.ProjectItemUpdate) (*model.Project, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return nil, nil
	}
	for i := range p.Items {
		if p.Items[i].ItemID != itemID {
			continue
		}
		if upd.Name != nil {
			p.Items[i].Name = *upd.Name
		}
		if upd.Price != nil {
			p.Items[i].Price = upd.Price
		}
		if upd.IsPurchased != nil {
			p.Items[i].IsPurchased = *upd.IsPurchased
		}
		if upd.PurchasedDate != nil {
			p.Items[i].PurchasedDate = upd.PurchasedDate
		}
		return p, nil
	}
	return nil, nil
}

func (r *fakeProjectRepo) RemoveItem(_ context.Context, projectID, itemID string) (*model.Project, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return nil, nil
	}
	kept := p.Items[:0]
	for _, item := range p.Items {
		if item.ItemID != itemID {
			kept = append(kept, item)
		}
	}
	p.Items = kept
	return p, nil
}

func (r *fakeProjectRepo) AddURL(_ context.Context, projectID string, url model.ProjectURL) (*model.Project, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return nil, nil
	}
	p.URLs = append(p.URLs, url)
	return p, nil
}

func (r *fakeProjectRepo) UpdateURL(_ context.Context, projectID, urlID string, upd model.ProjectURLUpdate) (*model.Project, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return nil, nil
	}
	for i := range p.URLs {
		if p.URLs[i].URLID != urlID {
			continue
		}
		if upd.Title != nil {
			p.URLs[i].Title = *upd.Title
		}
		if upd.URL != nil {
			p.URLs[i].URL = *upd.URL
		}
		return p, nil
	}
	return nil, nil
}

func (r *fakeProjectRepo) RemoveURL(_ context.Context, projectID, urlID string) (*model.Project, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return nil, nil
	}
	kept := p.URLs[:0]
	for _, u := range p.URLs {
		if u.URLID != urlID {
			kept = append(kept, u)
		}
	}
	p.URLs = kept
	return p, nil
}

type fakeOwnedRepo struct {
	deletedFor []string
}

func (r *fakeOwnedRepo) DeleteByProject(_ context.Context, projectID string) (int64, error) {
	r.deletedFor = append(r.deletedFor, projectID)
	return 1, nil
}

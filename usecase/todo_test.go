package usecase

import (
	"context"
	"errors"
	"testing"

	"main/model"
)

type fakeTodoRepo struct {
	todos map[string]*model.Todo
}

func newFakeTodoRepo(todos ...*model.Todo) *fakeTodoRepo {
	repo := &fakeTodoRepo{todos: map[string]*model.Todo{}}
	for _, td := range todos {
		repo.todos[td.TodoID] = td
	}
	return repo
}

func (r *fakeTodoRepo) Create(_ context.Context, todo *model.Todo) error {
	r.todos[todo.TodoID] = todo
	return nil
}

func (r *fakeTodoRepo) GetByID(_ context.Context, todoID string) (*model.Todo, error) {
	return r.todos[todoID], nil
}

func (r *fakeTodoRepo) Find(_ context.Context, filter model.TodoFilter) ([]*model.Todo, error) {
	var out []*model.Todo
	for _, td := range r.todos {
		if filter.ProjectID != "" && td.ProjectID != filter.ProjectID {
			continue
		}
		if filter.IsCompleted != nil && td.IsCompleted != *filter.IsCompleted {
			continue
		}
		out = append(out, td)
	}
	return out, nil
}

func (r *fakeTodoRepo) Update(_ context.Context, todo *model.Todo) error {
	r.todos[todo.TodoID] = todo
	return nil
}

func (r *fakeTodoRepo) Delete(_ context.Context, todoID string) (bool, error) {
	_, ok := r.todos[todoID]
	delete(r.todos, todoID)
	return ok, nil
}

func (r *fakeTodoRepo) DeleteByProject(_ context.Context, projectID string) (int64, error) {
	var n int64
	for id, td := range r.todos {
		if td.ProjectID == projectID {
			delete(r.todos, id)
			n++
		}
	}
	return n, nil
}

func newTodoService(repo *fakeTodoRepo, projects ...*model.Project) *TodoService {
	getter := &fakeProjectGetterT{projects: map[string]*model.Project{}}
	for _, p := range projects {
		getter.projects[p.ProjectID] = p
	}
	return NewTodoService(repo, getter)
}

// Separate from the habit test getter so each test file reads standalone.
type fakeProjectGetterT struct {
	projects map[string]*model.Project
}

func (g *fakeProjectGetterT) GetByID(_ context.Context, projectID string) (*model.Project, error) {
	return g.projects[projectID], nil
}

func TestTodoCompletionSetsCompletedDate(t *testing.T) {
	repo := newFakeTodoRepo(&model.Todo{TodoID: "t1", Title: "Write"})
	svc := newTodoService(repo)

	done := true
	todo, err := svc.Update(context.Background(), "t1", &model.TodoUpdate{IsCompleted: &done})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !todo.IsCompleted {
		t.Error("todo should be completed")
	}
	if todo.CompletedDate.IsZero() {
		t.Error("completion must stamp the completed date")
	}

	// Flipping back clears the stamp.
	undone := false
	todo, err = svc.Update(context.Background(), "t1", &model.TodoUpdate{IsCompleted: &undone})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !todo.CompletedDate.IsZero() {
		t.Error("reopening must clear the completed date")
	}
}

func TestTodoCompletionRepeatKeepsStamp(t *testing.T) {
	repo := newFakeTodoRepo(&model.Todo{TodoID: "t1", Title: "Write"})
	svc := newTodoService(repo)

	done := true
	first, err := svc.Update(context.Background(), "t1", &model.TodoUpdate{IsCompleted: &done})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	stamp := first.CompletedDate

	second, err := svc.Update(context.Background(), "t1", &model.TodoUpdate{IsCompleted: &done})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !second.CompletedDate.Equal(stamp) {
		t.Error("re-sending completed=true must not move the stamp")
	}
}

func TestTodoCreateRejectsUnknownProject(t *testing.T) {
	svc := newTodoService(newFakeTodoRepo())

	err := svc.Create(context.Background(), &model.Todo{Title: "Write", ProjectID: "missing"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestTodoCreateAcceptsKnownProject(t *testing.T) {
	repo := newFakeTodoRepo()
	svc := newTodoService(repo, &model.Project{ProjectID: "p1", Title: "Home"})

	todo := &model.Todo{Title: "Write", ProjectID: "p1"}
	if err := svc.Create(context.Background(), todo); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if todo.TodoID == "" {
		t.Error("id should have been generated")
	}
}

func TestTodoDeleteUnknown(t *testing.T) {
	svc := newTodoService(newFakeTodoRepo())

	err := svc.Delete(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

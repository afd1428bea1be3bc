package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"main/model"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

type habitEnvelope struct {
	Data struct {
		ID             string   `json:"id"`
		Title          string   `json:"title"`
		CompletedDates []string `json:"completed_dates"`
	} `json:"data"`
}

func setupHabitRouter(t *testing.T) (*gin.Engine, *fakeHabitRepo, *fakeCategoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	habitRepo := newFakeHabitRepo()
	categoryRepo := newFakeCategoryRepo()
	projects := &fakeProjectGetter{projects: map[string]*model.Project{}}
	service := usecase.NewHabitService(habitRepo, categoryRepo, projects)
	h := NewHabitHandler(service, nil)

	router := gin.New()
	router.POST("/api/v1/habits", h.CreateHabit)
	router.GET("/api/v1/habits/:id", h.GetHabit)
	router.PATCH("/api/v1/habits/:id", h.UpdateHabit)
	router.POST("/api/v1/habits/reset-completions", h.ResetCompletions)
	router.POST("/api/v1/habits/reorder", h.ReorderHabits)
	return router, habitRepo, categoryRepo
}

func TestHabitPatchTogglesCompletedDates(t *testing.T) {
	router, habitRepo, categoryRepo := setupHabitRouter(t)
	categoryRepo.Create(nil, categoryFixture("cat"))
	habitRepo.Create(nil, habitFixture("h1", "cat"))

	// The same PATCH route toggles when action and date are present.
	w := doJSON(t, router, http.MethodPatch, "/api/v1/habits/h1", `{"action":"add","date":"2025-03-01"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d: %s", w.Code, w.Body.String())
	}
	var env habitEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(env.Data.CompletedDates) != 1 || env.Data.CompletedDates[0] != "2025-03-01" {
		t.Errorf("completed_dates = %v, want [2025-03-01]", env.Data.CompletedDates)
	}

	// Same day again: still one entry.
	w = doJSON(t, router, http.MethodPatch, "/api/v1/habits/h1", `{"action":"add","date":"2025-03-01"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("repeat toggle status = %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(env.Data.CompletedDates) != 1 {
		t.Errorf("completed_dates = %v after repeat add, want one entry", env.Data.CompletedDates)
	}
}

func TestHabitPatchWithoutActionUpdatesFields(t *testing.T) {
	router, habitRepo, categoryRepo := setupHabitRouter(t)
	categoryRepo.Create(nil, categoryFixture("cat"))
	habitRepo.Create(nil, habitFixture("h1", "cat"))

	w := doJSON(t, router, http.MethodPatch, "/api/v1/habits/h1", `{"title":"Stretch"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	var env habitEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if env.Data.Title != "Stretch" {
		t.Errorf("title = %q, want Stretch", env.Data.Title)
	}
	if habitRepo.habits["h1"].Title != "Stretch" {
		t.Error("update did not reach the repository")
	}
}

func TestHabitCreateRejectsUnknownCategory(t *testing.T) {
	router, _, _ := setupHabitRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/habits", `{"title":"Run","habit_category_id":"missing"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestResetCompletionsEndpoint(t *testing.T) {
	router, habitRepo, categoryRepo := setupHabitRouter(t)
	categoryRepo.Create(nil, categoryFixture("cat"))

	for _, id := range []string{"h1", "h2", "h3"} {
		habit := habitFixture(id, "cat")
		habitRepo.Create(nil, habit)
	}
	if _, err := habitRepo.AddCompletedDate(nil, "h1", mustDay(t, "2025-03-01")); err != nil {
		t.Fatal(err)
	}
	if _, err := habitRepo.AddCompletedDate(nil, "h2", mustDay(t, "2025-03-01")); err != nil {
		t.Fatal(err)
	}
	if _, err := habitRepo.AddCompletedDate(nil, "h3", mustDay(t, "2025-03-02")); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, router, http.MethodPost, "/api/v1/habits/reset-completions",
		`{"categoryId":"cat","date":"2025-03-01"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var env struct {
		Data struct {
			ModifiedCount int64 `json:"modifiedCount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if env.Data.ModifiedCount != 2 {
		t.Errorf("modifiedCount = %d, want 2", env.Data.ModifiedCount)
	}
	if len(habitRepo.habits["h3"].CompletedDates) != 1 {
		t.Error("habit with a different date must be untouched")
	}
}

func TestReorderEndpoint(t *testing.T) {
	router, habitRepo, categoryRepo := setupHabitRouter(t)
	categoryRepo.Create(nil, categoryFixture("cat"))
	habitRepo.Create(nil, habitFixture("h1", "cat"))
	habitRepo.Create(nil, habitFixture("h2", "cat"))

	w := doJSON(t, router, http.MethodPost, "/api/v1/habits/reorder", `{"ids":["h2","h1"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if habitRepo.habits["h2"].SortOrder != 0 || habitRepo.habits["h1"].SortOrder != 1 {
		t.Errorf("sort orders = %d/%d for h2/h1, want 0/1",
			habitRepo.habits["h2"].SortOrder, habitRepo.habits["h1"].SortOrder)
	}
}

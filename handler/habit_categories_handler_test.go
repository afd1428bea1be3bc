package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"main/usecase"

	"github.com/gin-gonic/gin"
)

type categoryEnvelope struct {
	Data struct {
		ID            string   `json:"id"`
		Title         string   `json:"title"`
		SelectedDates []string `json:"selected_dates"`
	} `json:"data"`
}

func setupCategoryRouter(t *testing.T) (*gin.Engine, *fakeCategoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newFakeCategoryRepo()
	service := usecase.NewHabitCategoryService(repo, newFakeHabitRepo())
	h := NewHabitCategoryHandler(service, nil)

	router := gin.New()
	router.POST("/api/v1/habit-categories", h.CreateCategory)
	router.GET("/api/v1/habit-categories/:id", h.GetCategory)
	router.PATCH("/api/v1/habit-categories/:id", h.UpdateCategory)
	router.DELETE("/api/v1/habit-categories/:id", h.DeleteCategory)
	return router, repo
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeCategory(t *testing.T, w *httptest.ResponseRecorder) categoryEnvelope {
	t.Helper()
	var env categoryEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return env
}

func TestCategoryLifecycleWithToggles(t *testing.T) {
	router, _ := setupCategoryRouter(t)

	// Create: fresh category starts with an empty selected_dates array.
	w := doJSON(t, router, http.MethodPost, "/api/v1/habit-categories", `{"title":"Morning"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", w.Code, w.Body.String())
	}
	created := decodeCategory(t, w)
	if created.Data.ID == "" {
		t.Fatal("created category has no id")
	}
	if created.Data.SelectedDates == nil || len(created.Data.SelectedDates) != 0 {
		t.Errorf("selected_dates = %v, want empty array", created.Data.SelectedDates)
	}

	path := "/api/v1/habit-categories/" + created.Data.ID

	// Toggle a date on.
	w = doJSON(t, router, http.MethodPatch, path, `{"action":"add","date":"2025-03-01"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d: %s", w.Code, w.Body.String())
	}
	toggled := decodeCategory(t, w)
	if len(toggled.Data.SelectedDates) != 1 || toggled.Data.SelectedDates[0] != "2025-03-01" {
		t.Errorf("selected_dates = %v, want [2025-03-01]", toggled.Data.SelectedDates)
	}

	// Toggling the same day again stays a single entry.
	w = doJSON(t, router, http.MethodPatch, path, `{"action":"add","date":"2025-03-01"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("repeat toggle status = %d: %s", w.Code, w.Body.String())
	}
	repeated := decodeCategory(t, w)
	if len(repeated.Data.SelectedDates) != 1 {
		t.Errorf("selected_dates = %v after repeat add, want single entry", repeated.Data.SelectedDates)
	}

	// Toggle it off.
	w = doJSON(t, router, http.MethodPatch, path, `{"action":"remove","date":"2025-03-01"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("remove toggle status = %d: %s", w.Code, w.Body.String())
	}
	removed := decodeCategory(t, w)
	if len(removed.Data.SelectedDates) != 0 {
		t.Errorf("selected_dates = %v after remove, want empty", removed.Data.SelectedDates)
	}

	// Rename through the same PATCH route, no toggle fields present.
	w = doJSON(t, router, http.MethodPatch, path, `{"title":"Evening"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("rename status = %d: %s", w.Code, w.Body.String())
	}
	renamed := decodeCategory(t, w)
	if renamed.Data.Title != "Evening" {
		t.Errorf("title = %q, want Evening", renamed.Data.Title)
	}

	// Delete empty category succeeds with 204.
	w = doJSON(t, router, http.MethodDelete, path, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", w.Code)
	}
}

func TestCategoryToggleValidation(t *testing.T) {
	router, repo := setupCategoryRouter(t)
	repo.Create(nil, categoryFixture("cat"))

	tests := []struct {
		name string
		body string
	}{
		{name: "Unknown Action", body: `{"action":"flip","date":"2025-03-01"}`},
		{name: "Missing Date", body: `{"action":"add"}`},
		{name: "Bad Date", body: `{"action":"add","date":"03/01/2025"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPatch, "/api/v1/habit-categories/cat", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCategoryNotFound(t *testing.T) {
	router, _ := setupCategoryRouter(t)

	w := doJSON(t, router, http.MethodPatch, "/api/v1/habit-categories/ghost", `{"action":"add","date":"2025-03-01"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"main/model"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, projectID string) (*model.Project, error)
	GetAll(ctx context.Context) ([]*model.Project, error)
	GetChildren(ctx context.Context, parentID string) ([]*model.Project, error)
	GetRoots(ctx context.Context) ([]*model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	SetStatus(ctx context.Context, projectID string, status model.ProjectStatus) (bool, error)
	Delete(ctx context.Context, projectID string) (bool, error)
	AddItem(ctx context.Context, projectID string, item model.ProjectItem) (*model.Project, error)
	UpdateItem(ctx context.Context, projectID, itemID string, upd model.ProjectItemUpdate) (*model.Project, error)
	RemoveItem(ctx context.Context, projectID, itemID string) (*model.Project, error)
	AddURL(ctx context.Context, projectID string, url model.ProjectURL) (*model.Project, error)
	UpdateURL(ctx context.Context, projectID, urlID string, upd model.ProjectURLUpdate) (*model.Project, error)
	RemoveURL(ctx context.Context, projectID, urlID string) (*model.Project, error)
}

// OwnedResourceRepository is the slice of the todo/habit repositories the
// cascade needs: delete everything owned by one project.
type OwnedResourceRepository interface {
	DeleteByProject(ctx context.Context, projectID string) (int64, error)
}

type ProjectService struct {
	repo   ProjectRepository
	todos  OwnedResourceRepository
	habits OwnedResourceRepository
}

func NewProjectService(repo ProjectRepository, todos, habits OwnedResourceRepository) *ProjectService {
	return &ProjectService{repo: repo, todos: todos, habits: habits}
}

func (svc *ProjectService) Create(ctx context.Context, project *model.Project) error {
	if project.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if project.Status == "" {
		project.Status = model.StatusActive
	}
	if !project.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, project.Status)
	}
	if project.ParentProjectID != "" {
		parent, err := svc.repo.GetByID(ctx, project.ParentProjectID)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("%w: parent project %s does not exist", ErrValidation, project.ParentProjectID)
		}
	}

	if project.ProjectID == "" {
		project.ProjectID = uuid.New().String()
	}
	if project.Items == nil {
		project.Items = []model.ProjectItem{}
	}
	if project.URLs == nil {
		project.URLs = []model.ProjectURL{}
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	return svc.repo.Create(ctx, project)
}

func (svc *ProjectService) Get(ctx context.Context, projectID string) (*model.Project, error) {
	project, err := svc.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
	}
	return project, nil
}

func (svc *ProjectService) List(ctx context.Context, filter model.ProjectFilter) ([]*model.Project, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, filter.Status)
	}

	var (
		projects []*model.Project
		err      error
	)
	switch {
	case filter.ParentProjectID != "":
		projects, err = svc.repo.GetChildren(ctx, filter.ParentProjectID)
	case filter.TopLevelOnly:
		projects, err = svc.repo.GetRoots(ctx)
	default:
		projects, err = svc.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if filter.Status == "" {
		return projects, nil
	}
	filtered := make([]*model.Project, 0, len(projects))
	for _, p := range projects {
		if p.Status == filter.Status {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// ListChildren returns direct children only (one level).
func (svc *ProjectService) ListChildren(ctx context.Context, projectID string) ([]*model.Project, error) {
	if _, err := svc.Get(ctx, projectID); err != nil {
		return nil, err
	}
	return svc.repo.GetChildren(ctx, projectID)
}

// ListDescendants returns the recursive closure of ListChildren. A parent
// chain that loops back onto an already-visited project aborts with
// ErrCycle instead of recursing forever.
func (svc *ProjectService) ListDescendants(ctx context.Context, projectID string) ([]*model.Project, error) {
	if _, err := svc.Get(ctx, projectID); err != nil {
		return nil, err
	}
	visited := map[string]bool{projectID: true}
	return svc.collectDescendants(ctx, projectID, visited)
}

func (svc *ProjectService) collectDescendants(ctx context.Context, projectID string, visited map[string]bool) ([]*model.Project, error) {
	children, err := svc.repo.GetChildren(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var descendants []*model.Project
	for _, child := range children {
		if visited[child.ProjectID] {
			return nil, fmt.Errorf("%w: project %s", ErrCycle, child.ProjectID)
		}
		visited[child.ProjectID] = true
		descendants = append(descendants, child)

		sub, err := svc.collectDescendants(ctx, child.ProjectID, visited)
		if err != nil {
			return nil, err
		}
		descendants = append(descendants, sub...)
	}
	return descendants, nil
}

func (svc *ProjectService) Update(ctx context.Context, projectID string, upd *model.ProjectUpdate) (*model.Project, error) {
	existing, err := svc.Get(ctx, projectID)
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
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *upd.Status)
		}
		existing.Status = *upd.Status
	}
	if upd.ParentProjectID != nil {
		if *upd.ParentProjectID != "" {
			if err := svc.checkParent(ctx, projectID, *upd.ParentProjectID); err != nil {
				return nil, err
			}
		}
		existing.ParentProjectID = *upd.ParentProjectID
	}

	if err := svc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// checkParent validates a re-parenting: the new parent must exist and must
// not be the project itself or anything below it.
func (svc *ProjectService) checkParent(ctx context.Context, projectID, parentID string) error {
	if parentID == projectID {
		return fmt.Errorf("%w: project cannot be its own parent", ErrValidation)
	}
	parent, err := svc.repo.GetByID(ctx, parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return fmt.Errorf("%w: parent project %s does not exist", ErrValidation, parentID)
	}

	// Walk up from the new parent; reaching the project means the move
	// would close a loop.
	seen := map[string]bool{parentID: true}
	current := parent
	for current.ParentProjectID != "" {
		if current.ParentProjectID == projectID {
			return fmt.Errorf("%w: parent %s is a descendant of project %s", ErrValidation, parentID, projectID)
		}
		if seen[current.ParentProjectID] {
			return fmt.Errorf("%w: project %s", ErrCycle, current.ParentProjectID)
		}
		seen[current.ParentProjectID] = true
		next, err := svc.repo.GetByID(ctx, current.ParentProjectID)
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		current = next
	}
	return nil
}

// ChangeStatus sets the project's status and, when propagate is set, pushes
// the new status onto every descendant that is not in a terminal status
// (completed or wish). Returns the updated project and the number of
// descendants changed. Descendant updates are independent calls; a failure
// partway through is returned without rolling back earlier updates.
func (svc *ProjectService) ChangeStatus(ctx context.Context, projectID string, status model.ProjectStatus, propagate bool) (*model.Project, int, error) {
	if !status.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	existing, err := svc.Get(ctx, projectID)
	if err != nil {
		return nil, 0, err
	}
	if existing.Status == status {
		return existing, 0, nil
	}

	if _, err := svc.repo.SetStatus(ctx, projectID, status); err != nil {
		return nil, 0, err
	}
	existing.Status = status

	if !propagate {
		return existing, 0, nil
	}

	descendants, err := svc.ListDescendants(ctx, projectID)
	if err != nil {
		return nil, 0, err
	}
	changed := 0
	for _, d := range descendants {
		if d.Status.Terminal() || d.Status == status {
			continue
		}
		if _, err := svc.repo.SetStatus(ctx, d.ProjectID, status); err != nil {
			return nil, changed, err
		}
		changed++
	}
	return existing, changed, nil
}

// CascadeDelete removes the project, all its descendants, and every todo
// and habit they own. Owned resources go first and the project document
// itself goes last, so an interrupted cascade leaves orphaned leaves rather
// than dangling parents. Re-running over a partially deleted tree is safe.
func (svc *ProjectService) CascadeDelete(ctx context.Context, projectID string) error {
	if _, err := svc.Get(ctx, projectID); err != nil {
		return err
	}
	visited := map[string]bool{projectID: true}
	return svc.deleteTree(ctx, projectID, visited)
}

func (svc *ProjectService) deleteTree(ctx context.Context, projectID string, visited map[string]bool) error {
	if _, err := svc.todos.DeleteByProject(ctx, projectID); err != nil {
		return err
	}
	if _, err := svc.habits.DeleteByProject(ctx, projectID); err != nil {
		return err
	}

	children, err := svc.repo.GetChildren(ctx, projectID)
	if err != nil {
		return err
	}
	for _, child := range children {
		if visited[child.ProjectID] {
			return fmt.Errorf("%w: project %s", ErrCycle, child.ProjectID)
		}
		visited[child.ProjectID] = true
		if err := svc.deleteTree(ctx, child.ProjectID, visited); err != nil {
			return err
		}
	}

	_, err = svc.repo.Delete(ctx, projectID)
	return err
}

// Embedded item and url operations. The repository applies them as single
// positional updates; (nil, nil) from it means either the project or the
// targeted sub-document is gone.

func (svc *ProjectService) AddItem(ctx context.Context, projectID, name string, price *float64) (*model.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrValidation)
	}
	item := model.ProjectItem{
		ItemID: uuid.New().String(),
		Name:   name,
		Price:  price,
	}
	return svc.requireProject(svc.repo.AddItem(ctx, projectID, item))
}

func (svc *ProjectService) UpdateItem(ctx context.Context, projectID, itemID string, upd model.ProjectItemUpdate) (*model.Project, error) {
	if upd.Name != nil && *upd.Name == "" {
		return nil, fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	}
	if upd.IsPurchased != nil && *upd.IsPurchased && upd.PurchasedDate == nil {
		now := time.Now()
		upd.PurchasedDate = &now
	}
	return svc.requireProject(svc.repo.UpdateItem(ctx, projectID, itemID, upd))
}

func (svc *ProjectService) RemoveItem(ctx context.Context, projectID, itemID string) (*model.Project, error) {
	return svc.requireProject(svc.repo.RemoveItem(ctx, projectID, itemID))
}

func (svc *ProjectService) AddURL(ctx context.Context, projectID, title, rawURL string) (*model.Project, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("%w: url is required", ErrValidation)
	}
	url := model.ProjectURL{
		URLID: uuid.New().String(),
		Title: title,
		URL:   rawURL,
	}
	return svc.requireProject(svc.repo.AddURL(ctx, projectID, url))
}

func (svc *ProjectService) UpdateURL(ctx context.Context, projectID, urlID string, upd model.ProjectURLUpdate) (*model.Project, error) {
	if upd.URL != nil && *upd.URL == "" {
		return nil, fmt.Errorf("%w: url cannot be empty", ErrValidation)
	}
	return svc.requireProject(svc.repo.UpdateURL(ctx, projectID, urlID, upd))
}

func (svc *ProjectService) RemoveURL(ctx context.Context, projectID, urlID string) (*model.Project, error) {
	return svc.requireProject(svc.repo.RemoveURL(ctx, projectID, urlID))
}

func (svc *ProjectService) requireProject(project *model.Project, err error) (*model.Project, error) {
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project or sub-document", ErrNotFound)
	}
	return project, nil
}

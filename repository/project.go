package repository

import (
	"context"
	"errors"
	"time"

	"main/middleware"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProjectRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for ProjectRepo
func GetProjectRepo(client *mongo.Client) *ProjectRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "tracker")
	collectionName := utils.GetEnvAsString("PROJECTS_COLLECTION", "projects")
	return &ProjectRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// NormalizeProjectStatus translates pre-status documents at the read
// boundary: a missing status becomes "completed" when the legacy
// is_completed flag was set and "active" otherwise. The stored document is
// left as-is; the legacy flag only disappears the next time the project is
// replaced by an update.
func NormalizeProjectStatus(p *model.Project) *model.Project {
	if p == nil {
		return nil
	}
	if p.Status == "" {
		if p.LegacyCompleted != nil && *p.LegacyCompleted {
			p.Status = model.StatusCompleted
		} else {
			p.Status = model.StatusActive
		}
	}
	p.LegacyCompleted = nil
	if p.Items == nil {
		p.Items = []model.ProjectItem{}
	}
	if p.URLs == nil {
		p.URLs = []model.ProjectURL{}
	}
	return p
}

func (r *ProjectRepo) Create(ctx context.Context, project *model.Project) error {
	timer := middleware.TrackDBOperation("insert", "projects")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, project)
	return err
}

// GetByID returns (nil, nil) when the project does not exist.
func (r *ProjectRepo) GetByID(ctx context.Context, projectID string) (*model.Project, error) {
	var project model.Project
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": projectID}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return NormalizeProjectStatus(&project), nil
}

func (r *ProjectRepo) GetAll(ctx context.Context) ([]*model.Project, error) {
	return r.find(ctx, bson.M{})
}

// GetChildren returns the direct children of a project (one level).
func (r *ProjectRepo) GetChildren(ctx context.Context, parentID string) ([]*model.Project, error) {
	return r.find(ctx, bson.M{"parent_project_id": parentID})
}

// GetRoots returns projects without a parent.
func (r *ProjectRepo) GetRoots(ctx context.Context) ([]*model.Project, error) {
	return r.find(ctx, bson.M{"$or": []bson.M{
		{"parent_project_id": ""},
		{"parent_project_id": bson.M{"$exists": false}},
	}})
}

func (r *ProjectRepo) find(ctx context.Context, query bson.M) ([]*model.Project, error) {
	timer := middleware.TrackDBOperation("find", "projects")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []*model.Project
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	for _, p := range projects {
		NormalizeProjectStatus(p)
	}
	return projects, nil
}

func (r *ProjectRepo) Update(ctx context.Context, project *model.Project) error {
	timer := middleware.TrackDBOperation("update", "projects")
	defer timer.ObserveDuration()

	project.UpdatedAt = time.Now()
	result, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": project.ProjectID}, project)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("project not found")
	}
	return nil
}

func (r *ProjectRepo) SetStatus(ctx context.Context, projectID string, status model.ProjectStatus) (bool, error) {
	timer := middleware.TrackDBOperation("update", "projects")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": projectID}, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *ProjectRepo) Delete(ctx context.Context, projectID string) (bool, error) {
	timer := middleware.TrackDBOperation("delete", "projects")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": projectID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// Embedded items and urls are edited with single positional updates, never
// read-modify-write of the whole document.

func (r *ProjectRepo) AddItem(ctx context.Context, projectID string, item model.ProjectItem) (*model.Project, error) {
	update := bson.M{
		"$push": bson.M{"items": item},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": projectID}, update)
}

func (r *ProjectRepo) UpdateItem(ctx context.Context, projectID, itemID string, upd model.ProjectItemUpdate) (*model.Project, error) {
	set := bson.M{"updated_at": time.Now()}
	if upd.Name != nil {
		set["items.$.name"] = *upd.Name
	}
	if upd.Price != nil {
		set["items.$.price"] = *upd.Price
	}
	if upd.IsPurchased != nil {
		set["items.$.is_purchased"] = *upd.IsPurchased
	}
	if upd.PurchasedDate != nil {
		set["items.$.purchased_date"] = *upd.PurchasedDate
	}
	filter := bson.M{"_id": projectID, "items.id": itemID}
	return r.findOneAndUpdate(ctx, filter, bson.M{"$set": set})
}

func (r *ProjectRepo) RemoveItem(ctx context.Context, projectID, itemID string) (*model.Project, error) {
	update := bson.M{
		"$pull": bson.M{"items": bson.M{"id": itemID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": projectID}, update)
}

func (r *ProjectRepo) AddURL(ctx context.Context, projectID string, url model.ProjectURL) (*model.Project, error) {
	update := bson.M{
		"$push": bson.M{"urls": url},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": projectID}, update)
}

func (r *ProjectRepo) UpdateURL(ctx context.Context, projectID, urlID string, upd model.ProjectURLUpdate) (*model.Project, error) {
	set := bson.M{"updated_at": time.Now()}
	if upd.Title != nil {
		set["urls.$.title"] = *upd.Title
	}
	if upd.URL != nil {
		set["urls.$.url"] = *upd.URL
	}
	filter := bson.M{"_id": projectID, "urls.id": urlID}
	return r.findOneAndUpdate(ctx, filter, bson.M{"$set": set})
}

func (r *ProjectRepo) RemoveURL(ctx context.Context, projectID, urlID string) (*model.Project, error) {
	update := bson.M{
		"$pull": bson.M{"urls": bson.M{"id": urlID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": projectID}, update)
}

func (r *ProjectRepo) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*model.Project, error) {
	timer := middleware.TrackDBOperation("find_one_and_update", "projects")
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var project model.Project
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return NormalizeProjectStatus(&project), nil
}

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

type TodoRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for TodoRepo
func GetTodoRepo(client *mongo.Client) *TodoRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "tracker")
	collectionName := utils.GetEnvAsString("TODOS_COLLECTION", "todos")
	return &TodoRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *TodoRepo) Create(ctx context.Context, todo *model.Todo) error {
	timer := middleware.TrackDBOperation("insert", "todos")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, todo)
	return err
}

// GetByID returns (nil, nil) when the todo does not exist.
func (r *TodoRepo) GetByID(ctx context.Context, todoID string) (*model.Todo, error) {
	var todo model.Todo
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": todoID}).Decode(&todo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *TodoRepo) Find(ctx context.Context, filter model.TodoFilter) ([]*model.Todo, error) {
	timer := middleware.TrackDBOperation("find", "todos")
	defer timer.ObserveDuration()

	query := bson.M{}
	if filter.ProjectID != "" {
		query["project_id"] = filter.ProjectID
	}
	if filter.DueOn != nil {
		start, end := utils.DayRange(*filter.DueOn)
		query["due_date"] = bson.M{"$gte": start, "$lt": end}
	}
	if filter.IsCompleted != nil {
		query["is_completed"] = *filter.IsCompleted
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var todos []*model.Todo
	if err = cursor.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *TodoRepo) Update(ctx context.Context, todo *model.Todo) error {
	timer := middleware.TrackDBOperation("update", "todos")
	defer timer.ObserveDuration()

	todo.UpdatedAt = time.Now()
	result, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": todo.TodoID}, todo)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("todo not found")
	}
	return nil
}

func (r *TodoRepo) Delete(ctx context.Context, todoID string) (bool, error) {
	timer := middleware.TrackDBOperation("delete", "todos")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": todoID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// DeleteByProject removes every todo owned by the project. Zero matches is
// not an error; cascades re-run over partially deleted trees.
func (r *TodoRepo) DeleteByProject(ctx context.Context, projectID string) (int64, error) {
	timer := middleware.TrackDBOperation("delete_many", "todos")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

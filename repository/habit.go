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

type HabitRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for HabitRepo
func GetHabitRepo(client *mongo.Client) *HabitRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "tracker")
	collectionName := utils.GetEnvAsString("HABITS_COLLECTION", "habits")
	return &HabitRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *HabitRepo) Create(ctx context.Context, habit *model.Habit) error {
	timer := middleware.TrackDBOperation("insert", "habits")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, habit)
	return err
}

// GetByID returns (nil, nil) when the habit does not exist.
func (r *HabitRepo) GetByID(ctx context.Context, habitID string) (*model.Habit, error) {
	var habit model.Habit
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": habitID}).Decode(&habit)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if habit.CompletedDates == nil {
		habit.CompletedDates = []time.Time{}
	}
	return &habit, nil
}

func (r *HabitRepo) GetAll(ctx context.Context) ([]*model.Habit, error) {
	return r.find(ctx, bson.M{})
}

func (r *HabitRepo) GetByCategory(ctx context.Context, categoryID string) ([]*model.Habit, error) {
	return r.find(ctx, bson.M{"habit_category_id": categoryID})
}

func (r *HabitRepo) find(ctx context.Context, query bson.M) ([]*model.Habit, error) {
	timer := middleware.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var habits []*model.Habit
	if err = cursor.All(ctx, &habits); err != nil {
		return nil, err
	}
	for _, h := range habits {
		if h.CompletedDates == nil {
			h.CompletedDates = []time.Time{}
		}
	}
	return habits, nil
}

func (r *HabitRepo) Update(ctx context.Context, habit *model.Habit) error {
	timer := middleware.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	habit.UpdatedAt = time.Now()
	result, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": habit.HabitID}, habit)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("habit not found")
	}
	return nil
}

func (r *HabitRepo) Delete(ctx context.Context, habitID string) (bool, error) {
	timer := middleware.TrackDBOperation("delete", "habits")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": habitID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *HabitRepo) DeleteByProject(ctx context.Context, projectID string) (int64, error) {
	timer := middleware.TrackDBOperation("delete_many", "habits")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// AddCompletedDate marks a calendar day complete. The filter excludes habits
// that already carry an element inside the day window, so re-adding the same
// day is a single no-op call. Returns (nil, nil) when the habit is missing.
func (r *HabitRepo) AddCompletedDate(ctx context.Context, habitID string, day time.Time) (*model.Habit, error) {
	timer := middleware.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	start, end := utils.DayRange(day)
	filter := bson.M{
		"_id": habitID,
		"completed_dates": bson.M{
			"$not": bson.M{"$elemMatch": bson.M{"$gte": start, "$lt": end}},
		},
	}
	update := bson.M{
		"$push": bson.M{"completed_dates": start},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if _, err := r.MongoCollection.UpdateOne(ctx, filter, update); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, habitID)
}

// RemoveCompletedDate pulls every element inside the day window, catching
// legacy values that carry a time-of-day.
func (r *HabitRepo) RemoveCompletedDate(ctx context.Context, habitID string, day time.Time) (*model.Habit, error) {
	timer := middleware.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	start, end := utils.DayRange(day)
	update := bson.M{
		"$pull": bson.M{"completed_dates": bson.M{"$gte": start, "$lt": end}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if _, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": habitID}, update); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, habitID)
}

// PullDateByCategory clears one day from every habit in a category and
// reports how many documents actually changed.
func (r *HabitRepo) PullDateByCategory(ctx context.Context, categoryID string, day time.Time) (int64, error) {
	timer := middleware.TrackDBOperation("update_many", "habits")
	defer timer.ObserveDuration()

	start, end := utils.DayRange(day)
	update := bson.M{
		"$pull": bson.M{"completed_dates": bson.M{"$gte": start, "$lt": end}},
	}
	result, err := r.MongoCollection.UpdateMany(ctx, bson.M{"habit_category_id": categoryID}, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *HabitRepo) SetSortOrder(ctx context.Context, habitID string, order int) (bool, error) {
	update := bson.M{"$set": bson.M{"sort_order": order, "updated_at": time.Now()}}
	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": habitID}, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

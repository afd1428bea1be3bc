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

type HabitCategoryRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for HabitCategoryRepo
func GetHabitCategoryRepo(client *mongo.Client) *HabitCategoryRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "tracker")
	collectionName := utils.GetEnvAsString("HABIT_CATEGORIES_COLLECTION", "habit_categories")
	return &HabitCategoryRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *HabitCategoryRepo) Create(ctx context.Context, category *model.HabitCategory) error {
	timer := middleware.TrackDBOperation("insert", "habit_categories")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, category)
	return err
}

// GetByID returns (nil, nil) when the category does not exist.
func (r *HabitCategoryRepo) GetByID(ctx context.Context, categoryID string) (*model.HabitCategory, error) {
	var category model.HabitCategory
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": categoryID}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if category.SelectedDates == nil {
		category.SelectedDates = []time.Time{}
	}
	return &category, nil
}

func (r *HabitCategoryRepo) GetAll(ctx context.Context) ([]*model.HabitCategory, error) {
	timer := middleware.TrackDBOperation("find", "habit_categories")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []*model.HabitCategory
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	for _, cat := range categories {
		if cat.SelectedDates == nil {
			cat.SelectedDates = []time.Time{}
		}
	}
	return categories, nil
}

func (r *HabitCategoryRepo) Update(ctx context.Context, category *model.HabitCategory) error {
	timer := middleware.TrackDBOperation("update", "habit_categories")
	defer timer.ObserveDuration()

	category.UpdatedAt = time.Now()
	result, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": category.CategoryID}, category)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("habit category not found")
	}
	return nil
}

func (r *HabitCategoryRepo) Delete(ctx context.Context, categoryID string) (bool, error) {
	timer := middleware.TrackDBOperation("delete", "habit_categories")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": categoryID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// AddSelectedDate and RemoveSelectedDate mirror the habit completed-date
// toggle: one atomic call each, idempotent per calendar day.

func (r *HabitCategoryRepo) AddSelectedDate(ctx context.Context, categoryID string, day time.Time) (*model.HabitCategory, error) {
	start, end := utils.DayRange(day)
	filter := bson.M{
		"_id": categoryID,
		"selected_dates": bson.M{
			"$not": bson.M{"$elemMatch": bson.M{"$gte": start, "$lt": end}},
		},
	}
	update := bson.M{
		"$push": bson.M{"selected_dates": start},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if _, err := r.MongoCollection.UpdateOne(ctx, filter, update); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, categoryID)
}

func (r *HabitCategoryRepo) RemoveSelectedDate(ctx context.Context, categoryID string, day time.Time) (*model.HabitCategory, error) {
	start, end := utils.DayRange(day)
	update := bson.M{
		"$pull": bson.M{"selected_dates": bson.M{"$gte": start, "$lt": end}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if _, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": categoryID}, update); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, categoryID)
}

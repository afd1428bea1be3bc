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

type WishlistRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for WishlistRepo
func GetWishlistRepo(client *mongo.Client) *WishlistRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "tracker")
	collectionName := utils.GetEnvAsString("WISHLIST_COLLECTION", "wishlist")
	return &WishlistRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *WishlistRepo) Create(ctx context.Context, wish *model.Wishlist) error {
	timer := middleware.TrackDBOperation("insert", "wishlist")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, wish)
	return err
}

// GetByID returns (nil, nil) when the entry does not exist.
func (r *WishlistRepo) GetByID(ctx context.Context, wishID string) (*model.Wishlist, error) {
	var wish model.Wishlist
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": wishID}).Decode(&wish)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wish, nil
}

func (r *WishlistRepo) GetAll(ctx context.Context) ([]*model.Wishlist, error) {
	timer := middleware.TrackDBOperation("find", "wishlist")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var wishes []*model.Wishlist
	if err = cursor.All(ctx, &wishes); err != nil {
		return nil, err
	}
	return wishes, nil
}

func (r *WishlistRepo) Update(ctx context.Context, wish *model.Wishlist) error {
	timer := middleware.TrackDBOperation("update", "wishlist")
	defer timer.ObserveDuration()

	wish.UpdatedAt = time.Now()
	result, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": wish.WishlistID}, wish)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("wishlist entry not found")
	}
	return nil
}

func (r *WishlistRepo) Delete(ctx context.Context, wishID string) (bool, error) {
	timer := middleware.TrackDBOperation("delete", "wishlist")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": wishID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

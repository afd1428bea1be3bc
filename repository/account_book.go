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

// The account book is a singleton; every operation targets this fixed id.
const accountBookID = "account-book"

type AccountBookRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for AccountBookRepo
func GetAccountBookRepo(client *mongo.Client) *AccountBookRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "tracker")
	collectionName := utils.GetEnvAsString("ACCOUNT_BOOK_COLLECTION", "account_book")
	return &AccountBookRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// GetOrCreate returns the singleton document, inserting an empty one on
// first read.
func (r *AccountBookRepo) GetOrCreate(ctx context.Context) (*model.AccountBook, error) {
	now := time.Now()
	update := bson.M{
		"$setOnInsert": bson.M{
			"total_asset": float64(0),
			"wish_items":  []model.AccountWishItem{},
			"created_at":  now,
			"updated_at":  now,
		},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": accountBookID}, update, true)
}

func (r *AccountBookRepo) SetTotalAsset(ctx context.Context, total float64) (*model.AccountBook, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{"total_asset": total, "updated_at": now},
		"$setOnInsert": bson.M{
			"wish_items": []model.AccountWishItem{},
			"created_at": now,
		},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": accountBookID}, update, true)
}

func (r *AccountBookRepo) AddWishItem(ctx context.Context, item model.AccountWishItem) (*model.AccountBook, error) {
	// Make sure the singleton exists before pushing into its array.
	if _, err := r.GetOrCreate(ctx); err != nil {
		return nil, err
	}
	update := bson.M{
		"$push": bson.M{"wish_items": item},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": accountBookID}, update, false)
}

func (r *AccountBookRepo) UpdateWishItem(ctx context.Context, itemID string, upd model.AccountWishItemUpdate) (*model.AccountBook, error) {
	set := bson.M{"updated_at": time.Now()}
	if upd.Name != nil {
		set["wish_items.$.name"] = *upd.Name
	}
	if upd.Price != nil {
		set["wish_items.$.price"] = *upd.Price
	}
	if upd.IsPurchased != nil {
		set["wish_items.$.is_purchased"] = *upd.IsPurchased
	}
	if upd.PurchasedDate != nil {
		set["wish_items.$.purchased_date"] = *upd.PurchasedDate
	}
	filter := bson.M{"_id": accountBookID, "wish_items.id": itemID}
	return r.findOneAndUpdate(ctx, filter, bson.M{"$set": set}, false)
}

func (r *AccountBookRepo) RemoveWishItem(ctx context.Context, itemID string) (*model.AccountBook, error) {
	update := bson.M{
		"$pull": bson.M{"wish_items": bson.M{"id": itemID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": accountBookID}, update, false)
}

func (r *AccountBookRepo) findOneAndUpdate(ctx context.Context, filter, update bson.M, upsert bool) (*model.AccountBook, error) {
	timer := middleware.TrackDBOperation("find_one_and_update", "account_book")
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(upsert)
	var book model.AccountBook
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if book.WishItems == nil {
		book.WishItems = []model.AccountWishItem{}
	}
	return &book, nil
}

package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	todosCollection := db.Collection("todos")
	projectsCollection := db.Collection("projects")
	habitsCollection := db.Collection("habits")

	todoIndexes := []mongo.IndexModel{
		// Cascade delete filters on the owning project
		{
			Keys: bson.D{{Key: "project_id", Value: 1}},
			Options: options.Index().
				SetName("todo_project"),
		},
		// Day-window due date listing
		{
			Keys: bson.D{{Key: "due_date", Value: 1}},
			Options: options.Index().
				SetName("todo_due_date"),
		},
	}

	projectIndexes := []mongo.IndexModel{
		// Child lookup drives the tree engine
		{
			Keys: bson.D{{Key: "parent_project_id", Value: 1}},
			Options: options.Index().
				SetName("project_parent"),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
			Options: options.Index().
				SetName("project_status"),
		},
	}

	habitIndexes := []mongo.IndexModel{
		// Bulk reset and category listing filter on the category
		{
			Keys: bson.D{
				{Key: "habit_category_id", Value: 1},
				{Key: "sort_order", Value: 1},
			},
			Options: options.Index().
				SetName("habit_category_order"),
		},
		{
			Keys: bson.D{{Key: "project_id", Value: 1}},
			Options: options.Index().
				SetName("habit_project"),
		},
	}

	if _, err := todosCollection.Indexes().CreateMany(ctx, todoIndexes); err != nil {
		return fmt.Errorf("failed to create todo indexes: %w", err)
	}
	if _, err := projectsCollection.Indexes().CreateMany(ctx, projectIndexes); err != nil {
		return fmt.Errorf("failed to create project indexes: %w", err)
	}
	if _, err := habitsCollection.Indexes().CreateMany(ctx, habitIndexes); err != nil {
		return fmt.Errorf("failed to create habit indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}

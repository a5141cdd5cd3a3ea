package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the indexes the handlers rely on. Technology
// names are unique; the service checks for duplicates before insert, the
// index is the backstop against the check racing another writer.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	technologies := db.Collection("technologies")
	_, err := technologies.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetName("uniq_name").
				SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("by_id"),
		},
	})
	if err != nil {
		return err
	}

	// every other entity is listed and addressed by the numeric id
	for _, name := range []string{
		"users", "workexperiences", "educations",
		"certifications", "testimonials", "projects",
	} {
		col := db.Collection(name)
		_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("by_id"),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

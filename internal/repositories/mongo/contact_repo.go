package mongo

import (
	"context"
	"errors"

	"github.com/yoockh/portfolio-admin/internal/models"
	"github.com/yoockh/portfolio-admin/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContactRepository manages the singleton contact document; there is no
// numeric id, the single document is addressed directly.
type ContactRepository interface {
	Get(ctx context.Context) (*models.Contact, error)
	Insert(ctx context.Context, doc *models.Contact) error
	Replace(ctx context.Context, doc *models.Contact) error
	Delete(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

type contactRepo struct {
	col *mongo.Collection
}

func NewContactRepo(db *mongo.Database) ContactRepository {
	return &contactRepo{col: db.Collection("contacts")}
}

func (r *contactRepo) Get(ctx context.Context) (*models.Contact, error) {
	var doc models.Contact
	err := r.col.FindOne(ctx, bson.M{}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *contactRepo) Insert(ctx context.Context, doc *models.Contact) error {
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.OID = oid
	}
	return nil
}

func (r *contactRepo) Replace(ctx context.Context, doc *models.Contact) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.OID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *contactRepo) Delete(ctx context.Context) error {
	res, err := r.col.DeleteOne(ctx, bson.M{})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *contactRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

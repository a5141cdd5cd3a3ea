package mongo

import (
	"context"
	"errors"

	"github.com/yoockh/portfolio-admin/internal/models"
	"github.com/yoockh/portfolio-admin/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TechnologyRepository interface {
	List(ctx context.Context) ([]models.Technology, error)
	GetByID(ctx context.Context, id int) (*models.Technology, error)
	GetByName(ctx context.Context, name string) (*models.Technology, error)
	NextID(ctx context.Context) (int, error)
	Insert(ctx context.Context, doc *models.Technology) error
	Replace(ctx context.Context, doc *models.Technology) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}

type technologyRepo struct {
	col *mongo.Collection
}

func NewTechnologyRepo(db *mongo.Database) TechnologyRepository {
	return &technologyRepo{col: db.Collection("technologies")}
}

func (r *technologyRepo) List(ctx context.Context) ([]models.Technology, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := []models.Technology{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *technologyRepo) GetByID(ctx context.Context, id int) (*models.Technology, error) {
	var doc models.Technology
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *technologyRepo) GetByName(ctx context.Context, name string) (*models.Technology, error) {
	var doc models.Technology
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *technologyRepo) NextID(ctx context.Context) (int, error) {
	return nextID(ctx, r.col)
}

func (r *technologyRepo) Insert(ctx context.Context, doc *models.Technology) error {
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *technologyRepo) Replace(ctx context.Context, doc *models.Technology) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"id": doc.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *technologyRepo) Delete(ctx context.Context, id int) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *technologyRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

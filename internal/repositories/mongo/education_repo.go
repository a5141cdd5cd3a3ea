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

type EducationRepository interface {
	List(ctx context.Context) ([]models.Education, error)
	GetByID(ctx context.Context, id int) (*models.Education, error)
	NextID(ctx context.Context) (int, error)
	Insert(ctx context.Context, doc *models.Education) error
	Replace(ctx context.Context, doc *models.Education) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}

type educationRepo struct {
	col *mongo.Collection
}

func NewEducationRepo(db *mongo.Database) EducationRepository {
	return &educationRepo{col: db.Collection("educations")}
}

func (r *educationRepo) List(ctx context.Context) ([]models.Education, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := []models.Education{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *educationRepo) GetByID(ctx context.Context, id int) (*models.Education, error) {
	var doc models.Education
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *educationRepo) NextID(ctx context.Context) (int, error) {
	return nextID(ctx, r.col)
}

func (r *educationRepo) Insert(ctx context.Context, doc *models.Education) error {
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *educationRepo) Replace(ctx context.Context, doc *models.Education) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"id": doc.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *educationRepo) Delete(ctx context.Context, id int) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *educationRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

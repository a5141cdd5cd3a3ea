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

type WorkExperienceRepository interface {
	List(ctx context.Context) ([]models.WorkExperience, error)
	GetByID(ctx context.Context, id int) (*models.WorkExperience, error)
	NextID(ctx context.Context) (int, error)
	Insert(ctx context.Context, doc *models.WorkExperience) error
	Replace(ctx context.Context, doc *models.WorkExperience) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}

type workExperienceRepo struct {
	col *mongo.Collection
}

func NewWorkExperienceRepo(db *mongo.Database) WorkExperienceRepository {
	return &workExperienceRepo{col: db.Collection("workexperiences")}
}

func (r *workExperienceRepo) List(ctx context.Context) ([]models.WorkExperience, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := []models.WorkExperience{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *workExperienceRepo) GetByID(ctx context.Context, id int) (*models.WorkExperience, error) {
	var doc models.WorkExperience
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *workExperienceRepo) NextID(ctx context.Context) (int, error) {
	return nextID(ctx, r.col)
}

func (r *workExperienceRepo) Insert(ctx context.Context, doc *models.WorkExperience) error {
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *workExperienceRepo) Replace(ctx context.Context, doc *models.WorkExperience) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"id": doc.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *workExperienceRepo) Delete(ctx context.Context, id int) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *workExperienceRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

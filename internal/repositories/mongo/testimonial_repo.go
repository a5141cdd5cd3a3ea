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

type TestimonialRepository interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	GetByID(ctx context.Context, id int) (*models.Testimonial, error)
	NextID(ctx context.Context) (int, error)
	Insert(ctx context.Context, doc *models.Testimonial) error
	Replace(ctx context.Context, doc *models.Testimonial) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}

type testimonialRepo struct {
	col *mongo.Collection
}

func NewTestimonialRepo(db *mongo.Database) TestimonialRepository {
	return &testimonialRepo{col: db.Collection("testimonials")}
}

func (r *testimonialRepo) List(ctx context.Context) ([]models.Testimonial, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := []models.Testimonial{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *testimonialRepo) GetByID(ctx context.Context, id int) (*models.Testimonial, error) {
	var doc models.Testimonial
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *testimonialRepo) NextID(ctx context.Context) (int, error) {
	return nextID(ctx, r.col)
}

func (r *testimonialRepo) Insert(ctx context.Context, doc *models.Testimonial) error {
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *testimonialRepo) Replace(ctx context.Context, doc *models.Testimonial) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"id": doc.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *testimonialRepo) Delete(ctx context.Context, id int) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *testimonialRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

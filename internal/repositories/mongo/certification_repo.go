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

type CertificationRepository interface {
	List(ctx context.Context) ([]models.Certification, error)
	GetByID(ctx context.Context, id int) (*models.Certification, error)
	NextID(ctx context.Context) (int, error)
	Insert(ctx context.Context, doc *models.Certification) error
	Replace(ctx context.Context, doc *models.Certification) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}

type certificationRepo struct {
	col *mongo.Collection
}

func NewCertificationRepo(db *mongo.Database) CertificationRepository {
	return &certificationRepo{col: db.Collection("certifications")}
}

func (r *certificationRepo) List(ctx context.Context) ([]models.Certification, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := []models.Certification{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *certificationRepo) GetByID(ctx context.Context, id int) (*models.Certification, error) {
	var doc models.Certification
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *certificationRepo) NextID(ctx context.Context) (int, error) {
	return nextID(ctx, r.col)
}

func (r *certificationRepo) Insert(ctx context.Context, doc *models.Certification) error {
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *certificationRepo) Replace(ctx context.Context, doc *models.Certification) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"id": doc.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *certificationRepo) Delete(ctx context.Context, id int) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *certificationRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

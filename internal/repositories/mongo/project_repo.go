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

type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int) (*models.Project, error)
	NextID(ctx context.Context) (int, error)
	Insert(ctx context.Context, doc *models.Project) error
	Replace(ctx context.Context, doc *models.Project) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}

type projectRepo struct {
	col *mongo.Collection
}

func NewProjectRepo(db *mongo.Database) ProjectRepository {
	return &projectRepo{col: db.Collection("projects")}
}

func (r *projectRepo) List(ctx context.Context) ([]models.Project, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := []models.Project{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *projectRepo) GetByID(ctx context.Context, id int) (*models.Project, error) {
	var doc models.Project
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *projectRepo) NextID(ctx context.Context) (int, error) {
	return nextID(ctx, r.col)
}

func (r *projectRepo) Insert(ctx context.Context, doc *models.Project) error {
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *projectRepo) Replace(ctx context.Context, doc *models.Project) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"id": doc.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id int) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

package main

import (
	"context"
	"errors"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/portfolio-admin/config"
	"github.com/yoockh/portfolio-admin/internal/api/handlers"
	"github.com/yoockh/portfolio-admin/internal/api/middleware"
	"github.com/yoockh/portfolio-admin/internal/api/routes"
	"github.com/yoockh/portfolio-admin/internal/cache"
	"github.com/yoockh/portfolio-admin/internal/logger"
	mongorepo "github.com/yoockh/portfolio-admin/internal/repositories/mongo"
	"github.com/yoockh/portfolio-admin/internal/services"
	"github.com/yoockh/portfolio-admin/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	ctx := context.Background()

	client, err := config.ConnectMongo(ctx)
	if err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(config.MongoDBName())

	if err := config.EnsureMongoIndexes(ctx, db); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	log.Info("MongoDB connected")

	bucket := os.Getenv("GCS_BUCKET")
	if bucket == "" {
		log.Fatal("GCS_BUCKET environment variable is not set")
	}
	uploader, err := storage.NewGCSUploader(ctx, bucket)
	if err != nil {
		log.Fatalf("GCS init error: %v", err)
	}
	defer func() { _ = uploader.Close() }()

	// the counts cache is optional; without redis every dashboard load
	// re-issues all six counts
	var countsCache cache.Cache
	rdb, err := config.ConnectRedis(ctx)
	switch {
	case err == nil:
		countsCache = cache.NewRedisCache(rdb)
		log.Info("Redis connected")
	case errors.Is(err, config.ErrRedisNotConfigured):
		log.Warn("Redis not configured, counts cache disabled")
	default:
		log.Fatalf("Redis init error: %v", err)
	}

	userRepo := mongorepo.NewUserRepo(db)
	workExperienceRepo := mongorepo.NewWorkExperienceRepo(db)
	educationRepo := mongorepo.NewEducationRepo(db)
	certificationRepo := mongorepo.NewCertificationRepo(db)
	technologyRepo := mongorepo.NewTechnologyRepo(db)
	testimonialRepo := mongorepo.NewTestimonialRepo(db)
	projectRepo := mongorepo.NewProjectRepo(db)
	contactRepo := mongorepo.NewContactRepo(db)

	deps := routes.Deps{
		User:           handlers.NewUserHandler(services.NewUserService(userRepo, uploader, log)),
		WorkExperience: handlers.NewWorkExperienceHandler(services.NewWorkExperienceService(workExperienceRepo, uploader, countsCache, log)),
		Education:      handlers.NewEducationHandler(services.NewEducationService(educationRepo, countsCache, log)),
		Certification:  handlers.NewCertificationHandler(services.NewCertificationService(certificationRepo, countsCache, log)),
		Technology:     handlers.NewTechnologyHandler(services.NewTechnologyService(technologyRepo, uploader, countsCache, log)),
		Testimonial:    handlers.NewTestimonialHandler(services.NewTestimonialService(testimonialRepo, uploader, countsCache, log)),
		Project:        handlers.NewProjectHandler(services.NewProjectService(projectRepo, uploader, countsCache, log)),
		Contact:        handlers.NewContactHandler(services.NewContactService(contactRepo)),
		Count: handlers.NewCountHandler(services.NewCountService(
			certificationRepo, educationRepo, projectRepo,
			technologyRepo, testimonialRepo, workExperienceRepo,
			countsCache, log,
		)),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	routes.RegisterRoutes(r, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

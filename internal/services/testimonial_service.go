package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/portfolio-admin/internal/cache"
	"github.com/yoockh/portfolio-admin/internal/models"
	mongorepo "github.com/yoockh/portfolio-admin/internal/repositories/mongo"
	"github.com/yoockh/portfolio-admin/internal/storage"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

type TestimonialInput struct {
	Quote          string
	AuthorName     string
	AuthorPosition string
	AuthorImage    *FileUpload // nil keeps the stored image on update
}

type TestimonialService interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	Get(ctx context.Context, id int) (*models.Testimonial, error)
	Create(ctx context.Context, in TestimonialInput) (*models.Testimonial, error)
	Update(ctx context.Context, id int, in TestimonialInput) (*models.Testimonial, error)
	Delete(ctx context.Context, id int) error
}

type testimonialService struct {
	repo     mongorepo.TestimonialRepository
	uploader storage.Uploader
	cache    cache.Cache
	log      *logrus.Logger
}

func NewTestimonialService(repo mongorepo.TestimonialRepository, uploader storage.Uploader, c cache.Cache, log *logrus.Logger) TestimonialService {
	return &testimonialService{repo: repo, uploader: uploader, cache: c, log: log}
}

func validateTestimonial(op string, in TestimonialInput) error {
	for _, f := range []struct{ name, value string }{
		{"quote", in.Quote},
		{"authorName", in.AuthorName},
		{"authorPosition", in.AuthorPosition},
	} {
		if strings.TrimSpace(f.value) == "" {
			return utils.E(utils.CodeInvalidArgument, op, f.name+" is required", nil)
		}
	}
	return nil
}

func (s *testimonialService) List(ctx context.Context) ([]models.Testimonial, error) {
	const op = "TestimonialService.List"
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch testimonials", err)
	}
	return out, nil
}

func (s *testimonialService) Get(ctx context.Context, id int) (*models.Testimonial, error) {
	const op = "TestimonialService.Get"
	out, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "testimonial not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch testimonial", err)
	}
	return out, nil
}

func (s *testimonialService) Create(ctx context.Context, in TestimonialInput) (*models.Testimonial, error) {
	const op = "TestimonialService.Create"

	if err := validateTestimonial(op, in); err != nil {
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to assign id", err)
	}

	imageURL := ""
	if in.AuthorImage != nil {
		imageURL, err = uploadFile(ctx, s.uploader, folderTestimonialImages, in.AuthorImage)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to upload image", err)
		}
	}

	doc := &models.Testimonial{
		ID:             id,
		Quote:          strings.TrimSpace(in.Quote),
		AuthorName:     strings.TrimSpace(in.AuthorName),
		AuthorPosition: strings.TrimSpace(in.AuthorPosition),
		AuthorImage:    imageURL,
	}
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create testimonial", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return doc, nil
}

func (s *testimonialService) Update(ctx context.Context, id int, in TestimonialInput) (*models.Testimonial, error) {
	const op = "TestimonialService.Update"

	if err := validateTestimonial(op, in); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "testimonial not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch testimonial", err)
	}

	imageURL := existing.AuthorImage
	if in.AuthorImage != nil {
		imageURL, err = uploadFile(ctx, s.uploader, folderTestimonialImages, in.AuthorImage)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to upload image", err)
		}
		removeMedia(ctx, s.uploader, s.log, existing.AuthorImage)
	}

	doc := &models.Testimonial{
		ID:             id,
		Quote:          strings.TrimSpace(in.Quote),
		AuthorName:     strings.TrimSpace(in.AuthorName),
		AuthorPosition: strings.TrimSpace(in.AuthorPosition),
		AuthorImage:    imageURL,
	}
	if err := s.repo.Replace(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update testimonial", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return doc, nil
}

func (s *testimonialService) Delete(ctx context.Context, id int) error {
	const op = "TestimonialService.Delete"

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "testimonial not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to fetch testimonial", err)
	}

	removeMedia(ctx, s.uploader, s.log, existing.AuthorImage)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "testimonial not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete testimonial", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return nil
}

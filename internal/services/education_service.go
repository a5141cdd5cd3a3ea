package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/portfolio-admin/internal/cache"
	"github.com/yoockh/portfolio-admin/internal/models"
	mongorepo "github.com/yoockh/portfolio-admin/internal/repositories/mongo"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

type EducationInput struct {
	Degree      string            `json:"degree"`
	Institution string            `json:"institution"`
	Location    string            `json:"location"`
	Period      string            `json:"period"`
	Description string            `json:"description"`
	Courses     models.StringList `json:"courses"`
	Options     string            `json:"options"`
}

type EducationService interface {
	List(ctx context.Context) ([]models.Education, error)
	Get(ctx context.Context, id int) (*models.Education, error)
	Create(ctx context.Context, in EducationInput) (*models.Education, error)
	Update(ctx context.Context, id int, in EducationInput) (*models.Education, error)
	Delete(ctx context.Context, id int) error
}

type educationService struct {
	repo  mongorepo.EducationRepository
	cache cache.Cache
	log   *logrus.Logger
}

func NewEducationService(repo mongorepo.EducationRepository, c cache.Cache, log *logrus.Logger) EducationService {
	return &educationService{repo: repo, cache: c, log: log}
}

func validateEducation(op string, in EducationInput) error {
	if strings.TrimSpace(in.Degree) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "degree is required", nil)
	}
	if strings.TrimSpace(in.Institution) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "institution is required", nil)
	}
	return nil
}

func educationFromInput(id int, in EducationInput) *models.Education {
	courses := in.Courses
	if courses == nil {
		courses = models.StringList{}
	}
	return &models.Education{
		ID:          id,
		Degree:      strings.TrimSpace(in.Degree),
		Institution: strings.TrimSpace(in.Institution),
		Location:    strings.TrimSpace(in.Location),
		Period:      strings.TrimSpace(in.Period),
		Description: strings.TrimSpace(in.Description),
		Courses:     courses,
		Options:     strings.TrimSpace(in.Options),
	}
}

func (s *educationService) List(ctx context.Context) ([]models.Education, error) {
	const op = "EducationService.List"
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch educations", err)
	}
	return out, nil
}

func (s *educationService) Get(ctx context.Context, id int) (*models.Education, error) {
	const op = "EducationService.Get"
	out, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "education not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch education", err)
	}
	return out, nil
}

func (s *educationService) Create(ctx context.Context, in EducationInput) (*models.Education, error) {
	const op = "EducationService.Create"

	if err := validateEducation(op, in); err != nil {
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to assign id", err)
	}

	doc := educationFromInput(id, in)
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create education", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return doc, nil
}

func (s *educationService) Update(ctx context.Context, id int, in EducationInput) (*models.Education, error) {
	const op = "EducationService.Update"

	if err := validateEducation(op, in); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "education not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch education", err)
	}

	doc := educationFromInput(id, in)
	if err := s.repo.Replace(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update education", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return doc, nil
}

func (s *educationService) Delete(ctx context.Context, id int) error {
	const op = "EducationService.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "education not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete education", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return nil
}

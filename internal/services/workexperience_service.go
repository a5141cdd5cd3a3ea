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

type WorkExperienceInput struct {
	Title            string
	Company          string
	Location         string
	Period           string
	Description      string
	Responsibilities []string
	Technologies     []string
	CompanyLogo      *FileUpload // nil keeps the stored logo on update
}

type WorkExperienceService interface {
	List(ctx context.Context) ([]models.WorkExperience, error)
	Get(ctx context.Context, id int) (*models.WorkExperience, error)
	Create(ctx context.Context, in WorkExperienceInput) (*models.WorkExperience, error)
	Update(ctx context.Context, id int, in WorkExperienceInput) (*models.WorkExperience, error)
	Delete(ctx context.Context, id int) error
}

type workExperienceService struct {
	repo     mongorepo.WorkExperienceRepository
	uploader storage.Uploader
	cache    cache.Cache
	log      *logrus.Logger
}

func NewWorkExperienceService(repo mongorepo.WorkExperienceRepository, uploader storage.Uploader, c cache.Cache, log *logrus.Logger) WorkExperienceService {
	return &workExperienceService{repo: repo, uploader: uploader, cache: c, log: log}
}

func validateWorkExperience(op string, in WorkExperienceInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "title is required", nil)
	}
	if strings.TrimSpace(in.Company) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "company is required", nil)
	}
	return nil
}

func workExperienceFromInput(id int, in WorkExperienceInput, logoURL string) *models.WorkExperience {
	responsibilities := in.Responsibilities
	if responsibilities == nil {
		responsibilities = []string{}
	}
	technologies := in.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return &models.WorkExperience{
		ID:               id,
		Title:            strings.TrimSpace(in.Title),
		Company:          strings.TrimSpace(in.Company),
		CompanyLogo:      logoURL,
		Location:         strings.TrimSpace(in.Location),
		Period:           strings.TrimSpace(in.Period),
		Description:      strings.TrimSpace(in.Description),
		Responsibilities: responsibilities,
		Technologies:     technologies,
	}
}

func (s *workExperienceService) List(ctx context.Context) ([]models.WorkExperience, error) {
	const op = "WorkExperienceService.List"
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch work experiences", err)
	}
	return out, nil
}

func (s *workExperienceService) Get(ctx context.Context, id int) (*models.WorkExperience, error) {
	const op = "WorkExperienceService.Get"
	out, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "work experience not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch work experience", err)
	}
	return out, nil
}

func (s *workExperienceService) Create(ctx context.Context, in WorkExperienceInput) (*models.WorkExperience, error) {
	const op = "WorkExperienceService.Create"

	if err := validateWorkExperience(op, in); err != nil {
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to assign id", err)
	}

	logoURL := ""
	if in.CompanyLogo != nil {
		logoURL, err = uploadFile(ctx, s.uploader, folderCompanyLogos, in.CompanyLogo)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to upload company logo", err)
		}
	}

	doc := workExperienceFromInput(id, in, logoURL)
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create work experience", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return doc, nil
}

func (s *workExperienceService) Update(ctx context.Context, id int, in WorkExperienceInput) (*models.WorkExperience, error) {
	const op = "WorkExperienceService.Update"

	if err := validateWorkExperience(op, in); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "work experience not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch work experience", err)
	}

	logoURL := existing.CompanyLogo
	if in.CompanyLogo != nil {
		logoURL, err = uploadFile(ctx, s.uploader, folderCompanyLogos, in.CompanyLogo)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to upload company logo", err)
		}
		removeMedia(ctx, s.uploader, s.log, existing.CompanyLogo)
	}

	doc := workExperienceFromInput(id, in, logoURL)
	if err := s.repo.Replace(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update work experience", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return doc, nil
}

func (s *workExperienceService) Delete(ctx context.Context, id int) error {
	const op = "WorkExperienceService.Delete"

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "work experience not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to fetch work experience", err)
	}

	removeMedia(ctx, s.uploader, s.log, existing.CompanyLogo)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "work experience not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete work experience", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return nil
}

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/portfolio-admin/internal/cache"
	"github.com/yoockh/portfolio-admin/internal/models"
	mongorepo "github.com/yoockh/portfolio-admin/internal/repositories/mongo"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

type CertificationInput struct {
	Name           string `json:"name"`
	Provider       string `json:"provider"`
	Date           string `json:"date"`
	CertificateURL string `json:"certificateUrl"`
	Details        string `json:"details"`
}

type CertificationService interface {
	List(ctx context.Context) ([]models.Certification, error)
	Get(ctx context.Context, id int) (*models.Certification, error)
	Create(ctx context.Context, in CertificationInput) (*models.Certification, error)
	Update(ctx context.Context, id int, in CertificationInput) (*models.Certification, error)
	Delete(ctx context.Context, id int) error
}

type certificationService struct {
	repo  mongorepo.CertificationRepository
	cache cache.Cache
	log   *logrus.Logger
}

func NewCertificationService(repo mongorepo.CertificationRepository, c cache.Cache, log *logrus.Logger) CertificationService {
	return &certificationService{repo: repo, cache: c, log: log}
}

// validateCertification is shared by the create and update paths.
func validateCertification(op string, in CertificationInput) (time.Time, error) {
	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"provider", in.Provider},
		{"date", in.Date},
		{"certificateUrl", in.CertificateURL},
	} {
		if strings.TrimSpace(f.value) == "" {
			return time.Time{}, utils.E(utils.CodeInvalidArgument, op, f.name+" is required", nil)
		}
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return time.Time{}, utils.E(utils.CodeInvalidArgument, op, "invalid date format", err)
	}
	return date, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (s *certificationService) List(ctx context.Context) ([]models.Certification, error) {
	const op = "CertificationService.List"
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch certifications", err)
	}
	return out, nil
}

func (s *certificationService) Get(ctx context.Context, id int) (*models.Certification, error) {
	const op = "CertificationService.Get"
	out, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "certification not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch certification", err)
	}
	return out, nil
}

func (s *certificationService) Create(ctx context.Context, in CertificationInput) (*models.Certification, error) {
	const op = "CertificationService.Create"

	date, err := validateCertification(op, in)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to assign id", err)
	}

	doc := &models.Certification{
		ID:             id,
		Name:           strings.TrimSpace(in.Name),
		Provider:       strings.TrimSpace(in.Provider),
		Date:           date,
		CertificateURL: strings.TrimSpace(in.CertificateURL),
		Details:        strings.TrimSpace(in.Details),
	}
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create certification", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return doc, nil
}

func (s *certificationService) Update(ctx context.Context, id int, in CertificationInput) (*models.Certification, error) {
	const op = "CertificationService.Update"

	date, err := validateCertification(op, in)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "certification not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch certification", err)
	}

	doc := &models.Certification{
		ID:             id,
		Name:           strings.TrimSpace(in.Name),
		Provider:       strings.TrimSpace(in.Provider),
		Date:           date,
		CertificateURL: strings.TrimSpace(in.CertificateURL),
		Details:        strings.TrimSpace(in.Details),
	}
	if err := s.repo.Replace(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update certification", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return doc, nil
}

func (s *certificationService) Delete(ctx context.Context, id int) error {
	const op = "CertificationService.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "certification not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete certification", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return nil
}

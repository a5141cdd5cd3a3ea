package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/portfolio-admin/internal/cache"
	"github.com/yoockh/portfolio-admin/internal/models"
	mongorepo "github.com/yoockh/portfolio-admin/internal/repositories/mongo"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

// CountService serves the dashboard's aggregate counts. The result is cached
// for cache.CountsTTL; mutations on counted collections invalidate the key.
type CountService interface {
	Get(ctx context.Context) (*models.Counts, error)
}

type countService struct {
	certifications  mongorepo.CertificationRepository
	educations      mongorepo.EducationRepository
	projects        mongorepo.ProjectRepository
	technologies    mongorepo.TechnologyRepository
	testimonials    mongorepo.TestimonialRepository
	workExperiences mongorepo.WorkExperienceRepository
	cache           cache.Cache
	log             *logrus.Logger
}

func NewCountService(
	certifications mongorepo.CertificationRepository,
	educations mongorepo.EducationRepository,
	projects mongorepo.ProjectRepository,
	technologies mongorepo.TechnologyRepository,
	testimonials mongorepo.TestimonialRepository,
	workExperiences mongorepo.WorkExperienceRepository,
	c cache.Cache,
	log *logrus.Logger,
) CountService {
	return &countService{
		certifications:  certifications,
		educations:      educations,
		projects:        projects,
		technologies:    technologies,
		testimonials:    testimonials,
		workExperiences: workExperiences,
		cache:           c,
		log:             log,
	}
}

func (s *countService) Get(ctx context.Context) (*models.Counts, error) {
	const op = "CountService.Get"

	if s.cache != nil {
		var cached models.Counts
		hit, err := s.cache.GetJSON(ctx, cache.CountsKey, &cached)
		if err != nil && s.log != nil {
			s.log.WithError(err).Warn("counts cache read failed")
		}
		if hit {
			return &cached, nil
		}
	}

	var (
		counts models.Counts
		err    error
	)
	if counts.Certifications, err = s.certifications.Count(ctx); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count certifications", err)
	}
	if counts.Education, err = s.educations.Count(ctx); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count educations", err)
	}
	if counts.Projects, err = s.projects.Count(ctx); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count projects", err)
	}
	if counts.Technologies, err = s.technologies.Count(ctx); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count technologies", err)
	}
	if counts.Testimonials, err = s.testimonials.Count(ctx); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count testimonials", err)
	}
	if counts.WorkExperiences, err = s.workExperiences.Count(ctx); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count work experiences", err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cache.CountsKey, &counts, cache.CountsTTL); err != nil && s.log != nil {
			s.log.WithError(err).Warn("counts cache write failed")
		}
	}
	return &counts, nil
}

// invalidateCounts drops the cached aggregate after a successful mutation on
// a counted collection. Failures only warn; the mutation already happened.
func invalidateCounts(ctx context.Context, c cache.Cache, log *logrus.Logger) {
	if c == nil {
		return
	}
	if err := c.Del(ctx, cache.CountsKey); err != nil && log != nil {
		log.WithError(err).Warn("failed to invalidate counts cache")
	}
}

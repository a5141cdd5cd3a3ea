package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/portfolio-admin/internal/cache"
	"github.com/yoockh/portfolio-admin/internal/models"
)

func newCountService(c cache.Cache) (CountService, *fakeCertificationRepo) {
	certs := &fakeCertificationRepo{docs: []models.Certification{{ID: 1}, {ID: 2}}}
	return NewCountService(
		certs,
		&fakeEducationRepo{docs: []models.Education{{ID: 1}}},
		&fakeProjectRepo{},
		&fakeTechnologyRepo{docs: []models.Technology{{ID: 1}, {ID: 2}, {ID: 3}}},
		&fakeTestimonialRepo{},
		&fakeWorkExperienceRepo{},
		c, nil,
	), certs
}

func TestCountGetAggregatesAllCollections(t *testing.T) {
	svc, _ := newCountService(nil)

	out, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.Counts{
		Certifications:  2,
		Education:       1,
		Projects:        0,
		Technologies:    3,
		Testimonials:    0,
		WorkExperiences: 0,
	}, out)
}

func TestCountGetWritesCacheOnMiss(t *testing.T) {
	c := newFakeCache()
	svc, _ := newCountService(c)

	_, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Contains(t, c.data, cache.CountsKey)
}

func TestCountGetServesFromCacheOnHit(t *testing.T) {
	c := newFakeCache()
	require.NoError(t, c.SetJSON(context.Background(), cache.CountsKey, &models.Counts{Certifications: 99}, cache.CountsTTL))
	svc, certs := newCountService(c)

	out, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(99), out.Certifications, "cached value wins over live counts")

	// live counts would disagree, proving the repos were not consulted
	n, err := certs.Count(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, out.Certifications, n)
}

func TestCountMutationThenGetReflectsNewTotals(t *testing.T) {
	c := newFakeCache()
	certs := &fakeCertificationRepo{}
	countSvc := NewCountService(
		certs,
		&fakeEducationRepo{}, &fakeProjectRepo{}, &fakeTechnologyRepo{},
		&fakeTestimonialRepo{}, &fakeWorkExperienceRepo{},
		c, nil,
	)
	certSvc := NewCertificationService(certs, c, nil)
	ctx := context.Background()

	before, err := countSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), before.Certifications)

	_, err = certSvc.Create(ctx, CertificationInput{
		Name: "AWS SA", Provider: "Amazon", Date: "2024-01-01", CertificateURL: "https://x/y",
	})
	require.NoError(t, err)

	after, err := countSvc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), after.Certifications, "create invalidates the cached aggregate")
}

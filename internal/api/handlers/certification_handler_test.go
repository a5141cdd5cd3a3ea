package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/portfolio-admin/internal/models"
	"github.com/yoockh/portfolio-admin/internal/services"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

func certificationRouter(svc services.CertificationService) *gin.Engine {
	h := NewCertificationHandler(svc)
	r := gin.New()
	r.GET("/api/certifications/:id", h.Get)
	r.POST("/api/certifications", h.Create)
	r.DELETE("/api/certifications/:id", h.Delete)
	return r
}

func TestCertificationCreateReturns201(t *testing.T) {
	svc := &stubCertificationService{
		create: func(_ context.Context, in services.CertificationInput) (*models.Certification, error) {
			assert.Equal(t, "AWS SA", in.Name)
			return &models.Certification{ID: 1, Name: in.Name, Provider: in.Provider}, nil
		},
	}
	r := certificationRouter(svc)

	body := `{"name":"AWS SA","provider":"Amazon","date":"2024-01-01","certificateUrl":"https://x/y"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/certifications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var got models.Certification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.ID)
}

func TestCertificationCreateMalformedBodyReturns400(t *testing.T) {
	r := certificationRouter(&stubCertificationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/certifications", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var got APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "invalid request body", got.Message)
}

func TestCertificationGetNonNumericIDReturns400(t *testing.T) {
	r := certificationRouter(&stubCertificationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/certifications/abc", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var got APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "invalid id", got.Message)
}

func TestCertificationGetNotFoundReturns404(t *testing.T) {
	svc := &stubCertificationService{
		get: func(_ context.Context, id int) (*models.Certification, error) {
			return nil, utils.E(utils.CodeNotFound, "CertificationService.Get", "certification not found", nil)
		},
	}
	r := certificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/certifications/99", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCertificationDeleteReturnsMessage(t *testing.T) {
	svc := &stubCertificationService{
		delete: func(_ context.Context, id int) error {
			assert.Equal(t, 3, id)
			return nil
		},
	}
	r := certificationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/certifications/3", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "certification deleted successfully")
}

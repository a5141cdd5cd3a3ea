package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio-admin/internal/services"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

type CertificationHandler struct {
	svc services.CertificationService
}

func NewCertificationHandler(svc services.CertificationService) *CertificationHandler {
	return &CertificationHandler{svc: svc}
}

func (h *CertificationHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CertificationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	out, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CertificationHandler) Create(c *gin.Context) {
	var in services.CertificationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CertificationHandler.Create", "invalid request body", err))
		return
	}
	out, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *CertificationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in services.CertificationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CertificationHandler.Update", "invalid request body", err))
		return
	}
	out, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CertificationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "certification deleted successfully"})
}

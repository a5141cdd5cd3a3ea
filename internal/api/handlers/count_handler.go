package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio-admin/internal/services"
)

type CountHandler struct {
	svc services.CountService
}

func NewCountHandler(svc services.CountService) *CountHandler {
	return &CountHandler{svc: svc}
}

func (h *CountHandler) Get(c *gin.Context) {
	out, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

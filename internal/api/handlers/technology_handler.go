package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio-admin/internal/services"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

type TechnologyHandler struct {
	svc services.TechnologyService
}

func NewTechnologyHandler(svc services.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{svc: svc}
}

func bindTechnologyForm(c *gin.Context, op string) (services.TechnologyInput, func(), bool) {
	icon, closeIcon, err := formFile(c, "icon")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid icon upload", err))
		return services.TechnologyInput{}, func() {}, false
	}

	in := services.TechnologyInput{
		Name:     c.PostForm("name"),
		Category: c.PostForm("category"),
		Icon:     icon,
	}
	return in, closeIcon, true
}

func (h *TechnologyHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *TechnologyHandler) Get(c *gin.Context) {
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

func (h *TechnologyHandler) Create(c *gin.Context) {
	in, cleanup, ok := bindTechnologyForm(c, "TechnologyHandler.Create")
	if !ok {
		return
	}
	defer cleanup()

	out, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *TechnologyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, cleanup, ok := bindTechnologyForm(c, "TechnologyHandler.Update")
	if !ok {
		return
	}
	defer cleanup()

	out, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *TechnologyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "technology deleted successfully"})
}

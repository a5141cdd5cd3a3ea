package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio-admin/internal/services"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

type WorkExperienceHandler struct {
	svc services.WorkExperienceService
}

func NewWorkExperienceHandler(svc services.WorkExperienceService) *WorkExperienceHandler {
	return &WorkExperienceHandler{svc: svc}
}

func bindWorkExperienceForm(c *gin.Context, op string) (services.WorkExperienceInput, func(), bool) {
	logo, closeLogo, err := formFile(c, "companyLogo")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid company logo upload", err))
		return services.WorkExperienceInput{}, func() {}, false
	}

	in := services.WorkExperienceInput{
		Title:            c.PostForm("title"),
		Company:          c.PostForm("company"),
		Location:         c.PostForm("location"),
		Period:           c.PostForm("period"),
		Description:      c.PostForm("description"),
		Responsibilities: utils.NormalizeList(c.PostFormArray("responsibilities")),
		Technologies:     utils.NormalizeList(c.PostFormArray("technologies")),
		CompanyLogo:      logo,
	}
	return in, closeLogo, true
}

func (h *WorkExperienceHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *WorkExperienceHandler) Get(c *gin.Context) {
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

func (h *WorkExperienceHandler) Create(c *gin.Context) {
	in, cleanup, ok := bindWorkExperienceForm(c, "WorkExperienceHandler.Create")
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

func (h *WorkExperienceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, cleanup, ok := bindWorkExperienceForm(c, "WorkExperienceHandler.Update")
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

func (h *WorkExperienceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "work experience deleted successfully"})
}

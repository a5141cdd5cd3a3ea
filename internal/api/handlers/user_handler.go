package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio-admin/internal/services"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

// UserHandler serves the profile resource under /api/portfolio. The form is
// multipart: text fields plus optional image and cv attachments.
type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func bindUserForm(c *gin.Context, op string) (services.UserInput, func(), bool) {
	noop := func() {}

	image, closeImage, err := formFile(c, "image")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid image upload", err))
		return services.UserInput{}, noop, false
	}
	cv, closeCV, err := formFile(c, "cv")
	if err != nil {
		closeImage()
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid cv upload", err))
		return services.UserInput{}, noop, false
	}

	years, _ := strconv.Atoi(c.PostForm("yearsOfExperience"))

	in := services.UserInput{
		FullName:          c.PostForm("fullName"),
		Title:             c.PostForm("title"),
		Tagline:           c.PostForm("tagline"),
		Introduction:      c.PostForm("introduction"),
		KeySkills:         utils.NormalizeList(c.PostFormArray("keySkills")),
		Status:            c.PostForm("status"),
		YearsOfExperience: years,
		Image:             image,
		CV:                cv,
	}
	return in, func() { closeImage(); closeCV() }, true
}

func (h *UserHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Get(c *gin.Context) {
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

func (h *UserHandler) Create(c *gin.Context) {
	in, cleanup, ok := bindUserForm(c, "UserHandler.Create")
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

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, cleanup, ok := bindUserForm(c, "UserHandler.Update")
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

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}

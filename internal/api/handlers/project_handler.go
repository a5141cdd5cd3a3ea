package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio-admin/internal/services"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

// ProjectHandler serves the project resource. The form is multipart with a
// thumbnail plus repeated gallery images and icon attachments; the edit form
// also sends the URLs the operator removed.
type ProjectHandler struct {
	svc services.ProjectService
}

func NewProjectHandler(svc services.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

func bindProjectForm(c *gin.Context, op string) (services.ProjectInput, func(), bool) {
	noop := func() {}

	thumbnail, closeThumbnail, err := formFile(c, "thumbnail")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid thumbnail upload", err))
		return services.ProjectInput{}, noop, false
	}
	images, closeImages, err := formFiles(c, "images")
	if err != nil {
		closeThumbnail()
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid image uploads", err))
		return services.ProjectInput{}, noop, false
	}
	icons, closeIcons, err := formFiles(c, "iconLists")
	if err != nil {
		closeThumbnail()
		closeImages()
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid icon uploads", err))
		return services.ProjectInput{}, noop, false
	}

	in := services.ProjectInput{
		Title:            c.PostForm("title"),
		Description:      c.PostForm("description"),
		Domain:           c.PostForm("domain"),
		LiveURL:          c.PostForm("liveUrl"),
		GithubURL:        c.PostForm("githubUrl"),
		Thumbnail:        thumbnail,
		Images:           images,
		IconLists:        icons,
		RemovedImages:    c.PostFormArray("removedImages"),
		RemovedIconLists: c.PostFormArray("removedIconLists"),
	}
	cleanup := func() {
		closeThumbnail()
		closeImages()
		closeIcons()
	}
	return in, cleanup, true
}

func (h *ProjectHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProjectHandler) Get(c *gin.Context) {
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

func (h *ProjectHandler) Create(c *gin.Context) {
	in, cleanup, ok := bindProjectForm(c, "ProjectHandler.Create")
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

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, cleanup, ok := bindProjectForm(c, "ProjectHandler.Update")
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

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted successfully"})
}

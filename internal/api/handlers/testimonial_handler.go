package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio-admin/internal/services"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

type TestimonialHandler struct {
	svc services.TestimonialService
}

func NewTestimonialHandler(svc services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{svc: svc}
}

func bindTestimonialForm(c *gin.Context, op string) (services.TestimonialInput, func(), bool) {
	image, closeImage, err := formFile(c, "authorImage")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid author image upload", err))
		return services.TestimonialInput{}, func() {}, false
	}

	in := services.TestimonialInput{
		Quote:          c.PostForm("quote"),
		AuthorName:     c.PostForm("authorName"),
		AuthorPosition: c.PostForm("authorPosition"),
		AuthorImage:    image,
	}
	return in, closeImage, true
}

func (h *TestimonialHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *TestimonialHandler) Get(c *gin.Context) {
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

func (h *TestimonialHandler) Create(c *gin.Context) {
	in, cleanup, ok := bindTestimonialForm(c, "TestimonialHandler.Create")
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

func (h *TestimonialHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, cleanup, ok := bindTestimonialForm(c, "TestimonialHandler.Update")
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

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "testimonial deleted successfully"})
}

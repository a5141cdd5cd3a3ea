package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio-admin/internal/services"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

// parseID reads the :id route param; anything that is not an integer is a 400.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "", "invalid id", err))
		return 0, false
	}
	return id, true
}

// formFile opens an optional multipart attachment. A missing or empty field
// yields nil; the returned closer is always safe to call.
func formFile(c *gin.Context, field string) (*services.FileUpload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	return openUpload(fh)
}

func openUpload(fh *multipart.FileHeader) (*services.FileUpload, func(), error) {
	if fh == nil || fh.Size == 0 {
		return nil, func() {}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &services.FileUpload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	}, func() { _ = f.Close() }, nil
}

// formFiles opens every attachment sent under a repeated multipart field.
func formFiles(c *gin.Context, field string) ([]*services.FileUpload, func(), error) {
	noop := func() {}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, noop, err
	}

	closers := []func(){}
	closeAll := func() {
		for _, cl := range closers {
			cl()
		}
	}

	out := []*services.FileUpload{}
	for _, fh := range form.File[field] {
		fu, closer, err := openUpload(fh)
		if err != nil {
			closeAll()
			return nil, noop, err
		}
		if fu == nil {
			continue
		}
		closers = append(closers, closer)
		out = append(out, fu)
	}
	return out, closeAll, nil
}

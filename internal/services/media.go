package services

import (
	"context"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/portfolio-admin/internal/storage"
)

// Bucket folders, one per entity/field.
const (
	folderUserImages        = "users/images"
	folderUserCVs           = "users/cvs"
	folderCompanyLogos      = "company/logos"
	folderTechnologyIcons   = "technologies/icons"
	folderTestimonialImages = "testimonial/feedback"
	folderProjectThumbnails = "projects/thumbnails"
	folderProjectImages     = "projects/images"
	folderProjectIcons      = "projects/icons"
)

// FileUpload is a multipart attachment as handed over by a handler.
type FileUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// uploadFile stores the attachment under a fresh object name inside folder
// and returns the public URL kept on the document.
func uploadFile(ctx context.Context, up storage.Uploader, folder string, f *FileUpload) (string, error) {
	name := folder + "/" + uuid.NewString() + filepath.Ext(f.Filename)
	return up.Upload(ctx, name, f.ContentType, f.Reader)
}

// removeMedia deletes the remote object behind a stored URL. Best-effort:
// failures are logged and swallowed so the record operation proceeds.
func removeMedia(ctx context.Context, up storage.Uploader, log *logrus.Logger, publicURL string) {
	if publicURL == "" || up == nil {
		return
	}
	object, ok := storage.ObjectFromURL(publicURL)
	if !ok {
		if log != nil {
			log.WithField("url", publicURL).Warn("media url does not match bucket, skipping delete")
		}
		return
	}
	if err := up.Delete(ctx, object); err != nil && log != nil {
		log.WithError(err).WithField("object", object).Warn("failed to delete media object")
	}
}

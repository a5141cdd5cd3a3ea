package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/portfolio-admin/internal/models"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

func validUserInput() UserInput {
	return UserInput{
		FullName:     "Ada Lovelace",
		Title:        "Software Engineer",
		Tagline:      "I build things",
		Introduction: "Hello there",
		KeySkills:    []string{"Go", "MongoDB"},
	}
}

func TestUserCreateSingleton(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo, &fakeUploader{}, nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, validUserInput())
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, models.DefaultUserStatus, first.Status)

	_, err = svc.Create(ctx, validUserInput())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Contains(t, err.Error(), "only one profile is allowed")
	assert.Len(t, repo.docs, 1)
}

func TestUserCreateRejectsUnknownCVType(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeUploader{}, nil)

	in := validUserInput()
	in.CV = &FileUpload{Reader: strings.NewReader("x"), Filename: "cv.png", ContentType: "image/png"}

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Contains(t, err.Error(), "only PDF, DOC, and DOCX")
}

func TestUserCreateAcceptsPDFCV(t *testing.T) {
	up := &fakeUploader{}
	svc := NewUserService(&fakeUserRepo{}, up, nil)

	in := validUserInput()
	in.CV = &FileUpload{Reader: strings.NewReader("x"), Filename: "cv.pdf", ContentType: "application/pdf"}

	out, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, out.CV, "users/cvs/")
	require.Len(t, up.uploads, 1)
	assert.True(t, strings.HasSuffix(up.uploads[0], ".pdf"))
}

func TestUserUpdateKeepsMediaWithoutNewFiles(t *testing.T) {
	imageURL := "https://storage.googleapis.com/test-bucket/users/images/a.png"
	cvURL := "https://storage.googleapis.com/test-bucket/users/cvs/a.pdf"
	repo := &fakeUserRepo{docs: []models.User{{
		ID: 1, FullName: "Ada Lovelace", Title: "SE", Tagline: "t",
		Introduction: "i", Status: models.DefaultUserStatus,
		Image: imageURL, CV: cvURL,
	}}}
	up := &fakeUploader{}
	svc := NewUserService(repo, up, nil)

	out, err := svc.Update(context.Background(), 1, validUserInput())
	require.NoError(t, err)
	assert.Equal(t, imageURL, out.Image)
	assert.Equal(t, cvURL, out.CV)
	assert.Empty(t, up.uploads)
	assert.Empty(t, up.deleted)
}

func TestUserUpdateReplacesImageAndDeletesOld(t *testing.T) {
	repo := &fakeUserRepo{docs: []models.User{{
		ID: 1, FullName: "Ada Lovelace", Title: "SE", Tagline: "t",
		Introduction: "i", Status: models.DefaultUserStatus,
		Image: "https://storage.googleapis.com/test-bucket/users/images/old.png",
	}}}
	up := &fakeUploader{}
	svc := NewUserService(repo, up, nil)

	in := validUserInput()
	in.Image = &FileUpload{Reader: strings.NewReader("x"), Filename: "new.png", ContentType: "image/png"}

	out, err := svc.Update(context.Background(), 1, in)
	require.NoError(t, err)
	assert.NotEqual(t, "https://storage.googleapis.com/test-bucket/users/images/old.png", out.Image)
	assert.Equal(t, []string{"users/images/old.png"}, up.deleted)
}

func TestUserDeleteRemovesMediaBestEffort(t *testing.T) {
	repo := &fakeUserRepo{docs: []models.User{{
		ID: 1, FullName: "Ada Lovelace", Title: "SE", Tagline: "t",
		Introduction: "i", Status: models.DefaultUserStatus,
		Image: "https://storage.googleapis.com/test-bucket/users/images/a.png",
		CV:    "https://storage.googleapis.com/test-bucket/users/cvs/a.pdf",
	}}}
	up := &fakeUploader{deleteErr: assert.AnError}
	svc := NewUserService(repo, up, nil)

	err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, repo.docs)
}

func TestUserUpdateNotFound(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeUploader{}, nil)

	_, err := svc.Update(context.Background(), 5, validUserInput())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

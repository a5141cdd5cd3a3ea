package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/portfolio-admin/internal/models"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

func TestContactCreateSingleton(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)
	ctx := context.Background()

	in := ContactInput{
		Email:       "me@example.com",
		Phone:       "+1 555 0100",
		SocialLinks: models.SocialLinks{Github: "https://github.com/me"},
	}

	out, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", out.Email)

	_, err = svc.Create(ctx, in)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Contains(t, err.Error(), "only one contact can be created")
}

func TestContactCreateValidation(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{})

	_, err := svc.Create(context.Background(), ContactInput{Phone: "+1 555 0100"})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Contains(t, err.Error(), "email is required")
}

func TestContactGetNotFound(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{})

	_, err := svc.Get(context.Background())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestContactUpdateNotFound(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{})

	_, err := svc.Update(context.Background(), ContactInput{Email: "a@b.c", Phone: "1"})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestContactUpdateReplacesDocument(t *testing.T) {
	repo := &fakeContactRepo{doc: &models.Contact{Email: "old@example.com", Phone: "1"}}
	svc := NewContactService(repo)

	out, err := svc.Update(context.Background(), ContactInput{Email: "new@example.com", Phone: "2"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", out.Email)
	assert.Equal(t, "new@example.com", repo.doc.Email)
}

func TestContactDeleteNotFound(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{})

	err := svc.Delete(context.Background())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

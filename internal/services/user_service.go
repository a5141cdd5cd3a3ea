package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/portfolio-admin/internal/models"
	mongorepo "github.com/yoockh/portfolio-admin/internal/repositories/mongo"
	"github.com/yoockh/portfolio-admin/internal/storage"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

type UserInput struct {
	FullName          string
	Title             string
	Tagline           string
	Introduction      string
	KeySkills         []string
	Status            string
	YearsOfExperience int
	Image             *FileUpload // nil keeps the stored image on update
	CV                *FileUpload // nil keeps the stored cv on update
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, in UserInput) (*models.User, error)
	Update(ctx context.Context, id int, in UserInput) (*models.User, error)
	Delete(ctx context.Context, id int) error
}

type userService struct {
	repo     mongorepo.UserRepository
	uploader storage.Uploader
	log      *logrus.Logger
}

func NewUserService(repo mongorepo.UserRepository, uploader storage.Uploader, log *logrus.Logger) UserService {
	return &userService{repo: repo, uploader: uploader, log: log}
}

var allowedCVTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

func validateUser(op string, in UserInput) error {
	for _, f := range []struct{ name, value string }{
		{"fullName", in.FullName},
		{"title", in.Title},
		{"tagline", in.Tagline},
		{"introduction", in.Introduction},
	} {
		if strings.TrimSpace(f.value) == "" {
			return utils.E(utils.CodeInvalidArgument, op, f.name+" is required", nil)
		}
	}
	if in.Status != "" && !models.ValidUserStatus(in.Status) {
		return utils.E(utils.CodeInvalidArgument, op, "invalid status", nil)
	}
	if in.CV != nil && !allowedCVTypes[in.CV.ContentType] {
		return utils.E(utils.CodeInvalidArgument, op, "only PDF, DOC, and DOCX files are allowed for cv", nil)
	}
	return nil
}

func userFromInput(id int, in UserInput, imageURL, cvURL string) *models.User {
	status := in.Status
	if status == "" {
		status = models.DefaultUserStatus
	}
	skills := in.KeySkills
	if skills == nil {
		skills = []string{}
	}
	return &models.User{
		ID:                id,
		FullName:          strings.TrimSpace(in.FullName),
		Image:             imageURL,
		Title:             strings.TrimSpace(in.Title),
		Tagline:           strings.TrimSpace(in.Tagline),
		Introduction:      strings.TrimSpace(in.Introduction),
		KeySkills:         skills,
		Status:            status,
		CV:                cvURL,
		YearsOfExperience: in.YearsOfExperience,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	const op = "UserService.List"
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch users", err)
	}
	return out, nil
}

func (s *userService) Get(ctx context.Context, id int) (*models.User, error) {
	const op = "UserService.Get"
	out, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch user", err)
	}
	return out, nil
}

func (s *userService) Create(ctx context.Context, in UserInput) (*models.User, error) {
	const op = "UserService.Create"

	// singleton: the dashboard manages exactly one profile
	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing profile", err)
	}
	if n > 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "a user profile already exists, only one profile is allowed", nil)
	}

	if err := validateUser(op, in); err != nil {
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to assign id", err)
	}

	imageURL := ""
	if in.Image != nil {
		imageURL, err = uploadFile(ctx, s.uploader, folderUserImages, in.Image)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to upload image", err)
		}
	}

	cvURL := ""
	if in.CV != nil {
		cvURL, err = uploadFile(ctx, s.uploader, folderUserCVs, in.CV)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to upload cv", err)
		}
	}

	doc := userFromInput(id, in, imageURL, cvURL)
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return doc, nil
}

func (s *userService) Update(ctx context.Context, id int, in UserInput) (*models.User, error) {
	const op = "UserService.Update"

	if err := validateUser(op, in); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch user", err)
	}

	imageURL := existing.Image
	if in.Image != nil {
		imageURL, err = uploadFile(ctx, s.uploader, folderUserImages, in.Image)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to upload image", err)
		}
		removeMedia(ctx, s.uploader, s.log, existing.Image)
	}

	cvURL := existing.CV
	if in.CV != nil {
		cvURL, err = uploadFile(ctx, s.uploader, folderUserCVs, in.CV)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to upload cv", err)
		}
		removeMedia(ctx, s.uploader, s.log, existing.CV)
	}

	doc := userFromInput(id, in, imageURL, cvURL)
	if err := s.repo.Replace(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update user", err)
	}
	return doc, nil
}

func (s *userService) Delete(ctx context.Context, id int) error {
	const op = "UserService.Delete"

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to fetch user", err)
	}

	removeMedia(ctx, s.uploader, s.log, existing.Image)
	removeMedia(ctx, s.uploader, s.log, existing.CV)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete user", err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/portfolio-admin/internal/cache"
	"github.com/yoockh/portfolio-admin/internal/models"
	mongorepo "github.com/yoockh/portfolio-admin/internal/repositories/mongo"
	"github.com/yoockh/portfolio-admin/internal/storage"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

type TechnologyInput struct {
	Name     string
	Category string
	Icon     *FileUpload // nil keeps the stored icon on update
}

type TechnologyService interface {
	List(ctx context.Context) ([]models.Technology, error)
	Get(ctx context.Context, id int) (*models.Technology, error)
	Create(ctx context.Context, in TechnologyInput) (*models.Technology, error)
	Update(ctx context.Context, id int, in TechnologyInput) (*models.Technology, error)
	Delete(ctx context.Context, id int) error
}

type technologyService struct {
	repo     mongorepo.TechnologyRepository
	uploader storage.Uploader
	cache    cache.Cache
	log      *logrus.Logger
}

func NewTechnologyService(repo mongorepo.TechnologyRepository, uploader storage.Uploader, c cache.Cache, log *logrus.Logger) TechnologyService {
	return &technologyService{repo: repo, uploader: uploader, cache: c, log: log}
}

func validateTechnology(op string, in TechnologyInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	if strings.TrimSpace(in.Category) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "category is required", nil)
	}
	if !models.ValidTechnologyCategory(in.Category) {
		return utils.E(utils.CodeInvalidArgument, op, "invalid category", nil)
	}
	return nil
}

// checkDuplicateName rejects a name already held by a different document.
// selfID is 0 on create.
func (s *technologyService) checkDuplicateName(ctx context.Context, op, name string, selfID int) error {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil
		}
		return utils.E(utils.CodeInternal, op, "failed to check for duplicate name", err)
	}
	if existing.ID != selfID {
		return utils.E(utils.CodeInvalidArgument, op, "technology with this name already exists", nil)
	}
	return nil
}

func (s *technologyService) List(ctx context.Context) ([]models.Technology, error) {
	const op = "TechnologyService.List"
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch technologies", err)
	}
	return out, nil
}

func (s *technologyService) Get(ctx context.Context, id int) (*models.Technology, error) {
	const op = "TechnologyService.Get"
	out, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "technology not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch technology", err)
	}
	return out, nil
}

func (s *technologyService) Create(ctx context.Context, in TechnologyInput) (*models.Technology, error) {
	const op = "TechnologyService.Create"

	if err := validateTechnology(op, in); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if err := s.checkDuplicateName(ctx, op, name, 0); err != nil {
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to assign id", err)
	}

	iconURL := ""
	if in.Icon != nil {
		iconURL, err = uploadFile(ctx, s.uploader, folderTechnologyIcons, in.Icon)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to upload icon", err)
		}
	}

	doc := &models.Technology{
		ID:       id,
		Category: in.Category,
		Name:     name,
		Icon:     iconURL,
	}
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create technology", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return doc, nil
}

func (s *technologyService) Update(ctx context.Context, id int, in TechnologyInput) (*models.Technology, error) {
	const op = "TechnologyService.Update"

	if err := validateTechnology(op, in); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "technology not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch technology", err)
	}

	name := strings.TrimSpace(in.Name)
	if err := s.checkDuplicateName(ctx, op, name, id); err != nil {
		return nil, err
	}

	iconURL := existing.Icon
	if in.Icon != nil {
		iconURL, err = uploadFile(ctx, s.uploader, folderTechnologyIcons, in.Icon)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to upload icon", err)
		}
		removeMedia(ctx, s.uploader, s.log, existing.Icon)
	}

	doc := &models.Technology{
		ID:       id,
		Category: in.Category,
		Name:     name,
		Icon:     iconURL,
	}
	if err := s.repo.Replace(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update technology", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return doc, nil
}

func (s *technologyService) Delete(ctx context.Context, id int) error {
	const op = "TechnologyService.Delete"

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "technology not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to fetch technology", err)
	}

	removeMedia(ctx, s.uploader, s.log, existing.Icon)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "technology not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete technology", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return nil
}

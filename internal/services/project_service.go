package services

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/portfolio-admin/internal/cache"
	"github.com/yoockh/portfolio-admin/internal/models"
	mongorepo "github.com/yoockh/portfolio-admin/internal/repositories/mongo"
	"github.com/yoockh/portfolio-admin/internal/storage"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

type ProjectInput struct {
	Title       string
	Description string
	Domain      string
	LiveURL     string
	GithubURL   string

	Thumbnail *FileUpload   // nil keeps the stored thumbnail on update
	Images    []*FileUpload // appended to the stored gallery
	IconLists []*FileUpload // appended to the stored icon list

	// URLs the operator removed in the edit form; filtered out of the
	// document and deleted from the bucket best-effort.
	RemovedImages    []string
	RemovedIconLists []string
}

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id int) (*models.Project, error)
	Create(ctx context.Context, in ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id int, in ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id int) error
}

type projectService struct {
	repo     mongorepo.ProjectRepository
	uploader storage.Uploader
	cache    cache.Cache
	log      *logrus.Logger
}

func NewProjectService(repo mongorepo.ProjectRepository, uploader storage.Uploader, c cache.Cache, log *logrus.Logger) ProjectService {
	return &projectService{repo: repo, uploader: uploader, cache: c, log: log}
}

func validateProject(op string, in ProjectInput) error {
	for _, f := range []struct{ name, value string }{
		{"title", in.Title},
		{"description", in.Description},
		{"domain", in.Domain},
	} {
		if strings.TrimSpace(f.value) == "" {
			return utils.E(utils.CodeInvalidArgument, op, f.name+" is required", nil)
		}
	}
	return nil
}

// uploadAll uploads each attachment in order. A failure aborts the whole
// operation; already uploaded objects are not rolled back.
func (s *projectService) uploadAll(ctx context.Context, folder string, files []*FileUpload) ([]string, error) {
	urls := []string{}
	for _, f := range files {
		u, err := uploadFile(ctx, s.uploader, folder, f)
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	const op = "ProjectService.List"
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch projects", err)
	}
	return out, nil
}

func (s *projectService) Get(ctx context.Context, id int) (*models.Project, error) {
	const op = "ProjectService.Get"
	out, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch project", err)
	}
	return out, nil
}

func (s *projectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	const op = "ProjectService.Create"

	if err := validateProject(op, in); err != nil {
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to assign id", err)
	}

	thumbnailURL := ""
	if in.Thumbnail != nil {
		thumbnailURL, err = uploadFile(ctx, s.uploader, folderProjectThumbnails, in.Thumbnail)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to upload thumbnail", err)
		}
	}
	images, err := s.uploadAll(ctx, folderProjectImages, in.Images)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upload images", err)
	}
	icons, err := s.uploadAll(ctx, folderProjectIcons, in.IconLists)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upload icons", err)
	}

	doc := &models.Project{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Domain:      strings.TrimSpace(in.Domain),
		Thumbnail:   thumbnailURL,
		Images:      images,
		IconLists:   icons,
		LiveURL:     strings.TrimSpace(in.LiveURL),
		GithubURL:   strings.TrimSpace(in.GithubURL),
	}
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create project", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return doc, nil
}

func (s *projectService) Update(ctx context.Context, id int, in ProjectInput) (*models.Project, error) {
	const op = "ProjectService.Update"

	if err := validateProject(op, in); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch project", err)
	}

	thumbnailURL := existing.Thumbnail
	if in.Thumbnail != nil {
		thumbnailURL, err = uploadFile(ctx, s.uploader, folderProjectThumbnails, in.Thumbnail)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to upload thumbnail", err)
		}
		removeMedia(ctx, s.uploader, s.log, existing.Thumbnail)
	}

	newImages, err := s.uploadAll(ctx, folderProjectImages, in.Images)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upload images", err)
	}
	newIcons, err := s.uploadAll(ctx, folderProjectIcons, in.IconLists)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upload icons", err)
	}

	images := s.dropRemoved(ctx, append(slices.Clone(existing.Images), newImages...), in.RemovedImages)
	icons := s.dropRemoved(ctx, append(slices.Clone(existing.IconLists), newIcons...), in.RemovedIconLists)

	doc := &models.Project{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Domain:      strings.TrimSpace(in.Domain),
		Thumbnail:   thumbnailURL,
		Images:      images,
		IconLists:   icons,
		LiveURL:     strings.TrimSpace(in.LiveURL),
		GithubURL:   strings.TrimSpace(in.GithubURL),
	}
	if err := s.repo.Replace(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update project", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return doc, nil
}

// dropRemoved filters removed URLs out of the list and deletes their bucket
// objects, each independently best-effort.
func (s *projectService) dropRemoved(ctx context.Context, urls, removed []string) []string {
	if len(removed) == 0 {
		return urls
	}
	kept := []string{}
	for _, u := range urls {
		if slices.Contains(removed, u) {
			removeMedia(ctx, s.uploader, s.log, u)
			continue
		}
		kept = append(kept, u)
	}
	return kept
}

func (s *projectService) Delete(ctx context.Context, id int) error {
	const op = "ProjectService.Delete"

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to fetch project", err)
	}

	removeMedia(ctx, s.uploader, s.log, existing.Thumbnail)
	for _, u := range existing.Images {
		removeMedia(ctx, s.uploader, s.log, u)
	}
	for _, u := range existing.IconLists {
		removeMedia(ctx, s.uploader, s.log, u)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete project", err)
	}

	invalidateCounts(ctx, s.cache, s.log)
	return nil
}

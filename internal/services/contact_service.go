package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yoockh/portfolio-admin/internal/models"
	mongorepo "github.com/yoockh/portfolio-admin/internal/repositories/mongo"
	"github.com/yoockh/portfolio-admin/internal/utils"
)

type ContactInput struct {
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	SocialLinks models.SocialLinks `json:"socialLinks"`
}

// ContactService manages the singleton contact document.
type ContactService interface {
	Get(ctx context.Context) (*models.Contact, error)
	Create(ctx context.Context, in ContactInput) (*models.Contact, error)
	Update(ctx context.Context, in ContactInput) (*models.Contact, error)
	Delete(ctx context.Context) error
}

type contactService struct {
	repo mongorepo.ContactRepository
}

func NewContactService(repo mongorepo.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func validateContact(op string, in ContactInput) error {
	if strings.TrimSpace(in.Email) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "email is required", nil)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return utils.E(utils.CodeInvalidArgument, op, "phone is required", nil)
	}
	return nil
}

func (s *contactService) Get(ctx context.Context) (*models.Contact, error) {
	const op = "ContactService.Get"
	out, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "no contact found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch contact", err)
	}
	return out, nil
}

func (s *contactService) Create(ctx context.Context, in ContactInput) (*models.Contact, error) {
	const op = "ContactService.Create"

	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing contact", err)
	}
	if n > 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "a contact already exists, only one contact can be created", nil)
	}

	if err := validateContact(op, in); err != nil {
		return nil, err
	}

	doc := &models.Contact{
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		SocialLinks: in.SocialLinks,
	}
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create contact", err)
	}
	return doc, nil
}

func (s *contactService) Update(ctx context.Context, in ContactInput) (*models.Contact, error) {
	const op = "ContactService.Update"

	if err := validateContact(op, in); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "no contact found to update", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch contact", err)
	}

	doc := &models.Contact{
		OID:         existing.OID,
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		SocialLinks: in.SocialLinks,
	}
	if err := s.repo.Replace(ctx, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update contact", err)
	}
	return doc, nil
}

func (s *contactService) Delete(ctx context.Context) error {
	const op = "ContactService.Delete"

	if err := s.repo.Delete(ctx); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "no contact found to delete", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete contact", err)
	}
	return nil
}

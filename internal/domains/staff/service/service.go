package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/staff/model"
	"bookstore-storefront/internal/domains/staff/repository"
	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/logger"
)

type ServiceInterface interface {
	// List returns back-office accounts (staff roles only unless filtered)
	List(ctx context.Context, req model.ListStaffRequest) (*model.StaffPage, error)
	// UpdateRole changes id's role; actor may not change itself
	UpdateRole(ctx context.Context, actorID, id uuid.UUID, req model.UpdateRoleRequest) error
	// UpdateStatus activates or deactivates id; actor may not change itself
	UpdateStatus(ctx context.Context, actorID, id uuid.UUID, req model.UpdateStatusRequest) error
}

type staffService struct {
	repo repository.Repository
}

func NewStaffService(repo repository.Repository) ServiceInterface {
	return &staffService{repo: repo}
}

func (s *staffService) List(ctx context.Context, req model.ListStaffRequest) (*model.StaffPage, error) {
	req.Search = strings.TrimSpace(req.Search)
	req.Role = model.Role(strings.ToLower(strings.TrimSpace(string(req.Role))))
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.SetDefaults()

	page, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}
	if page.Items == nil {
		page.Items = []model.Staff{}
	}
	return page, nil
}

func (s *staffService) UpdateRole(ctx context.Context, actorID, id uuid.UUID, req model.UpdateRoleRequest) error {
	if actorID == id {
		return model.ErrSelfUpdate
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpdateRole(ctx, id, req.Role); err != nil {
		return translate(err)
	}

	logger.Info("Staff role updated", map[string]interface{}{
		"actor_id": actorID.String(),
		"staff_id": id.String(),
		"role":     string(req.Role),
	})
	return nil
}

func (s *staffService) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, req model.UpdateStatusRequest) error {
	if actorID == id {
		return model.ErrSelfUpdate
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, *req.IsActive); err != nil {
		return translate(err)
	}

	logger.Info("Staff status updated", map[string]interface{}{
		"actor_id":  actorID.String(),
		"staff_id":  id.String(),
		"is_active": *req.IsActive,
	})
	return nil
}

func translate(err error) error {
	if apiclient.IsNotFound(err) {
		return model.ErrNotFound
	}
	return err
}

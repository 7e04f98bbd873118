package service

import (
	"context"

	"bookstore-storefront/internal/domains/address/model"
	"bookstore-storefront/internal/domains/address/repository"
)

// ServiceInterface defines address operations used by the storefront
type ServiceInterface interface {
	ListMine(ctx context.Context) ([]model.Address, error)
	// HasAny reports whether the user saved at least one address
	HasAny(ctx context.Context) (bool, error)
	Create(ctx context.Context, req model.AddressRequest) (*model.Address, error)
}

type service struct {
	repo repository.RepositoryInterface
}

func NewService(repo repository.RepositoryInterface) ServiceInterface {
	return &service{repo: repo}
}

func (s *service) ListMine(ctx context.Context) ([]model.Address, error) {
	return s.repo.ListMine(ctx)
}

func (s *service) HasAny(ctx context.Context) (bool, error) {
	addresses, err := s.repo.ListMine(ctx)
	if err != nil {
		return false, err
	}
	return len(addresses) > 0, nil
}

func (s *service) Create(ctx context.Context, req model.AddressRequest) (*model.Address, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req)
}

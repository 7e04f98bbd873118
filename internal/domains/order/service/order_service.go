package service

import (
	"context"
	"fmt"
	"strings"

	"bookstore-storefront/internal/domains/order/model"
	"bookstore-storefront/internal/domains/order/repository"
	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/logger"
)

type OrderService interface {
	// Create places an order from the selected cart lines
	Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	GetByCode(ctx context.Context, code string) (*model.Order, error)
	ListMine(ctx context.Context, req model.ListOrdersRequest) (*model.OrderPage, error)
}

type orderService struct {
	repo repository.RepositoryInterface
}

func NewOrderService(repo repository.RepositoryInterface) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order, err := s.repo.Create(ctx, req)
	if err != nil {
		if strings.Contains(apiclient.Message(err), "no selected items") {
			return nil, fmt.Errorf("%w: %v", model.ErrNothingSelected, err)
		}
		return nil, err
	}

	logger.Info("Order created", map[string]interface{}{
		"order_code":     order.Code,
		"payment_method": string(order.PaymentMethod),
		"total":          order.Total.String(),
	})
	return order, nil
}

func (s *orderService) GetByCode(ctx context.Context, code string) (*model.Order, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, model.ErrEmptyOrderCode
	}

	order, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", model.ErrOrderNotFound, code)
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListMine(ctx context.Context, req model.ListOrdersRequest) (*model.OrderPage, error) {
	req.Normalize()
	return s.repo.ListMine(ctx, req)
}

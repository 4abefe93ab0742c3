package service

import (
	"context"
	"fmt"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/pkg/endpoints"
	"go-backoffice-client/pkg/httpclient"
	"go-backoffice-client/pkg/validator"
)

type OrderService interface {
	List(ctx context.Context, filter model.ListFilter) (model.OrderPage, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	Create(ctx context.Context, in model.OrderInput) (*model.Order, error)
	Update(ctx context.Context, id string, in model.OrderInput) (*model.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type orderService struct {
	client *httpclient.Client
}

func NewOrderService(client *httpclient.Client) OrderService {
	return &orderService{client: client}
}

func (s *orderService) List(ctx context.Context, filter model.ListFilter) (model.OrderPage, error) {
	res, err := s.client.Get(ctx, endpoints.Orders.List, filter.Query())
	if err != nil {
		return model.OrderPage{}, err
	}
	items, total := decodePage(res.Data, "orders")
	var orders []model.Order
	if err := decodeItems(items, &orders); err != nil {
		return model.OrderPage{}, err
	}
	return model.OrderPage{Orders: orders, Total: total}, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*model.Order, error) {
	res, err := s.client.Get(ctx, endpoints.Build(endpoints.Orders.Get, map[string]any{"id": id}), nil)
	if err != nil {
		return nil, err
	}
	order := &model.Order{}
	if err := decodeItem(res.Data, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Create(ctx context.Context, in model.OrderInput) (*model.Order, error) {
	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	res, err := s.client.Post(ctx, endpoints.Orders.Create, in)
	if err != nil {
		return nil, err
	}
	return decodeOrder(res)
}

func (s *orderService) Update(ctx context.Context, id string, in model.OrderInput) (*model.Order, error) {
	res, err := s.client.Put(ctx, endpoints.Build(endpoints.Orders.Update, map[string]any{"id": id}), in)
	if err != nil {
		return nil, err
	}
	return decodeOrder(res)
}

func (s *orderService) UpdateStatus(ctx context.Context, id, status string) error {
	body := map[string]any{"status": status}
	_, err := s.client.Patch(ctx, endpoints.Build(endpoints.Orders.UpdateStatus, map[string]any{"id": id}), body)
	return err
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, endpoints.Build(endpoints.Orders.Delete, map[string]any{"id": id}))
	return err
}

func decodeOrder(res *httpclient.Response) (*model.Order, error) {
	if res.Data == nil {
		return nil, nil
	}
	order := &model.Order{}
	if err := decodeItem(res.Data, order); err != nil {
		return nil, err
	}
	return order, nil
}

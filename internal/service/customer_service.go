package service

import (
	"context"
	"fmt"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/pkg/endpoints"
	"go-backoffice-client/pkg/httpclient"
	"go-backoffice-client/pkg/validator"
)

type CustomerService interface {
	List(ctx context.Context, filter model.ListFilter) (model.CustomerPage, error)
	Get(ctx context.Context, id string) (*model.Customer, error)
	Create(ctx context.Context, in model.CustomerInput) (*model.Customer, error)
	Update(ctx context.Context, id string, in model.CustomerInput) (*model.Customer, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) error
}

type customerService struct {
	client *httpclient.Client
}

func NewCustomerService(client *httpclient.Client) CustomerService {
	return &customerService{client: client}
}

func (s *customerService) List(ctx context.Context, filter model.ListFilter) (model.CustomerPage, error) {
	res, err := s.client.Get(ctx, endpoints.Customers.List, filter.Query())
	if err != nil {
		return model.CustomerPage{}, err
	}
	items, total := decodePage(res.Data, "customers")
	var customers []model.Customer
	if err := decodeItems(items, &customers); err != nil {
		return model.CustomerPage{}, err
	}
	return model.CustomerPage{Customers: customers, Total: total}, nil
}

func (s *customerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	res, err := s.client.Get(ctx, endpoints.Build(endpoints.Customers.Get, map[string]any{"id": id}), nil)
	if err != nil {
		return nil, err
	}
	customer := &model.Customer{}
	if err := decodeItem(res.Data, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Create(ctx context.Context, in model.CustomerInput) (*model.Customer, error) {
	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	res, err := s.client.Post(ctx, endpoints.Customers.Create, in)
	if err != nil {
		return nil, err
	}
	return decodeCustomer(res)
}

func (s *customerService) Update(ctx context.Context, id string, in model.CustomerInput) (*model.Customer, error) {
	res, err := s.client.Put(ctx, endpoints.Build(endpoints.Customers.Update, map[string]any{"id": id}), in)
	if err != nil {
		return nil, err
	}
	return decodeCustomer(res)
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, endpoints.Build(endpoints.Customers.Delete, map[string]any{"id": id}))
	return err
}

func (s *customerService) ToggleStatus(ctx context.Context, id string) error {
	_, err := s.client.Patch(ctx, endpoints.Build(endpoints.Customers.ToggleStatus, map[string]any{"id": id}), nil)
	return err
}

func decodeCustomer(res *httpclient.Response) (*model.Customer, error) {
	if res.Data == nil {
		return nil, nil
	}
	customer := &model.Customer{}
	if err := decodeItem(res.Data, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

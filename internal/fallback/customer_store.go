package fallback

import (
	"context"
	"fmt"
	"time"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/internal/service"
	"go-backoffice-client/pkg/validator"
)

type customerStore struct {
	store *Store
}

func NewCustomerService(store *Store) service.CustomerService {
	return &customerStore{store: store}
}

func (c *customerStore) List(ctx context.Context, filter model.ListFilter) (model.CustomerPage, error) {
	var matched []model.Customer
	err := c.store.forEach(bucketCustomers, func(raw []byte) error {
		var customer model.Customer
		if err := json.Unmarshal(raw, &customer); err != nil {
			return err
		}
		if !matchText(customer.Name, filter.Search) && !matchText(customer.Email, filter.Search) {
			return nil
		}
		if !matchExact(customer.Status, filter.Status) {
			return nil
		}
		matched = append(matched, customer)
		return nil
	})
	if err != nil {
		return model.CustomerPage{}, err
	}
	start, end := pageBounds(len(matched), filter.Page, filter.Limit)
	return model.CustomerPage{Customers: matched[start:end], Total: len(matched)}, nil
}

func (c *customerStore) Get(ctx context.Context, id string) (*model.Customer, error) {
	customer := &model.Customer{}
	if err := c.store.getJSON(bucketCustomers, id, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (c *customerStore) Create(ctx context.Context, in model.CustomerInput) (*model.Customer, error) {
	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	status := in.Status
	if status == "" {
		status = "active"
	}
	customer := model.Customer{
		ID:       c.store.nextID(),
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Status:   status,
		JoinDate: time.Now().Format("2006-01-02"),
	}
	customer.Membership = customer.Tier()
	if err := c.store.putJSON(bucketCustomers, customer.ID, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *customerStore) Update(ctx context.Context, id string, in model.CustomerInput) (*model.Customer, error) {
	customer := &model.Customer{}
	if err := c.store.getJSON(bucketCustomers, id, customer); err != nil {
		return nil, err
	}
	if in.Name != "" {
		customer.Name = in.Name
	}
	if in.Email != "" {
		customer.Email = in.Email
	}
	if in.Phone != "" {
		customer.Phone = in.Phone
	}
	if in.Status != "" {
		customer.Status = in.Status
	}
	if err := c.store.putJSON(bucketCustomers, id, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (c *customerStore) Delete(ctx context.Context, id string) error {
	return c.store.deleteRecord(bucketCustomers, id)
}

func (c *customerStore) ToggleStatus(ctx context.Context, id string) error {
	customer := &model.Customer{}
	if err := c.store.getJSON(bucketCustomers, id, customer); err != nil {
		return err
	}
	if customer.Status == "active" {
		customer.Status = "inactive"
	} else {
		customer.Status = "active"
	}
	return c.store.putJSON(bucketCustomers, id, customer)
}

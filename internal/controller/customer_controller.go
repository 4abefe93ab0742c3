package controller

import (
	"context"
	"sync"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/internal/service"

	"go.uber.org/zap"
)

type CustomerSnapshot struct {
	Customers []model.Customer
	Total     int
	Loading   bool
	Err       string
}

type CustomerController struct {
	svc service.CustomerService
	log *zap.Logger

	mu         sync.Mutex
	filter     model.ListFilter
	filterHash string
	customers  []model.Customer
	total      int
	loading    bool
	lastError  string
	generation uint64
	onChange   func()
}

func NewCustomerController(svc service.CustomerService, log *zap.Logger) *CustomerController {
	return &CustomerController{svc: svc, log: log, customers: []model.Customer{}}
}

func (c *CustomerController) OnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *CustomerController) SetFilter(ctx context.Context, filter model.ListFilter) error {
	hash := filterKey(filter)
	c.mu.Lock()
	if hash == c.filterHash && c.filterHash != "" {
		c.mu.Unlock()
		return nil
	}
	c.filter = filter
	c.filterHash = hash
	c.mu.Unlock()
	return c.Refetch(ctx)
}

func (c *CustomerController) Refetch(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	filter := c.filter
	c.loading = true
	c.lastError = ""
	c.mu.Unlock()
	c.notify()

	page, err := c.svc.List(ctx, filter)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return nil
	}
	c.loading = false
	if err != nil {
		c.lastError = errorMessage(err, "Failed to fetch customers")
		c.customers = []model.Customer{}
		c.total = 0
		c.mu.Unlock()
		c.notify()
		c.log.Warn("customer fetch failed", zap.Error(err))
		return err
	}
	if page.Customers == nil {
		page.Customers = []model.Customer{}
	}
	c.customers = page.Customers
	c.total = page.Total
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *CustomerController) Create(ctx context.Context, in model.CustomerInput) error {
	if _, err := c.svc.Create(ctx, in); err != nil {
		c.recordError(err, "Failed to create customer")
		return err
	}
	return c.Refetch(ctx)
}

func (c *CustomerController) Update(ctx context.Context, id string, in model.CustomerInput) error {
	if _, err := c.svc.Update(ctx, id, in); err != nil {
		c.recordError(err, "Failed to update customer")
		return err
	}
	return c.Refetch(ctx)
}

func (c *CustomerController) Delete(ctx context.Context, id string) error {
	if err := c.svc.Delete(ctx, id); err != nil {
		c.recordError(err, "Failed to delete customer")
		return err
	}
	return c.Refetch(ctx)
}

func (c *CustomerController) ToggleStatus(ctx context.Context, id string) error {
	if err := c.svc.ToggleStatus(ctx, id); err != nil {
		c.recordError(err, "Failed to toggle status")
		return err
	}
	return c.Refetch(ctx)
}

func (c *CustomerController) Snapshot() CustomerSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	customers := make([]model.Customer, len(c.customers))
	copy(customers, c.customers)
	return CustomerSnapshot{
		Customers: customers,
		Total:     c.total,
		Loading:   c.loading,
		Err:       c.lastError,
	}
}

func (c *CustomerController) recordError(err error, fallback string) {
	c.mu.Lock()
	c.lastError = errorMessage(err, fallback)
	c.mu.Unlock()
	c.notify()
}

func (c *CustomerController) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

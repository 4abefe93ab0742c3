package controller

import (
	"context"
	"sync"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/internal/service"

	"go.uber.org/zap"
)

type OrderSnapshot struct {
	Orders  []model.Order
	Total   int
	Loading bool
	Err     string
}

type OrderController struct {
	svc service.OrderService
	log *zap.Logger

	mu         sync.Mutex
	filter     model.ListFilter
	filterHash string
	orders     []model.Order
	total      int
	loading    bool
	lastError  string
	generation uint64
	onChange   func()
}

func NewOrderController(svc service.OrderService, log *zap.Logger) *OrderController {
	return &OrderController{svc: svc, log: log, orders: []model.Order{}}
}

func (c *OrderController) OnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *OrderController) SetFilter(ctx context.Context, filter model.ListFilter) error {
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

func (c *OrderController) Refetch(ctx context.Context) error {
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
		c.lastError = errorMessage(err, "Failed to fetch orders")
		c.orders = []model.Order{}
		c.total = 0
		c.mu.Unlock()
		c.notify()
		c.log.Warn("order fetch failed", zap.Error(err))
		return err
	}
	if page.Orders == nil {
		page.Orders = []model.Order{}
	}
	c.orders = page.Orders
	c.total = page.Total
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *OrderController) Create(ctx context.Context, in model.OrderInput) error {
	if _, err := c.svc.Create(ctx, in); err != nil {
		c.recordError(err, "Failed to create order")
		return err
	}
	return c.Refetch(ctx)
}

func (c *OrderController) Update(ctx context.Context, id string, in model.OrderInput) error {
	if _, err := c.svc.Update(ctx, id, in); err != nil {
		c.recordError(err, "Failed to update order")
		return err
	}
	return c.Refetch(ctx)
}

func (c *OrderController) UpdateStatus(ctx context.Context, id, status string) error {
	if err := c.svc.UpdateStatus(ctx, id, status); err != nil {
		c.recordError(err, "Failed to update order status")
		return err
	}
	return c.Refetch(ctx)
}

func (c *OrderController) Delete(ctx context.Context, id string) error {
	if err := c.svc.Delete(ctx, id); err != nil {
		c.recordError(err, "Failed to delete order")
		return err
	}
	return c.Refetch(ctx)
}

func (c *OrderController) Snapshot() OrderSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	orders := make([]model.Order, len(c.orders))
	copy(orders, c.orders)
	return OrderSnapshot{
		Orders:  orders,
		Total:   c.total,
		Loading: c.loading,
		Err:     c.lastError,
	}
}

func (c *OrderController) recordError(err error, fallback string) {
	c.mu.Lock()
	c.lastError = errorMessage(err, fallback)
	c.mu.Unlock()
	c.notify()
}

func (c *OrderController) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

package controller

import (
	"context"
	"sync"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/internal/service"

	"go.uber.org/zap"
)

// ProductSnapshot is the immutable view handed to the UI layer.
type ProductSnapshot struct {
	Products []model.Product
	Total    int
	Loading  bool
	Err      string
}

// ProductController drives the products screen. Each instance owns its state
// independently; two screens showing products fetch independently.
type ProductController struct {
	svc service.ProductService
	log *zap.Logger

	mu         sync.Mutex
	filter     model.ListFilter
	filterHash string
	products   []model.Product
	total      int
	loading    bool
	lastError  string
	generation uint64
	onChange   func()
}

func NewProductController(svc service.ProductService, log *zap.Logger) *ProductController {
	return &ProductController{svc: svc, log: log, products: []model.Product{}}
}

// OnChange registers a callback fired after every state transition.
func (c *ProductController) OnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// SetFilter refetches only when the serialized filter value actually changed.
func (c *ProductController) SetFilter(ctx context.Context, filter model.ListFilter) error {
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

// Refetch loads the list. A response that arrives after a newer fetch began
// is discarded so rapid filter changes cannot resurrect stale data.
func (c *ProductController) Refetch(ctx context.Context) error {
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
		c.lastError = errorMessage(err, "Failed to fetch products")
		c.products = []model.Product{}
		c.total = 0
		c.mu.Unlock()
		c.notify()
		c.log.Warn("product fetch failed", zap.Error(err))
		return err
	}
	if page.Products == nil {
		page.Products = []model.Product{}
	}
	c.products = page.Products
	c.total = page.Total
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *ProductController) Create(ctx context.Context, in model.ProductInput) error {
	if _, err := c.svc.Create(ctx, in); err != nil {
		c.recordError(err, "Failed to create product")
		return err
	}
	return c.Refetch(ctx)
}

func (c *ProductController) Update(ctx context.Context, id string, in model.ProductInput) error {
	if _, err := c.svc.Update(ctx, id, in); err != nil {
		c.recordError(err, "Failed to update product")
		return err
	}
	return c.Refetch(ctx)
}

func (c *ProductController) Delete(ctx context.Context, id string) error {
	if err := c.svc.Delete(ctx, id); err != nil {
		c.recordError(err, "Failed to delete product")
		return err
	}
	return c.Refetch(ctx)
}

func (c *ProductController) ToggleStatus(ctx context.Context, id string) error {
	if err := c.svc.ToggleStatus(ctx, id); err != nil {
		c.recordError(err, "Failed to toggle status")
		return err
	}
	return c.Refetch(ctx)
}

func (c *ProductController) Snapshot() ProductSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	products := make([]model.Product, len(c.products))
	copy(products, c.products)
	return ProductSnapshot{
		Products: products,
		Total:    c.total,
		Loading:  c.loading,
		Err:      c.lastError,
	}
}

func (c *ProductController) recordError(err error, fallback string) {
	c.mu.Lock()
	c.lastError = errorMessage(err, fallback)
	c.mu.Unlock()
	c.notify()
}

func (c *ProductController) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

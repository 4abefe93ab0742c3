package controller

import (
	"context"
	"sync"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/internal/service"

	"go.uber.org/zap"
)

type CategorySnapshot struct {
	Categories []model.Category
	Total      int
	Loading    bool
	Err        string
}

// CategoryController has no filter input; the category screen always shows
// the full list.
type CategoryController struct {
	svc service.CategoryService
	log *zap.Logger

	mu         sync.Mutex
	categories []model.Category
	total      int
	loading    bool
	lastError  string
	generation uint64
	onChange   func()
}

func NewCategoryController(svc service.CategoryService, log *zap.Logger) *CategoryController {
	return &CategoryController{svc: svc, log: log, categories: []model.Category{}}
}

func (c *CategoryController) OnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *CategoryController) Refetch(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.loading = true
	c.lastError = ""
	c.mu.Unlock()
	c.notify()

	page, err := c.svc.List(ctx)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return nil
	}
	c.loading = false
	if err != nil {
		c.lastError = errorMessage(err, "Failed to fetch categories")
		c.categories = []model.Category{}
		c.total = 0
		c.mu.Unlock()
		c.notify()
		c.log.Warn("category fetch failed", zap.Error(err))
		return err
	}
	if page.Categories == nil {
		page.Categories = []model.Category{}
	}
	c.categories = page.Categories
	c.total = page.Total
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *CategoryController) Create(ctx context.Context, in model.CategoryInput) error {
	if _, err := c.svc.Create(ctx, in); err != nil {
		c.recordError(err, "Failed to create category")
		return err
	}
	return c.Refetch(ctx)
}

func (c *CategoryController) Update(ctx context.Context, id string, in model.CategoryInput) error {
	if _, err := c.svc.Update(ctx, id, in); err != nil {
		c.recordError(err, "Failed to update category")
		return err
	}
	return c.Refetch(ctx)
}

func (c *CategoryController) Delete(ctx context.Context, id string) error {
	if err := c.svc.Delete(ctx, id); err != nil {
		c.recordError(err, "Failed to delete category")
		return err
	}
	return c.Refetch(ctx)
}

func (c *CategoryController) Snapshot() CategorySnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	categories := make([]model.Category, len(c.categories))
	copy(categories, c.categories)
	return CategorySnapshot{
		Categories: categories,
		Total:      c.total,
		Loading:    c.loading,
		Err:        c.lastError,
	}
}

func (c *CategoryController) recordError(err error, fallback string) {
	c.mu.Lock()
	c.lastError = errorMessage(err, fallback)
	c.mu.Unlock()
	c.notify()
}

func (c *CategoryController) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

package controller

import (
	"context"
	"sync"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/internal/service"

	"go.uber.org/zap"
)

type UserSnapshot struct {
	Users   []model.User
	Total   int
	Loading bool
	Err     string
}

type UserController struct {
	svc service.UserService
	log *zap.Logger

	mu         sync.Mutex
	filter     model.ListFilter
	filterHash string
	users      []model.User
	total      int
	loading    bool
	lastError  string
	generation uint64
	onChange   func()
}

func NewUserController(svc service.UserService, log *zap.Logger) *UserController {
	return &UserController{svc: svc, log: log, users: []model.User{}}
}

func (c *UserController) OnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *UserController) SetFilter(ctx context.Context, filter model.ListFilter) error {
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

func (c *UserController) Refetch(ctx context.Context) error {
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
		c.lastError = errorMessage(err, "Failed to fetch users")
		c.users = []model.User{}
		c.total = 0
		c.mu.Unlock()
		c.notify()
		c.log.Warn("user fetch failed", zap.Error(err))
		return err
	}
	if page.Users == nil {
		page.Users = []model.User{}
	}
	c.users = page.Users
	c.total = page.Total
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *UserController) Create(ctx context.Context, in model.UserInput) error {
	if _, err := c.svc.Create(ctx, in); err != nil {
		c.recordError(err, "Failed to create user")
		return err
	}
	return c.Refetch(ctx)
}

func (c *UserController) Update(ctx context.Context, id string, in model.UserInput) error {
	if _, err := c.svc.Update(ctx, id, in); err != nil {
		c.recordError(err, "Failed to update user")
		return err
	}
	return c.Refetch(ctx)
}

func (c *UserController) Delete(ctx context.Context, id string) error {
	if err := c.svc.Delete(ctx, id); err != nil {
		c.recordError(err, "Failed to delete user")
		return err
	}
	return c.Refetch(ctx)
}

func (c *UserController) ToggleStatus(ctx context.Context, id, currentStatus string) error {
	if err := c.svc.ToggleStatus(ctx, id, currentStatus); err != nil {
		c.recordError(err, "Failed to toggle status")
		return err
	}
	return c.Refetch(ctx)
}

func (c *UserController) Snapshot() UserSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	users := make([]model.User, len(c.users))
	copy(users, c.users)
	return UserSnapshot{
		Users:   users,
		Total:   c.total,
		Loading: c.loading,
		Err:     c.lastError,
	}
}

func (c *UserController) recordError(err error, fallback string) {
	c.mu.Lock()
	c.lastError = errorMessage(err, fallback)
	c.mu.Unlock()
	c.notify()
}

func (c *UserController) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

package fallback

import (
	"context"
	"fmt"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/internal/service"
	"go-backoffice-client/pkg/validator"
)

type categoryStore struct {
	store *Store
}

func NewCategoryService(store *Store) service.CategoryService {
	return &categoryStore{store: store}
}

func (c *categoryStore) List(ctx context.Context) (model.CategoryPage, error) {
	var categories []model.Category
	err := c.store.forEach(bucketCategories, func(raw []byte) error {
		var category model.Category
		if err := json.Unmarshal(raw, &category); err != nil {
			return err
		}
		categories = append(categories, category)
		return nil
	})
	if err != nil {
		return model.CategoryPage{}, err
	}
	return model.CategoryPage{Categories: categories, Total: len(categories)}, nil
}

func (c *categoryStore) Create(ctx context.Context, in model.CategoryInput) (*model.Category, error) {
	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	category := categoryFromInput(in)
	category.ID = c.store.nextID()
	if err := c.store.putJSON(bucketCategories, category.ID, category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *categoryStore) Update(ctx context.Context, id string, in model.CategoryInput) (*model.Category, error) {
	category := &model.Category{}
	if err := c.store.getJSON(bucketCategories, id, category); err != nil {
		return nil, err
	}
	// Name is immutable after creation; only the display fields move.
	if in.DisplayName != "" {
		category.DisplayName = in.DisplayName
	}
	if in.Description != "" {
		category.Description = in.Description
	}
	if in.Icon != "" {
		category.Icon = in.Icon
	}
	if in.SortOrder != 0 {
		category.SortOrder = in.SortOrder
	}
	category.IsActive = in.IsActive
	if err := c.store.putJSON(bucketCategories, id, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (c *categoryStore) Delete(ctx context.Context, id string) error {
	return c.store.deleteRecord(bucketCategories, id)
}

func categoryFromInput(in model.CategoryInput) model.Category {
	category := model.Category{
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Description: in.Description,
		Icon:        in.Icon,
		SortOrder:   in.SortOrder,
		IsActive:    in.IsActive,
	}
	if in.Image != nil && in.Image.Kind == model.ImageKindURL {
		category.Image = in.Image.URL
	}
	return category
}

package service

import (
	"context"
	"fmt"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/pkg/endpoints"
	"go-backoffice-client/pkg/httpclient"
	"go-backoffice-client/pkg/validator"
)

type CategoryService interface {
	List(ctx context.Context) (model.CategoryPage, error)
	Create(ctx context.Context, in model.CategoryInput) (*model.Category, error)
	Update(ctx context.Context, id string, in model.CategoryInput) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	client *httpclient.Client
}

func NewCategoryService(client *httpclient.Client) CategoryService {
	return &categoryService{client: client}
}

func (s *categoryService) List(ctx context.Context) (model.CategoryPage, error) {
	res, err := s.client.Get(ctx, endpoints.Categories.List, nil)
	if err != nil {
		return model.CategoryPage{}, err
	}
	items, total := decodePage(res.Data, "categories")
	var categories []model.Category
	if err := decodeItems(items, &categories); err != nil {
		return model.CategoryPage{}, err
	}
	return model.CategoryPage{Categories: categories, Total: total}, nil
}

func (s *categoryService) Create(ctx context.Context, in model.CategoryInput) (*model.Category, error) {
	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	form := buildCategoryForm(in)
	res, err := s.client.Post(ctx, endpoints.Categories.Create, form)
	if err != nil {
		return nil, err
	}
	return decodeCategory(res)
}

// Update reuses the create shaping; the internal name is immutable, so it is
// sent only to identify the record on backends that still expect it.
func (s *categoryService) Update(ctx context.Context, id string, in model.CategoryInput) (*model.Category, error) {
	form := buildCategoryForm(in)
	res, err := s.client.Put(ctx, endpoints.Build(endpoints.Categories.Update, map[string]any{"id": id}), form)
	if err != nil {
		return nil, err
	}
	return decodeCategory(res)
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, endpoints.Build(endpoints.Categories.Delete, map[string]any{"id": id}))
	return err
}

// buildCategoryForm produces the multipart body: required name/displayName,
// optional description/icon/sortOrder, isActive as the literal strings
// "true"/"false", and an image file only when a new one was picked.
func buildCategoryForm(in model.CategoryInput) *httpclient.Form {
	form := httpclient.NewForm()
	form.AddField("name", in.Name)
	form.AddField("displayName", in.DisplayName)
	form.AddField("description", in.Description)
	if in.Icon != "" {
		form.AddField("icon", in.Icon)
	}
	if in.SortOrder != 0 {
		form.AddField("sortOrder", in.SortOrder)
	}
	form.AddField("isActive", boolString(in.IsActive))
	if in.Image != nil && in.Image.Kind == model.ImageKindFile {
		form.AddFile("image", in.Image.Name, in.Image.Content)
	}
	return form
}

func decodeCategory(res *httpclient.Response) (*model.Category, error) {
	if res.Data == nil {
		return nil, nil
	}
	category := &model.Category{}
	if err := decodeItem(res.Data, category); err != nil {
		return nil, err
	}
	return category, nil
}

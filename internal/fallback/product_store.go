package fallback

import (
	"context"
	"fmt"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/internal/service"
	"go-backoffice-client/pkg/validator"

	"github.com/spf13/cast"
)

type productStore struct {
	store *Store
}

// NewProductService serves products from the local database.
func NewProductService(store *Store) service.ProductService {
	return &productStore{store: store}
}

func (p *productStore) List(ctx context.Context, filter model.ListFilter) (model.ProductPage, error) {
	var matched []model.Product
	err := p.store.forEach(bucketProducts, func(raw []byte) error {
		var product model.Product
		if err := json.Unmarshal(raw, &product); err != nil {
			return err
		}
		if !matchText(product.Name, filter.Search) {
			return nil
		}
		if !matchExact(product.Category, filter.Category) {
			return nil
		}
		if !matchExact(statusLabel(product.IsActive), filter.Status) {
			return nil
		}
		matched = append(matched, product)
		return nil
	})
	if err != nil {
		return model.ProductPage{}, err
	}
	start, end := pageBounds(len(matched), filter.Page, filter.Limit)
	return model.ProductPage{Products: matched[start:end], Total: len(matched)}, nil
}

func (p *productStore) Get(ctx context.Context, id string) (*model.Product, error) {
	product := &model.Product{}
	if err := p.store.getJSON(bucketProducts, id, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (p *productStore) Create(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	product := productFromInput(in)
	product.ID = p.store.nextID()
	product.IsActive = true
	if err := p.store.putJSON(bucketProducts, product.ID, product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *productStore) Update(ctx context.Context, id string, in model.ProductInput) (*model.Product, error) {
	product := &model.Product{}
	if err := p.store.getJSON(bucketProducts, id, product); err != nil {
		return nil, err
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Category != "" {
		product.Category = in.Category
	}
	if in.Cost != 0 {
		product.Cost = in.Cost
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	product.AvailableForOrder = in.AvailableForOrder
	product.Vegetarian = in.Vegetarian
	product.IsVIP = in.IsVIP
	if len(in.Variants) > 0 {
		product.Variants = in.Variants
		applyVariantDefaults(product)
	}
	if in.MainImage != nil && in.MainImage.Kind == model.ImageKindURL {
		product.Image = in.MainImage.URL
	}
	if err := p.store.putJSON(bucketProducts, id, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (p *productStore) Delete(ctx context.Context, id string) error {
	return p.store.deleteRecord(bucketProducts, id)
}

func (p *productStore) ToggleStatus(ctx context.Context, id string) error {
	product := &model.Product{}
	if err := p.store.getJSON(bucketProducts, id, product); err != nil {
		return err
	}
	product.IsActive = !product.IsActive
	return p.store.putJSON(bucketProducts, id, product)
}

// productFromInput applies the same shaping as the remote layer so callers
// observe identical records in both modes.
func productFromInput(in model.ProductInput) model.Product {
	product := model.Product{
		Name:              in.Name,
		Category:          in.Category,
		Cost:              in.Cost,
		Description:       in.Description,
		AvailableForOrder: in.AvailableForOrder,
		Vegetarian:        in.Vegetarian,
		IsVIP:             in.IsVIP,
		Variants:          in.Variants,
	}
	applyVariantDefaults(&product)
	if product.Cost == 0 {
		product.Cost = product.Price
	}
	if in.MainImage != nil && in.MainImage.Kind == model.ImageKindURL {
		product.Image = in.MainImage.URL
	}
	return product
}

func applyVariantDefaults(product *model.Product) {
	if len(product.Variants) == 0 {
		return
	}
	first := product.Variants[0]
	product.Price = first.Price
	product.Stock = first.Stock
	product.Volume = cast.ToString(first.Value) + first.Unit
}

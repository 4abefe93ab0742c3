package service

import (
	"context"
	"fmt"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/pkg/endpoints"
	"go-backoffice-client/pkg/httpclient"
	"go-backoffice-client/pkg/validator"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ProductService interface {
	List(ctx context.Context, filter model.ListFilter) (model.ProductPage, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, in model.ProductInput) (*model.Product, error)
	Update(ctx context.Context, id string, in model.ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) error
}

type productService struct {
	client *httpclient.Client
}

func NewProductService(client *httpclient.Client) ProductService {
	return &productService{client: client}
}

func (s *productService) List(ctx context.Context, filter model.ListFilter) (model.ProductPage, error) {
	res, err := s.client.Get(ctx, endpoints.Products.List, filter.Query())
	if err != nil {
		return model.ProductPage{}, err
	}
	items, total := decodePage(res.Data, "products")
	var products []model.Product
	if err := decodeItems(items, &products); err != nil {
		return model.ProductPage{}, err
	}
	return model.ProductPage{Products: products, Total: total}, nil
}

func (s *productService) Get(ctx context.Context, id string) (*model.Product, error) {
	res, err := s.client.Get(ctx, endpoints.Build(endpoints.Products.Get, map[string]any{"id": id}), nil)
	if err != nil {
		return nil, err
	}
	product := &model.Product{}
	if err := decodeItem(res.Data, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	form, err := buildProductForm(in, false)
	if err != nil {
		return nil, err
	}
	res, err := s.client.Post(ctx, endpoints.Products.Create, form)
	if err != nil {
		return nil, err
	}
	return decodeProduct(res)
}

func (s *productService) Update(ctx context.Context, id string, in model.ProductInput) (*model.Product, error) {
	form, err := buildProductForm(in, true)
	if err != nil {
		return nil, err
	}
	res, err := s.client.Put(ctx, endpoints.Build(endpoints.Products.Update, map[string]any{"id": id}), form)
	if err != nil {
		return nil, err
	}
	return decodeProduct(res)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, endpoints.Build(endpoints.Products.Delete, map[string]any{"id": id}))
	return err
}

func (s *productService) ToggleStatus(ctx context.Context, id string) error {
	_, err := s.client.Patch(ctx, endpoints.Build(endpoints.Products.ToggleStatus, map[string]any{"id": id}), nil)
	return err
}

// buildProductForm maps the domain input onto the multipart wire format the
// product endpoints require. The domain Name travels as "dishName"; variants
// are serialized as a JSON array under "availableQuantities" with their
// images split out into variantImage_<i> parts; the root price/stock/volume
// come from the first variant when any exist.
func buildProductForm(in model.ProductInput, partial bool) (*httpclient.Form, error) {
	form := httpclient.NewForm()

	if !partial || in.Name != "" {
		form.AddField("dishName", in.Name)
	}
	if !partial || in.Category != "" {
		form.AddField("category", in.Category)
	}

	price, stock, volume := 0.0, 0, ""
	if len(in.Variants) > 0 {
		first := in.Variants[0]
		price = first.Price
		stock = first.Stock
		volume = cast.ToString(first.Value) + first.Unit
	}
	form.AddField("price", price)
	form.AddField("stock", stock)
	form.AddField("volume", volume)

	if !partial {
		cost := in.Cost
		if cost == 0 {
			cost = price
		}
		preparationTime := in.PreparationTime
		if preparationTime == "" {
			preparationTime = "15"
		}
		calories := in.Calories
		if calories == "" {
			calories = "0"
		}
		form.AddField("cost", cost)
		form.AddField("preparationTime", preparationTime)
		form.AddField("calories", calories)
		form.AddField("description", in.Description)
	} else {
		if in.Cost != 0 {
			form.AddField("cost", in.Cost)
		}
		if in.Description != "" {
			form.AddField("description", in.Description)
		}
	}

	form.AddField("availableForOrder", boolString(in.AvailableForOrder))
	form.AddField("vegetarian", boolString(in.Vegetarian))
	form.AddField("isVIP", boolString(in.IsVIP))

	if len(in.Variants) > 0 {
		quantities, err := json.Marshal(in.Variants)
		if err != nil {
			return nil, err
		}
		form.AddField("availableQuantities", string(quantities))
	}

	if err := appendImage(form, "image", in.MainImage); err != nil {
		return nil, err
	}
	for i, variant := range in.Variants {
		key := fmt.Sprintf("variantImage_%d", i)
		if err := appendImage(form, key, variant.Image); err != nil {
			return nil, err
		}
	}
	return form, nil
}

// appendImage adds an image reference as either a file part or a plain URL
// string. Absent references are skipped so the server keeps the stored image.
func appendImage(form *httpclient.Form, key string, ref *model.ImageRef) error {
	if ref == nil {
		return nil
	}
	switch ref.Kind {
	case model.ImageKindFile:
		form.AddFile(key, ref.Name, ref.Content)
	case model.ImageKindURL:
		form.AddField(key, ref.URL)
	default:
		return fmt.Errorf("unknown image kind %q", ref.Kind)
	}
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func decodeProduct(res *httpclient.Response) (*model.Product, error) {
	if res.Data == nil {
		return nil, nil
	}
	product := &model.Product{}
	if err := decodeItem(res.Data, product); err != nil {
		return nil, err
	}
	return product, nil
}

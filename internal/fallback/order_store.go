package fallback

import (
	"context"
	"fmt"
	"time"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/internal/service"
	"go-backoffice-client/pkg/validator"
)

type orderStore struct {
	store *Store
}

func NewOrderService(store *Store) service.OrderService {
	return &orderStore{store: store}
}

func (o *orderStore) List(ctx context.Context, filter model.ListFilter) (model.OrderPage, error) {
	var matched []model.Order
	err := o.store.forEach(bucketOrders, func(raw []byte) error {
		var order model.Order
		if err := json.Unmarshal(raw, &order); err != nil {
			return err
		}
		if !matchText(order.CustomerName, filter.Search) && !matchText(order.ID, filter.Search) {
			return nil
		}
		if !matchExact(order.Status, filter.Status) {
			return nil
		}
		matched = append(matched, order)
		return nil
	})
	if err != nil {
		return model.OrderPage{}, err
	}
	start, end := pageBounds(len(matched), filter.Page, filter.Limit)
	return model.OrderPage{Orders: matched[start:end], Total: len(matched)}, nil
}

func (o *orderStore) Get(ctx context.Context, id string) (*model.Order, error) {
	order := &model.Order{}
	if err := o.store.getJSON(bucketOrders, id, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (o *orderStore) Create(ctx context.Context, in model.OrderInput) (*model.Order, error) {
	if errs := validator.ValidateStruct(&in); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	status := in.Status
	if status == "" {
		status = model.OrderStatusPending
	}
	total := in.Total
	if total == 0 {
		for _, item := range in.Items {
			total += item.Price * float64(item.Quantity)
		}
	}
	order := model.Order{
		ID:           o.store.nextID(),
		CustomerID:   in.CustomerID,
		Items:        in.Items,
		Total:        total,
		Status:       status,
		CreatedAt:    time.Now().Format(time.RFC3339),
		DeliveryDate: in.DeliveryDate,
	}
	if err := o.store.putJSON(bucketOrders, order.ID, order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *orderStore) Update(ctx context.Context, id string, in model.OrderInput) (*model.Order, error) {
	order := &model.Order{}
	if err := o.store.getJSON(bucketOrders, id, order); err != nil {
		return nil, err
	}
	if in.CustomerID != "" {
		order.CustomerID = in.CustomerID
	}
	if len(in.Items) > 0 {
		order.Items = in.Items
	}
	if in.Total != 0 {
		order.Total = in.Total
	}
	if in.Status != "" {
		order.Status = in.Status
	}
	if in.DeliveryDate != "" {
		order.DeliveryDate = in.DeliveryDate
	}
	if err := o.store.putJSON(bucketOrders, id, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (o *orderStore) UpdateStatus(ctx context.Context, id, status string) error {
	order := &model.Order{}
	if err := o.store.getJSON(bucketOrders, id, order); err != nil {
		return err
	}
	order.Status = status
	return o.store.putJSON(bucketOrders, id, order)
}

func (o *orderStore) Delete(ctx context.Context, id string) error {
	return o.store.deleteRecord(bucketOrders, id)
}

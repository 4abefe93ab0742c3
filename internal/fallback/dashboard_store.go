package fallback

import (
	"context"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/internal/service"
)

type dashboardStore struct {
	store *Store
}

// NewDashboardService computes dashboard figures from the local records.
func NewDashboardService(store *Store) service.DashboardService {
	return &dashboardStore{store: store}
}

func (d *dashboardStore) Stats(ctx context.Context) (model.DashboardStats, error) {
	stats := model.DashboardStats{}
	err := d.store.forEach(bucketOrders, func(raw []byte) error {
		var order model.Order
		if err := json.Unmarshal(raw, &order); err != nil {
			return err
		}
		stats.TotalOrders++
		stats.TotalRevenue += order.Total
		return nil
	})
	if err != nil {
		return model.DashboardStats{}, err
	}
	count := func(bucket []byte, n *int) error {
		return d.store.forEach(bucket, func([]byte) error {
			*n++
			return nil
		})
	}
	if err := count(bucketCustomers, &stats.TotalCustomers); err != nil {
		return model.DashboardStats{}, err
	}
	if err := count(bucketProducts, &stats.TotalProducts); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}

func (d *dashboardStore) RecentOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := d.store.forEach(bucketOrders, func(raw []byte) error {
		var order model.Order
		if err := json.Unmarshal(raw, &order); err != nil {
			return err
		}
		orders = append(orders, order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Keys are timestamp ids, so the newest records sit at the tail.
	if len(orders) > 5 {
		orders = orders[len(orders)-5:]
	}
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders, nil
}

func (d *dashboardStore) RevenueChart(ctx context.Context, period string) ([]model.RevenuePoint, error) {
	byDay := map[string]float64{}
	var labels []string
	err := d.store.forEach(bucketOrders, func(raw []byte) error {
		var order model.Order
		if err := json.Unmarshal(raw, &order); err != nil {
			return err
		}
		label := order.CreatedAt
		if len(label) >= 10 {
			label = label[:10]
		}
		if _, seen := byDay[label]; !seen {
			labels = append(labels, label)
		}
		byDay[label] += order.Total
		return nil
	})
	if err != nil {
		return nil, err
	}
	points := make([]model.RevenuePoint, 0, len(labels))
	for _, label := range labels {
		points = append(points, model.RevenuePoint{Label: label, Revenue: byDay[label]})
	}
	return points, nil
}

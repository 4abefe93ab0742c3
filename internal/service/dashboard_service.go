package service

import (
	"context"
	"net/url"

	"go-backoffice-client/internal/model"
	"go-backoffice-client/pkg/endpoints"
	"go-backoffice-client/pkg/httpclient"
)

type DashboardService interface {
	Stats(ctx context.Context) (model.DashboardStats, error)
	RecentOrders(ctx context.Context) ([]model.Order, error)
	RevenueChart(ctx context.Context, period string) ([]model.RevenuePoint, error)
}

type dashboardService struct {
	client *httpclient.Client
}

func NewDashboardService(client *httpclient.Client) DashboardService {
	return &dashboardService{client: client}
}

func (s *dashboardService) Stats(ctx context.Context) (model.DashboardStats, error) {
	res, err := s.client.Get(ctx, endpoints.Dashboard.Stats, nil)
	if err != nil {
		return model.DashboardStats{}, err
	}
	stats := model.DashboardStats{}
	if err := decodeItem(res.Data, &stats); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}

func (s *dashboardService) RecentOrders(ctx context.Context) ([]model.Order, error) {
	res, err := s.client.Get(ctx, endpoints.Dashboard.RecentOrders, nil)
	if err != nil {
		return nil, err
	}
	items, _ := decodePage(res.Data, "orders")
	var orders []model.Order
	if err := decodeItems(items, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *dashboardService) RevenueChart(ctx context.Context, period string) ([]model.RevenuePoint, error) {
	params := url.Values{}
	if period != "" {
		params.Set("period", period)
	}
	res, err := s.client.Get(ctx, endpoints.Dashboard.RevenueChart, params)
	if err != nil {
		return nil, err
	}
	items, _ := decodePage(res.Data, "points")
	var points []model.RevenuePoint
	if err := decodeItems(items, &points); err != nil {
		return nil, err
	}
	return points, nil
}

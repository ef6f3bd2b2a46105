package queries

import (
	"context"
	"net/url"

	"streetadmin/models"
	"streetadmin/viewmodels"
)

// Orders lists orders. Supported filters: status, vendorId, userId.
func (s *Service) Orders(ctx context.Context, token string, p models.ListParams) (models.Page[viewmodels.Order], error) {
	q := s.withDefaults(p).Values("search")
	return listPage(ctx, s, token, ResOrders, q, func(ctx context.Context, q url.Values) (models.Page[models.OrderDTO], error) {
		return s.backend.ListOrders(ctx, token, q)
	}, viewmodels.ToOrder)
}

// Order loads a single order by id, so detail pages work without a list
// having been fetched first.
func (s *Service) Order(ctx context.Context, token, id string) (viewmodels.OrderDetail, error) {
	return detail(ctx, s, token, ResOrders+"/"+id, func(ctx context.Context) (models.OrderDTO, error) {
		return s.backend.GetOrder(ctx, token, id)
	}, viewmodels.ToOrderDetail)
}

// RecentOrders is the short order list on customer, retailer and courier
// pages. filter is "userId", "vendorId" or "courierId".
func (s *Service) RecentOrders(ctx context.Context, token, filter, id string, limit int) ([]viewmodels.Order, error) {
	page, err := s.Orders(ctx, token, models.ListParams{
		Page:      1,
		Limit:     limit,
		SortBy:    "createdAt",
		SortOrder: "desc",
		Filters:   map[string]string{filter: id},
	})
	if err != nil {
		return nil, err
	}
	return page.Data, nil
}

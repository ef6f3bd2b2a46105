package queries

import (
	"context"
	"net/url"

	"streetadmin/models"
	"streetadmin/viewmodels"
)

// Retailers lists vendors. The vendors endpoint searches by "name".
func (s *Service) Retailers(ctx context.Context, token string, p models.ListParams) (models.Page[viewmodels.Retailer], error) {
	q := s.withDefaults(p).Values("name")
	return listPage(ctx, s, token, ResVendors, q, func(ctx context.Context, q url.Values) (models.Page[models.VendorDTO], error) {
		return s.backend.ListVendors(ctx, token, q)
	}, viewmodels.ToRetailer)
}

func (s *Service) Retailer(ctx context.Context, token, id string) (viewmodels.Retailer, error) {
	return detail(ctx, s, token, ResVendors+"/"+id, func(ctx context.Context) (models.VendorDTO, error) {
		return s.backend.GetVendor(ctx, token, id)
	}, viewmodels.ToRetailer)
}

func (s *Service) UpdateRetailer(ctx context.Context, token, id string, patch models.VendorPatch) (viewmodels.Retailer, error) {
	dto, err := s.backend.UpdateVendor(ctx, token, id, patch)
	if err != nil {
		return viewmodels.Retailer{}, err
	}
	s.cache.Invalidate(ResVendors, ResOrders)
	return viewmodels.ToRetailer(dto), nil
}

// SetRetailerOpen opens or closes a store for new orders.
func (s *Service) SetRetailerOpen(ctx context.Context, token, id string, open bool) (viewmodels.Retailer, error) {
	return s.UpdateRetailer(ctx, token, id, models.VendorPatch{IsOnline: &open})
}

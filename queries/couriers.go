package queries

import (
	"context"
	"net/url"

	"streetadmin/models"
	"streetadmin/viewmodels"
)

func (s *Service) Couriers(ctx context.Context, token string, p models.ListParams) (models.Page[viewmodels.Courier], error) {
	q := s.withDefaults(p).Values("search")
	return listPage(ctx, s, token, ResCouriers, q, func(ctx context.Context, q url.Values) (models.Page[models.CourierDTO], error) {
		return s.backend.ListCouriers(ctx, token, q)
	}, viewmodels.ToCourier)
}

func (s *Service) Courier(ctx context.Context, token, id string) (viewmodels.Courier, error) {
	return detail(ctx, s, token, ResCouriers+"/"+id, func(ctx context.Context) (models.CourierDTO, error) {
		return s.backend.GetCourier(ctx, token, id)
	}, viewmodels.ToCourier)
}

func (s *Service) UpdateCourier(ctx context.Context, token, id string, patch models.CourierPatch) (viewmodels.Courier, error) {
	dto, err := s.backend.UpdateCourier(ctx, token, id, patch)
	if err != nil {
		return viewmodels.Courier{}, err
	}
	s.cache.Invalidate(ResCouriers, ResOrders)
	return viewmodels.ToCourier(dto), nil
}

func (s *Service) SetCourierBlocked(ctx context.Context, token, id string, blocked bool) (viewmodels.Courier, error) {
	active := !blocked
	return s.UpdateCourier(ctx, token, id, models.CourierPatch{IsActive: &active})
}

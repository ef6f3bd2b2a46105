package queries

import (
	"context"
	"net/url"

	"streetadmin/models"
	"streetadmin/viewmodels"
)

func (s *Service) AdminUsers(ctx context.Context, token string, p models.ListParams) (models.Page[viewmodels.AdminUser], error) {
	q := s.withDefaults(p).Values("search")
	return listPage(ctx, s, token, ResAdminUsers, q, func(ctx context.Context, q url.Values) (models.Page[models.AdminUserDTO], error) {
		return s.backend.ListAdminUsers(ctx, token, q)
	}, viewmodels.ToAdminUser)
}

func (s *Service) AdminUser(ctx context.Context, token, id string) (viewmodels.AdminUser, error) {
	return detail(ctx, s, token, ResAdminUsers+"/"+id, func(ctx context.Context) (models.AdminUserDTO, error) {
		return s.backend.GetAdminUser(ctx, token, id)
	}, viewmodels.ToAdminUser)
}

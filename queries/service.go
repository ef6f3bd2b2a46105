// Package queries is the read and write layer the pages use: it fetches from
// the STREET API through the cache and hands back view models.
package queries

import (
	"context"
	"net/url"
	"strconv"

	"streetadmin/models"
	"streetadmin/querycache"
)

// Cache resources. Mutations invalidate by these names.
const (
	ResUsers         = "users"
	ResVendors       = "vendors"
	ResCouriers      = "couriers"
	ResOrders        = "orders"
	ResReferralCodes = "referral-codes"
	ResAdminUsers    = "admin-users"
)

// Backend is the part of the REST client the service uses.
type Backend interface {
	ListUsers(ctx context.Context, token string, q url.Values) (models.Page[models.UserDTO], error)
	GetUser(ctx context.Context, token, id string) (models.UserDTO, error)
	UpdateUser(ctx context.Context, token, id string, patch models.UserPatch) (models.UserDTO, error)
	ListUserNotes(ctx context.Context, token, userID string) ([]models.NoteDTO, error)
	AddUserNote(ctx context.Context, token, userID string, note models.NoteCreate) (models.NoteDTO, error)

	ListVendors(ctx context.Context, token string, q url.Values) (models.Page[models.VendorDTO], error)
	GetVendor(ctx context.Context, token, id string) (models.VendorDTO, error)
	UpdateVendor(ctx context.Context, token, id string, patch models.VendorPatch) (models.VendorDTO, error)

	ListCouriers(ctx context.Context, token string, q url.Values) (models.Page[models.CourierDTO], error)
	GetCourier(ctx context.Context, token, id string) (models.CourierDTO, error)
	UpdateCourier(ctx context.Context, token, id string, patch models.CourierPatch) (models.CourierDTO, error)

	ListOrders(ctx context.Context, token string, q url.Values) (models.Page[models.OrderDTO], error)
	GetOrder(ctx context.Context, token, id string) (models.OrderDTO, error)

	ListReferralCodes(ctx context.Context, token string, q url.Values) (models.Page[models.ReferralCodeDTO], error)
	CreateReferralCode(ctx context.Context, token string, in models.ReferralCodeCreate) (models.ReferralCodeDTO, error)
	UpdateReferralCode(ctx context.Context, token, id string, patch models.ReferralCodePatch) (models.ReferralCodeDTO, error)

	ListAdminUsers(ctx context.Context, token string, q url.Values) (models.Page[models.AdminUserDTO], error)
	GetAdminUser(ctx context.Context, token, id string) (models.AdminUserDTO, error)
}

type Service struct {
	backend      Backend
	cache        *querycache.Cache
	defaultLimit int
}

func NewService(b Backend, c *querycache.Cache, defaultLimit int) *Service {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &Service{backend: b, cache: c, defaultLimit: defaultLimit}
}

// Cache exposes the underlying cache, mainly for invalidation on logout.
func (s *Service) Cache() *querycache.Cache { return s.cache }

// cacheKey partitions cached reads by backend token, so one session never
// sees data fetched with another session's credentials.
func cacheKey(token, key string) string {
	return querycache.Scoped(querycache.Scope(token), key)
}

// listPage fetches, normalizes and transforms one page of a list resource.
func listPage[D, V any](
	ctx context.Context,
	s *Service,
	token string,
	resource string,
	q url.Values,
	fetch func(context.Context, url.Values) (models.Page[D], error),
	transform func(D) V,
) (models.Page[V], error) {
	return querycache.Fetch(ctx, s.cache, cacheKey(token, querycache.Key(resource, q)), func(ctx context.Context) (models.Page[V], error) {
		page, err := fetch(ctx, q)
		if err != nil {
			return models.Page[V]{}, err
		}
		if page.Meta.Page == 0 {
			page.Meta.Page, _ = strconv.Atoi(q.Get("page"))
		}
		return models.MapPage(page.Normalize(s.defaultLimit), transform), nil
	})
}

func detail[D, V any](
	ctx context.Context,
	s *Service,
	token string,
	key string,
	fetch func(context.Context) (D, error),
	transform func(D) V,
) (V, error) {
	return querycache.Fetch(ctx, s.cache, cacheKey(token, key), func(ctx context.Context) (V, error) {
		dto, err := fetch(ctx)
		if err != nil {
			var zero V
			return zero, err
		}
		return transform(dto), nil
	})
}

func (s *Service) withDefaults(p models.ListParams) models.ListParams {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = s.defaultLimit
	}
	return p
}

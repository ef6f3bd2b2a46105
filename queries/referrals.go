package queries

import (
	"context"
	"net/url"
	"strings"

	"streetadmin/apperr"
	"streetadmin/models"
	"streetadmin/viewmodels"
)

// ReferralCodes lists referral codes. Supported filters: ownerId.
func (s *Service) ReferralCodes(ctx context.Context, token string, p models.ListParams) (models.Page[viewmodels.ReferralCode], error) {
	q := s.withDefaults(p).Values("search")
	return listPage(ctx, s, token, ResReferralCodes, q, func(ctx context.Context, q url.Values) (models.Page[models.ReferralCodeDTO], error) {
		return s.backend.ListReferralCodes(ctx, token, q)
	}, viewmodels.ToReferralCode)
}

// OwnedReferralCode returns the code owned by a user, or nil. The list is
// queried by ownerId and then filtered again here, since older backends
// ignore the parameter and return every code.
func (s *Service) OwnedReferralCode(ctx context.Context, token, ownerID string) (*viewmodels.ReferralCode, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, nil
	}
	page, err := s.ReferralCodes(ctx, token, models.ListParams{
		Page:    1,
		Limit:   s.defaultLimit,
		Filters: map[string]string{"ownerId": ownerID},
	})
	if err != nil {
		return nil, err
	}
	for _, rc := range page.Data {
		if rc.OwnerID == ownerID {
			return &rc, nil
		}
	}
	return nil, nil
}

// CreateReferralCode creates a code for a user. A user owns at most one code.
func (s *Service) CreateReferralCode(ctx context.Context, token string, in models.ReferralCodeCreate) (viewmodels.ReferralCode, error) {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	existing, err := s.OwnedReferralCode(ctx, token, in.OwnerID)
	if err != nil {
		return viewmodels.ReferralCode{}, err
	}
	if existing != nil {
		return viewmodels.ReferralCode{}, apperr.ConflictErr("This user already owns referral code " + existing.Code + ".")
	}

	dto, err := s.backend.CreateReferralCode(ctx, token, in)
	if err != nil {
		return viewmodels.ReferralCode{}, err
	}
	s.cache.Invalidate(ResReferralCodes, ResUsers)
	return viewmodels.ToReferralCode(dto), nil
}

func (s *Service) UpdateReferralCode(ctx context.Context, token, id string, patch models.ReferralCodePatch) (viewmodels.ReferralCode, error) {
	dto, err := s.backend.UpdateReferralCode(ctx, token, id, patch)
	if err != nil {
		return viewmodels.ReferralCode{}, err
	}
	s.cache.Invalidate(ResReferralCodes, ResUsers)
	return viewmodels.ToReferralCode(dto), nil
}

func (s *Service) SetReferralCodeActive(ctx context.Context, token, id string, active bool) (viewmodels.ReferralCode, error) {
	return s.UpdateReferralCode(ctx, token, id, models.ReferralCodePatch{IsActive: &active})
}

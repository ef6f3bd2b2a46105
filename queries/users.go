package queries

import (
	"context"
	"net/url"
	"strings"

	"streetadmin/models"
	"streetadmin/querycache"
	"streetadmin/viewmodels"
)

// Users lists customers. Supported filters: status.
func (s *Service) Users(ctx context.Context, token string, p models.ListParams) (models.Page[viewmodels.User], error) {
	q := s.withDefaults(p).Values("search")
	return listPage(ctx, s, token, ResUsers, q, func(ctx context.Context, q url.Values) (models.Page[models.UserDTO], error) {
		return s.backend.ListUsers(ctx, token, q)
	}, viewmodels.ToUser)
}

func (s *Service) User(ctx context.Context, token, id string) (viewmodels.User, error) {
	return detail(ctx, s, token, ResUsers+"/"+id, func(ctx context.Context) (models.UserDTO, error) {
		return s.backend.GetUser(ctx, token, id)
	}, viewmodels.ToUser)
}

// UserOptions backs the user picker. Blank searches return nothing.
func (s *Service) UserOptions(ctx context.Context, token, search string) ([]viewmodels.UserOption, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return []viewmodels.UserOption{}, nil
	}
	q := models.ListParams{Search: search, Page: 1, Limit: 10}.Values("search")
	return querycache.Fetch(ctx, s.cache, cacheKey(token, querycache.Key(ResUsers+"/options", q)), func(ctx context.Context) ([]viewmodels.UserOption, error) {
		page, err := s.backend.ListUsers(ctx, token, q)
		if err != nil {
			return nil, err
		}
		return models.MapPage(page.Normalize(10), viewmodels.ToUserOption).Data, nil
	})
}

// UpdateUser also drops cached orders and referral codes, which embed the
// user's name.
func (s *Service) UpdateUser(ctx context.Context, token, id string, patch models.UserPatch) (viewmodels.User, error) {
	dto, err := s.backend.UpdateUser(ctx, token, id, patch)
	if err != nil {
		return viewmodels.User{}, err
	}
	s.cache.Invalidate(ResUsers, ResOrders, ResReferralCodes)
	return viewmodels.ToUser(dto), nil
}

// SetUserBlocked blocks or unblocks a customer account.
func (s *Service) SetUserBlocked(ctx context.Context, token, id string, blocked bool) (viewmodels.User, error) {
	active := !blocked
	return s.UpdateUser(ctx, token, id, models.UserPatch{IsActive: &active})
}

func (s *Service) UserNotes(ctx context.Context, token, userID string) ([]viewmodels.Note, error) {
	return querycache.Fetch(ctx, s.cache, cacheKey(token, notesKey(userID)), func(ctx context.Context) ([]viewmodels.Note, error) {
		dtos, err := s.backend.ListUserNotes(ctx, token, userID)
		if err != nil {
			return nil, err
		}
		notes := make([]viewmodels.Note, 0, len(dtos))
		for _, d := range dtos {
			notes = append(notes, viewmodels.ToNote(d))
		}
		return notes, nil
	})
}

func (s *Service) AddUserNote(ctx context.Context, token, userID string, note models.NoteCreate) (viewmodels.Note, error) {
	note.Content = strings.TrimSpace(note.Content)
	dto, err := s.backend.AddUserNote(ctx, token, userID, note)
	if err != nil {
		return viewmodels.Note{}, err
	}
	s.cache.Invalidate(notesKey(userID))
	return viewmodels.ToNote(dto), nil
}

func notesKey(userID string) string {
	return ResUsers + "/" + userID + "/notes"
}

package models

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Meta holds pagination metadata as returned by the backend list endpoints.
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Page is one page of a paginated list response.
type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// NewMeta builds consistent metadata for a page.
func NewMeta(total, page, limit int) Meta {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	if total < 0 {
		total = 0
	}

	return Meta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

// Normalize enforces the page invariants: data never exceeds the limit and
// totalPages is ceil(total/limit). defaultLimit replaces a missing limit.
func (p Page[T]) Normalize(defaultLimit int) Page[T] {
	limit := p.Meta.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit <= 0 {
		limit = len(p.Data)
	}
	if limit <= 0 {
		limit = 20
	}

	data := p.Data
	if data == nil {
		data = []T{}
	}
	if len(data) > limit {
		data = data[:limit]
	}

	total := p.Meta.Total
	if total < len(data) {
		total = len(data)
	}

	return Page[T]{Data: data, Meta: NewMeta(total, p.Meta.Page, limit)}
}

// MapPage applies fn to every row and keeps the metadata.
func MapPage[T, V any](p Page[T], fn func(T) V) Page[V] {
	out := make([]V, 0, len(p.Data))
	for _, row := range p.Data {
		out = append(out, fn(row))
	}
	return Page[V]{Data: out, Meta: p.Meta}
}

// ListParams are the query parameters shared by every list endpoint.
type ListParams struct {
	Search    string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Filters   map[string]string
}

// Values encodes the params for the backend. searchKey is the name the
// endpoint uses for free-text search ("search" or "name").
func (p ListParams) Values(searchKey string) url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(p.Search); s != "" {
		v.Set(searchKey, s)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" {
		v.Set("sortBy", p.SortBy)
		order := strings.ToLower(p.SortOrder)
		if order != "desc" {
			order = "asc"
		}
		v.Set("sortOrder", order)
	}
	for k, val := range p.Filters {
		if val = strings.TrimSpace(val); val != "" {
			v.Set(k, val)
		}
	}
	return v
}

package table

import (
	"net/url"
	"sort"
	"strings"
)

// NavigationMode says whether a navigation adds a history entry or replaces
// the current one.
type NavigationMode int

const (
	Replace NavigationMode = iota
	Push
)

// Router is the narrow view of the current location the controller needs.
// A patch value of "" removes the key.
type Router interface {
	Path() string
	Params() map[string]string
	SetParams(patch map[string]string, mode NavigationMode)
}

// URLRouter is a Router over a path and query string with an in-memory
// history. Handlers build one per request from the request URL.
type URLRouter struct {
	path    string
	query   url.Values
	history []string
}

// NewURLRouter parses a path with an optional query, e.g. "/users?page=2".
// An unparseable query is treated as empty.
func NewURLRouter(rawURL string) *URLRouter {
	path, rawQuery, _ := strings.Cut(rawURL, "?")
	if path == "" {
		path = "/"
	}
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		q = url.Values{}
	}
	r := &URLRouter{path: path, query: q}
	r.history = []string{r.String()}
	return r
}

func (r *URLRouter) Path() string { return r.path }

// Params returns the first value of every query parameter.
func (r *URLRouter) Params() map[string]string {
	out := make(map[string]string, len(r.query))
	for k, v := range r.query {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

func (r *URLRouter) SetParams(patch map[string]string, mode NavigationMode) {
	r.query = applyPatch(r.query, patch)
	loc := r.String()
	if mode == Push {
		r.history = append(r.history, loc)
		return
	}
	r.history[len(r.history)-1] = loc
}

// Back moves to the previous history entry. It reports false when there is
// nothing to go back to.
func (r *URLRouter) Back() bool {
	if len(r.history) < 2 {
		return false
	}
	r.history = r.history[:len(r.history)-1]
	prev := NewURLRouter(r.history[len(r.history)-1])
	r.path, r.query = prev.path, prev.query
	return true
}

// History returns the visited locations, oldest first.
func (r *URLRouter) History() []string {
	return append([]string(nil), r.history...)
}

// String is the current location, path plus sorted query.
func (r *URLRouter) String() string {
	if enc := r.query.Encode(); enc != "" {
		return r.path + "?" + enc
	}
	return r.path
}

// Href renders path?query for a parameter map with keys in sorted order.
func Href(path string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return path
	}
	sort.Strings(keys)
	q := url.Values{}
	for _, k := range keys {
		q.Set(k, params[k])
	}
	return path + "?" + q.Encode()
}

func applyPatch(q url.Values, patch map[string]string) url.Values {
	next := url.Values{}
	for k, v := range q {
		next[k] = append([]string(nil), v...)
	}
	for k, v := range patch {
		if v == "" {
			next.Del(k)
			continue
		}
		next.Set(k, v)
	}
	return next
}

func mergeParams(params, patch map[string]string) map[string]string {
	out := make(map[string]string, len(params)+len(patch))
	for k, v := range params {
		out[k] = v
	}
	for k, v := range patch {
		if v == "" {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// Package templates holds the portal's HTML views and the Fiber view engine
// that renders them.
package templates

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed */*.html
var FS embed.FS

// Engine returns the view engine over the embedded templates. Templates are
// addressed by path without extension, e.g. "users/show".
func Engine() *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.AddFuncMap(Funcs())
	return engine
}

// Funcs are the helpers available in every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"dict":  dict,
		"deref": deref,
		"upper": strings.ToUpper,
	}
}

// dict builds a map from alternating keys and values so partials can take
// more than one argument.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, errors.New("dict: keys must be strings")
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}


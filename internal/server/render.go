package server

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// parseTemplates loads every page and fragment template into one set.
func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"fragmentURL": fragmentURL,
		"add":         func(a, b int) int { return a + b },
		"delayStyle": func(i int, step float64) template.CSS {
			return template.CSS(fmt.Sprintf("animation-delay: %.2fs", float64(i)*step))
		},
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}
	return tmpl, nil
}

func mountStatic(r *gin.Engine) error {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return errors.Wrap(err, "failed to mount static files")
	}
	r.StaticFS("/static", http.FS(sub))
	return nil
}

// fragmentURL builds path?k1=v1&k2=v2, skipping empty values.
func fragmentURL(path string, kv ...string) string {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			q.Set(kv[i], kv[i+1])
		}
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/asia-jinzai-support/orientation-consent/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var views = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// renderView writes an HTML view. Template failures after the header
// is written can only be logged.
func renderView(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.ExecuteTemplate(w, name, data); err != nil {
		logger.ContextRequestLogger(r.Context()).Error("failed to render view",
			slog.String("view", name),
			slog.String("error", err.Error()),
		)
	}
}

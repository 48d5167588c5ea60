package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	templates *template.Template
	logger    *zap.Logger
}

func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl, logger: logger}, nil
}

// Render executes into a buffer first so a template error never leaves a
// half-written page behind.
func (rn *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := rn.templates.ExecuteTemplate(&buf, name, data); err != nil {
		rn.logger.Error("template rendering failed",
			zap.String("template", name),
			zap.String("data_type", fmt.Sprintf("%T", data)),
			zap.Error(err),
		)
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		rn.logger.Warn("failed to write response", zap.String("template", name), zap.Error(err))
	}
}

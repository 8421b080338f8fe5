// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ecosync/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var viewFiles = map[models.View]string{
	models.ViewResidentLogin:     "templates/resident_login.html",
	models.ViewStaffLogin:        "templates/staff_login.html",
	models.ViewResidentDashboard: "templates/resident_dashboard.html",
	models.ViewAdminDashboard:    "templates/admin_dashboard.html",
	models.ViewReport:            "templates/report.html",
	models.ViewTracking:          "templates/tracking.html",
	models.ViewSchedule:          "templates/schedule.html",
}

// Renderer holds one parsed template set per view, each sharing the layout.
type Renderer struct {
	pages map[models.View]*template.Template
}

func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[models.View]*template.Template, len(viewFiles))
	for view, file := range viewFiles {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout: %w", err)
		}
		tmpl, err := clone.ParseFS(templateFS, file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}
		pages[view] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render executes the page's view into a buffer first so a template error
// never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, p Page) error {
	tmpl, ok := r.pages[p.View]
	if !ok {
		tmpl = r.pages[models.ViewResidentLogin]
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		slog.Error("failed to render view", "view", p.View, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return fmt.Errorf("failed to render %s: %w", p.View, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

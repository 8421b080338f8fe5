// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/ecosync/cliparse"
	"github.com/danielhkuo/ecosync/handlers"
	"github.com/danielhkuo/ecosync/middleware"
	"github.com/danielhkuo/ecosync/session"
	"github.com/danielhkuo/ecosync/views"
)

func NewRouter(manager *session.Manager, renderer *views.Renderer, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	app := handlers.NewAppHandler(manager, renderer)
	withSession := middleware.WithSession(manager, cfg.SessionSecret)
	page := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(withSession(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Current view
	mux.HandleFunc("GET /{$}", page(app.Home))

	// Session transitions
	mux.HandleFunc("POST /login/{role}", page(app.Login))
	mux.HandleFunc("POST /login/{role}/demo", page(app.DemoLogin))
	mux.HandleFunc("POST /logout", page(app.Logout))
	mux.HandleFunc("POST /navigate", page(app.Navigate))
	mux.HandleFunc("POST /back", page(app.Back))

	// Admin board (admin dashboard only)
	mux.HandleFunc("POST /admin/reports/{id}/assign", page(app.AssignTruck))
	mux.HandleFunc("POST /admin/reports/{id}/status", page(app.UpdateStatus))

	// Report form
	mux.HandleFunc("POST /report", page(app.SubmitReport))

	// JSON session snapshot
	api := middleware.CORS(page(app.Session))
	mux.Handle("GET /api/session", api)
	mux.Handle("OPTIONS /api/session", api)

	return mux
}

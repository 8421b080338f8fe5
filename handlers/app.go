// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/ecosync/auth"
	"github.com/danielhkuo/ecosync/board"
	"github.com/danielhkuo/ecosync/middleware"
	"github.com/danielhkuo/ecosync/models"
	"github.com/danielhkuo/ecosync/session"
	"github.com/danielhkuo/ecosync/views"
)

// AppHandler serves the HTML screens and the form posts that drive them.
// Every successful post redirects back to GET /.
type AppHandler struct {
	manager  *session.Manager
	renderer *views.Renderer
	now      func() time.Time
}

func NewAppHandler(manager *session.Manager, renderer *views.Renderer) *AppHandler {
	return &AppHandler{manager: manager, renderer: renderer, now: time.Now}
}

// Home handles GET /
func (h *AppHandler) Home(w http.ResponseWriter, r *http.Request) {
	st, ok := h.load(w, r)
	if !ok {
		return
	}

	page := views.NewPage(st, h.manager.Seed(), h.now()).
		WithTab(r.URL.Query().Get("tab")).
		WithRefresh(h.manager.ResetDelay())
	h.renderer.Render(w, http.StatusOK, page)
}

// Login handles POST /login/{role}
func (h *AppHandler) Login(w http.ResponseWriter, r *http.Request) {
	role, ok := parseRole(r.PathValue("role"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "unknown role")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if !auth.CheckCredentials(email, password) {
		st, ok := h.load(w, r)
		if !ok {
			return
		}
		page := views.NewPage(st, h.manager.Seed(), h.now()).WithRejectedLogin(loginView(role), email)
		h.renderer.Render(w, http.StatusBadRequest, page)
		return
	}

	h.login(w, r, role, email)
}

// DemoLogin handles POST /login/{role}/demo
func (h *AppHandler) DemoLogin(w http.ResponseWriter, r *http.Request) {
	role, ok := parseRole(r.PathValue("role"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "unknown role")
		return
	}
	h.login(w, r, role, h.manager.Seed().DemoEmail(role))
}

func (h *AppHandler) login(w http.ResponseWriter, r *http.Request, role models.Role, email string) {
	st, err := h.manager.Update(r.Context(), middleware.SessionID(r.Context()), func(s *session.State) error {
		s.Login(role, email)
		return nil
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	slog.Info("user logged in", "role", role, "email", email, "view", st.View)
	seeOther(w, r)
}

// Logout handles POST /logout
func (h *AppHandler) Logout(w http.ResponseWriter, r *http.Request) {
	_, err := h.manager.Update(r.Context(), middleware.SessionID(r.Context()), func(s *session.State) error {
		if s.Role != models.RoleNone {
			slog.Info("user logged out", "role", s.Role)
		}
		s.Logout()
		return nil
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	seeOther(w, r)
}

// Navigate handles POST /navigate. Any view value is accepted; unknown ones
// render the resident login screen.
func (h *AppHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	view := r.FormValue("view")
	st, err := h.manager.Update(r.Context(), middleware.SessionID(r.Context()), func(s *session.State) error {
		s.Navigate(view)
		return nil
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	if !models.View(view).Known() {
		slog.Warn("navigated to unknown view", "view", view, "rendered", st.Rendered())
	} else {
		slog.Debug("navigated", "view", view)
	}
	seeOther(w, r)
}

// Back handles POST /back
func (h *AppHandler) Back(w http.ResponseWriter, r *http.Request) {
	_, err := h.manager.Update(r.Context(), middleware.SessionID(r.Context()), func(s *session.State) error {
		s.Back()
		return nil
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	seeOther(w, r)
}

// AssignTruck handles POST /admin/reports/{id}/assign
func (h *AppHandler) AssignTruck(w http.ResponseWriter, r *http.Request) {
	reportID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "report not found")
		return
	}
	truck := r.FormValue("truck")

	_, err = h.manager.Update(r.Context(), middleware.SessionID(r.Context()), func(s *session.State) error {
		if s.Board == nil {
			return session.ErrNotMounted
		}
		return s.Board.AssignTruck(reportID, truck)
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	slog.Info("truck assigned", "report", reportID, "truck", truck)
	seeOther(w, r)
}

// UpdateStatus handles POST /admin/reports/{id}/status
func (h *AppHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	reportID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "report not found")
		return
	}
	status := r.FormValue("status")

	_, err = h.manager.Update(r.Context(), middleware.SessionID(r.Context()), func(s *session.State) error {
		if s.Board == nil {
			return session.ErrNotMounted
		}
		return s.Board.UpdateStatus(reportID, status)
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	slog.Info("report status updated", "report", reportID, "status", status)
	seeOther(w, r)
}

func (h *AppHandler) load(w http.ResponseWriter, r *http.Request) (*session.State, bool) {
	st, err := h.manager.Get(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		h.fail(w, err)
		return nil, false
	}
	return st, true
}

// fail maps domain and store errors onto HTTP statuses.
func (h *AppHandler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, board.ErrReportNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "report not found")
	case errors.Is(err, board.ErrUnknownTruck):
		middleware.ErrorResponse(w, http.StatusBadRequest, "truck is not in the fleet")
	case errors.Is(err, board.ErrInvalidStatus):
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid status")
	case errors.Is(err, session.ErrNotMounted):
		middleware.ErrorResponse(w, http.StatusConflict, "view is not open")
	case errors.Is(err, session.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "session not found")
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

func parseRole(s string) (models.Role, bool) {
	switch models.Role(s) {
	case models.RoleResident:
		return models.RoleResident, true
	case models.RoleStaff:
		return models.RoleStaff, true
	}
	return models.RoleNone, false
}

func loginView(role models.Role) models.View {
	if role == models.RoleStaff {
		return models.ViewStaffLogin
	}
	return models.ViewResidentLogin
}

func seeOther(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

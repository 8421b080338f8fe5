// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"time"

	"github.com/danielhkuo/ecosync/board"
	"github.com/danielhkuo/ecosync/models"
	"github.com/danielhkuo/ecosync/report"
	"github.com/danielhkuo/ecosync/seed"
)

// State is everything one browser session owns: the role, email and current
// view, plus the local state of whichever view is mounted.
type State struct {
	Role      models.Role `json:"role"`
	Email     string      `json:"email"`
	View      models.View `json:"view"`
	UpdatedAt time.Time   `json:"updated_at"`

	// Board is non-nil only while the admin dashboard is the current view.
	Board *board.Board `json:"board,omitempty"`
	// Report is non-nil only while the report form is the current view.
	Report *report.Form `json:"report,omitempty"`
}

// NewState returns the initial state: resident login, nobody signed in.
func NewState() *State {
	return &State{View: models.ViewResidentLogin}
}

// Login records the role and email and moves to that role's dashboard.
// Credentials are never checked here.
func (s *State) Login(role models.Role, email string) {
	s.Role = role
	s.Email = email
	switch role {
	case models.RoleStaff:
		s.View = models.ViewAdminDashboard
	default:
		s.View = models.ViewResidentDashboard
	}
}

func (s *State) Logout() {
	s.Role = models.RoleNone
	s.Email = ""
	s.View = models.ViewResidentLogin
}

// Navigate stores view as given. Unknown values are kept and render as the
// resident login screen.
func (s *State) Navigate(view string) {
	s.View = models.View(view)
}

// Back follows the back button of the current view. Views without one are
// left unchanged.
func (s *State) Back() {
	switch s.View {
	case models.ViewReport, models.ViewTracking, models.ViewSchedule:
		s.View = models.ViewResidentDashboard
	case models.ViewStaffLogin:
		s.View = models.ViewResidentLogin
	}
}

// Rendered is the view actually shown for the current view value.
func (s *State) Rendered() models.View {
	return Resolve(s.View)
}

// Resolve maps a view value onto one of the seven renderable views.
func Resolve(v models.View) models.View {
	if v.Known() {
		return v
	}
	return models.ViewResidentLogin
}

// Mount attaches fresh local state for the view now shown and drops the local
// state of views that are no longer shown. State of a view that stays on
// screen is kept.
func (s *State) Mount(data *seed.Seed) {
	current := s.Rendered()

	if current == models.ViewAdminDashboard {
		if s.Board == nil {
			s.Board = board.New(data.FreshReports(), data.Fleet, data.AdminStats, data.ReportTypes)
		}
	} else {
		s.Board = nil
	}

	if current == models.ViewReport {
		if s.Report == nil {
			s.Report = report.NewForm()
		}
	} else {
		s.Report = nil
	}
}

// Snapshot is the JSON view of the state served by the session API.
func (s *State) Snapshot() models.SessionResponse {
	return models.SessionResponse{
		Role:         s.Role,
		Email:        s.Email,
		View:         s.View,
		RenderedView: s.Rendered(),
		BoardMounted: s.Board != nil,
		FormMounted:  s.Report != nil,
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"time"

	"github.com/danielhkuo/ecosync/board"
	"github.com/danielhkuo/ecosync/models"
	"github.com/danielhkuo/ecosync/report"
	"github.com/danielhkuo/ecosync/seed"
	"github.com/danielhkuo/ecosync/session"
)

// BackgroundURL is the decorative photo behind both login screens.
const BackgroundURL = "https://images.unsplash.com/photo-1637681262973-a516e647e826?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"

// Admin dashboard tabs
const (
	TabReports   = "reports"
	TabTrucks    = "trucks"
	TabAnalytics = "analytics"
)

// LoginForm is what a login screen shows again after a rejected submit.
type LoginForm struct {
	Email string
}

// DemoHint is the quick-demo account shown on a login screen.
type DemoHint struct {
	Email    string
	Password string
}

// Page is the data handed to a view template.
type Page struct {
	View  models.View
	Title string
	Now   time.Time

	Role  models.Role
	Email string
	Data  *seed.Seed

	Login  LoginForm
	Demo   DemoHint
	Error  string
	Tab    string
	Board  *board.Board
	Report *report.Form

	// RefreshAfter, when positive, makes the browser reload after that many
	// seconds.
	RefreshAfter  int
	Unread        int
	BackgroundURL string
}

var titles = map[models.View]string{
	models.ViewResidentLogin:     "Resident Login",
	models.ViewStaffLogin:        "Staff Login",
	models.ViewResidentDashboard: "Dashboard",
	models.ViewAdminDashboard:    "Admin Dashboard",
	models.ViewReport:            "Report Issue",
	models.ViewTracking:          "Track Trucks",
	models.ViewSchedule:          "Collection Schedule",
}

// NewPage builds the page for whatever view the session currently renders.
func NewPage(st *session.State, data *seed.Seed, now time.Time) Page {
	view := st.Rendered()
	p := Page{
		View:          view,
		Title:         titles[view],
		Now:           now,
		Role:          st.Role,
		Email:         st.Email,
		Data:          data,
		Demo:          demoHint(view, data),
		Tab:           TabReports,
		Board:         st.Board,
		Report:        st.Report,
		BackgroundURL: BackgroundURL,
	}
	for _, n := range data.Notifications {
		if !n.Read {
			p.Unread++
		}
	}
	return p
}

// WithTab selects an admin dashboard tab. Unknown tabs fall back to reports.
func (p Page) WithTab(tab string) Page {
	switch tab {
	case TabReports, TabTrucks, TabAnalytics:
		p.Tab = tab
	default:
		p.Tab = TabReports
	}
	return p
}

// WithRefresh makes a submitted report page reload once the confirmation
// has been cleared.
func (p Page) WithRefresh(delay time.Duration) Page {
	if p.Report == nil || !p.Report.Submitted {
		return p
	}
	secs := int((delay + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	p.RefreshAfter = secs
	return p
}

// WithRejectedReport shows the report form again with what was typed and a
// message explaining why it was not accepted.
func (p Page) WithRejectedReport(in report.Input, msg string) Page {
	p.Report = &report.Form{
		Location:    in.Location,
		IssueType:   in.IssueType,
		Description: in.Description,
		PhotoName:   in.PhotoName,
	}
	p.Error = msg
	return p
}

// WithRejectedLogin shows a login screen again with the email retained.
func (p Page) WithRejectedLogin(view models.View, email string) Page {
	p.View = view
	p.Title = titles[view]
	p.Demo = demoHint(view, p.Data)
	p.Login = LoginForm{Email: email}
	return p
}

func demoHint(view models.View, data *seed.Seed) DemoHint {
	var role models.Role
	switch view {
	case models.ViewResidentLogin:
		role = models.RoleResident
	case models.ViewStaffLogin:
		role = models.RoleStaff
	default:
		return DemoHint{}
	}
	return DemoHint{Email: data.DemoEmail(role), Password: data.DemoPassword(role)}
}

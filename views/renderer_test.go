// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/ecosync/models"
	"github.com/danielhkuo/ecosync/report"
	"github.com/danielhkuo/ecosync/seed"
	"github.com/danielhkuo/ecosync/session"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Renderer, *seed.Seed) {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}
	data, err := seed.Default()
	if err != nil {
		t.Fatalf("Failed to load seed: %v", err)
	}
	return r, data
}

func render(t *testing.T, r *Renderer, p Page) string {
	t.Helper()
	w := httptest.NewRecorder()
	if err := r.Render(w, http.StatusOK, p); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected text/html, got %q", ct)
	}
	return w.Body.String()
}

func stateAt(data *seed.Seed, view models.View) *session.State {
	st := session.NewState()
	st.Navigate(string(view))
	st.Mount(data)
	return st
}

func TestRenderEveryView(t *testing.T) {
	r, data := setup(t)

	testCases := []struct {
		view models.View
		want []string
	}{
		{models.ViewResidentLogin, []string{"Quick Demo Login", `action="/login/resident"`, `value="staff-login"`}},
		{models.ViewStaffLogin, []string{"Staff Portal", `action="/login/staff/demo"`, `action="/back"`}},
		{models.ViewResidentDashboard, []string{"Upcoming Collections", "My Reports", `id="notifications"`}},
		{models.ViewAdminDashboard, []string{"127 Main St", `action="/admin/reports/1236/assign"`, `action="/admin/reports/1236/status"`}},
		{models.ViewReport, []string{`enctype="multipart/form-data"`, "Full Garbage Bin", `name="photo"`}},
		{models.ViewTracking, []string{"T-001", "ETA", "65% of route complete"}},
		{models.ViewSchedule, []string{"Monday", "No Collection", "Collection Guidelines"}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.view), func(t *testing.T) {
			page := NewPage(stateAt(data, tc.view), data, testNow)
			if page.View != tc.view {
				t.Fatalf("Expected page view %q, got %q", tc.view, page.View)
			}
			body := render(t, r, page)
			for _, want := range tc.want {
				if !strings.Contains(body, want) {
					t.Errorf("Expected body to contain %q", want)
				}
			}
			if !strings.Contains(body, `class="view-`+string(tc.view)+`"`) {
				t.Errorf("Expected body class for %s", tc.view)
			}
		})
	}
}

func TestUnknownViewRendersResidentLogin(t *testing.T) {
	r, data := setup(t)

	page := NewPage(stateAt(data, "nonexistent"), data, testNow)
	if page.View != models.ViewResidentLogin {
		t.Fatalf("Expected resident login, got %q", page.View)
	}
	body := render(t, r, page)
	if !strings.Contains(body, "Quick Demo Login") {
		t.Error("Expected resident login screen")
	}
}

func TestLoginDemoHints(t *testing.T) {
	r, data := setup(t)

	testCases := []struct {
		view    models.View
		want    string
		notWant string
	}{
		{models.ViewResidentLogin, "Email: <strong>resident@demo.com</strong> | Password: <strong>demo123</strong>", "staff@demo.com"},
		{models.ViewStaffLogin, "Email: <strong>staff@demo.com</strong> | Password: <strong>admin123</strong>", "resident@demo.com"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.view), func(t *testing.T) {
			body := render(t, r, NewPage(stateAt(data, tc.view), data, testNow))
			if !strings.Contains(body, "Quick Demo Login:") {
				t.Error("Expected demo login hint heading")
			}
			if !strings.Contains(body, tc.want) {
				t.Errorf("Expected body to contain %q", tc.want)
			}
			if strings.Contains(body, tc.notWant) {
				t.Errorf("Did not expect %q on this login", tc.notWant)
			}
		})
	}

	dash := NewPage(stateAt(data, models.ViewResidentDashboard), data, testNow)
	if dash.Demo != (DemoHint{}) {
		t.Errorf("Expected no demo hint off the login screens, got %+v", dash.Demo)
	}
}

func TestResidentDashboardButtonStaysOnDashboard(t *testing.T) {
	r, data := setup(t)

	body := render(t, r, NewPage(stateAt(data, models.ViewResidentDashboard), data, testNow))
	want := `<input type="hidden" name="view" value="resident-dashboard">
<button class="ghost" type="submit">Dashboard</button>`
	if !strings.Contains(body, want) {
		t.Error("Expected the Dashboard button to post resident-dashboard")
	}
	if strings.Contains(body, `name="view" value="resident-login"`) {
		t.Error("Dashboard header must not navigate to resident-login")
	}
}

func TestResidentDashboardNotifications(t *testing.T) {
	r, data := setup(t)

	st := stateAt(data, models.ViewResidentDashboard)
	st.Email = "resident@demo.com"
	page := NewPage(st, data, testNow)

	unread := 0
	for _, n := range data.Notifications {
		if !n.Read {
			unread++
		}
	}
	if page.Unread != unread {
		t.Errorf("Expected %d unread, got %d", unread, page.Unread)
	}

	body := render(t, r, page)
	for _, want := range []string{"resident@demo.com", "2 hours ago", "1 day ago", "2 days ago"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
}

func TestAdminTabs(t *testing.T) {
	r, data := setup(t)
	st := stateAt(data, models.ViewAdminDashboard)

	testCases := []struct {
		tab     string
		wantTab string
		want    string
	}{
		{"", TabReports, "Unassigned"},
		{"reports", TabReports, "Unassigned"},
		{"trucks", TabTrucks, "Assigned"},
		{"analytics", TabAnalytics, "<strong>55%</strong> of reports completed (25/45)"},
		{"bogus", TabReports, "Unassigned"},
	}

	for _, tc := range testCases {
		t.Run(tc.tab, func(t *testing.T) {
			page := NewPage(st, data, testNow).WithTab(tc.tab)
			if page.Tab != tc.wantTab {
				t.Fatalf("Expected tab %q, got %q", tc.wantTab, page.Tab)
			}
			body := render(t, r, page)
			if !strings.Contains(body, tc.want) {
				t.Errorf("Expected body to contain %q", tc.want)
			}
		})
	}
}

func TestAssignSelectRequired(t *testing.T) {
	r, data := setup(t)

	body := render(t, r, NewPage(stateAt(data, models.ViewAdminDashboard), data, testNow))
	if want := len(data.AdminReports); strings.Count(body, `<select name="truck" required>`) != want {
		t.Errorf("Expected %d required truck selects", want)
	}
}

func TestAdminReflectsBoardEdits(t *testing.T) {
	r, data := setup(t)
	st := stateAt(data, models.ViewAdminDashboard)

	if err := st.Board.AssignTruck(1236, "T-004"); err != nil {
		t.Fatal(err)
	}
	body := render(t, r, NewPage(st, data, testNow))
	if !strings.Contains(body, `<option value="T-004" selected>`) {
		t.Error("Expected T-004 to be selected after assignment")
	}
}

func TestReportSubmittedAndRefresh(t *testing.T) {
	r, data := setup(t)
	st := stateAt(data, models.ViewReport)

	in := report.Input{Location: "10 Elm St", IssueType: "full-bin", Description: "bin overflowing"}
	if err := st.Report.Submit(in, testNow, nil); err != nil {
		t.Fatal(err)
	}

	page := NewPage(st, data, testNow).WithRefresh(2500 * time.Millisecond)
	if page.RefreshAfter != 3 {
		t.Errorf("Expected refresh after 3s, got %d", page.RefreshAfter)
	}
	body := render(t, r, page)
	if !strings.Contains(body, `http-equiv="refresh"`) {
		t.Error("Expected meta refresh on submitted page")
	}
	if !strings.Contains(body, "Report Submitted") {
		t.Error("Expected success panel")
	}

	fresh := NewPage(stateAt(data, models.ViewReport), data, testNow).WithRefresh(time.Second)
	if fresh.RefreshAfter != 0 {
		t.Error("Did not expect refresh on an unsubmitted form")
	}
}

func TestRejectedPagesKeepInput(t *testing.T) {
	r, data := setup(t)

	page := NewPage(stateAt(data, models.ViewReport), data, testNow).
		WithRejectedReport(report.Input{Location: "5 Oak <Ave>", IssueType: "other"}, "Description is required")
	body := render(t, r, page)
	if !strings.Contains(body, "5 Oak &lt;Ave&gt;") {
		t.Error("Expected escaped location retained")
	}
	if !strings.Contains(body, `<option value="other" selected>`) {
		t.Error("Expected issue type retained")
	}
	if !strings.Contains(body, "Description is required") {
		t.Error("Expected error message")
	}

	login := NewPage(stateAt(data, models.ViewResidentDashboard), data, testNow).WithRejectedLogin(models.ViewStaffLogin, "ops@city.gov")
	body = render(t, r, login)
	if !strings.Contains(body, `value="ops@city.gov"`) {
		t.Error("Expected email retained on login form")
	}
	if !strings.Contains(body, "Staff Portal") {
		t.Error("Expected the staff login screen")
	}
	if !strings.Contains(body, "<strong>staff@demo.com</strong>") {
		t.Error("Expected the staff demo hint on the rejected login")
	}
}

func TestAgo(t *testing.T) {
	testCases := []struct {
		age  time.Duration
		want string
	}{
		{2 * time.Hour, "2 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{48 * time.Hour, "2 days ago"},
	}
	for _, tc := range testCases {
		if got := ago(testNow, tc.age); got != tc.want {
			t.Errorf("ago(%v) = %q, want %q", tc.age, got, tc.want)
		}
	}
}

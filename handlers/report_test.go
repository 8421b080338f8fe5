// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/ecosync/models"
	"github.com/danielhkuo/ecosync/session"
	"github.com/danielhkuo/ecosync/testutil"
)

func reportSession(t *testing.T, h *AppHandler, m *session.Manager) string {
	t.Helper()
	id := testutil.CreateTestSession(t, m)
	post(t, h.DemoLogin, id, "/login/resident/demo", nil, map[string]string{"role": "resident"})
	post(t, h.Navigate, id, "/navigate", url.Values{"view": {"report"}}, nil)
	if st := getState(t, m, id); st.Report == nil {
		t.Fatal("Expected report form mounted")
	}
	return id
}

func managerWithDelay(t *testing.T, delay time.Duration) *session.Manager {
	t.Helper()
	m := session.NewManager(session.NewMemoryStore(), testutil.LoadSeed(t), delay)
	t.Cleanup(m.Close)
	return m
}

func submitMultipart(t *testing.T, h *AppHandler, id string, fields map[string]string, photo string) *httptest.ResponseRecorder {
	t.Helper()
	var content io.Reader
	if photo != "" {
		content = bytes.NewReader([]byte("\x89PNG fake image bytes"))
	}
	req := withSession(testutil.MakeMultipartRequest(t, "/report", fields, photo, content), id)
	w := httptest.NewRecorder()
	h.SubmitReport(w, req)
	return w
}

func TestSubmitReportMultipart(t *testing.T) {
	m := managerWithDelay(t, 500*time.Millisecond)
	h := newTestApp(t, m)
	id := reportSession(t, h, m)

	fields := map[string]string{
		"location":    "10 Elm St",
		"issueType":   "full-bin",
		"description": "bin overflowing",
	}
	w := submitMultipart(t, h, id, fields, "bin.png")
	testutil.AssertRedirect(t, w, "/")

	st := getState(t, m, id)
	f := st.Report
	if !f.Submitted {
		t.Fatal("Expected form submitted")
	}
	if f.Location != "10 Elm St" || f.IssueType != "full-bin" || f.Description != "bin overflowing" {
		t.Errorf("Unexpected form contents: %+v", f)
	}
	if f.PhotoName != "bin.png" {
		t.Errorf("Expected photo name bin.png, got %q", f.PhotoName)
	}
	if f.DisplayID < 1000 || f.DisplayID > 9999 {
		t.Errorf("Display id %d out of range", f.DisplayID)
	}

	page := home(t, h, id, "")
	body := page.Body.String()
	if !strings.Contains(body, "Report Submitted") || !strings.Contains(body, `http-equiv="refresh"`) {
		t.Error("Expected self-refreshing confirmation page")
	}

	cleared := func() bool {
		st, err := m.Get(t.Context(), id)
		return err == nil && st.Report != nil && !st.Report.Submitted && st.Report.Location == ""
	}
	deadline := time.Now().Add(2 * time.Second)
	for !cleared() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if !cleared() {
		t.Fatal("Expected the form to clear after the reset delay")
	}
	if st := getState(t, m, id); st.View != models.ViewReport {
		t.Errorf("Expected to stay on the report view, got %q", st.View)
	}
}

func TestSubmitReportURLEncoded(t *testing.T) {
	m := managerWithDelay(t, time.Minute)
	h := newTestApp(t, m)
	id := reportSession(t, h, m)

	form := url.Values{
		"location":    {"5 Oak Ave"},
		"issueType":   {"missed-collection"},
		"description": {"skipped again"},
		"photo":       {"street.jpg"},
	}
	w := post(t, h.SubmitReport, id, "/report", form, nil)
	testutil.AssertRedirect(t, w, "/")

	if f := getState(t, m, id).Report; !f.Submitted || f.PhotoName != "street.jpg" {
		t.Errorf("Unexpected form: %+v", f)
	}
}

func TestSubmitReportLargePhoto(t *testing.T) {
	m := managerWithDelay(t, time.Minute)
	h := newTestApp(t, m)
	id := reportSession(t, h, m)

	fields := map[string]string{"location": "1 Pine Rd", "issueType": "other", "description": "see photo"}
	photo := bytes.NewReader(bytes.Repeat([]byte{0xFF}, 4<<20))
	req := withSession(testutil.MakeMultipartRequest(t, "/report", fields, "huge.jpg", photo), id)
	w := httptest.NewRecorder()
	h.SubmitReport(w, req)

	testutil.AssertRedirect(t, w, "/")
	if f := getState(t, m, id).Report; f.PhotoName != "huge.jpg" {
		t.Errorf("Expected photo name only, got %+v", f)
	}
}

func TestSubmitReportRejected(t *testing.T) {
	testCases := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{"missing location", map[string]string{"issueType": "other", "description": "x"}, "required field"},
		{"missing description", map[string]string{"location": "1 Pine Rd", "issueType": "other"}, "required field"},
		{"missing type", map[string]string{"location": "1 Pine Rd", "description": "x"}, "required field"},
		{"unknown type", map[string]string{"location": "1 Pine Rd", "issueType": "volcano", "description": "x"}, "issue type from the list"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := testutil.NewTestManager(t)
			h := newTestApp(t, m)
			id := reportSession(t, h, m)

			w := submitMultipart(t, h, id, tc.fields, "")
			testutil.AssertStatus(t, w, http.StatusBadRequest)

			body := w.Body.String()
			if !strings.Contains(body, tc.want) {
				t.Errorf("Expected message containing %q", tc.want)
			}
			if loc := tc.fields["location"]; loc != "" && !strings.Contains(body, loc) {
				t.Error("Expected typed location retained")
			}
			if f := getState(t, m, id).Report; f.Submitted {
				t.Error("Rejected submission must not submit the form")
			}
		})
	}
}

func TestSubmitReportConflicts(t *testing.T) {
	m := managerWithDelay(t, time.Minute)
	h := newTestApp(t, m)

	fields := map[string]string{"location": "10 Elm St", "issueType": "full-bin", "description": "bin overflowing"}

	t.Run("form not open", func(t *testing.T) {
		id := testutil.CreateTestSession(t, m)
		w := submitMultipart(t, h, id, fields, "")
		testutil.AssertStatus(t, w, http.StatusConflict)
	})

	t.Run("already submitted", func(t *testing.T) {
		id := reportSession(t, h, m)
		testutil.AssertRedirect(t, submitMultipart(t, h, id, fields, ""), "/")

		w := submitMultipart(t, h, id, fields, "")
		testutil.AssertStatus(t, w, http.StatusConflict)
	})
}

func TestLeavingReportViewDropsForm(t *testing.T) {
	m := managerWithDelay(t, time.Minute)
	h := newTestApp(t, m)
	id := reportSession(t, h, m)

	fields := map[string]string{"location": "10 Elm St", "issueType": "full-bin", "description": "bin overflowing"}
	testutil.AssertRedirect(t, submitMultipart(t, h, id, fields, ""), "/")

	post(t, h.Back, id, "/back", nil, nil)
	if st := getState(t, m, id); st.Report != nil {
		t.Fatal("Expected form dropped after leaving the report view")
	}

	post(t, h.Navigate, id, "/navigate", url.Values{"view": {"report"}}, nil)
	if f := getState(t, m, id).Report; f == nil || f.Submitted || f.Location != "" {
		t.Errorf("Expected a blank form on return, got %+v", f)
	}
}

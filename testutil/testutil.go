// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/ecosync/cliparse"
	"github.com/danielhkuo/ecosync/db"
	"github.com/danielhkuo/ecosync/seed"
	"github.com/danielhkuo/ecosync/session"
)

// TestSecret signs session cookies in tests
const TestSecret = "test-session-secret"

// TestResetDelay is short enough for tests to wait out the report reset
const TestResetDelay = 50 * time.Millisecond

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		StoreType:        cliparse.StoreMemory,
		SessionSecret:    TestSecret,
		ReportResetDelay: TestResetDelay,
		SessionTTL:       time.Hour,
	}
}

// LoadSeed returns the embedded mock data
func LoadSeed(t *testing.T) *seed.Seed {
	t.Helper()
	data, err := seed.Default()
	if err != nil {
		t.Fatalf("Failed to load seed: %v", err)
	}
	return data
}

// NewTestManager returns a manager over an in-memory store. Its timers are
// stopped when the test ends.
func NewTestManager(t *testing.T) *session.Manager {
	t.Helper()
	m := session.NewManager(session.NewMemoryStore(), LoadSeed(t), TestResetDelay)
	t.Cleanup(m.Close)
	return m
}

// NewSQLiteManager returns a manager over a fresh in-memory SQLite store.
func NewSQLiteManager(t *testing.T) *session.Manager {
	t.Helper()

	conn, err := db.Open(db.SQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	m := session.NewManager(db.NewSessionStore(conn, db.SQLite), LoadSeed(t), TestResetDelay)
	t.Cleanup(func() {
		m.Close()
		conn.Close()
	})
	return m
}

// CreateTestSession starts a session and returns its ID
func CreateTestSession(t *testing.T, m *session.Manager) string {
	t.Helper()
	id, _, err := m.Create(t.Context())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a URL-encoded form POST
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// MakeMultipartRequest creates a multipart form POST. When fileName is set a
// "photo" file part with the given content is added.
func MakeMultipartRequest(t *testing.T, path string, fields map[string]string, fileName string, content io.Reader) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("Failed to write field %s: %v", k, err)
		}
	}
	if fileName != "" {
		part, err := mw.CreateFormFile("photo", fileName)
		if err != nil {
			t.Fatalf("Failed to create file part: %v", err)
		}
		if content != nil {
			if _, err := io.Copy(part, content); err != nil {
				t.Fatalf("Failed to write file part: %v", err)
			}
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 303 back to the given location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusSeeOther)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// ResponseCookie returns the named cookie set on the response, or nil
func ResponseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (duration_ms).

# Sessions

WithSession binds each request to a browser session. The session ID travels
in the ecosync_session cookie, signed with the server's session secret:

	withSession := middleware.WithSession(manager, cfg.SessionSecret)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(withSession(app.Home)))

A missing, forged, or stale cookie silently starts a new session on the
resident login screen. Handlers read the ID with SessionID(r.Context()).

# CORS Middleware

Lets browser tooling on another origin read the JSON session API:

	mux.Handle("GET /api/session", middleware.CORS(handler))

Allows methods GET and OPTIONS.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the EcoSync screens.

# Handler Type

AppHandler holds the session manager and the view renderer:

	app := handlers.NewAppHandler(manager, renderer)

Every handler expects the session ID in the request context, put there by
middleware.WithSession.

# Screens and Events

GET / renders whichever view the session is on. Every UI event is a form
post that updates the session and redirects back with 303 See Other:

	POST /login/{role}        → Login (email, password; both required)
	POST /login/{role}/demo   → DemoLogin
	POST /logout              → Logout
	POST /navigate            → Navigate (view; any value accepted)
	POST /back                → Back

A login post with a blank field re-renders the form with status 400 and the
email kept.

# Admin Board

Only valid while the admin dashboard is the current view:

	POST /admin/reports/{id}/assign → AssignTruck (truck)
	POST /admin/reports/{id}/status → UpdateStatus (status)

Unknown reports give 404, unknown trucks and statuses 400, and a post with no
dashboard open gives 409.

# Report Form

	POST /report → SubmitReport

Accepts multipart or URL-encoded bodies. Of the photo part only the file
name is kept. Missing fields or an unlisted issue type re-render the form
with status 400. The confirmation clears itself after the configured delay.

# Session API

	GET /api/session → Session (JSON snapshot)
*/
package handlers

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the EcoSync server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(manager, renderer, cfg)

# Endpoints

Health:

	GET /health

Screens (session cookie set on first visit):

	GET  /                            - Render the current view (?tab= on admin)
	POST /login/{role}                - Sign in with email and password
	POST /login/{role}/demo           - Sign in with the demo account
	POST /logout                      - Sign out
	POST /navigate                    - Switch view
	POST /back                        - Back button
	POST /admin/reports/{id}/assign   - Assign a truck
	POST /admin/reports/{id}/status   - Change report status
	POST /report                      - Submit the report form

JSON (CORS enabled):

	GET /api/session - Session snapshot

Every route except /health is wrapped in request logging and session
middleware.
*/
package router

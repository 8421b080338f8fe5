// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the seven EcoSync screens as server-side HTML.

Templates are embedded in the binary. Each view file defines a "content"
template that is parsed into its own clone of the shared layout, so views
cannot clobber each other's definitions.

# Pages

NewPage builds the data for whichever view a session currently renders.
Unknown view values render the resident login screen. Builder methods adjust
a page for a single response:

	page := views.NewPage(st, data, time.Now()).WithTab(r.URL.Query().Get("tab"))
	renderer.Render(w, http.StatusOK, page)

# Helpers

Templates can call ago (relative times via go-humanize), comma, statusClass,
truckClass, performance, percent, assigned and statuses.
*/
package views

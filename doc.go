// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the EcoSync demo server.

EcoSync is a municipal waste-collection demo: residents report issues, check
the collection schedule, and watch trucks; staff manage reports and the
fleet. All domain data is mock data loaded from a YAML seed. Only the
browser session's own state changes.

# Starting the Server

A session secret is required; everything else has defaults:

	SESSION_SECRET=change-me go run .

Or with flags:

	go run . -p 3318 -session-secret change-me

Settings may also come from a .env file in the working directory.

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): HMAC key for session cookies

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - STORE_TYPE (-t): memory, sqlite, postgres or mysql (default: memory)
  - DATABASE_URL (-d): Connection string, required for SQL stores
  - REPORT_RESET_DELAY (-reset-delay): Report confirmation time (default: 3s)
  - SESSION_TTL (-session-ttl): Idle session lifetime (default: 24h)
  - SEED_FILE (-seed): Alternative mock data file

# Architecture

  - handlers: HTTP handlers, one per UI event
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, sessions, CORS, JSON helpers
  - views: Embedded HTML templates
  - session: Session state, view switching, and the session manager
  - board, report: Admin board and report form state
  - seed: Mock data
  - db: SQL session store
  - auth: Credential check and cookie signing
  - cliparse: Configuration parsing
  - models: Shared types

See package documentation for each component.
*/
package main

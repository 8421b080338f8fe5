// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides the SQL-backed session store.

Sessions are kept in memory by default. Selecting a SQL store lets several
server processes share sessions; report data is still mock data and is
never written here.

# Connecting

	conn, err := db.Open(db.Postgres, cfg.DatabaseURL)
	if err := db.CreateSchema(conn, db.Postgres); err != nil {
		log.Fatal(err)
	}

Supported dialects and drivers:

  - sqlite: modernc.org/sqlite (pure Go, ":memory:" for tests)
  - postgres: github.com/lib/pq
  - mysql: github.com/go-sql-driver/mysql

Queries are written with "?" placeholders and rebound to "$n" for postgres.

# Tables

	app_session (
	    id           primary key, the session UUID
	    user_role    resident, staff or ''
	    current_view raw view value
	    payload      JSON-encoded session.State
	    updated_at   last save, used for pruning
	)

CreateSchema is safe to call multiple times.
*/
package db

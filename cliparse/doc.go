// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and environment variables.

# Configuration Priority

CLI flags take precedence over environment variables:

 1. CLI flags (highest priority)
 2. Environment variables (including a .env file loaded by main)
 3. Default values (lowest priority)

# Usage

Parse configuration at startup:

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

# Flags and Environment Variables

	Flag               Env Variable          Default   Description
	-p                 PORT                  3318      Server port
	-t                 STORE_TYPE            memory    memory, sqlite, postgres or mysql
	-d                 DATABASE_URL          -         Database URL (SQL stores only)
	-session-secret    SESSION_SECRET        -         Session cookie secret (required)
	-reset-delay       REPORT_RESET_DELAY    3s        Report confirmation display time
	-session-ttl       SESSION_TTL           24h       Idle session lifetime
	-seed              SEED_FILE             embedded  Mock data YAML file

# Security Note

Prefer environment variables for the session secret in production.
CLI arguments may be visible in process listings.

# Validation

ParseFlags returns an error if:

  - SESSION_SECRET is not provided
  - PORT or a duration is not valid
  - STORE_TYPE is unknown
  - a SQL store is selected without DATABASE_URL
*/
package cliparse

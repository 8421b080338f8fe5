// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the demo login check and session cookie signing.

# Login

There are no accounts. Any non-empty email and password pair is accepted:

	ok := auth.CheckCredentials(email, password)

The password is discarded after the check.

# Session Cookies

Session cookies carry the session ID and an HMAC-SHA256 signature:

	value := auth.SignSessionID(sessionID, secret)
	sessionID, err := auth.ParseSessionCookie(value, secret)

The signature is URL-safe base64 without padding. A cookie whose signature
does not match is rejected with ErrInvalidSignature and the client gets a
fresh session.
*/
package auth

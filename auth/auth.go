// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrInvalidToken     = errors.New("invalid token format")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// CheckCredentials is the whole login check: both fields must be non-empty.
// The password is not compared against anything and is never stored.
func CheckCredentials(email, password string) bool {
	return email != "" && password != ""
}

// Sign creates an HMAC-based signature for a session ID
// This is deterministic and verifiable
func Sign(sessionID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(sessionID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner cookies
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// SignSessionID returns the cookie value for a session: "<id>.<signature>"
func SignSessionID(sessionID, secret string) string {
	return sessionID + "." + Sign(sessionID, secret)
}

// ParseSessionCookie checks a cookie value made by SignSessionID and returns
// the session ID it carries.
func ParseSessionCookie(value, secret string) (string, error) {
	sessionID, signature, ok := strings.Cut(value, ".")
	if !ok || sessionID == "" || signature == "" {
		return "", ErrInvalidToken
	}
	expected := Sign(sessionID, secret)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return "", ErrInvalidSignature
	}
	return sessionID, nil
}

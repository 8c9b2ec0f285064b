// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while parsing the "Authorization" request header.
// The auth middleware maps all of them to 401.
var (
	// ErrEmptyAuthorizationHeader means the request carried no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header value could not be
	// split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the scheme was present but the token part was
	// an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

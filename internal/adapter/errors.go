// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrNoSession is returned before any I/O when the token provider has
	// no token.
	ErrNoSession = errors.New("no session token")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	// ErrUnexpectedResponse means a 2xx response body could not be decoded.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

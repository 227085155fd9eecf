// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the dev
// blob server handlers and by the client when it interprets their replies.
//
// All Msg* constants are human-readable message strings that are written into
// the "detail" field of HTTP error bodies. Keeping them in one place ensures
// consistent wording between the server and the client error mapper.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidBlobName is returned when a blob id is empty, hidden or
	// contains a path separator.
	MsgInvalidBlobName = "invalid blob name"

	// MsgMissingAuthorization is returned when a protected route is called
	// without an Authorization header.
	MsgMissingAuthorization = "Missing Authorization header"

	// MsgInvalidTokenFormat is returned when the Authorization header is not
	// of the form "Bearer <token>".
	MsgInvalidTokenFormat = "Invalid token format"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "Invalid or expired JWT"

	// MsgAccessDenied is returned when the caller's role is not allowed on
	// the route.
	MsgAccessDenied = "Access denied"

	// MsgNotFound is returned when the requested blob does not exist.
	MsgNotFound = "not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

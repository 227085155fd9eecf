// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the dev blob server.
//
// It exposes route wiring, request handlers and middleware. Bearer
// authentication, role checks, request tracing, access logging and response
// compression are handled here before requests are delegated to the service
// layer. Error responses are JSON objects of the form {"detail": "..."}.
package http

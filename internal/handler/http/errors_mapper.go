// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-case-vault/internal/app"
	"github.com/MKhiriev/go-case-vault/internal/service"
	"github.com/MKhiriev/go-case-vault/internal/utils"
)

type errorResponse struct {
	status int
	detail string
}

// ordered: the first match wins
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidBlobID, errorResponse{http.StatusBadRequest, app.MsgInvalidBlobName}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrBlobNotFound, errorResponse{http.StatusNotFound, app.MsgNotFound}},
	{service.ErrAccessDenied, errorResponse{http.StatusForbidden, app.MsgAccessDenied}},
}

// responseFromError maps a service error to the status code and detail
// message sent to the client. Unknown errors become 500 without leaking
// their text.
func responseFromError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.detail
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeServiceError(w http.ResponseWriter, err error) {
	status, detail := responseFromError(err)
	utils.WriteError(w, detail, status)
}

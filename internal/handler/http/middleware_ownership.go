// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/models"
)

// requireOwnership lets the request through only when the authenticated
// subject owns the resource of kind identified by the path parameter param.
//
// It must run after auth. Responses:
//   - 400 when the path id is not a positive integer;
//   - 404 when the resource does not exist, whoever asks;
//   - 403 when it belongs to another subject.
func (h *Handler) requireOwnership(kind models.ResourceKind, param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			resourceID, err := pathID(r, param)
			if err != nil {
				writeError(w, r, err)
				return
			}

			subjectID, err := subjectFromRequest(r)
			if err != nil {
				writeError(w, r, err)
				return
			}

			if err = h.services.OwnershipGuard.Authorize(r.Context(), kind, resourceID, subjectID); err != nil {
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

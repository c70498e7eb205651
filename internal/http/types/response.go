// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the standard json envelope for errors. Every error the
// API returns uses this shape regardless of which handler produced it.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// WriteJSON writes v as a json response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the standard error envelope.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Status: status, Message: message})
}

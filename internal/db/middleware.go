// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
	"net/http"

	"github.com/canonical/supply-service/internal/logging"
)

// TransactionMiddleware wraps every mutating request in a lazily started
// transaction. The transaction commits when the handler responds below 400
// and rolls back otherwise, so a failed invite or review never leaves
// partial rows behind.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				// read-only, no transaction needed
				next.ServeHTTP(w, r)
				return
			}

			err := db.WithTx(r.Context(), func(txCtx context.Context) error {
				sw := &statusWriter{
					ResponseWriter: w,
					status:         http.StatusOK,
				}

				next.ServeHTTP(sw, r.WithContext(txCtx))

				if sw.status >= 400 {
					return fmt.Errorf("request failed with status %d", sw.status)
				}

				return nil
			})
			if err != nil {
				// the handler already wrote the error response
				logger.Debugf("request transaction rolled back: %v", err)
			}
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/canonical/supply-service/internal/db"
	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/monitoring"
	"github.com/canonical/supply-service/internal/tracing"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// joinColumns renders a column list for RETURNING clauses.
func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// prefixColumns qualifies every column with a table alias.
func prefixColumns(prefix string, columns []string) []string {
	prefixed := make([]string, len(columns))
	for i, c := range columns {
		prefixed[i] = prefix + c
	}
	return prefixed
}

// marshalJSON encodes a value destined for a jsonb column.
func marshalJSON(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode jsonb value: %w", err)
	}
	return data, nil
}

// unmarshalJSON decodes a jsonb column into dst, tolerating NULLs.
func unmarshalJSON(data []byte, dst interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode jsonb value: %w", err)
	}
	return nil
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestNoopLoggerSecurityChannel(t *testing.T) {
	l := NewNoopLogger()

	if l.Security() == nil {
		t.Fatal("expected a security logger")
	}

	l.Security().AuthzFailure("user-1", "missing permission")
	l.Security().AuthnFailure("user-1", "bad credentials")
}

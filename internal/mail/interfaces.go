// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

// MailerInterface delivers credentials out of band. Temporary passwords and
// reset tokens never appear in API responses.
type MailerInterface interface {
	SendInvitation(ctx context.Context, email, tempPassword string) error
	SendPasswordReset(ctx context.Context, email, token string) error
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/canonical/supply-service/internal/logging"
)

var _ MailerInterface = (*LogMailer)(nil)

// LogMailer records deliveries on the application log instead of sending
// them. Stands in until an SMTP or provider backed mailer is configured.
type LogMailer struct {
	logger logging.LoggerInterface
}

func (m *LogMailer) SendInvitation(ctx context.Context, email, tempPassword string) error {
	m.logger.Infof("invitation issued for %s", email)
	m.logger.Debugf("temporary password for %s: %s", email, tempPassword)
	return nil
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	m.logger.Infof("password reset issued for %s", email)
	m.logger.Debugf("reset token for %s: %s", email, token)
	return nil
}

func NewLogMailer(logger logging.LoggerInterface) *LogMailer {
	m := new(LogMailer)
	m.logger = logger
	return m
}

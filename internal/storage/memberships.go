// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/supply-service/internal/types"
)

var membershipColumns = []string{
	"id", "business_name", "business_type", "contact_name", "email", "phone",
	"address", "website", "subscription_status", "subscription_plan",
	"trial_ends", "subscription_expires", "payment_token", "date_joined",
	"last_payment_date", "notes", "settings",
}

func scanMembership(row sq.RowScanner) (*types.Membership, error) {
	var m types.Membership
	var settings []byte

	err := row.Scan(
		&m.ID, &m.BusinessName, &m.BusinessType, &m.ContactName, &m.Email,
		&m.Phone, &m.Address, &m.Website, &m.SubscriptionStatus,
		&m.SubscriptionPlan, &m.TrialEnds, &m.SubscriptionExpires,
		&m.PaymentToken, &m.DateJoined, &m.LastPaymentDate, &m.Notes,
		&settings,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalJSON(settings, &m.Settings); err != nil {
		return nil, err
	}

	return &m, nil
}

func (s *Storage) CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	settings, err := marshalJSON(m.Settings)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("memberships").
		Columns(
			"id", "business_name", "business_type", "contact_name", "email",
			"phone", "address", "website", "subscription_status",
			"subscription_plan", "trial_ends", "subscription_expires",
			"payment_token", "notes", "settings",
		).
		Values(
			id.String(), m.BusinessName, m.BusinessType, m.ContactName, m.Email,
			m.Phone, m.Address, m.Website, m.SubscriptionStatus,
			m.SubscriptionPlan, m.TrialEnds, m.SubscriptionExpires,
			m.PaymentToken, m.Notes, settings,
		).
		Suffix("RETURNING " + joinColumns(membershipColumns)).
		QueryRowContext(ctx)

	created, err := scanMembership(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert membership: %w", err)
	}

	return created, nil
}

func (s *Storage) GetMembershipByID(ctx context.Context, id string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return m, nil
}

func (s *Storage) ListMemberships(ctx context.Context) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMemberships")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		OrderBy("date_joined DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*types.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}

func (s *Storage) UpdateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMembership")
	defer span.End()

	settings, err := marshalJSON(m.Settings)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Update("memberships").
		SetMap(map[string]interface{}{
			"business_name":        m.BusinessName,
			"business_type":        m.BusinessType,
			"contact_name":         m.ContactName,
			"email":                m.Email,
			"phone":                m.Phone,
			"address":              m.Address,
			"website":              m.Website,
			"subscription_status":  m.SubscriptionStatus,
			"subscription_plan":    m.SubscriptionPlan,
			"trial_ends":           m.TrialEnds,
			"subscription_expires": m.SubscriptionExpires,
			"payment_token":        m.PaymentToken,
			"last_payment_date":    m.LastPaymentDate,
			"notes":                m.Notes,
			"settings":             settings,
		}).
		Where(sq.Eq{"id": m.ID}).
		Suffix("RETURNING " + joinColumns(membershipColumns)).
		QueryRowContext(ctx)

	updated, err := scanMembership(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}

	return updated, nil
}

func (s *Storage) DeleteMembership(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

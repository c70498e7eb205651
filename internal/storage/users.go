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

var userColumns = []string{
	"id", "email", "password_hash", "role", "membership_id", "invited_by",
	"first_name", "last_name", "is_active", "last_login", "permissions",
	"created_at", "updated_at",
}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var u types.User
	var permissions []byte

	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.MembershipID,
		&u.InvitedBy, &u.FirstName, &u.LastName, &u.IsActive, &u.LastLogin,
		&permissions, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalJSON(permissions, &u.Permissions); err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	permissions, err := marshalJSON(u.Permissions)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns(
			"id", "email", "password_hash", "role", "membership_id",
			"invited_by", "first_name", "last_name", "is_active", "permissions",
		).
		Values(
			id.String(), u.Email, u.PasswordHash, u.Role, u.MembershipID,
			u.InvitedBy, u.FirstName, u.LastName, u.IsActive, permissions,
		).
		Suffix("RETURNING " + joinColumns(userColumns)).
		QueryRowContext(ctx)

	created, err := scanUser(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return created, nil
}

// InviteTeamMember admits a team-member subject to the membership's plan
// limit in a single conditional insert. The row is inserted only when the
// current count of active team-members is below the limit, so two concurrent
// invitations cannot both slip under the cap. A negative limit means
// unlimited.
func (s *Storage) InviteTeamMember(ctx context.Context, u *types.User, limit int) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InviteTeamMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	permissions, err := marshalJSON(u.Permissions)
	if err != nil {
		return nil, err
	}

	admission := sq.Select().
		Column(sq.Expr("?", id.String())).
		Column(sq.Expr("?", u.Email)).
		Column(sq.Expr("?", u.PasswordHash)).
		Column(sq.Expr("?", types.RoleTeamMember)).
		Column(sq.Expr("?", u.MembershipID)).
		Column(sq.Expr("?", u.InvitedBy)).
		Column(sq.Expr("?", u.FirstName)).
		Column(sq.Expr("?", u.LastName)).
		Column("TRUE").
		Column(sq.Expr("?::jsonb", permissions)).
		Where(sq.Expr(
			"? < 0 OR (SELECT COUNT(*) FROM users WHERE membership_id = ? AND role = ? AND is_active = TRUE) < ?",
			limit, u.MembershipID, types.RoleTeamMember, limit,
		))

	row := s.db.Statement(ctx).
		Insert("users").
		Columns(
			"id", "email", "password_hash", "role", "membership_id",
			"invited_by", "first_name", "last_name", "is_active", "permissions",
		).
		Select(admission).
		Suffix("RETURNING " + joinColumns(userColumns)).
		QueryRowContext(ctx)

	created, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserLimitReached
		}
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert team member: %w", err)
	}

	return created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// GetTeamMember resolves a team-member within a membership, or ErrNotFound.
// The membership scoping is part of the query so a cross-tenant ID never
// resolves.
func (s *Storage) GetTeamMember(ctx context.Context, membershipID, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTeamMember")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{
			"id":            userID,
			"membership_id": membershipID,
			"role":          types.RoleTeamMember,
		}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}

	return u, nil
}

func (s *Storage) ListTeamMembers(ctx context.Context, membershipID string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTeamMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{
			"membership_id": membershipID,
			"role":          types.RoleTeamMember,
			"is_active":     true,
		}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	var members []*types.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) CountActiveTeamMembers(ctx context.Context, membershipID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveTeamMembers")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("users").
		Where(sq.Eq{
			"membership_id": membershipID,
			"role":          types.RoleTeamMember,
			"is_active":     true,
		}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count team members: %w", err)
	}

	return count, nil
}

func (s *Storage) UpdateTeamMemberPermissions(ctx context.Context, membershipID, userID string, p types.Permissions) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTeamMemberPermissions")
	defer span.End()

	permissions, err := marshalJSON(p)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Update("users").
		Set("permissions", permissions).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"id":            userID,
			"membership_id": membershipID,
			"role":          types.RoleTeamMember,
		}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update permissions: %w", err)
	}

	return u, nil
}

func (s *Storage) DeactivateTeamMember(ctx context.Context, membershipID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateTeamMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("is_active", false).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"id":            userID,
			"membership_id": membershipID,
			"role":          types.RoleTeamMember,
		}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate team member: %w", err)
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

func (s *Storage) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserPassword")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("password_hash", passwordHash).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
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

func (s *Storage) UpdateUserProfile(ctx context.Context, userID, firstName, lastName string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserProfile")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("users").
		Set("first_name", firstName).
		Set("last_name", lastName).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return u, nil
}

func (s *Storage) SetUserLastLogin(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserLastLogin")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("users").
		Set("last_login", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set last login: %w", err)
	}

	return nil
}

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

var changeRequestColumns = []string{
	"id", "submitted_by", "membership_id", "type", "target_id", "target_type",
	"title", "description", "proposed_changes", "current_data", "status",
	"reviewed_by", "reviewed_at", "admin_notes", "priority", "created_at",
	"updated_at",
}

var orderRequestColumns = []string{
	"id", "submitted_by", "membership_id", "title", "description", "items",
	"preferred_supplier_id", "urgency", "requested_delivery_date", "status",
	"reviewed_by", "reviewed_at", "admin_notes", "order_number", "actual_cost",
	"ordered_at", "delivered_at", "created_at", "updated_at",
}

func scanChangeRequest(row sq.RowScanner) (*types.ChangeRequest, error) {
	var cr types.ChangeRequest
	var proposed, current []byte

	err := row.Scan(
		&cr.ID, &cr.SubmittedBy, &cr.MembershipID, &cr.Type, &cr.TargetID,
		&cr.TargetType, &cr.Title, &cr.Description, &proposed, &current,
		&cr.Status, &cr.ReviewedBy, &cr.ReviewedAt, &cr.AdminNotes,
		&cr.Priority, &cr.CreatedAt, &cr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalJSON(proposed, &cr.ProposedChanges); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(current, &cr.CurrentData); err != nil {
		return nil, err
	}

	return &cr, nil
}

func scanOrderRequest(row sq.RowScanner) (*types.OrderRequest, error) {
	var or types.OrderRequest
	var items []byte

	err := row.Scan(
		&or.ID, &or.SubmittedBy, &or.MembershipID, &or.Title, &or.Description,
		&items, &or.PreferredSupplierID, &or.Urgency, &or.RequestedDeliveryDate,
		&or.Status, &or.ReviewedBy, &or.ReviewedAt, &or.AdminNotes,
		&or.OrderNumber, &or.ActualCost, &or.OrderedAt, &or.DeliveredAt,
		&or.CreatedAt, &or.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalJSON(items, &or.Items); err != nil {
		return nil, err
	}

	return &or, nil
}

func (s *Storage) CreateChangeRequest(ctx context.Context, cr *types.ChangeRequest) (*types.ChangeRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateChangeRequest")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate change request ID: %w", err)
	}

	proposed, err := marshalJSON(cr.ProposedChanges)
	if err != nil {
		return nil, err
	}
	current, err := marshalJSON(cr.CurrentData)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("change_requests").
		Columns(
			"id", "submitted_by", "membership_id", "type", "target_id",
			"target_type", "title", "description", "proposed_changes",
			"current_data", "status", "priority",
		).
		Values(
			id.String(), cr.SubmittedBy, cr.MembershipID, cr.Type, cr.TargetID,
			cr.TargetType, cr.Title, cr.Description, proposed, current,
			types.StatusPending, cr.Priority,
		).
		Suffix("RETURNING " + joinColumns(changeRequestColumns)).
		QueryRowContext(ctx)

	created, err := scanChangeRequest(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert change request: %w", err)
	}

	return created, nil
}

func (s *Storage) GetChangeRequest(ctx context.Context, membershipID, id string) (*types.ChangeRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetChangeRequest")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(changeRequestColumns...).
		From("change_requests").
		Where(sq.Eq{"id": id, "membership_id": membershipID}).
		QueryRowContext(ctx)

	cr, err := scanChangeRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get change request: %w", err)
	}

	return cr, nil
}

func (s *Storage) listChangeRequests(ctx context.Context, pred sq.Eq) ([]*types.ChangeRequest, error) {
	rows, err := s.db.Statement(ctx).
		Select(changeRequestColumns...).
		From("change_requests").
		Where(pred).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list change requests: %w", err)
	}
	defer rows.Close()

	var requests []*types.ChangeRequest
	for rows.Next() {
		cr, err := scanChangeRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan change request: %w", err)
		}
		requests = append(requests, cr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

// ListChangeRequests returns a membership's change requests, optionally
// filtered by status when status is non-empty.
func (s *Storage) ListChangeRequests(ctx context.Context, membershipID, status string) ([]*types.ChangeRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListChangeRequests")
	defer span.End()

	pred := sq.Eq{"membership_id": membershipID}
	if status != "" {
		pred["status"] = status
	}

	return s.listChangeRequests(ctx, pred)
}

func (s *Storage) ListChangeRequestsBySubmitter(ctx context.Context, userID string) ([]*types.ChangeRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListChangeRequestsBySubmitter")
	defer span.End()

	return s.listChangeRequests(ctx, sq.Eq{"submitted_by": userID})
}

// SetChangeRequestStatus moves a change request from one status to another,
// stamping the reviewer. The transition is conditional on the current status
// so a request reviewed concurrently surfaces as ErrStaleStatus rather than
// being silently re-decided.
func (s *Storage) SetChangeRequestStatus(ctx context.Context, membershipID, id, from, to, reviewedBy, notes string) (*types.ChangeRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SetChangeRequestStatus")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("change_requests").
		SetMap(map[string]interface{}{
			"status":      to,
			"reviewed_by": reviewedBy,
			"reviewed_at": sq.Expr("NOW()"),
			"admin_notes": notes,
			"updated_at":  sq.Expr("NOW()"),
		}).
		Where(sq.Eq{
			"id":            id,
			"membership_id": membershipID,
			"status":        from,
		}).
		Suffix("RETURNING " + joinColumns(changeRequestColumns)).
		QueryRowContext(ctx)

	cr, err := scanChangeRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStaleStatus
		}
		return nil, fmt.Errorf("failed to update change request status: %w", err)
	}

	return cr, nil
}

// MarkChangeRequestImplemented records that an approved change was applied.
func (s *Storage) MarkChangeRequestImplemented(ctx context.Context, membershipID, id string) (*types.ChangeRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkChangeRequestImplemented")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("change_requests").
		SetMap(map[string]interface{}{
			"status":     types.StatusImplemented,
			"updated_at": sq.Expr("NOW()"),
		}).
		Where(sq.Eq{
			"id":            id,
			"membership_id": membershipID,
			"status":        types.StatusApproved,
		}).
		Suffix("RETURNING " + joinColumns(changeRequestColumns)).
		QueryRowContext(ctx)

	cr, err := scanChangeRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStaleStatus
		}
		return nil, fmt.Errorf("failed to mark change request implemented: %w", err)
	}

	return cr, nil
}

func (s *Storage) CreateOrderRequest(ctx context.Context, or *types.OrderRequest) (*types.OrderRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrderRequest")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order request ID: %w", err)
	}

	items, err := marshalJSON(or.Items)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("order_requests").
		Columns(
			"id", "submitted_by", "membership_id", "title", "description",
			"items", "preferred_supplier_id", "urgency",
			"requested_delivery_date", "status",
		).
		Values(
			id.String(), or.SubmittedBy, or.MembershipID, or.Title,
			or.Description, items, or.PreferredSupplierID, or.Urgency,
			or.RequestedDeliveryDate, types.StatusPending,
		).
		Suffix("RETURNING " + joinColumns(orderRequestColumns)).
		QueryRowContext(ctx)

	created, err := scanOrderRequest(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert order request: %w", err)
	}

	return created, nil
}

func (s *Storage) GetOrderRequest(ctx context.Context, membershipID, id string) (*types.OrderRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrderRequest")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(orderRequestColumns...).
		From("order_requests").
		Where(sq.Eq{"id": id, "membership_id": membershipID}).
		QueryRowContext(ctx)

	or, err := scanOrderRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order request: %w", err)
	}

	return or, nil
}

func (s *Storage) listOrderRequests(ctx context.Context, pred sq.Eq) ([]*types.OrderRequest, error) {
	rows, err := s.db.Statement(ctx).
		Select(orderRequestColumns...).
		From("order_requests").
		Where(pred).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list order requests: %w", err)
	}
	defer rows.Close()

	var requests []*types.OrderRequest
	for rows.Next() {
		or, err := scanOrderRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order request: %w", err)
		}
		requests = append(requests, or)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

func (s *Storage) ListOrderRequests(ctx context.Context, membershipID, status string) ([]*types.OrderRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrderRequests")
	defer span.End()

	pred := sq.Eq{"membership_id": membershipID}
	if status != "" {
		pred["status"] = status
	}

	return s.listOrderRequests(ctx, pred)
}

func (s *Storage) ListOrderRequestsBySubmitter(ctx context.Context, userID string) ([]*types.OrderRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrderRequestsBySubmitter")
	defer span.End()

	return s.listOrderRequests(ctx, sq.Eq{"submitted_by": userID})
}

// SetOrderRequestStatus decides a pending order request. Conditional on the
// current status like SetChangeRequestStatus.
func (s *Storage) SetOrderRequestStatus(ctx context.Context, membershipID, id, from, to, reviewedBy, notes string) (*types.OrderRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SetOrderRequestStatus")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("order_requests").
		SetMap(map[string]interface{}{
			"status":      to,
			"reviewed_by": reviewedBy,
			"reviewed_at": sq.Expr("NOW()"),
			"admin_notes": notes,
			"updated_at":  sq.Expr("NOW()"),
		}).
		Where(sq.Eq{
			"id":            id,
			"membership_id": membershipID,
			"status":        from,
		}).
		Suffix("RETURNING " + joinColumns(orderRequestColumns)).
		QueryRowContext(ctx)

	or, err := scanOrderRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStaleStatus
		}
		return nil, fmt.Errorf("failed to update order request status: %w", err)
	}

	return or, nil
}

// MarkOrderRequestOrdered moves an approved order to ordered, recording the
// supplier order number.
func (s *Storage) MarkOrderRequestOrdered(ctx context.Context, membershipID, id, orderNumber string) (*types.OrderRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkOrderRequestOrdered")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("order_requests").
		SetMap(map[string]interface{}{
			"status":       types.StatusOrdered,
			"order_number": orderNumber,
			"ordered_at":   sq.Expr("NOW()"),
			"updated_at":   sq.Expr("NOW()"),
		}).
		Where(sq.Eq{
			"id":            id,
			"membership_id": membershipID,
			"status":        types.StatusApproved,
		}).
		Suffix("RETURNING " + joinColumns(orderRequestColumns)).
		QueryRowContext(ctx)

	or, err := scanOrderRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStaleStatus
		}
		return nil, fmt.Errorf("failed to mark order request ordered: %w", err)
	}

	return or, nil
}

// MarkOrderRequestDelivered closes out an ordered request with the actual
// cost paid.
func (s *Storage) MarkOrderRequestDelivered(ctx context.Context, membershipID, id string, actualCost float64) (*types.OrderRequest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkOrderRequestDelivered")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("order_requests").
		SetMap(map[string]interface{}{
			"status":       types.StatusDelivered,
			"actual_cost":  actualCost,
			"delivered_at": sq.Expr("NOW()"),
			"updated_at":   sq.Expr("NOW()"),
		}).
		Where(sq.Eq{
			"id":            id,
			"membership_id": membershipID,
			"status":        types.StatusOrdered,
		}).
		Suffix("RETURNING " + joinColumns(orderRequestColumns)).
		QueryRowContext(ctx)

	or, err := scanOrderRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStaleStatus
		}
		return nil, fmt.Errorf("failed to mark order request delivered: %w", err)
	}

	return or, nil
}

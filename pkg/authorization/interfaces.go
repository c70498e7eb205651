// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/supply-service/internal/types"
)

type MembershipLoaderInterface interface {
	GetMembershipByID(ctx context.Context, id string) (*types.Membership, error)
}

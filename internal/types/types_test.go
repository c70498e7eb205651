// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"math"
	"testing"
	"time"
)

func TestMembership_IsSubscriptionActive(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name     string
		status   string
		trial    *time.Time
		expires  *time.Time
		expected bool
	}{
		{
			name:     "active without expiry",
			status:   SubscriptionActive,
			expected: true,
		},
		{
			name:     "active with future expiry",
			status:   SubscriptionActive,
			expires:  &future,
			expected: true,
		},
		{
			name:     "active with past expiry",
			status:   SubscriptionActive,
			expires:  &past,
			expected: false,
		},
		{
			name:     "trial without deadline",
			status:   SubscriptionTrial,
			expected: true,
		},
		{
			name:     "trial still running",
			status:   SubscriptionTrial,
			trial:    &future,
			expected: true,
		},
		{
			name:     "trial ended",
			status:   SubscriptionTrial,
			trial:    &past,
			expected: false,
		},
		{
			name: "trial ended but paid expiry in future is ignored",
			// trial_ends governs trials, subscription_expires does not apply.
			status:   SubscriptionTrial,
			trial:    &past,
			expires:  &future,
			expected: false,
		},
		{
			name:     "cancelled",
			status:   SubscriptionCancelled,
			expires:  &future,
			expected: false,
		},
		{
			name:     "expired",
			status:   SubscriptionExpired,
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := Membership{
				SubscriptionStatus:  test.status,
				TrialEnds:           test.trial,
				SubscriptionExpires: test.expires,
			}

			if got := m.IsSubscriptionActive(); got != test.expected {
				t.Errorf("IsSubscriptionActive() = %v, want %v", got, test.expected)
			}
		})
	}
}

func TestMembership_UserLimit(t *testing.T) {
	tests := []struct {
		plan     string
		expected int
	}{
		{PlanBasic, 1},
		{PlanPremium, 5},
		{PlanEnterprise, UnlimitedUsers},
		{"legacy-plan", 0},
		{"", 0},
	}

	for _, test := range tests {
		t.Run(test.plan, func(t *testing.T) {
			m := Membership{SubscriptionPlan: test.plan}

			if got := m.UserLimit(); got != test.expected {
				t.Errorf("UserLimit() = %d, want %d", got, test.expected)
			}
		})
	}
}

func TestOrderRequest_TotalEstimatedCost(t *testing.T) {
	tests := []struct {
		name     string
		items    []OrderItem
		expected float64
	}{
		{
			name:     "no items",
			expected: 0,
		},
		{
			name: "items without estimates count as zero",
			items: []OrderItem{
				{IngredientID: "ing-1", Quantity: 2, Unit: "kg"},
				{IngredientID: "ing-2", Quantity: 1, Unit: "l", EstimatedCost: 4.25},
			},
			expected: 4.25,
		},
		{
			name: "sums all estimates",
			items: []OrderItem{
				{IngredientID: "ing-1", EstimatedCost: 12.50},
				{IngredientID: "ing-2", EstimatedCost: 3.75},
				{IngredientID: "ing-3", EstimatedCost: 0.99},
			},
			expected: 17.24,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			o := OrderRequest{Items: test.items}

			if got := o.TotalEstimatedCost(); math.Abs(got-test.expected) > 1e-9 {
				t.Errorf("TotalEstimatedCost() = %f, want %f", got, test.expected)
			}
		})
	}
}

func TestDefaultPermissions(t *testing.T) {
	p := DefaultPermissions()

	if !p.CanViewRecipes || !p.CanViewIngredients || !p.CanRecommendChanges || !p.CanAddToOrders {
		t.Errorf("DefaultPermissions() = %+v, want all grants enabled", p)
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Business types a membership can register as.
const (
	BusinessTypeRestaurant = "restaurant"
	BusinessTypeHotel      = "hotel"
	BusinessTypeOther      = "other"
)

// Subscription statuses.
const (
	SubscriptionActive    = "active"
	SubscriptionTrial     = "trial"
	SubscriptionExpired   = "expired"
	SubscriptionCancelled = "cancelled"
)

// Subscription plans.
const (
	PlanBasic      = "basic"
	PlanPremium    = "premium"
	PlanEnterprise = "enterprise"
)

// UnlimitedUsers marks a plan without a team-member cap.
const UnlimitedUsers = -1

// Roles. root-admin and team-member are tenant-scoped; admin, user and owner
// predate multi-tenancy and are evaluated by the legacy rules.
const (
	RoleRootAdmin  = "root-admin"
	RoleTeamMember = "team-member"
	RoleAdmin      = "admin"
	RoleUser       = "user"
	RoleOwner      = "owner"
)

// Membership is the tenant entity. A membership owns its suppliers,
// ingredients, recipes and team. Memberships are never hard-deleted in normal
// operation; subscription state transitions are soft.
type Membership struct {
	ID                  string     `db:"id" json:"id"`
	BusinessName        string     `db:"business_name" json:"business_name"`
	BusinessType        string     `db:"business_type" json:"business_type"`
	ContactName         string     `db:"contact_name" json:"contact_name"`
	Email               string     `db:"email" json:"email"`
	Phone               string     `db:"phone" json:"phone,omitempty"`
	Address             string     `db:"address" json:"address,omitempty"`
	Website             string     `db:"website" json:"website,omitempty"`
	SubscriptionStatus  string     `db:"subscription_status" json:"subscription_status"`
	SubscriptionPlan    string     `db:"subscription_plan" json:"subscription_plan"`
	TrialEnds           *time.Time `db:"trial_ends" json:"trial_ends,omitempty"`
	SubscriptionExpires *time.Time `db:"subscription_expires" json:"subscription_expires,omitempty"`
	// PaymentToken is opaque tokenized payment info, passed through untouched.
	PaymentToken    string     `db:"payment_token" json:"-"`
	DateJoined      time.Time  `db:"date_joined" json:"date_joined"`
	LastPaymentDate *time.Time `db:"last_payment_date" json:"last_payment_date,omitempty"`
	Notes           string     `db:"notes" json:"notes,omitempty"`

	Settings MembershipSettings `db:"settings" json:"settings"`
}

// MembershipSettings are per-tenant workflow toggles.
type MembershipSettings struct {
	AllowChangeRequests   bool `json:"allowChangeRequests"`
	RequireOrderApproval  bool `json:"requireOrderApproval"`
	NotifyOnNewSubmission bool `json:"notifyOnNewSubmission"`
}

// IsSubscriptionActive reports whether the membership may currently be used.
// A subscription is active iff its status is not cancelled/expired and the
// relevant deadline (trial_ends for trials, subscription_expires otherwise) is
// unset or in the future.
func (m *Membership) IsSubscriptionActive() bool {
	switch m.SubscriptionStatus {
	case SubscriptionCancelled, SubscriptionExpired:
		return false
	case SubscriptionTrial:
		return m.TrialEnds == nil || m.TrialEnds.After(time.Now())
	default:
		return m.SubscriptionExpires == nil || m.SubscriptionExpires.After(time.Now())
	}
}

// UserLimit returns the maximum number of active team-members the
// membership's plan allows, or UnlimitedUsers for enterprise.
func (m *Membership) UserLimit() int {
	switch m.SubscriptionPlan {
	case PlanBasic:
		return 1
	case PlanPremium:
		return 5
	case PlanEnterprise:
		return UnlimitedUsers
	default:
		return 0
	}
}

// Permissions are the granular capabilities of a team-member. They are
// ignored for every other role.
type Permissions struct {
	CanViewRecipes      bool `json:"canViewRecipes"`
	CanViewIngredients  bool `json:"canViewIngredients"`
	CanRecommendChanges bool `json:"canRecommendChanges"`
	CanAddToOrders      bool `json:"canAddToOrders"`
}

// DefaultPermissions is what an invited team-member starts with.
func DefaultPermissions() Permissions {
	return Permissions{
		CanViewRecipes:      true,
		CanViewIngredients:  true,
		CanRecommendChanges: true,
		CanAddToOrders:      true,
	}
}

// User is the identity entity. MembershipID is required for tenant roles
// (root-admin, team-member); InvitedBy is required for team-members and must
// point at a user of the same membership.
type User struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"role"`
	MembershipID *string    `db:"membership_id" json:"membershipId,omitempty"`
	InvitedBy    *string    `db:"invited_by" json:"invitedBy,omitempty"`
	FirstName    string     `db:"first_name" json:"firstName,omitempty"`
	LastName     string     `db:"last_name" json:"lastName,omitempty"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	LastLogin    *time.Time `db:"last_login" json:"lastLogin,omitempty"`

	Permissions Permissions `db:"permissions" json:"permissions"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Supplier is an owner-scoped catalog entity.
type Supplier struct {
	ID         string    `db:"id" json:"id"`
	OwnerID    string    `db:"owner_id" json:"-"`
	OrderType  string    `db:"order_type" json:"order_type,omitempty"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email,omitempty"`
	Phone      string    `db:"phone" json:"phone,omitempty"`
	Address    string    `db:"address" json:"address,omitempty"`
	Website    string    `db:"website" json:"website,omitempty"`
	Currency   string    `db:"currency" json:"currency,omitempty"`
	Categories []string  `db:"categories" json:"categories,omitempty"`
	Comment    string    `db:"comment" json:"comment,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// Ingredient references a Supplier owned by the same user.
type Ingredient struct {
	ID           string    `db:"id" json:"id"`
	OwnerID      string    `db:"owner_id" json:"-"`
	SupplierID   *string   `db:"supplier_id" json:"supplier,omitempty"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description,omitempty"`
	Category     string    `db:"category" json:"category,omitempty"`
	Unit         string    `db:"unit" json:"unit"`
	PricePerUnit float64   `db:"price_per_unit" json:"price_per_unit"`
	Currency     string    `db:"currency" json:"currency"`
	Availability bool      `db:"availability" json:"availability"`
	ProductCode  string    `db:"product_code" json:"product_code,omitempty"`
	Notes        string    `db:"notes" json:"notes,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// RecipeIngredient pairs an ingredient with a quantity inside a recipe.
type RecipeIngredient struct {
	IngredientID string  `json:"ingredient"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Notes        string  `json:"notes,omitempty"`
}

// RecipeStep is one ordered instruction.
type RecipeStep struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
	TimeMinutes int    `json:"time_minutes,omitempty"`
}

type Recipe struct {
	ID           string             `db:"id" json:"id"`
	OwnerID      string             `db:"owner_id" json:"-"`
	Name         string             `db:"name" json:"name"`
	Description  string             `db:"description" json:"description,omitempty"`
	Category     string             `db:"category" json:"category"`
	Difficulty   string             `db:"difficulty" json:"difficulty,omitempty"`
	Servings     int                `db:"servings" json:"servings"`
	Ingredients  []RecipeIngredient `db:"ingredients" json:"ingredients"`
	Instructions []RecipeStep       `db:"instructions" json:"instructions"`
	Tags         []string           `db:"tags" json:"tags,omitempty"`
	Status       string             `db:"status" json:"status"`
	CreatedAt    time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `db:"updated_at" json:"updatedAt"`
}

// Change request types.
const (
	ChangeTypeRecipe        = "recipe-change"
	ChangeTypeIngredient    = "ingredient-change"
	ChangeTypeNewRecipe     = "new-recipe"
	ChangeTypeNewIngredient = "new-ingredient"
)

// Targets a change request can point at.
const (
	TargetRecipe     = "Recipe"
	TargetIngredient = "Ingredient"
)

// Request statuses shared by change and order requests.
const (
	StatusPending     = "pending"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusImplemented = "implemented"
	StatusOrdered     = "ordered"
	StatusDelivered   = "delivered"
)

// Priorities / urgencies.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ChangeRequest is a team-member proposal against a recipe or ingredient.
// ReviewedAt is set exactly when the status leaves pending.
type ChangeRequest struct {
	ID              string                 `db:"id" json:"id"`
	SubmittedBy     string                 `db:"submitted_by" json:"submittedBy"`
	MembershipID    string                 `db:"membership_id" json:"membershipId"`
	Type            string                 `db:"type" json:"type"`
	TargetID        string                 `db:"target_id" json:"targetId"`
	TargetType      string                 `db:"target_type" json:"targetType"`
	Title           string                 `db:"title" json:"title"`
	Description     string                 `db:"description" json:"description"`
	ProposedChanges map[string]interface{} `db:"proposed_changes" json:"proposedChanges,omitempty"`
	CurrentData     map[string]interface{} `db:"current_data" json:"currentData,omitempty"`
	Status          string                 `db:"status" json:"status"`
	ReviewedBy      *string                `db:"reviewed_by" json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time             `db:"reviewed_at" json:"reviewedAt,omitempty"`
	AdminNotes      string                 `db:"admin_notes" json:"adminNotes,omitempty"`
	Priority        string                 `db:"priority" json:"priority"`
	CreatedAt       time.Time              `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time              `db:"updated_at" json:"updatedAt"`
}

// OrderItem is one line of an order request.
type OrderItem struct {
	IngredientID  string  `json:"ingredientId"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	EstimatedCost float64 `json:"estimatedCost,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// OrderRequest is a team-member purchase proposal.
type OrderRequest struct {
	ID                    string      `db:"id" json:"id"`
	SubmittedBy           string      `db:"submitted_by" json:"submittedBy"`
	MembershipID          string      `db:"membership_id" json:"membershipId"`
	Title                 string      `db:"title" json:"title"`
	Description           string      `db:"description" json:"description,omitempty"`
	Items                 []OrderItem `db:"items" json:"items"`
	PreferredSupplierID   *string     `db:"preferred_supplier_id" json:"preferredSupplierId,omitempty"`
	Urgency               string      `db:"urgency" json:"urgency"`
	RequestedDeliveryDate *time.Time  `db:"requested_delivery_date" json:"requestedDeliveryDate,omitempty"`
	Status                string      `db:"status" json:"status"`
	ReviewedBy            *string     `db:"reviewed_by" json:"reviewedBy,omitempty"`
	ReviewedAt            *time.Time  `db:"reviewed_at" json:"reviewedAt,omitempty"`
	AdminNotes            string      `db:"admin_notes" json:"adminNotes,omitempty"`
	OrderNumber           string      `db:"order_number" json:"orderNumber,omitempty"`
	ActualCost            *float64    `db:"actual_cost" json:"actualCost,omitempty"`
	OrderedAt             *time.Time  `db:"ordered_at" json:"orderedAt,omitempty"`
	DeliveredAt           *time.Time  `db:"delivered_at" json:"deliveredAt,omitempty"`
	CreatedAt             time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt             time.Time   `db:"updated_at" json:"updatedAt"`
}

// TotalEstimatedCost sums the estimated cost over all items.
func (o *OrderRequest) TotalEstimatedCost() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.EstimatedCost
	}
	return total
}

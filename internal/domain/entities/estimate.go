package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the follow-up state of an estimate.
//
// Status changes are plain field writes made by an administrator; there is no
// transition table.

type EstimateStatus string

const (
	EstimateStatusPending   EstimateStatus = "pending"
	EstimateStatusContacted EstimateStatus = "contacted"
	EstimateStatusConverted EstimateStatus = "converted"
	EstimateStatusArchived  EstimateStatus = "archived"
)

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusPending, EstimateStatusContacted, EstimateStatusConverted, EstimateStatusArchived:
		return true
	}
	return false
}

// Estimate is the durable quote produced by checking out a cart.
//
// Storage model (DynamoDB):
//   - PK: estimate_number
//   - GSI1 (builder_id-index): builder_id
//
// Storage model (Postgres): estimates table, unique estimate_number.
//
// Totals are computed from the cart at checkout time and stored; they are never
// recomputed from the items.
type Estimate struct {
	ID             string          `json:"id"`
	EstimateNumber string          `json:"estimate_number"`
	BuilderID      string          `json:"builder_id"`
	ClientName     string          `json:"client_name"`
	ClientEmail    string          `json:"client_email"`
	TotalLow       decimal.Decimal `json:"total_low"`
	TotalHigh      decimal.Decimal `json:"total_high"`
	Status         EstimateStatus  `json:"status"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Items []EstimateItem `json:"items,omitempty"`
}

// EstimateItem snapshots one cart line at checkout time.
//
// PackageID is nil once the originating package has been removed from the
// catalog; the snapshot fields keep the item displayable.
type EstimateItem struct {
	ID                  string          `json:"id"`
	EstimateID          string          `json:"estimate_id"`
	PackageID           *int64          `json:"package_id"`
	PriceLowSnapshot    decimal.Decimal `json:"price_low_snapshot"`
	PriceHighSnapshot   decimal.Decimal `json:"price_high_snapshot"`
	PackageNameSnapshot string          `json:"package_name_snapshot"`
	QuantitySnapshot    int             `json:"quantity_snapshot"`
}

// EstimateDraft is everything the checkout needs to persist in one atomic write.
//
// The store assigns Estimate.EstimateNumber from the year of Estimate.CreatedAt.
// When Guest is set the store upserts the builder by email and uses the resulting
// id as Estimate.BuilderID; otherwise Estimate.BuilderID must already be set.
type EstimateDraft struct {
	Estimate Estimate
	Guest    *Builder
	Items    []EstimateItem
}

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the top-level grouping for packages (Audio, Security, Lighting...).
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
}

// SubCategory nests under a Category (Whole Home Audio, Outdoor Audio...).
type SubCategory struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
}

// InstallPhase is a construction phase a package is installed in (Pre-Wire, Rough-In, Finish).
type InstallPhase struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
}

// PackageTemplate is a sellable package with an estimated price range.
type PackageTemplate struct {
	ID                       int64           `json:"id"`
	Name                     string          `json:"name"`
	CategoryID               int64           `json:"category_id"`
	SubCategoryID            *int64          `json:"subcategory_id,omitempty"`
	Description              string          `json:"description"`
	PriceLow                 decimal.Decimal `json:"price_low"`
	PriceHigh                decimal.Decimal `json:"price_high"`
	PriceNotes               string          `json:"price_notes"`
	BundleDiscountNote       string          `json:"bundle_discount_note"`
	UtilityIncentiveEligible bool            `json:"utility_incentive_eligible"`
	InstallPhaseIDs          []int64         `json:"install_phase_ids"`
	RequiresPhaseID          *int64          `json:"requires_phase_id,omitempty"`
	IsActive                 bool            `json:"is_active"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
}

// PackageFilter narrows active package listings. Zero values mean "any".
type PackageFilter struct {
	CategoryID    int64
	SubCategoryID int64
}

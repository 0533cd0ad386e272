package response

import (
	"testing"
	"time"

	"builder_estimates/internal/domain/cart"
	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	pkgID := int64(4)
	e := entities.Estimate{
		ID:             "est-1",
		EstimateNumber: "EST-2024-001",
		BuilderID:      "b1",
		TotalLow:       decimal.RequireFromString("250"),
		TotalHigh:      decimal.RequireFromString("380.5"),
		Status:         entities.EstimateStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
		Items: []entities.EstimateItem{
			{PackageID: &pkgID, PackageNameSnapshot: "A", QuantitySnapshot: 2, PriceLowSnapshot: decimal.NewFromInt(100), PriceHighSnapshot: decimal.NewFromInt(150)},
			{PackageNameSnapshot: "Gone", QuantitySnapshot: 1, PriceLowSnapshot: decimal.NewFromInt(50), PriceHighSnapshot: decimal.NewFromInt(80)},
		},
	}

	res := FromEstimate(e)
	if res.EstimateNumber != "EST-2024-001" || res.Status != "pending" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.TotalLow != "250.00" || res.TotalHigh != "380.50" {
		t.Fatalf("unexpected totals: %s %s", res.TotalLow, res.TotalHigh)
	}
	if len(res.Items) != 2 || res.Items[0].PriceHigh != "150.00" || res.Items[1].PackageID != nil {
		t.Fatalf("unexpected items: %+v", res.Items)
	}

	sum := FromEstimateSummary(e)
	if sum.ItemCount != 2 || sum.TotalLow != "250.00" {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	co := FromCheckout(e)
	if co.Message != "Estimate EST-2024-001 submitted successfully." {
		t.Fatalf("unexpected message %q", co.Message)
	}
}

func TestFromCartSummary(t *testing.T) {
	pkg := entities.PackageTemplate{ID: 1}
	s := usecase.CartSummary{
		Items: []cart.Item{
			{PackageID: "1", Package: &pkg, Name: "A", Quantity: 1, PriceLow: decimal.NewFromInt(100), TotalLow: decimal.NewFromInt(100)},
			{PackageID: "9", Name: "Gone", Quantity: 1},
		},
		Count:     2,
		TotalLow:  decimal.NewFromInt(150),
		TotalHigh: decimal.NewFromInt(230),
	}

	res := FromCartSummary(s)
	if res.Count != 2 || res.TotalHigh != "230.00" {
		t.Fatalf("unexpected cart: %+v", res)
	}
	if !res.Items[0].Available || res.Items[1].Available {
		t.Fatalf("unexpected availability: %+v", res.Items)
	}
}

func TestFromPackageDetail(t *testing.T) {
	sub := entities.SubCategory{ID: 7, Name: "Outdoor Audio"}
	phase := entities.InstallPhase{ID: 1, Name: "Pre-Wire"}
	d := usecase.PackageDetail{
		Package:       entities.PackageTemplate{ID: 4, PriceLow: decimal.NewFromInt(1200), PriceHigh: decimal.NewFromInt(1800)},
		Category:      entities.Category{ID: 1, Name: "Audio"},
		SubCategory:   &sub,
		InstallPhases: []entities.InstallPhase{phase},
		RequiresPhase: &phase,
	}

	res := FromPackageDetail(d)
	if res.Package.PriceLow != "1200.00" || res.Package.InstallPhaseIDs == nil {
		t.Fatalf("unexpected package: %+v", res.Package)
	}
	if res.SubCategory == nil || res.SubCategory.Name != "Outdoor Audio" {
		t.Fatalf("unexpected subcategory: %+v", res.SubCategory)
	}
	if res.RequiresPhase == nil || len(res.InstallPhases) != 1 {
		t.Fatalf("unexpected phases: %+v", res)
	}
}

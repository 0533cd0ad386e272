package response

import (
	"time"

	"builder_estimates/internal/domain/entities"
)

type EstimateItemResponse struct {
	PackageID *int64 `json:"package_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	PriceLow  string `json:"price_low"`
	PriceHigh string `json:"price_high"`
}

type EstimateResponse struct {
	EstimateNumber string                 `json:"estimate_number"`
	BuilderID      string                 `json:"builder_id"`
	ClientName     string                 `json:"client_name"`
	ClientEmail    string                 `json:"client_email"`
	TotalLow       string                 `json:"total_low"`
	TotalHigh      string                 `json:"total_high"`
	Status         string                 `json:"status"`
	Notes          string                 `json:"notes"`
	Items          []EstimateItemResponse `json:"items"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// EstimateSummaryResponse is the public thank-you view. It carries no contact data.
type EstimateSummaryResponse struct {
	EstimateNumber string    `json:"estimate_number"`
	Status         string    `json:"status"`
	TotalLow       string    `json:"total_low"`
	TotalHigh      string    `json:"total_high"`
	ItemCount      int       `json:"item_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type CheckoutResponse struct {
	Message        string `json:"message"`
	EstimateNumber string `json:"estimate_number"`
	TotalLow       string `json:"total_low"`
	TotalHigh      string `json:"total_high"`
	ItemCount      int    `json:"item_count"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	res := EstimateResponse{
		EstimateNumber: e.EstimateNumber,
		BuilderID:      e.BuilderID,
		ClientName:     e.ClientName,
		ClientEmail:    e.ClientEmail,
		TotalLow:       money(e.TotalLow),
		TotalHigh:      money(e.TotalHigh),
		Status:         string(e.Status),
		Notes:          e.Notes,
		Items:          make([]EstimateItemResponse, 0, len(e.Items)),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	for _, it := range e.Items {
		res.Items = append(res.Items, EstimateItemResponse{
			PackageID: it.PackageID,
			Name:      it.PackageNameSnapshot,
			Quantity:  it.QuantitySnapshot,
			PriceLow:  money(it.PriceLowSnapshot),
			PriceHigh: money(it.PriceHighSnapshot),
		})
	}
	return res
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}

func FromEstimateSummary(e entities.Estimate) EstimateSummaryResponse {
	return EstimateSummaryResponse{
		EstimateNumber: e.EstimateNumber,
		Status:         string(e.Status),
		TotalLow:       money(e.TotalLow),
		TotalHigh:      money(e.TotalHigh),
		ItemCount:      len(e.Items),
		CreatedAt:      e.CreatedAt,
	}
}

func FromCheckout(e entities.Estimate) CheckoutResponse {
	return CheckoutResponse{
		Message:        "Estimate " + e.EstimateNumber + " submitted successfully.",
		EstimateNumber: e.EstimateNumber,
		TotalLow:       money(e.TotalLow),
		TotalHigh:      money(e.TotalHigh),
		ItemCount:      len(e.Items),
	}
}

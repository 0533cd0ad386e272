package response

import "builder_estimates/internal/usecase"

type CartItemResponse struct {
	PackageID string `json:"package_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	PriceLow  string `json:"price_low"`
	PriceHigh string `json:"price_high"`
	TotalLow  string `json:"total_low"`
	TotalHigh string `json:"total_high"`
	// Available is false when the package has been removed from the catalog.
	Available bool `json:"available"`
}

type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	Count     int                `json:"count"`
	TotalLow  string             `json:"total_low"`
	TotalHigh string             `json:"total_high"`
}

// CartMutationResponse answers add, update and remove with a flash-style message.
type CartMutationResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func FromCartSummary(s usecase.CartSummary) CartResponse {
	res := CartResponse{
		Items:     make([]CartItemResponse, 0, len(s.Items)),
		Count:     s.Count,
		TotalLow:  money(s.TotalLow),
		TotalHigh: money(s.TotalHigh),
	}
	for _, it := range s.Items {
		res.Items = append(res.Items, CartItemResponse{
			PackageID: it.PackageID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			PriceLow:  money(it.PriceLow),
			PriceHigh: money(it.PriceHigh),
			TotalLow:  money(it.TotalLow),
			TotalHigh: money(it.TotalHigh),
			Available: !it.Orphaned(),
		})
	}
	return res
}

package request

// CartItemRequest is the body of the add and update cart endpoints. Quantity is a
// pointer so an omitted value can fall back to the endpoint default.
type CartItemRequest struct {
	Quantity *int `json:"quantity"`
}

func (r CartItemRequest) ResolveQuantity(def int) int {
	if r.Quantity == nil {
		return def
	}
	return *r.Quantity
}

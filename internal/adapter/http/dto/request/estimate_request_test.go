package request

import (
	"testing"

	"builder_estimates/internal/domain/entities"
)

func TestEstimateStatusRequest_ResolveStatus(t *testing.T) {
	r := EstimateStatusRequest{Status: " Contacted "}
	if got := r.ResolveStatus(); got != entities.EstimateStatusContacted {
		t.Fatalf("expected contacted, got %q", got)
	}
}

func TestCartItemRequest_ResolveQuantity(t *testing.T) {
	if got := (CartItemRequest{}).ResolveQuantity(1); got != 1 {
		t.Fatalf("expected default 1, got %d", got)
	}
	zero := 0
	if got := (CartItemRequest{Quantity: &zero}).ResolveQuantity(1); got != 0 {
		t.Fatalf("expected explicit 0, got %d", got)
	}
}

func TestCheckoutRequest_ToCheckoutInput(t *testing.T) {
	r := CheckoutRequest{
		CompanyName:   "Acme",
		ContactPerson: "Jo",
		Email:         "jo@acme.example",
		ClientName:    " Pat ",
		Notes:         " call after 5 ",
	}

	t.Run("guest", func(t *testing.T) {
		in := r.ToCheckoutInput("")
		if in.Guest == nil || in.Guest.CompanyName != "Acme" || in.Guest.Email != "jo@acme.example" {
			t.Fatalf("unexpected guest: %+v", in.Guest)
		}
		if in.ClientName != "Pat" || in.Notes != "call after 5" {
			t.Fatalf("expected trimmed fields, got %+v", in)
		}
	})

	t.Run("authenticated", func(t *testing.T) {
		in := r.ToCheckoutInput("builder-1")
		if in.Guest != nil || in.BuilderID != "builder-1" {
			t.Fatalf("unexpected input: %+v", in)
		}
	})
}

package request

import (
	"strings"

	"builder_estimates/internal/usecase"
)

// CheckoutRequest is accepted from both guests and authenticated builders. The
// guest contact fields are ignored when the caller is authenticated.
type CheckoutRequest struct {
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email" binding:"omitempty,email"`
	Notes         string `json:"notes"`
}

func (r CheckoutRequest) ToCheckoutInput(builderID string) usecase.CheckoutInput {
	in := usecase.CheckoutInput{
		BuilderID:   strings.TrimSpace(builderID),
		ClientName:  strings.TrimSpace(r.ClientName),
		ClientEmail: strings.TrimSpace(r.ClientEmail),
		Notes:       strings.TrimSpace(r.Notes),
	}
	if in.BuilderID == "" {
		in.Guest = &usecase.GuestContact{
			CompanyName:   r.CompanyName,
			ContactPerson: r.ContactPerson,
			Email:         r.Email,
			Phone:         r.Phone,
		}
	}
	return in
}

package entities

import "time"

// Builder is the identity that owns estimates: either an authenticated account or a
// guest resolved by email at checkout.
type Builder struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

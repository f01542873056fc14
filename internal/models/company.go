package models

// DeliveryCompany is the tenant operating the portal view. Orders and zones
// reference it by id; the order core only ever reads it.
type DeliveryCompany struct {
	ID       string `json:"id"    validate:"required"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"isActive"`
	OwnerID  string `json:"ownerId,omitempty"`
}

package domain

type ServiceType struct {
	ID             int32  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	BasePriceCents int32  `json:"base_price_cents"`
	IsActive       bool   `json:"is_active"`
	CreatedOn      string `json:"created_on"`
}

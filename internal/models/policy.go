package models

type ReturnPolicy struct {
	ID            uint     `json:"id" gorm:"primaryKey"`
	General       string   `json:"general"`
	Electronics   string   `json:"electronics"`
	Clothing      string   `json:"clothing"`
	ExcludedItems []string `json:"excluded_items" gorm:"serializer:json"`
	Process       string   `json:"process"`
	ShippingFee   string   `json:"shipping_fee"`
}

// CategoryPolicy returns the policy text for a product category, when one
// is defined.
func (p *ReturnPolicy) CategoryPolicy(category string) (string, bool) {
	switch category {
	case "electronics":
		return p.Electronics, p.Electronics != ""
	case "clothing":
		return p.Clothing, p.Clothing != ""
	default:
		return "", false
	}
}

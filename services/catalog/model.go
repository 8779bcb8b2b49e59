package catalog

// Category is the fixed set of product categories the catalog serves.
type Category string

const (
	CategorySoftSkill  Category = "soft-skill"
	CategoryHardSkill  Category = "hard-skill"
	CategoryAdditional Category = "additional"
	CategoryButton     Category = "button"
	CategoryOther      Category = "other"
)

// Product is immutable once loaded from the remote catalog.
type Product struct {
	UID         string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	// Price is nil for priceless products: they can be browsed but
	// never bought.
	Price *int64 `json:"price"`
}

// PriceValue treats an absent price as 0.
func (p Product) PriceValue() int64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

func (p Product) IsPriced() bool {
	return p.Price != nil && *p.Price > 0
}

package models

type Product struct {
	Meta
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"` // whole currency units, always positive
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	AdminID     string   `json:"adminId"`
	Available   bool     `json:"available"`
	Servings    int      `json:"servings"`
	CookingTime string   `json:"cookingTime"`
	Ingredients []string `json:"ingredients"`
}

// ProductPatch is the explicit partial update applied by admin edits.
type ProductPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *int64    `json:"price"`
	Category    *string   `json:"category"`
	Image       *string   `json:"image"`
	Available   *bool     `json:"available"`
	Servings    *int      `json:"servings"`
	CookingTime *string   `json:"cookingTime"`
	Ingredients *[]string `json:"ingredients"`
}

func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Image != nil {
		product.Image = *p.Image
	}
	if p.Available != nil {
		product.Available = *p.Available
	}
	if p.Servings != nil {
		product.Servings = *p.Servings
	}
	if p.CookingTime != nil {
		product.CookingTime = *p.CookingTime
	}
	if p.Ingredients != nil {
		product.Ingredients = *p.Ingredients
	}
}

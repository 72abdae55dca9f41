package models

// Product is a catalog record. InStock is derived from Stock and must be
// recomputed on every stock mutation.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	InStock     bool    `json:"in_stock"`
	Rating      float64 `json:"rating"`
}

// SetStock updates the stock count and keeps the derived flag consistent.
func (p *Product) SetStock(stock int) {
	p.Stock = stock
	p.InStock = stock > 0
}

// CategoryAll is the sentinel filter value that matches every category.
const CategoryAll = "All"

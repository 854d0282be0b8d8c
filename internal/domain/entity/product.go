package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product aparelho ofrecido en el catálogo de la vitrine.
type Product struct {
	ID        string
	Model     string
	Storage   string // ej. 256GB
	Color     string
	Condition string // ej. Grade A
	Price     decimal.Decimal
	ImageURL  string
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

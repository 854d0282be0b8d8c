package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest crea un producto, o lo actualiza si ID viene informado.
type SaveProductRequest struct {
	ID        string          `json:"id"`
	Model     string          `json:"model"`
	Storage   string          `json:"storage"`
	Color     string          `json:"color"`
	Condition string          `json:"condition"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`
	Available *bool           `json:"available"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID             string          `json:"id"`
	Model          string          `json:"model"`
	Storage        string          `json:"storage"`
	Color          string          `json:"color"`
	Condition      string          `json:"condition"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"priceFormatted"`
	ImageURL       string          `json:"imageUrl"`
	Available      bool            `json:"available"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CatalogResponse {"products": [...]}
type CatalogResponse struct {
	Products []ProductResponse `json:"products"`
}

// SaveProductResponse salida de POST /api/admin/catalog.
type SaveProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

package entity

import "time"

// WarrantyTemplate registro de garantía cargado por el admin, clave única IMEI.
// Es la única fuente de verdad sobre la vigencia de la garantía.
type WarrantyTemplate struct {
	ID           string
	IMEI         string
	Model        string
	PurchaseDate time.Time
	WarrantyEnd  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

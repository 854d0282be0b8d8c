package dto

import "time"

// WarrantyResponse estado calculado de la garantía de un IMEI.
type WarrantyResponse struct {
	Model         string    `json:"model"`
	IMEI          string    `json:"imei"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	WarrantyEnd   time.Time `json:"warrantyEnd"`
	DaysRemaining int       `json:"daysRemaining"`
	IsActive      bool      `json:"isActive"`
}

// WarrantyEnvelope {"warranty": ...}
type WarrantyEnvelope struct {
	Warranty WarrantyResponse `json:"warranty"`
}

// UpsertWarrantyRequest entrada del admin; las fechas aceptan yyyy-mm-dd o ISO 8601.
type UpsertWarrantyRequest struct {
	IMEI         string `json:"imei"`
	Model        string `json:"model"`
	PurchaseDate string `json:"purchaseDate"`
	WarrantyEnd  string `json:"warrantyEnd"`
}

// WarrantyTemplateResponse registro tal como lo ve el admin.
type WarrantyTemplateResponse struct {
	ID            string    `json:"id"`
	IMEI          string    `json:"imei"`
	Model         string    `json:"model"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	WarrantyEnd   time.Time `json:"warrantyEnd"`
	DaysRemaining int       `json:"daysRemaining"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UpsertWarrantyResponse salida de POST /api/admin/warranty.
type UpsertWarrantyResponse struct {
	Message        string                   `json:"message"`
	Warranty       WarrantyTemplateResponse `json:"warranty"`
	DevicesUpdated int64                    `json:"devicesUpdated"`
}

// AdminWarrantyEnvelope {"warranty": ...} para el admin.
type AdminWarrantyEnvelope struct {
	Warranty WarrantyTemplateResponse `json:"warranty"`
}

package dto

import "time"

// CreateDeviceRequest el cliente solo informa modelo e IMEI; las fechas vienen de la plantilla.
type CreateDeviceRequest struct {
	Model string `json:"model"`
	IMEI  string `json:"imei"`
}

// UpdateDeviceRequest campos vacíos no se modifican.
type UpdateDeviceRequest struct {
	Model string `json:"model"`
	IMEI  string `json:"imei"`
}

// DeviceResponse salida de un aparelho.
type DeviceResponse struct {
	ID           string     `json:"id"`
	Model        string     `json:"model"`
	IMEI         string     `json:"imei"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	WarrantyEnd  *time.Time `json:"warrantyEnd"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// DeviceSaveResponse salida de POST/PUT: el aparelho se guarda aunque no haya garantía.
type DeviceSaveResponse struct {
	Message         string            `json:"message"`
	Device          DeviceResponse    `json:"device"`
	Warranty        *WarrantyResponse `json:"warranty"`
	WarrantyMessage string            `json:"warrantyMessage,omitempty"`
}

// DeviceListResponse {"devices": [...]}
type DeviceListResponse struct {
	Devices []DeviceResponse `json:"devices"`
}

// DeviceEnvelope {"device": ...}
type DeviceEnvelope struct {
	Device DeviceResponse `json:"device"`
}

// AdminDeviceRequest entrada del endpoint legado /api/admin/devices.
type AdminDeviceRequest struct {
	Model        string `json:"model"`
	IMEI         string `json:"imei"`
	PurchaseDate string `json:"purchaseDate"`
	WarrantyEnd  string `json:"warrantyEnd"`
}

// AdminDeviceResponse salida de POST /api/admin/devices.
type AdminDeviceResponse struct {
	Message string         `json:"message"`
	Device  DeviceResponse `json:"device"`
}

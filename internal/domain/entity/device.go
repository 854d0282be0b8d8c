package entity

import "time"

// Device aparelho registrado por un cliente. Se vincula a WarrantyTemplate solo por IMEI.
// PurchaseDate y WarrantyEnd son informativos: los copia el servidor desde la plantilla
// y quedan nil mientras no exista una para el IMEI.
type Device struct {
	ID           string
	UserID       string
	Model        string
	IMEI         string
	PurchaseDate *time.Time
	WarrantyEnd  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ApplyWarranty copia solo las fechas de la plantilla autoritativa; el modelo
// lo escribe el cliente y no se toca.
func (d *Device) ApplyWarranty(w *WarrantyTemplate) {
	if d == nil || w == nil {
		return
	}
	purchase, end := w.PurchaseDate, w.WarrantyEnd
	d.PurchaseDate = &purchase
	d.WarrantyEnd = &end
}

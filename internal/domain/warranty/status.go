// Package warranty calcula el estado de una garantía a partir de la plantilla del admin.
// Trabaja con días de calendario: la hora del día nunca altera el resultado.
package warranty

import (
	"time"

	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
)

const secondsPerDay = 24 * 60 * 60

// Status estado derivado de una WarrantyTemplate en una fecha dada.
type Status struct {
	Model         string
	IMEI          string
	PurchaseDate  time.Time
	WarrantyEnd   time.Time
	DaysRemaining int
	IsActive      bool
}

// DaysRemaining días de calendario entre hoy y el fin, ambos a medianoche UTC, mínimo 0.
// Se cuenta en segundos Unix: time.Duration satura a ~292 años.
// warrantyEnd se toma como fecha civil (año/mes/día tal como fue guardada);
// now se lleva a loc antes de truncar.
func DaysRemaining(warrantyEnd, now time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	end := civilDate(warrantyEnd)
	today := civilDate(now.In(loc))
	days := int((end.Unix() - today.Unix()) / secondsPerDay)
	if days < 0 {
		return 0
	}
	return days
}

// Resolve calcula el estado. Una garantía que vence hoy (0 días) está inactiva.
func Resolve(t *entity.WarrantyTemplate, now time.Time, loc *time.Location) Status {
	days := DaysRemaining(t.WarrantyEnd, now, loc)
	return Status{
		Model:         t.Model,
		IMEI:          t.IMEI,
		PurchaseDate:  t.PurchaseDate,
		WarrantyEnd:   t.WarrantyEnd,
		DaysRemaining: days,
		IsActive:      days > 0,
	}
}

// civilDate normaliza a medianoche UTC del mismo año/mes/día; evita saltos de horario de verano.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

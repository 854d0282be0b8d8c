package usecase

import "time"

// Clock fuente de la hora actual; los tests la fijan.
type Clock func() time.Time

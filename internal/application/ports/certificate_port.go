package ports

import (
	"context"

	"github.com/gleikstore/gleikstore-api/internal/domain/warranty"
)

// WarrantyCertificateGenerator genera el certificado de garantía en PDF.
type WarrantyCertificateGenerator interface {
	GenerateWarrantyCertificate(ctx context.Context, status warranty.Status, lookupURL string) ([]byte, error)
}

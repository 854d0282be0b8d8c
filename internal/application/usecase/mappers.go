package usecase

import (
	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/domain/warranty"
)

func toDeviceResponse(d *entity.Device) dto.DeviceResponse {
	return dto.DeviceResponse{
		ID:           d.ID,
		Model:        d.Model,
		IMEI:         d.IMEI,
		PurchaseDate: d.PurchaseDate,
		WarrantyEnd:  d.WarrantyEnd,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toDeviceResponses(list []*entity.Device) []dto.DeviceResponse {
	out := make([]dto.DeviceResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDeviceResponse(d))
	}
	return out
}

func toDocumentResponse(d *entity.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:           d.ID,
		DocumentType: string(d.DocumentType),
		FileURL:      d.FileURL,
		UploadedAt:   d.UploadedAt,
	}
}

func toDocumentResponses(list []*entity.Document) []dto.DocumentResponse {
	out := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDocumentResponse(d))
	}
	return out
}

// toProfilePhotoResponse devuelve nil si no hay foto.
func toProfilePhotoResponse(p *entity.ProfilePhoto) *dto.ProfilePhotoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfilePhotoResponse{ID: p.ID, FileURL: p.FileURL, UploadedAt: p.UploadedAt}
}

func toWarrantyResponse(s warranty.Status) dto.WarrantyResponse {
	return dto.WarrantyResponse{
		Model:         s.Model,
		IMEI:          s.IMEI,
		PurchaseDate:  s.PurchaseDate,
		WarrantyEnd:   s.WarrantyEnd,
		DaysRemaining: s.DaysRemaining,
		IsActive:      s.IsActive,
	}
}

func toWarrantyTemplateResponse(t *entity.WarrantyTemplate, s warranty.Status) dto.WarrantyTemplateResponse {
	return dto.WarrantyTemplateResponse{
		ID:            t.ID,
		IMEI:          t.IMEI,
		Model:         t.Model,
		PurchaseDate:  t.PurchaseDate,
		WarrantyEnd:   t.WarrantyEnd,
		DaysRemaining: s.DaysRemaining,
		IsActive:      s.IsActive,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

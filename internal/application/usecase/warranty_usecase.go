package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/application/ports"
	"github.com/gleikstore/gleikstore-api/internal/domain"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/domain/repository"
	"github.com/gleikstore/gleikstore-api/internal/domain/warranty"
)

// WarrantyUseCase consulta pública de garantía, carga del admin y certificado PDF.
type WarrantyUseCase struct {
	warranties repository.WarrantyRepository
	devices    repository.DeviceRepository
	tx         ports.WarrantyTxRunner
	pdf        ports.WarrantyCertificateGenerator
	baseURL    string
	now        Clock
	loc        *time.Location
}

// NewWarrantyUseCase construye el caso de uso. loc es la zona usada para truncar "hoy";
// baseURL es la URL pública de la API que se imprime en el QR del certificado.
func NewWarrantyUseCase(
	warranties repository.WarrantyRepository,
	devices repository.DeviceRepository,
	tx ports.WarrantyTxRunner,
	pdf ports.WarrantyCertificateGenerator,
	baseURL string,
	loc *time.Location,
) *WarrantyUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &WarrantyUseCase{
		warranties: warranties,
		devices:    devices,
		tx:         tx,
		pdf:        pdf,
		baseURL:    strings.TrimRight(baseURL, "/"),
		now:        time.Now,
		loc:        loc,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *WarrantyUseCase) WithClock(c Clock) *WarrantyUseCase {
	uc.now = c
	return uc
}

// Status resuelve el estado de la garantía del IMEI. ErrWarrantyNotFound si no hay plantilla.
func (uc *WarrantyUseCase) Status(ctx context.Context, imei string) (warranty.Status, error) {
	imei = strings.TrimSpace(imei)
	if imei == "" {
		return warranty.Status{}, domain.ErrInvalidInput
	}
	t, err := uc.warranties.GetByIMEI(ctx, imei)
	if err != nil {
		return warranty.Status{}, err
	}
	if t == nil {
		return warranty.Status{}, domain.ErrWarrantyNotFound
	}
	return warranty.Resolve(t, uc.now(), uc.loc), nil
}

// Resolve consulta pública GET /device/warranty/:imei.
func (uc *WarrantyUseCase) Resolve(ctx context.Context, imei string) (*dto.WarrantyResponse, error) {
	s, err := uc.Status(ctx, imei)
	if err != nil {
		return nil, err
	}
	out := toWarrantyResponse(s)
	return &out, nil
}

// GetTemplate registro completo para el panel admin.
func (uc *WarrantyUseCase) GetTemplate(ctx context.Context, imei string) (*dto.WarrantyTemplateResponse, error) {
	t, err := uc.warranties.GetByIMEI(ctx, strings.TrimSpace(imei))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrWarrantyNotFound
	}
	out := toWarrantyTemplateResponse(t, warranty.Resolve(t, uc.now(), uc.loc))
	return &out, nil
}

// Upsert crea o reemplaza la plantilla del IMEI (último en escribir gana) y refresca
// los aparelhos vinculados en la misma transacción. Las fechas se validan antes de escribir.
func (uc *WarrantyUseCase) Upsert(ctx context.Context, in dto.UpsertWarrantyRequest) (*dto.UpsertWarrantyResponse, error) {
	t, err := uc.templateFrom(in)
	if err != nil {
		return nil, err
	}
	var synced int64
	err = uc.tx.Run(ctx, func(warranties repository.WarrantyRepository, devices repository.DeviceRepository) error {
		if err := warranties.Upsert(ctx, t); err != nil {
			return err
		}
		synced, err = devices.SyncWarranty(ctx, t.IMEI, t.Model, t.PurchaseDate, t.WarrantyEnd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.UpsertWarrantyResponse{
		Message:        "Garantia salva com sucesso",
		Warranty:       toWarrantyTemplateResponse(t, warranty.Resolve(t, uc.now(), uc.loc)),
		DevicesUpdated: synced,
	}, nil
}

// AdminGetDevice primer aparelho vinculado al IMEI (panel admin legado).
func (uc *WarrantyUseCase) AdminGetDevice(ctx context.Context, imei string) (*dto.DeviceResponse, error) {
	d, err := uc.devices.FindFirstByIMEI(ctx, strings.TrimSpace(imei))
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrDeviceNotFound
	}
	out := toDeviceResponse(d)
	return &out, nil
}

// AdminUpdateDevice endpoint legado: solo actúa si ya hay un aparelho vinculado al IMEI.
// Los datos se guardan en la plantilla y se propagan a los aparelhos, igual que Upsert.
func (uc *WarrantyUseCase) AdminUpdateDevice(ctx context.Context, in dto.AdminDeviceRequest) (*dto.DeviceResponse, error) {
	t, err := uc.templateFrom(dto.UpsertWarrantyRequest{
		IMEI:         in.IMEI,
		Model:        in.Model,
		PurchaseDate: in.PurchaseDate,
		WarrantyEnd:  in.WarrantyEnd,
	})
	if err != nil {
		return nil, err
	}
	var device *entity.Device
	err = uc.tx.Run(ctx, func(warranties repository.WarrantyRepository, devices repository.DeviceRepository) error {
		d, err := devices.FindFirstByIMEI(ctx, t.IMEI)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrDeviceNotFound
		}
		if err := warranties.Upsert(ctx, t); err != nil {
			return err
		}
		if _, err := devices.SyncWarranty(ctx, t.IMEI, t.Model, t.PurchaseDate, t.WarrantyEnd); err != nil {
			return err
		}
		d.Model = t.Model
		d.ApplyWarranty(t)
		device = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toDeviceResponse(device)
	return &out, nil
}

// Certificate genera el PDF de la garantía con un QR a la consulta pública.
func (uc *WarrantyUseCase) Certificate(ctx context.Context, imei string) ([]byte, error) {
	s, err := uc.Status(ctx, imei)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateWarrantyCertificate(ctx, s, uc.LookupURL(s.IMEI))
}

// LookupURL URL pública de consulta de la garantía del IMEI.
func (uc *WarrantyUseCase) LookupURL(imei string) string {
	return fmt.Sprintf("%s/api/device/warranty/%s", uc.baseURL, url.PathEscape(imei))
}

func (uc *WarrantyUseCase) templateFrom(in dto.UpsertWarrantyRequest) (*entity.WarrantyTemplate, error) {
	imei := strings.TrimSpace(in.IMEI)
	model := strings.TrimSpace(in.Model)
	if imei == "" || model == "" || strings.TrimSpace(in.PurchaseDate) == "" || strings.TrimSpace(in.WarrantyEnd) == "" {
		return nil, domain.ErrInvalidInput
	}
	purchase, err := warranty.ParseDate(in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	end, err := warranty.ParseDate(in.WarrantyEnd)
	if err != nil {
		return nil, err
	}
	if end.Before(purchase) {
		return nil, fmt.Errorf("%w: warrantyEnd anterior a purchaseDate", domain.ErrInvalidDate)
	}
	now := uc.now()
	return &entity.WarrantyTemplate{
		ID:           uuid.New().String(),
		IMEI:         imei,
		Model:        model,
		PurchaseDate: purchase,
		WarrantyEnd:  end,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

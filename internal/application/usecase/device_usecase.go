package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/domain"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/domain/repository"
)

// WarrantyMissingMessage aviso cuando el IMEI aún no tiene garantía cargada por la tienda.
const WarrantyMissingMessage = "Garantia não encontrada para este IMEI. Entre em contato com a loja para cadastrar este aparelho."

// DeviceUseCase aparelhos del cliente. Toda operación filtra por el usuario autenticado:
// un aparelho ajeno responde igual que uno inexistente.
type DeviceUseCase struct {
	devices    repository.DeviceRepository
	warranties repository.WarrantyRepository
	resolver   *WarrantyUseCase
}

// NewDeviceUseCase construye el caso de uso.
func NewDeviceUseCase(devices repository.DeviceRepository, warranties repository.WarrantyRepository, resolver *WarrantyUseCase) *DeviceUseCase {
	return &DeviceUseCase{devices: devices, warranties: warranties, resolver: resolver}
}

// List aparelhos del usuario, más recientes primero.
func (uc *DeviceUseCase) List(ctx context.Context, userID string) ([]dto.DeviceResponse, error) {
	list, err := uc.devices.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDeviceResponses(list), nil
}

// Get un aparelho propio. ErrDeviceNotFound si no existe o es de otro usuario.
func (uc *DeviceUseCase) Get(ctx context.Context, userID, id string) (*dto.DeviceResponse, error) {
	d, err := uc.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	out := toDeviceResponse(d)
	return &out, nil
}

// Create registra un aparelho. Las fechas se copian de la plantilla si existe;
// la falta de garantía no impide guardar.
func (uc *DeviceUseCase) Create(ctx context.Context, userID string, in dto.CreateDeviceRequest) (*dto.DeviceSaveResponse, error) {
	model := strings.TrimSpace(in.Model)
	imei := strings.TrimSpace(in.IMEI)
	if model == "" || imei == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.resolver.now()
	d := &entity.Device{
		ID:        uuid.New().String(),
		UserID:    userID,
		Model:     model,
		IMEI:      imei,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.applyTemplate(ctx, d); err != nil {
		return nil, err
	}
	if err := uc.devices.Create(ctx, d); err != nil {
		return nil, err
	}
	return uc.saved(ctx, d, "Aparelho cadastrado com sucesso"), nil
}

// Update modifica modelo y/o IMEI. Al cambiar el IMEI las fechas se recalculan desde la plantilla nueva.
func (uc *DeviceUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateDeviceRequest) (*dto.DeviceSaveResponse, error) {
	d, err := uc.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(in.Model); v != "" {
		d.Model = v
	}
	if v := strings.TrimSpace(in.IMEI); v != "" && v != d.IMEI {
		d.IMEI = v
		d.PurchaseDate, d.WarrantyEnd = nil, nil
	}
	if err := uc.applyTemplate(ctx, d); err != nil {
		return nil, err
	}
	d.UpdatedAt = uc.resolver.now()
	if err := uc.devices.Update(ctx, d); err != nil {
		return nil, err
	}
	return uc.saved(ctx, d, "Aparelho atualizado com sucesso"), nil
}

// Delete elimina un aparelho propio.
func (uc *DeviceUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrDeviceNotFound
	}
	ok, err := uc.devices.DeleteByIDAndUser(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrDeviceNotFound
	}
	return nil
}

func (uc *DeviceUseCase) owned(ctx context.Context, userID, id string) (*entity.Device, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrDeviceNotFound
	}
	d, err := uc.devices.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrDeviceNotFound
	}
	return d, nil
}

func (uc *DeviceUseCase) applyTemplate(ctx context.Context, d *entity.Device) error {
	t, err := uc.warranties.GetByIMEI(ctx, d.IMEI)
	if err != nil {
		return err
	}
	d.ApplyWarranty(t)
	return nil
}

// saved arma la respuesta con la garantía resuelta en línea o el aviso de contacto.
func (uc *DeviceUseCase) saved(ctx context.Context, d *entity.Device, message string) *dto.DeviceSaveResponse {
	out := &dto.DeviceSaveResponse{Message: message, Device: toDeviceResponse(d)}
	s, err := uc.resolver.Status(ctx, d.IMEI)
	switch {
	case err == nil:
		w := toWarrantyResponse(s)
		out.Warranty = &w
	case errors.Is(err, domain.ErrWarrantyNotFound):
		out.WarrantyMessage = WarrantyMissingMessage
	default:
		// el aparelho ya quedó guardado
		log.Warn().Err(err).Str("imei", d.IMEI).Msg("no se pudo resolver la garantía")
		out.WarrantyMessage = WarrantyMissingMessage
	}
	return out
}

package http

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"

	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/application/usecase"
	"github.com/gleikstore/gleikstore-api/internal/domain"
	"github.com/gleikstore/gleikstore-api/pkg/metrics"
)

// DeviceHandler aparelhos del cliente y consulta pública de garantía.
type DeviceHandler struct {
	devices  *usecase.DeviceUseCase
	warranty *usecase.WarrantyUseCase
}

// NewDeviceHandler construye el handler.
func NewDeviceHandler(devices *usecase.DeviceUseCase, warranty *usecase.WarrantyUseCase) *DeviceHandler {
	return &DeviceHandler{devices: devices, warranty: warranty}
}

// List godoc
// @Summary      Listar aparelhos del usuario
// @Tags         device
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DeviceListResponse
// @Router       /api/device [get]
func (h *DeviceHandler) List(c *fiber.Ctx) error {
	out, err := h.devices.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DeviceListResponse{Devices: out})
}

// Get godoc
// @Summary      Obtener aparelho
// @Tags         device
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del aparelho"
// @Success      200  {object}  dto.DeviceEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/device/{id} [get]
func (h *DeviceHandler) Get(c *fiber.Ctx) error {
	out, err := h.devices.Get(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DeviceEnvelope{Device: *out})
}

// Create godoc
// @Summary      Registrar aparelho
// @Description  Las fechas de garantía se copian de la plantilla cargada por la tienda.
// @Tags         device
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeviceRequest  true  "model, imei"
// @Success      201   {object}  dto.DeviceSaveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/device [post]
func (h *DeviceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeviceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.devices.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar aparelho
// @Tags         device
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del aparelho"
// @Param        body  body  dto.UpdateDeviceRequest  true  "model, imei"
// @Success      200   {object}  dto.DeviceSaveResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/device/{id} [put]
func (h *DeviceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDeviceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.devices.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar aparelho
// @Tags         device
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del aparelho"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/device/{id} [delete]
func (h *DeviceHandler) Delete(c *fiber.Ctx) error {
	if err := h.devices.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Aparelho removido com sucesso"})
}

// Warranty godoc
// @Summary      Consultar garantía por IMEI (público)
// @Tags         device
// @Produce      json
// @Param        imei  path  string  true  "IMEI"
// @Success      200   {object}  dto.WarrantyEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/device/warranty/{imei} [get]
func (h *DeviceHandler) Warranty(c *fiber.Ctx) error {
	out, err := h.warranty.Resolve(c.UserContext(), c.Params("imei"))
	metrics.WarrantyLookupsTotal.WithLabelValues(lookupOutcome(out, err)).Inc()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.WarrantyEnvelope{Warranty: *out})
}

// Certificate godoc
// @Summary      Certificado de garantía en PDF (público)
// @Tags         device
// @Produce      application/pdf
// @Param        imei  path  string  true  "IMEI"
// @Success      200
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/device/warranty/{imei}/certificate [get]
func (h *DeviceHandler) Certificate(c *fiber.Ctx) error {
	imei := c.Params("imei")
	pdf, err := h.warranty.Certificate(c.UserContext(), imei)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="garantia-`+safeFileToken(imei)+`.pdf"`)
	return c.Send(pdf)
}

func lookupOutcome(out *dto.WarrantyResponse, err error) string {
	switch {
	case errors.Is(err, domain.ErrWarrantyNotFound):
		return "not_found"
	case err != nil:
		return "error"
	case out.IsActive:
		return "active"
	default:
		return "expired"
	}
}

// safeFileToken deja solo letras y dígitos para usarlo en Content-Disposition.
func safeFileToken(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, s)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/application/usecase"
)

// AdminHandler panel de la tienda: garantías, aparelhos vinculados y catálogo. Requiere rol ADMIN.
type AdminHandler struct {
	warranty *usecase.WarrantyUseCase
	catalog  *usecase.CatalogUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(warranty *usecase.WarrantyUseCase, catalog *usecase.CatalogUseCase) *AdminHandler {
	return &AdminHandler{warranty: warranty, catalog: catalog}
}

// GetWarranty godoc
// @Summary      Obtener plantilla de garantía
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        imei  path  string  true  "IMEI"
// @Success      200   {object}  dto.AdminWarrantyEnvelope
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/warranty/{imei} [get]
func (h *AdminHandler) GetWarranty(c *fiber.Ctx) error {
	out, err := h.warranty.GetTemplate(c.UserContext(), c.Params("imei"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AdminWarrantyEnvelope{Warranty: *out})
}

// UpsertWarranty godoc
// @Summary      Crear o reemplazar garantía por IMEI
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertWarrantyRequest  true  "imei, model, purchaseDate, warrantyEnd"
// @Success      200   {object}  dto.UpsertWarrantyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/warranty [post]
func (h *AdminHandler) UpsertWarranty(c *fiber.Ctx) error {
	var in dto.UpsertWarrantyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.warranty.Upsert(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetDevice godoc
// @Summary      Aparelho vinculado a un IMEI
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        imei  path  string  true  "IMEI"
// @Success      200   {object}  dto.DeviceEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/devices/{imei} [get]
func (h *AdminHandler) GetDevice(c *fiber.Ctx) error {
	out, err := h.warranty.AdminGetDevice(c.UserContext(), c.Params("imei"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DeviceEnvelope{Device: *out})
}

// UpdateDevice godoc
// @Summary      Actualizar datos de un aparelho ya vinculado
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminDeviceRequest  true  "model, imei, purchaseDate, warrantyEnd"
// @Success      200   {object}  dto.AdminDeviceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/devices [post]
func (h *AdminHandler) UpdateDevice(c *fiber.Ctx) error {
	var in dto.AdminDeviceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.warranty.AdminUpdateDevice(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AdminDeviceResponse{Message: "Aparelho atualizado com sucesso", Device: *out})
}

// SaveProduct godoc
// @Summary      Crear o actualizar producto del catálogo
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveProductRequest  true  "Producto (id para actualizar)"
// @Success      200   {object}  dto.SaveProductResponse
// @Success      201   {object}  dto.SaveProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/catalog [post]
func (h *AdminHandler) SaveProduct(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, created, err := h.catalog.Save(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(dto.SaveProductResponse{Message: "Produto criado com sucesso", Product: *out})
	}
	return c.JSON(dto.SaveProductResponse{Message: "Produto atualizado com sucesso", Product: *out})
}

package http

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/gleikstore/gleikstore-api/internal/application/usecase"
)

// UploadHandler subidas del cliente. UploadGuard ya validó el archivo.
type UploadHandler struct {
	uc        *usecase.UploadUseCase
	uploadDir string
}

// NewUploadHandler construye el handler; uploadDir es donde se escribe el temporal.
func NewUploadHandler(uc *usecase.UploadUseCase, uploadDir string) *UploadHandler {
	return &UploadHandler{uc: uc, uploadDir: uploadDir}
}

// ProfilePhoto godoc
// @Summary      Subir foto de perfil
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo  formData  file  true  "JPEG, PNG, WEBP o PDF (máx. 10MB)"
// @Success      200    {object}  dto.ProfilePhotoUploadResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/upload/profile-photo [post]
func (h *UploadHandler) ProfilePhoto(c *fiber.Ctx) error {
	f, err := h.saveTemp(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ProfilePhoto(c.UserContext(), GetUserID(c), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Document godoc
// @Summary      Subir documento personal
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        document      formData  file    true  "JPEG, PNG, WEBP o PDF (máx. 10MB)"
// @Param        documentType  formData  string  true  "RG, CPF o COMPROVANTE_ENDERECO"
// @Success      200           {object}  dto.DocumentUploadResponse
// @Failure      400           {object}  dto.ErrorResponse
// @Router       /api/upload/document [post]
func (h *UploadHandler) Document(c *fiber.Ctx) error {
	docType := c.FormValue("documentType")
	if docType == "" {
		return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", "Tipo de documento é obrigatório")
	}
	f, err := h.saveTemp(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Document(c.UserContext(), GetUserID(c), docType, f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Contract godoc
// @Summary      Subir contrato firmado (PDF)
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        contract  formData  file  true  "PDF (máx. 10MB)"
// @Success      200       {object}  dto.DocumentUploadResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/upload/contract [post]
func (h *UploadHandler) Contract(c *fiber.Ctx) error {
	f, err := h.saveTemp(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Contract(c.UserContext(), GetUserID(c), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar documentos y foto de perfil
// @Tags         upload
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DocumentsResponse
// @Router       /api/upload/documents [get]
func (h *UploadHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// saveTemp escribe el archivo validado por UploadGuard con nombre uuid + extensión.
func (h *UploadHandler) saveTemp(c *fiber.Ctx) (usecase.UploadedFile, error) {
	fh := uploadedFile(c)
	if fh == nil {
		return usecase.UploadedFile{}, fiber.NewError(fiber.StatusBadRequest, "arquivo ausente")
	}
	ct := fh.Header.Get(fiber.HeaderContentType)
	path := filepath.Join(h.uploadDir, usecase.TempFileName(fh.Filename, ct))
	if err := c.SaveFile(fh, path); err != nil {
		return usecase.UploadedFile{}, err
	}
	return usecase.UploadedFile{Path: path, ContentType: ct}, nil
}

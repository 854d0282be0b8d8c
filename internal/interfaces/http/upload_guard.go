package http

import (
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gleikstore/gleikstore-api/internal/application/usecase"
)

// LocalUploadFile key de c.Locals con el *multipart.FileHeader validado.
const LocalUploadFile = "upload_file"

// UploadGuard valida el archivo multipart antes del handler: presencia del campo,
// tamaño máximo y tipo MIME. Con pdfOnly solo acepta application/pdf.
func UploadGuard(field string, maxBytes int64, pdfOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile(field)
		if err != nil || fh == nil {
			return errorJSON(c, fiber.StatusBadRequest, "MISSING_FILE", "Nenhum arquivo enviado no campo '"+field+"'")
		}
		if fh.Size > maxBytes {
			return errorJSON(c, fiber.StatusBadRequest, "FILE_TOO_LARGE", "Arquivo muito grande. Máximo de "+sizeLabel(maxBytes))
		}
		ct := fh.Header.Get(fiber.HeaderContentType)
		if pdfOnly && !usecase.IsPDF(ct) {
			return errorJSON(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "O contrato deve ser um arquivo PDF")
		}
		if !usecase.IsAllowedMIME(ct) {
			return errorJSON(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "Tipo de arquivo não permitido. Use JPEG, PNG, WEBP ou PDF")
		}
		c.Locals(LocalUploadFile, fh)
		return c.Next()
	}
}

func uploadedFile(c *fiber.Ctx) *multipart.FileHeader {
	fh, _ := c.Locals(LocalUploadFile).(*multipart.FileHeader)
	return fh
}

func sizeLabel(n int64) string {
	if n >= 1<<20 {
		return strconv.FormatInt(n>>20, 10) + "MB"
	}
	return strconv.FormatInt(n>>10, 10) + "KB"
}

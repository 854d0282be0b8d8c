package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/domain"
)

// errorJSON responde {"error": true, "code": ..., "message": ...}.
func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Code: code, Message: message})
}

type errorMapping struct {
	err     error
	status  int
	code    string
	message string
}

// errorTable orden importa: el primer errors.Is que coincide gana.
var errorTable = []errorMapping{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", "Dados inválidos ou campos obrigatórios ausentes"},
	{domain.ErrInvalidDate, fiber.StatusBadRequest, "INVALID_DATE", "Data inválida. Use o formato AAAA-MM-DD"},
	{domain.ErrInvalidFileType, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "Tipo de arquivo não permitido"},
	{domain.ErrPasswordTooLong, fiber.StatusBadRequest, "PASSWORD_TOO_LONG", "Senha muito longa. Máximo de 72 caracteres"},
	{domain.ErrInvalidPassword, fiber.StatusBadRequest, "INVALID_PASSWORD", "Senha atual incorreta"},
	{domain.ErrEmailAlreadyExists, fiber.StatusBadRequest, "EMAIL_EXISTS", "Email já cadastrado"},
	{domain.ErrCPFAlreadyExists, fiber.StatusBadRequest, "CPF_EXISTS", "CPF já cadastrado"},
	{domain.ErrDuplicate, fiber.StatusBadRequest, "DUPLICATE", "Registro duplicado"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Email ou senha inválidos"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "Acesso negado"},
	{domain.ErrDeviceNotFound, fiber.StatusNotFound, "DEVICE_NOT_FOUND", "Aparelho não encontrado"},
	{domain.ErrWarrantyNotFound, fiber.StatusNotFound, "WARRANTY_NOT_FOUND", "Garantia não encontrada para este IMEI"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND", "Usuário não encontrado"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "Recurso não encontrado"},
}

// writeError traduce errores de dominio a HTTP. Lo que no es de dominio es 500:
// se registra la causa y el cliente recibe un mensaje genérico.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return errorJSON(c, m.status, m.code, m.message)
		}
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return ErrorHandler(c, fe)
	}
	if errors.Is(err, domain.ErrStorage) {
		logServerError(c, err, "fallo del almacenamiento de archivos")
		return errorJSON(c, fiber.StatusInternalServerError, "STORAGE_ERROR", "Erro ao salvar o arquivo. Tente novamente.")
	}
	logServerError(c, err, "error interno")
	return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", "Erro interno do servidor")
}

func logServerError(c *fiber.Ctx, err error, msg string) {
	log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Interface("request_id", c.Locals("requestid")).
		Msg(msg)
}

// ErrorHandler manejador global de Fiber: rutas inexistentes, body demasiado grande y panics recuperados.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return errorJSON(c, fe.Code, "ROUTE_NOT_FOUND", "Rota não encontrada")
		case fiber.StatusRequestEntityTooLarge:
			return errorJSON(c, fiber.StatusBadRequest, "FILE_TOO_LARGE", "Arquivo muito grande")
		case fiber.StatusMethodNotAllowed:
			return errorJSON(c, fe.Code, "METHOD_NOT_ALLOWED", "Método não permitido")
		case fiber.StatusTooManyRequests:
			return errorJSON(c, fe.Code, "TOO_MANY_REQUESTS", "Muitas tentativas. Aguarde um momento.")
		}
		if fe.Code < fiber.StatusInternalServerError {
			return errorJSON(c, fe.Code, "BAD_REQUEST", fe.Message)
		}
	}
	logServerError(c, err, "error no controlado")
	return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", "Erro interno do servidor")
}

func invalidBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "Corpo da requisição inválido")
}

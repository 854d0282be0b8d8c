package dto

// ErrorResponse cuerpo de error HTTP. Error siempre es true; Code es el identificador para el cliente.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// MessageResponse respuesta de éxito sin datos.
type MessageResponse struct {
	Message string `json:"message"`
}

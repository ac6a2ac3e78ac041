package dto

// ErrorResponse cuerpo de error HTTP. El cliente muestra Message tal cual.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación para operaciones de escritura.
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

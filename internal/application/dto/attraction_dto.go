package dto

import "time"

// CreateAttractionRequest entrada para crear una atracción.
type CreateAttractionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// AttractionResponse salida de una atracción.
type AttractionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateAttractionResponse salida de la creación (contrato del SPA: id y name).
type CreateAttractionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

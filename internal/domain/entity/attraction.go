package entity

import "time"

// Attraction dimensión: un lugar o evento contra el que se registran
// entregas de códigos QR y ventas.
type Attraction struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

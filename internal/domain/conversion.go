package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ConversionRate calcula sales*100/qrcodes redondeado a 2 decimales.
// Devuelve 0 cuando no se entregaron códigos, sin importar las ventas.
func ConversionRate(salesMade, qrcodesDelivered int64) decimal.Decimal {
	if qrcodesDelivered <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(salesMade).
		Mul(hundred).
		Div(decimal.NewFromInt(qrcodesDelivered)).
		Round(2)
}

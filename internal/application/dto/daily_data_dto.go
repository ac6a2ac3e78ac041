package dto

// UpsertDailyDataRequest entrada del POST /daily-data. La fecha viaja como
// string calendario YYYY-MM-DD, igual que en el SPA.
type UpsertDailyDataRequest struct {
	AttractionID     string `json:"attractionId" validate:"required"`
	Date             string `json:"date" validate:"required"`
	QrcodesDelivered int64  `json:"qrcodesDelivered" validate:"min=0"`
	SalesMade        int64  `json:"salesMade" validate:"min=0"`
}

// UpsertResult resultado del upsert por clave natural.
type UpsertResult struct {
	Created bool
	ID      string
}

// UpdateDailyDataRequest entrada del PUT /daily-data/:id (sobrescritura total).
type UpdateDailyDataRequest struct {
	AttractionID     string `json:"attractionId" validate:"required"`
	Date             string `json:"date" validate:"required"`
	QrcodesDelivered int64  `json:"qrcodesDelivered" validate:"min=0"`
	SalesMade        int64  `json:"salesMade" validate:"min=0"`
}

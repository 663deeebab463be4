package dto

import "time"

// SaleItemRequest ítem de una venta. PriceCents en 0 toma el precio vigente
// de la bicicleta.
type SaleItemRequest struct {
	BikeID     string `json:"bike_id"`
	PriceCents int64  `json:"price_cents,omitempty"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	CustomerID string            `json:"customer_id"`
	Items      []SaleItemRequest `json:"items"`
}

// UpdateSaleStatusRequest body para PATCH /api/sales/:id/status.
// Acciones: confirm, cancel.
type UpdateSaleStatusRequest struct {
	Action string `json:"action"`
}

// SaleItemResponse ítem de una venta en la API.
type SaleItemResponse struct {
	BikeID     string `json:"bike_id"`
	PriceCents int64  `json:"price_cents"`
}

// SaleResponse representación de una venta en la API.
type SaleResponse struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	Items      []SaleItemResponse `json:"items"`
	Status     string             `json:"status"`
	TotalCents int64              `json:"total_cents"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// TVAResponse resultado del cálculo de impuesto de una venta.
type TVAResponse struct {
	SaleID      string  `json:"sale_id"`
	RatePercent float64 `json:"rate_percent"`
	TotalCents  int64   `json:"total_cents"`
	TaxCents    int64   `json:"tax_cents"`
}

package dto

import "time"

// RentalItemRequest ítem de un alquiler. DailyRateCents en 0 toma la tarifa
// vigente de la bicicleta.
type RentalItemRequest struct {
	BikeID         string `json:"bike_id"`
	DailyRateCents int64  `json:"daily_rate_cents,omitempty"`
}

// CreateRentalRequest body para POST /api/rentals.
type CreateRentalRequest struct {
	CustomerID string              `json:"customer_id"`
	Items      []RentalItemRequest `json:"items"`
	StartDate  time.Time           `json:"start_date"`
	EndDate    time.Time           `json:"end_date"`
}

// UpdateRentalStatusRequest body para PATCH /api/rentals/:id/status.
// Acciones: start, return, cancel.
type UpdateRentalStatusRequest struct {
	Action string `json:"action"`
}

// ExtendRentalRequest body para PATCH /api/rentals/:id/extend.
type ExtendRentalRequest struct {
	NewEndDate time.Time `json:"new_end_date"`
}

// RentalItemResponse ítem de un alquiler en la API.
type RentalItemResponse struct {
	BikeID         string `json:"bike_id"`
	DailyRateCents int64  `json:"daily_rate_cents"`
}

// RentalResponse representación de un alquiler en la API.
type RentalResponse struct {
	ID           string               `json:"id"`
	CustomerID   string               `json:"customer_id"`
	Items        []RentalItemResponse `json:"items"`
	StartDate    time.Time            `json:"start_date"`
	EndDate      time.Time            `json:"end_date"`
	DurationDays int64                `json:"duration_days"`
	Status       string               `json:"status"`
	TotalCents   int64                `json:"total_cents"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

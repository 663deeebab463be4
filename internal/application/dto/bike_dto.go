package dto

import "time"

// CreateBikeRequest body para POST /api/bikes.
type CreateBikeRequest struct {
	Name           string `json:"name"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	Type           string `json:"type"`
	Size           string `json:"size"`
	PriceCents     int64  `json:"price_cents"`
	DailyRateCents int64  `json:"daily_rate_cents"`
}

// UpdateBikeRequest body para PUT /api/bikes/:id; nil = sin cambio.
type UpdateBikeRequest struct {
	Name           *string `json:"name,omitempty"`
	Brand          *string `json:"brand,omitempty"`
	Model          *string `json:"model,omitempty"`
	Type           *string `json:"type,omitempty"`
	Size           *string `json:"size,omitempty"`
	PriceCents     *int64  `json:"price_cents,omitempty"`
	DailyRateCents *int64  `json:"daily_rate_cents,omitempty"`
}

// UpdateBikeStatusRequest body para PATCH /api/bikes/:id/status.
// Acciones: rent, return, sell, maintenance, retire.
type UpdateBikeStatusRequest struct {
	Action string `json:"action"`
}

// BikeResponse representación de una bicicleta en la API.
type BikeResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	Type           string    `json:"type"`
	Size           string    `json:"size"`
	PriceCents     int64     `json:"price_cents"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

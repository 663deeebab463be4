package dto

import "time"

// RecordMovementRequest body para POST /api/inventory/movements.
// Date en nil usa la hora actual.
type RecordMovementRequest struct {
	BikeID   string     `json:"bike_id"`
	Type     string     `json:"type"`   // IN | OUT | ADJUSTMENT
	Reason   string     `json:"reason"` // PURCHASE, SALE, RENTAL_OUT, ...
	Quantity int        `json:"quantity"`
	Date     *time.Time `json:"date,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

// MovementResponse representación de un movimiento en la API.
type MovementResponse struct {
	ID        string    `json:"id"`
	BikeID    string    `json:"bike_id"`
	Type      string    `json:"type"`
	Reason    string    `json:"reason"`
	Quantity  int       `json:"quantity"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StockResponse stock actual derivado del libro de movimientos.
type StockResponse struct {
	BikeID             string `json:"bike_id"`
	CurrentStock       int    `json:"current_stock"`
	AvailableForRental bool   `json:"available_for_rental"`
}

// LowStockAlertDTO bicicleta con stock en o bajo el umbral.
type LowStockAlertDTO struct {
	BikeID       string `json:"bike_id"`
	BikeName     string `json:"bike_name,omitempty"`
	CurrentStock int    `json:"current_stock"`
}

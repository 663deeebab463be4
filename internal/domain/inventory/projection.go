// Package inventory contiene la proyección pura de stock sobre el libro de
// movimientos. El stock nunca se almacena como contador mutable: siempre se
// re-deriva del historial completo para evitar deriva entre contador y
// auditoría.
package inventory

import "github.com/tu-usuario/bicirent-pro/internal/domain/entity"

// CalculateCurrentStock pliega el historial de movimientos de una bicicleta:
// suma IN y ADJUSTMENT, resta OUT. El orden no afecta el resultado (la
// proyección es conmutativa). Puede ser negativo: el sobregiro es observable
// aquí; prevenirlo es responsabilidad de la orquestación.
func CalculateCurrentStock(movements []*entity.InventoryMovement) int {
	stock := 0
	for _, m := range movements {
		switch m.Type {
		case entity.MovementTypeIN, entity.MovementTypeADJUSTMENT:
			stock += m.Quantity
		case entity.MovementTypeOUT:
			stock -= m.Quantity
		}
	}
	return stock
}

// IsAvailableForRental indica si hay stock estrictamente positivo.
// Con historial vacío el resultado es false.
func IsAvailableForRental(movements []*entity.InventoryMovement) bool {
	return CalculateCurrentStock(movements) > 0
}

// LowStockAlert señala una bicicleta con stock en o bajo el umbral.
type LowStockAlert struct {
	BikeID       string
	CurrentStock int
}

// GetLowStockAlerts devuelve las bicicletas cuyo stock actual es <= threshold.
// El orden del resultado no está especificado.
func GetLowStockAlerts(stockByBike map[string]int, threshold int) []LowStockAlert {
	alerts := make([]LowStockAlert, 0)
	for bikeID, stock := range stockByBike {
		if stock <= threshold {
			alerts = append(alerts, LowStockAlert{BikeID: bikeID, CurrentStock: stock})
		}
	}
	return alerts
}

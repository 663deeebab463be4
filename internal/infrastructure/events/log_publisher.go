// Package events contiene el publicador de eventos de dominio. La
// implementación actual los registra en el log estructurado; un broker
// externo puede sustituirla implementando ports.EventPublisher.
package events

import (
	"context"

	"github.com/tu-usuario/bicirent-pro/internal/application/ports"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
	"github.com/tu-usuario/bicirent-pro/pkg/logger"
)

var _ ports.EventPublisher = (*LogPublisher)(nil)

// LogPublisher publica eventos de dominio como entradas del log estructurado.
type LogPublisher struct {
	log *logger.Logger
}

// NewLogPublisher construye el publicador.
func NewLogPublisher(log *logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

// Publish registra cada evento con su nombre, agregado y momento de emisión.
// Nunca falla: perder un log no debe abortar el comando que lo originó.
func (p *LogPublisher) Publish(_ context.Context, events ...entity.DomainEvent) {
	for _, ev := range events {
		p.log.Info().
			Str("event", ev.EventName()).
			Str("aggregate_id", ev.AggregateID()).
			Time("occurred_at", ev.OccurredAt()).
			Msg("evento de dominio")
	}
}

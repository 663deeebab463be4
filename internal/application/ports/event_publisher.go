package ports

import (
	"context"

	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
)

// EventPublisher recibe los eventos de dominio drenados por los casos de uso
// tras cada comando. El dominio no conoce brokers ni colas; este puerto es el
// punto de enganche para un publicador externo.
type EventPublisher interface {
	Publish(ctx context.Context, events ...entity.DomainEvent)
}

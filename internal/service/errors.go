package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/netoar/fyyur/internal/monitoring"
	"github.com/netoar/fyyur/pkg/rabbitmq"
)

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
	// ErrWriteConflict wraps every failed insert, update or delete. The
	// store error stays in the chain for logging but is never shown to users.
	ErrWriteConflict = errors.New("write rejected by store")
)

func writeFailed(entity, operation string, err error) error {
	slog.Error("write failed", "entity", entity, "operation", operation, "error", err)
	monitoring.RecordWrite(entity, operation, err)
	return fmt.Errorf("%w: %s %s: %w", ErrWriteConflict, operation, entity, err)
}

func writeSucceeded(entity, operation string) {
	monitoring.RecordWrite(entity, operation, nil)
}

func publish(p *rabbitmq.Publisher, routingKey string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(routingKey, payload); err != nil {
		slog.Warn("publish failed", "routing_key", routingKey, "error", err)
	}
}

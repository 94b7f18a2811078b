package ports

import (
	"context"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
)

// ISessionBroker is the change-notification bus for session state. The
// service reacts to external sign-outs through it.
type ISessionBroker interface {
	PublishSignOut(ctx context.Context, userId string) error
	ConsumeSessionEvents(ctx context.Context) (<-chan dto.SessionEvent, error)
	IsAlive() bool
	Close() error
}

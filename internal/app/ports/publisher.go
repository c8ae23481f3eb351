package ports

import (
	"context"

	"ecosim/internal/domain/ecology"
)

type SnapshotPublisher interface {
	Publish(ctx context.Context, worldID string, snap ecology.Snapshot) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, ecology.Snapshot) error { return nil }

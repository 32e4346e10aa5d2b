// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"mergington-activities/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ActivityInterface exposes activity reads and roster mutations.
//
// TryAddParticipant and TryRemoveParticipant are single atomic conditional
// updates against the backing store; the bool reports whether a document changed.
type ActivityInterface interface {
	SeedIfEmpty(ctx context.Context, catalog []entities.Activity) (int, error)
	FindByName(ctx context.Context, name string) (*entities.Activity, error)
	ListAll(ctx context.Context) ([]entities.Activity, error)
	TryAddParticipant(ctx context.Context, name, email string) (bool, error)
	TryRemoveParticipant(ctx context.Context, name, email string) (bool, error)
}

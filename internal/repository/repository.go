// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"mergington-activities/config"
	"mergington-activities/internal/repository/memory"
	"mergington-activities/internal/repository/mongodb"
	"mergington-activities/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	ActivityInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendMongo:
		return mongodb.New(ctx, log, cfg), nil
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	case config.BackendMemory:
		return memory.New(log), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}

var (
	_ Repository = (*mongodb.Mongo)(nil)
	_ Repository = (*postgres.Postgres)(nil)
	_ Repository = (*memory.Memory)(nil)
)

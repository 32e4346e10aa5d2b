package usecase

import (
	"context"

	"mergington-activities/internal/entities"
)

// ActivityUsecaseInterface abstracts activity reads for delivery layer.
type ActivityUsecaseInterface interface {
	GetAllActivities(ctx context.Context) ([]entities.Activity, error)
}

// SignupUsecaseInterface abstracts roster mutations.
type SignupUsecaseInterface interface {
	SignUp(ctx context.Context, activityName, email string) (string, error)
	Remove(ctx context.Context, activityName, email string) (string, error)
}

// SeedUsecaseInterface abstracts startup seeding.
type SeedUsecaseInterface interface {
	SeedCatalog(ctx context.Context, catalog []entities.Activity) (int, error)
}

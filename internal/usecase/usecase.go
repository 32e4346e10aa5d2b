// Package usecase exposes the signup service to the delivery layer.
package usecase

import (
	"context"
	"time"

	"mergington-activities/internal/events"
	"mergington-activities/internal/repository"
	"mergington-activities/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ActivityUsecaseInterface
	SignupUsecaseInterface
	SeedUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	pub events.Publisher,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, pub, timeout)
}

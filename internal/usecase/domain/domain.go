package domain

import (
	"context"
	"time"

	"mergington-activities/internal/entities"
	"mergington-activities/internal/events"
	"mergington-activities/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	pub     events.Publisher
	timeout time.Duration
	now     func() time.Time
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	pub events.Publisher,
	timeout time.Duration,
) *Usecase {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &Usecase{
		ctx:     ctx,
		log:     log.Named("usecase"),
		repo:    repo,
		pub:     pub,
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SeedCatalog fills an empty store with the given activities.
func (u *Usecase) SeedCatalog(ctx context.Context, catalog []entities.Activity) (int, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	n, err := u.repo.SeedIfEmpty(ctx, catalog)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		u.log.Debugw("store already populated, seed skipped")
	}
	return n, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"mergington-activities/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSeeded(t *testing.T) *Memory {
	t.Helper()

	repo := New(zap.NewNop().Sugar())
	n, err := repo.SeedIfEmpty(context.Background(), entities.SeedCatalog())
	require.NoError(t, err)
	require.Equal(t, 9, n)
	return repo
}

func TestSeedIfEmptyOnlyOnce(t *testing.T) {
	ctx := context.Background()
	repo := newSeeded(t)

	require.True(t, mustAdd(t, repo, "Chess Club", "x@y.edu"))

	n, err := repo.SeedIfEmpty(ctx, entities.SeedCatalog())
	require.NoError(t, err)
	require.Zero(t, n)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 9)
	require.Equal(t, "Chess Club", all[0].Name)

	chess, err := repo.FindByName(ctx, "Chess Club")
	require.NoError(t, err)
	require.Len(t, chess.Participants, 3)
}

func TestFindByNameUnknown(t *testing.T) {
	repo := newSeeded(t)

	_, err := repo.FindByName(context.Background(), "Underwater Basket Weaving")
	require.ErrorIs(t, err, entities.ErrActivityNotFound)
}

func TestTryAddParticipantRules(t *testing.T) {
	ctx := context.Background()
	repo := New(zap.NewNop().Sugar())
	_, err := repo.SeedIfEmpty(ctx, []entities.Activity{{Name: "Duo", MaxParticipants: 2}})
	require.NoError(t, err)

	require.True(t, mustAdd(t, repo, "Duo", "a@x.edu"))
	require.False(t, mustAdd(t, repo, "Duo", "a@x.edu"), "duplicate")
	require.True(t, mustAdd(t, repo, "Duo", "b@x.edu"))
	require.False(t, mustAdd(t, repo, "Duo", "c@x.edu"), "full")
	require.False(t, mustAdd(t, repo, "Missing", "a@x.edu"), "unknown")

	duo, err := repo.FindByName(ctx, "Duo")
	require.NoError(t, err)
	require.Equal(t, []string{"a@x.edu", "b@x.edu"}, duo.Participants)
}

func TestTryRemoveParticipant(t *testing.T) {
	ctx := context.Background()
	repo := newSeeded(t)

	ok, err := repo.TryRemoveParticipant(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.TryRemoveParticipant(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = repo.TryRemoveParticipant(ctx, "Missing", "michael@mergington.edu")
	require.NoError(t, err)
	require.False(t, ok)

	chess, err := repo.FindByName(ctx, "Chess Club")
	require.NoError(t, err)
	require.Equal(t, []string{"daniel@mergington.edu"}, chess.Participants)
}

func TestFindByNameReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := newSeeded(t)

	chess, err := repo.FindByName(ctx, "Chess Club")
	require.NoError(t, err)
	chess.Participants[0] = "mallory@mergington.edu"

	again, err := repo.FindByName(ctx, "Chess Club")
	require.NoError(t, err)
	require.Equal(t, "michael@mergington.edu", again.Participants[0])
}

func TestConcurrentSignupsRespectCapacity(t *testing.T) {
	ctx := context.Background()
	repo := New(zap.NewNop().Sugar())
	_, err := repo.SeedIfEmpty(ctx, []entities.Activity{{Name: "Solo", MaxParticipants: 1}})
	require.NoError(t, err)

	const workers = 32
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := repo.TryAddParticipant(ctx, "Solo", fmt.Sprintf("s%d@x.edu", i))
			if err == nil && ok {
				wins.Add(1)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, int32(1), wins.Load())
	solo, err := repo.FindByName(ctx, "Solo")
	require.NoError(t, err)
	require.Len(t, solo.Participants, 1)
}

func mustAdd(t *testing.T, repo *Memory, name, email string) bool {
	t.Helper()

	ok, err := repo.TryAddParticipant(context.Background(), name, email)
	require.NoError(t, err)
	return ok
}

package mongodb

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mergington-activities/config"
	"mergington-activities/internal/entities"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupMongo(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	n, err := repo.SeedIfEmpty(ctx, entities.SeedCatalog())
	require.NoError(t, err)
	require.Equal(t, 9, n)

	n, err = repo.SeedIfEmpty(ctx, entities.SeedCatalog())
	require.NoError(t, err)
	require.Zero(t, n)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 9)
	require.Equal(t, "Chess Club", all[0].Name)

	ok, err := repo.TryAddParticipant(ctx, "Chess Club", "x@y.edu")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.TryAddParticipant(ctx, "Chess Club", "x@y.edu")
	require.NoError(t, err)
	require.False(t, ok)

	chess, err := repo.FindByName(ctx, "Chess Club")
	require.NoError(t, err)
	require.Len(t, chess.Participants, 3)
	require.Contains(t, chess.Participants, "x@y.edu")

	ok, err = repo.TryRemoveParticipant(ctx, "Chess Club", "x@y.edu")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.TryRemoveParticipant(ctx, "Chess Club", "x@y.edu")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = repo.FindByName(ctx, "Knitting Circle")
	require.ErrorIs(t, err, entities.ErrActivityNotFound)

	ok, err = repo.TryAddParticipant(ctx, "Knitting Circle", "x@y.edu")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRepositoryCapacityIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupMongo(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	_, err := repo.SeedIfEmpty(ctx, []entities.Activity{{
		Name:            "Solo Recital",
		Description:     "One performer",
		Schedule:        "Sundays",
		MaxParticipants: 1,
	}})
	require.NoError(t, err)

	const workers = 16
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := repo.TryAddParticipant(ctx, "Solo Recital", fmt.Sprintf("s%d@x.edu", i))
			if err == nil && ok {
				wins.Add(1)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, int32(1), wins.Load())
	solo, err := repo.FindByName(ctx, "Solo Recital")
	require.NoError(t, err)
	require.Len(t, solo.Participants, 1)
}

func TestValidatorRejectsOverCapacity(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupMongo(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	_, err := repo.coll.InsertOne(ctx, bson.M{
		"name":             "Overbooked",
		"description":      "",
		"schedule":         "",
		"max_participants": 1,
		"participants":     bson.A{"a@x.edu", "b@x.edu"},
	})
	require.Error(t, err)

	_, err = repo.coll.InsertOne(ctx, toDocument(entities.Activity{Name: "Chess Club", MaxParticipants: 2}))
	require.NoError(t, err)
	_, err = repo.coll.InsertOne(ctx, toDocument(entities.Activity{Name: "Chess Club", MaxParticipants: 2}))
	require.True(t, mongo.IsDuplicateKeyError(err))
}

func setupMongo(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	uri := fmt.Sprintf("mongodb://localhost:%s/", resource.GetPort("27017/tcp"))

	require.NoError(t, pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		return client.Ping(ctx, nil)
	}))

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Store:  config.StoreConfig{Backend: config.BackendMongo, Seed: true},
		Mongo: config.MongoConfig{
			URI:            uri,
			Database:       "mergington_high",
			Collection:     "activities",
			ConnectTimeout: 10 * time.Second,
		},
	}

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}

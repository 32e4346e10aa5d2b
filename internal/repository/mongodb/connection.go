// Package mongodb implements the repository against a MongoDB collection.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"mergington-activities/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Mongo wraps a client and the activities collection.
type Mongo struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	client  *mongo.Client
	coll    *mongo.Collection
	cfg     config.MongoConfig
}

// New creates a Mongo repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Mongo {
	return &Mongo{
		baseCtx: ctx,
		log:     log.Named("repo.mongo"),
		cfg:     cfg.Mongo,
	}
}

// OnStart connects, ensures the validated collection and the unique name index.
func (m *Mongo) OnStart(_ context.Context) error {
	connectCtx, cancel := context.WithTimeout(m.baseCtx, m.cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(m.cfg.URI))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("ping: %w", err)
	}

	db := client.Database(m.cfg.Database)
	if err := ensureCollection(connectCtx, db, m.cfg.Collection); err != nil {
		_ = client.Disconnect(context.Background())
		return err
	}

	coll := db.Collection(m.cfg.Collection)
	if _, err := coll.Indexes().CreateOne(connectCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_activity_name"),
	}); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("create name index: %w", err)
	}

	m.client = client
	m.coll = coll
	m.log.Infow("mongo ready", "database", m.cfg.Database, "collection", m.cfg.Collection)
	return nil
}

// OnStop disconnects the client.
func (m *Mongo) OnStop(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string) error {
	names, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	if len(names) > 0 {
		return nil
	}
	opts := options.CreateCollection().SetValidator(activityValidator())
	if err := db.CreateCollection(ctx, name, opts); err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceExists" {
			return nil
		}
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

// activityValidator enforces the document shape and the capacity invariant on every write.
func activityValidator() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "description", "schedule", "max_participants", "participants"},
			"properties": bson.M{
				"name":             bson.M{"bsonType": "string", "minLength": 1},
				"description":      bson.M{"bsonType": "string"},
				"schedule":         bson.M{"bsonType": "string"},
				"max_participants": bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 1},
				"participants": bson.M{
					"bsonType":    "array",
					"uniqueItems": true,
					"items":       bson.M{"bsonType": "string"},
				},
			},
		},
		"$expr": bson.M{"$lte": bson.A{bson.M{"$size": "$participants"}, "$max_participants"}},
	}
}

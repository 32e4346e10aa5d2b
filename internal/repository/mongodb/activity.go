package mongodb

import (
	"context"
	"errors"
	"fmt"

	"mergington-activities/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type activityDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description"`
	Schedule        string             `bson:"schedule"`
	MaxParticipants int                `bson:"max_participants"`
	Participants    []string           `bson:"participants"`
}

func toDocument(a entities.Activity) activityDocument {
	participants := a.Participants
	if participants == nil {
		participants = []string{}
	}
	return activityDocument{
		Name:            a.Name,
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

func (d activityDocument) toEntity() entities.Activity {
	participants := d.Participants
	if participants == nil {
		participants = []string{}
	}
	return entities.Activity{
		Name:            d.Name,
		Description:     d.Description,
		Schedule:        d.Schedule,
		MaxParticipants: d.MaxParticipants,
		Participants:    participants,
	}
}

// SeedIfEmpty inserts catalog when the collection has no documents and returns the number inserted.
// Duplicate names raced in by another process are skipped by the unique index.
func (m *Mongo) SeedIfEmpty(ctx context.Context, catalog []entities.Activity) (int, error) {
	count, err := m.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	if count > 0 || len(catalog) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(catalog))
	for _, a := range catalog {
		docs = append(docs, toDocument(a))
	}

	_, err = m.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		var bwe mongo.BulkWriteException
		if !errors.As(err, &bwe) || !onlyDuplicates(bwe) {
			return 0, fmt.Errorf("insert seed: %w", err)
		}
		inserted := len(docs) - len(bwe.WriteErrors)
		m.log.Warnw("seed raced with another writer", "inserted", inserted, "skipped", len(bwe.WriteErrors))
		return inserted, nil
	}

	m.log.Infow("activities seeded", "count", len(docs))
	return len(docs), nil
}

func onlyDuplicates(bwe mongo.BulkWriteException) bool {
	if bwe.WriteConcernError != nil || len(bwe.WriteErrors) == 0 {
		return false
	}
	for _, we := range bwe.WriteErrors {
		if !mongo.IsDuplicateKeyError(we) {
			return false
		}
	}
	return true
}

// FindByName fetches an activity by its unique name.
func (m *Mongo) FindByName(ctx context.Context, name string) (*entities.Activity, error) {
	var doc activityDocument
	if err := m.coll.FindOne(ctx, bson.D{{Key: "name", Value: name}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entities.ErrActivityNotFound
		}
		return nil, fmt.Errorf("find activity: %w", err)
	}
	a := doc.toEntity()
	return &a, nil
}

// ListAll returns every activity in insertion order.
func (m *Mongo) ListAll(ctx context.Context) ([]entities.Activity, error) {
	cur, err := m.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	res := make([]entities.Activity, 0)
	for cur.Next(ctx) {
		var doc activityDocument
		if err := cur.Decode(&doc); err != nil {
			m.log.Errorw("failed to decode activity", "error", err)
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		res = append(res, doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return res, nil
}

// TryAddParticipant adds email in one filtered update: the filter only matches
// when the email is absent and the roster is below capacity.
func (m *Mongo) TryAddParticipant(ctx context.Context, name, email string) (bool, error) {
	filter := bson.M{
		"name":         name,
		"participants": bson.M{"$ne": email},
		"$expr": bson.M{
			"$lt": bson.A{bson.M{"$size": "$participants"}, "$max_participants"},
		},
	}
	update := bson.M{"$addToSet": bson.M{"participants": email}}

	res, err := m.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		m.log.Errorw("failed to add participant", "error", err, "activity", name)
		return false, fmt.Errorf("add participant: %w", err)
	}
	if res.ModifiedCount == 1 {
		m.log.Infow("participant added", "activity", name, "email", email)
		return true, nil
	}
	return false, nil
}

// TryRemoveParticipant pulls email from the roster if it is present.
func (m *Mongo) TryRemoveParticipant(ctx context.Context, name, email string) (bool, error) {
	filter := bson.M{"name": name, "participants": email}
	update := bson.M{"$pull": bson.M{"participants": email}}

	res, err := m.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		m.log.Errorw("failed to remove participant", "error", err, "activity", name)
		return false, fmt.Errorf("remove participant: %w", err)
	}
	if res.ModifiedCount == 1 {
		m.log.Infow("participant removed", "activity", name, "email", email)
		return true, nil
	}
	return false, nil
}

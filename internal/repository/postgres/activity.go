package postgres

import (
	"context"
	"errors"
	"fmt"

	"mergington-activities/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	countActivitiesQuery = `SELECT count(*) FROM activities`
	insertActivityQuery  = `
INSERT INTO activities(name, description, schedule, max_participants, participants)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name) DO NOTHING`
	selectActivityQuery = `
SELECT name, description, schedule, max_participants, participants
FROM activities WHERE name = $1`
	selectActivitiesQuery = `
SELECT name, description, schedule, max_participants, participants
FROM activities ORDER BY id`
	addParticipantQuery = `
UPDATE activities
SET participants = array_append(participants, $2::text)
WHERE name = $1
  AND NOT ($2::text = ANY(participants))
  AND cardinality(participants) < max_participants`
	removeParticipantQuery = `
UPDATE activities
SET participants = array_remove(participants, $2::text)
WHERE name = $1 AND $2::text = ANY(participants)`
)

// SeedIfEmpty inserts catalog when the table is empty and returns the number of rows inserted.
func (p *Postgres) SeedIfEmpty(ctx context.Context, catalog []entities.Activity) (int, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var count int64
	if err := tx.QueryRow(ctx, countActivitiesQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, a := range catalog {
		participants := a.Participants
		if participants == nil {
			participants = []string{}
		}
		tag, err := tx.Exec(ctx, insertActivityQuery, a.Name, a.Description, a.Schedule, a.MaxParticipants, participants)
		if err != nil {
			return 0, fmt.Errorf("insert activity %q: %w", a.Name, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	p.log.Infow("activities seeded", "count", inserted)
	return inserted, nil
}

// FindByName fetches an activity by its unique name.
func (p *Postgres) FindByName(ctx context.Context, name string) (*entities.Activity, error) {
	a, err := scanActivity(p.db.QueryRow(ctx, selectActivityQuery, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrActivityNotFound
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return &a, nil
}

// ListAll returns every activity in insertion order.
func (p *Postgres) ListAll(ctx context.Context) ([]entities.Activity, error) {
	rows, err := p.db.Query(ctx, selectActivitiesQuery)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			p.log.Errorw("failed to scan activity", "error", err)
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		res = append(res, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return res, nil
}

// TryAddParticipant appends email with a single conditional UPDATE. Concurrent
// writers on the same row are serialised by the row lock and re-check the WHERE clause.
func (p *Postgres) TryAddParticipant(ctx context.Context, name, email string) (bool, error) {
	tag, err := p.db.Exec(ctx, addParticipantQuery, name, email)
	if err != nil {
		p.log.Errorw("failed to add participant", "error", err, "activity", name)
		return false, fmt.Errorf("add participant: %w", err)
	}
	if tag.RowsAffected() == 1 {
		p.log.Infow("participant added", "activity", name, "email", email)
		return true, nil
	}
	return false, nil
}

// TryRemoveParticipant removes email from the roster if present.
func (p *Postgres) TryRemoveParticipant(ctx context.Context, name, email string) (bool, error) {
	tag, err := p.db.Exec(ctx, removeParticipantQuery, name, email)
	if err != nil {
		p.log.Errorw("failed to remove participant", "error", err, "activity", name)
		return false, fmt.Errorf("remove participant: %w", err)
	}
	if tag.RowsAffected() == 1 {
		p.log.Infow("participant removed", "activity", name, "email", email)
		return true, nil
	}
	return false, nil
}

func scanActivity(row pgx.Row) (entities.Activity, error) {
	var a entities.Activity
	if err := row.Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants, &a.Participants); err != nil {
		return entities.Activity{}, err
	}
	if a.Participants == nil {
		a.Participants = []string{}
	}
	return a, nil
}

// Package memory implements the activity repository in process memory.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"mergington-activities/internal/entities"

	"go.uber.org/zap"
)

// Memory stores activities in a map for local runs and tests.
type Memory struct {
	log        *zap.SugaredLogger
	mu         sync.Mutex
	activities map[string]*entities.Activity
	order      []string
}

// New creates an empty in-memory repository.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log:        log.Named("repo.memory"),
		activities: make(map[string]*entities.Activity),
	}
}

// OnStart is a no-op.
func (m *Memory) OnStart(_ context.Context) error {
	m.log.Infow("memory store ready")
	return nil
}

// OnStop is a no-op.
func (m *Memory) OnStop(_ context.Context) error { return nil }

// SeedIfEmpty inserts catalog when no activity is stored and returns the number inserted.
func (m *Memory) SeedIfEmpty(_ context.Context, catalog []entities.Activity) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.activities) > 0 {
		return 0, nil
	}
	for _, a := range catalog {
		if _, ok := m.activities[a.Name]; ok {
			continue
		}
		cp := a.Clone()
		m.activities[a.Name] = &cp
		m.order = append(m.order, a.Name)
	}
	m.log.Infow("activities seeded", "count", len(m.order))
	return len(m.order), nil
}

// FindByName returns a copy of the named activity.
func (m *Memory) FindByName(_ context.Context, name string) (*entities.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.activities[name]
	if !ok {
		return nil, entities.ErrActivityNotFound
	}
	cp := a.Clone()
	return &cp, nil
}

// ListAll returns copies of all activities in insertion order.
func (m *Memory) ListAll(_ context.Context) ([]entities.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := make([]entities.Activity, 0, len(m.order))
	for _, name := range m.order {
		res = append(res, m.activities[name].Clone())
	}
	return res, nil
}

// TryAddParticipant appends email if the activity exists, email is absent and a seat is free.
func (m *Memory) TryAddParticipant(_ context.Context, name, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.activities[name]
	if !ok || a.HasParticipant(email) || a.Full() {
		return false, nil
	}
	a.Participants = append(a.Participants, strings.Clone(email))
	return true, nil
}

// TryRemoveParticipant drops email from the roster if present.
func (m *Memory) TryRemoveParticipant(_ context.Context, name, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.activities[name]
	if !ok {
		return false, nil
	}
	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return false, nil
	}
	a.Participants = slices.Delete(a.Participants, idx, idx+1)
	return true, nil
}

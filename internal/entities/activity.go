package entities

import (
	"slices"
	"time"
)

// Activity is an extracurricular offering with a participant roster.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// HasParticipant reports whether email is on the roster.
func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Full reports whether no seat is left.
func (a Activity) Full() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// Clone returns a copy that does not share the participants slice.
func (a Activity) Clone() Activity {
	a.Participants = append(make([]string, 0, len(a.Participants)), a.Participants...)
	return a
}

// ParticipantEventType names a roster change.
type ParticipantEventType string

const (
	// ParticipantJoined is emitted after a successful signup.
	ParticipantJoined ParticipantEventType = "participant.joined"
	// ParticipantLeft is emitted after a successful removal.
	ParticipantLeft ParticipantEventType = "participant.left"
)

// ParticipantEvent describes a committed roster change.
type ParticipantEvent struct {
	Type       ParticipantEventType `json:"type"`
	Activity   string               `json:"activity"`
	Email      string               `json:"email"`
	OccurredAt time.Time            `json:"occurred_at"`
}

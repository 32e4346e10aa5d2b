// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"bytes"
	"encoding/json"

	"mergington-activities/internal/entities"
)

// ActivityDetails is the public view of one activity.
type ActivityDetails struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityEntry pairs a name with its details.
type ActivityEntry struct {
	Name    string
	Details ActivityDetails
}

// ActivityMap is a name → details object that keeps store order when encoded.
type ActivityMap []ActivityEntry

// MarshalJSON encodes the entries as one JSON object.
func (m ActivityMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Details)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToActivityDetails maps entities.Activity to its transport model.
func ToActivityDetails(a entities.Activity) ActivityDetails {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	return ActivityDetails{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// ToActivityMap maps a slice of activities to the name-keyed transport object.
func ToActivityMap(list []entities.Activity) ActivityMap {
	res := make(ActivityMap, 0, len(list))
	for _, a := range list {
		res = append(res, ActivityEntry{Name: a.Name, Details: ToActivityDetails(a)})
	}
	return res
}

// Message is the confirmation body of roster mutations.
type Message struct {
	Message string `json:"message"`
}

// ErrorResponse carries a human readable failure detail.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

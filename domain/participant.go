// Package domain contains the planning-poker payloads carried by the session state.
// This file defines Participant entities and their vote.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"planning-poker/errors"
)

type Participant struct {
	UserName string `json:"userName"`
	Points   Points `json:"points"`
}

// Points is a participant's vote as broadcast by the poker server.
// While the session is closed only the fact that a vote exists is sent,
// once opened the value itself is revealed.
type Points struct {
	Value *int
	Voted bool
}

func Revealed(value int) Points {
	return Points{Value: &value, Voted: true}
}

func Hidden() Points {
	return Points{Voted: true}
}

// IsHidden reports a vote that exists but has not been revealed yet
func (p Points) IsHidden() bool {
	return p.Voted && p.Value == nil
}

func (p *Points) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "null", "false":
		*p = Points{}
		return nil
	case "true":
		*p = Hidden()
		return nil
	}
	var value int
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrInvalidPoints, data)
	}
	*p = Revealed(value)
	return nil
}

func (p Points) MarshalJSON() ([]byte, error) {
	switch {
	case p.Value != nil:
		return json.Marshal(*p.Value)
	case p.Voted:
		return []byte("true"), nil
	default:
		return []byte("null"), nil
	}
}

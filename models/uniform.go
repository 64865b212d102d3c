package models

import (
	"encoding/json"
	"time"
)

// Uniform is a kit order for one player. Size is either S/M or a numeric
// youth size; the upstream stores it as a plain string.
type Uniform struct {
	ID          string     `json:"_id"`
	Player      *PlayerRef `json:"player,omitempty"`
	Size        string     `json:"size"`
	Amount      Money      `json:"amount"`
	HasPaid     bool       `json:"hasPaid"`
	HasReceived bool       `json:"hasReceived"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (u *Uniform) UnmarshalJSON(b []byte) error {
	type alias Uniform
	aux := struct {
		*alias
		PlayerID *PlayerRef `json:"playerId"`
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	mergePlayerRef(&u.Player, aux.PlayerID)
	return nil
}

type UniformInput struct {
	PlayerID    string `json:"playerId"`
	Size        string `json:"size"`
	Amount      Money  `json:"amount"`
	HasPaid     bool   `json:"hasPaid"`
	HasReceived bool   `json:"hasReceived"`
}

func (in UniformInput) Validate() error {
	if in.PlayerID == "" {
		return ErrPlayerIDRequired
	}
	if in.Size == "" {
		return ErrSizeRequired
	}
	return nil
}

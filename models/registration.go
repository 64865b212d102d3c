package models

import (
	"encoding/json"
	"time"
)

// RegistrationFee is the one-time enrollment fee applied to every
// registration. Fixed by academy convention, not by the upstream schema.
const RegistrationFee Money = 500

// PlayerRef is the normalized player relation. The upstream returns the
// relation either as a bare id string or as an embedded player object;
// both decode into this one shape so nothing downstream branches on it.
type PlayerRef struct {
	ID          string `json:"_id"`
	FullName    string `json:"fullName,omitempty"`
	BirthYear   int    `json:"birthYear,omitempty"`
	ParentPhone string `json:"parentPhone,omitempty"`
}

func (r *PlayerRef) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	type ref PlayerRef
	return json.Unmarshal(b, (*ref)(r))
}

type Registration struct {
	ID               string     `json:"_id"`
	Player           *PlayerRef `json:"player,omitempty"`
	HasPaid          bool       `json:"hasPaid"`
	HasSubmittedDocs bool       `json:"hasSubmittedDocs"`
	Amount           Money      `json:"amount"`
	PaymentDate      *time.Time `json:"paymentDate,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// UnmarshalJSON folds the upstream's two relation shapes (embedded
// "player" object, bare "playerId" key) into the single Player field.
func (reg *Registration) UnmarshalJSON(b []byte) error {
	type alias Registration
	aux := struct {
		*alias
		PlayerID *PlayerRef `json:"playerId"`
	}{alias: (*alias)(reg)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	mergePlayerRef(&reg.Player, aux.PlayerID)
	return nil
}

func mergePlayerRef(dst **PlayerRef, alt *PlayerRef) {
	switch {
	case *dst == nil:
		*dst = alt
	case (*dst).ID == "" && alt != nil:
		(*dst).ID = alt.ID
	}
	if *dst != nil && (*dst).ID == "" {
		*dst = nil
	}
}

type RegistrationInput struct {
	PlayerID         string     `json:"playerId"`
	HasPaid          bool       `json:"hasPaid"`
	HasSubmittedDocs bool       `json:"hasSubmittedDocs"`
	Amount           Money      `json:"amount"`
	PaymentDate      *time.Time `json:"paymentDate,omitempty"`
}

func (in RegistrationInput) Validate() error {
	if in.PlayerID == "" {
		return ErrPlayerIDRequired
	}
	return nil
}

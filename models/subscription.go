package models

import (
	"encoding/json"
	"time"
)

// Subscription is one month of recurring fees for one player. A player
// accumulates one record per month.
type Subscription struct {
	ID          string     `json:"_id"`
	Player      *PlayerRef `json:"player,omitempty"`
	Month       string     `json:"month"`
	HasPaid     bool       `json:"hasPaid"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	Amount      Money      `json:"amount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (sub *Subscription) UnmarshalJSON(b []byte) error {
	type alias Subscription
	aux := struct {
		*alias
		PlayerID *PlayerRef `json:"playerId"`
	}{alias: (*alias)(sub)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	mergePlayerRef(&sub.Player, aux.PlayerID)
	return nil
}

type SubscriptionInput struct {
	PlayerID    string     `json:"playerId"`
	Month       string     `json:"month"`
	HasPaid     bool       `json:"hasPaid"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	Amount      Money      `json:"amount"`
}

func (in SubscriptionInput) Validate() error {
	if in.PlayerID == "" {
		return ErrPlayerIDRequired
	}
	if in.Month == "" {
		return ErrMonthRequired
	}
	return nil
}

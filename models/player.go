package models

import "time"

type Player struct {
	ID          string    `json:"_id"`
	FullName    string    `json:"fullName"`
	BirthYear   int       `json:"birthYear"`
	ParentPhone string    `json:"parentPhone,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RegistrationStatus string

const (
	StatusRegistered    RegistrationStatus = "registered"
	StatusIncomplete    RegistrationStatus = "incomplete"
	StatusNotRegistered RegistrationStatus = "not-registered"
)

// PlayerWithRegistrationStatus is the derived view row: a player joined
// with their registration, if any. Never persisted.
type PlayerWithRegistrationStatus struct {
	Player
	HasRegistration    bool               `json:"hasRegistration"`
	RegistrationData   *Registration      `json:"registrationData,omitempty"`
	RegistrationStatus RegistrationStatus `json:"registrationStatus"`
}

type PlayerInput struct {
	FullName    string `json:"fullName"`
	BirthYear   int    `json:"birthYear"`
	ParentPhone string `json:"parentPhone,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

func (in PlayerInput) Validate() error {
	if in.FullName == "" {
		return ErrFullNameRequired
	}
	if in.BirthYear < 1950 || in.BirthYear > time.Now().Year() {
		return ErrInvalidBirthYear
	}
	return nil
}

package models

import "time"

// Coach is an academy staff record from the upstream /users collection.
// Admins live in the same collection with Role ADMIN.
type Coach struct {
	ID               string    `json:"_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             UserRole  `json:"role"`
	Salary           *Money    `json:"salary,omitempty"`
	ResponsibleYears []int     `json:"responsibleYears,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CoachInput struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Password         string   `json:"password,omitempty"`
	Role             UserRole `json:"role"`
	Salary           *Money   `json:"salary,omitempty"`
	ResponsibleYears []int    `json:"responsibleYears,omitempty"`
}

func (in CoachInput) Validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if in.Email == "" {
		return ErrEmailRequired
	}
	switch in.Role {
	case RoleAdmin, RoleCoach:
		return nil
	default:
		return ErrInvalidRole
	}
}

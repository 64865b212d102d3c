package models

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleCoach UserRole = "COACH"
)

// User is the authenticated identity returned by the upstream login
// endpoint and held in the session store.
type User struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Role             UserRole `json:"role"`
	ResponsibleYears []int    `json:"responsibleYears,omitempty"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

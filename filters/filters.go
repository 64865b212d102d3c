// Package filters narrows collections by search term, status and birth
// year. Pure predicate composition: the three dimensions AND together,
// and an empty value for any dimension matches everything.
package filters

import (
	"strconv"
	"strings"

	"github.com/academyhq/academy-console/models"
)

type State struct {
	SearchTerm string
	Status     string
	Year       string
}

func (f State) Empty() bool {
	return f.SearchTerm == "" && f.Status == "" && f.Year == ""
}

// Registrations keeps registrations whose player name matches the search
// term and whose payment/docs state matches the status filter. Records
// with no player ref never match a non-empty term or year.
func Registrations(regs []models.Registration, f State) []models.Registration {
	out := make([]models.Registration, 0, len(regs))
	for _, reg := range regs {
		if !matchesName(reg.Player, f.SearchTerm) {
			continue
		}
		if !registrationStatusMatches(reg, f.Status) {
			continue
		}
		if !matchesYear(reg.Player, f.Year) {
			continue
		}
		out = append(out, reg)
	}
	return out
}

func registrationStatusMatches(reg models.Registration, status string) bool {
	switch status {
	case "":
		return true
	case "paid":
		return reg.HasPaid
	case "unpaid":
		return !reg.HasPaid
	case "docs-submitted":
		return reg.HasSubmittedDocs
	case "docs-pending":
		return !reg.HasSubmittedDocs
	case "complete":
		return reg.HasPaid && reg.HasSubmittedDocs
	case "incomplete":
		return !reg.HasPaid || !reg.HasSubmittedDocs
	default:
		return false
	}
}

// Players filters the reconciled player view by name, registration
// status and birth year.
func Players(players []models.PlayerWithRegistrationStatus, f State) []models.PlayerWithRegistrationStatus {
	out := make([]models.PlayerWithRegistrationStatus, 0, len(players))
	for _, p := range players {
		if !containsFold(p.FullName, f.SearchTerm) {
			continue
		}
		if f.Status != "" && string(p.RegistrationStatus) != f.Status {
			continue
		}
		if f.Year != "" && strconv.Itoa(p.BirthYear) != f.Year {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Subscriptions filters by player name, paid/unpaid status and birth
// year.
func Subscriptions(subs []models.Subscription, f State) []models.Subscription {
	out := make([]models.Subscription, 0, len(subs))
	for _, sub := range subs {
		if !matchesName(sub.Player, f.SearchTerm) {
			continue
		}
		switch f.Status {
		case "":
		case "paid":
			if !sub.HasPaid {
				continue
			}
		case "unpaid":
			if sub.HasPaid {
				continue
			}
		default:
			continue
		}
		if !matchesYear(sub.Player, f.Year) {
			continue
		}
		out = append(out, sub)
	}
	return out
}

// Uniforms filters by player name, payment/delivery status and birth
// year.
func Uniforms(us []models.Uniform, f State) []models.Uniform {
	out := make([]models.Uniform, 0, len(us))
	for _, u := range us {
		if !matchesName(u.Player, f.SearchTerm) {
			continue
		}
		if !uniformStatusMatches(u, f.Status) {
			continue
		}
		if !matchesYear(u.Player, f.Year) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func uniformStatusMatches(u models.Uniform, status string) bool {
	switch status {
	case "":
		return true
	case "paid":
		return u.HasPaid
	case "unpaid":
		return !u.HasPaid
	case "received":
		return u.HasReceived
	case "not-received":
		return !u.HasReceived
	default:
		return false
	}
}

// Coaches matches the search term against name or email.
func Coaches(coaches []models.Coach, term string) []models.Coach {
	out := make([]models.Coach, 0, len(coaches))
	for _, c := range coaches {
		if containsFold(c.Name, term) || containsFold(c.Email, term) {
			out = append(out, c)
		}
	}
	return out
}

func matchesName(ref *models.PlayerRef, term string) bool {
	if term == "" {
		return true
	}
	if ref == nil {
		return false
	}
	return containsFold(ref.FullName, term)
}

func matchesYear(ref *models.PlayerRef, year string) bool {
	if year == "" {
		return true
	}
	if ref == nil {
		return false
	}
	return strconv.Itoa(ref.BirthYear) == year
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

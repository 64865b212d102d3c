// Package reconcile joins the locally mirrored collections into derived
// views: per-player registration status, income totals and overdue
// subscriptions. Everything here is a pure function over snapshots —
// recomputing on unchanged inputs yields identical output and mutates
// nothing.
package reconcile

import (
	"time"

	"github.com/academyhq/academy-console/models"
)

// PlayersWithStatus produces exactly one row per player. A player's
// registration is the first one whose normalized player ref matches;
// a registration with no resolvable ref never matches anyone.
func PlayersWithStatus(players []models.Player, regs []models.Registration) []models.PlayerWithRegistrationStatus {
	out := make([]models.PlayerWithRegistrationStatus, 0, len(players))
	for _, p := range players {
		row := models.PlayerWithRegistrationStatus{
			Player:             p,
			RegistrationStatus: models.StatusNotRegistered,
		}
		if reg := RegistrationFor(regs, p.ID); reg != nil {
			row.HasRegistration = true
			row.RegistrationData = reg
			if reg.HasPaid && reg.HasSubmittedDocs {
				row.RegistrationStatus = models.StatusRegistered
			} else {
				row.RegistrationStatus = models.StatusIncomplete
			}
		}
		out = append(out, row)
	}
	return out
}

// RegistrationFor returns the first registration referencing playerID,
// or nil. First-match-wins mirrors the upstream's lack of a uniqueness
// guarantee; DuplicateRegistrations reports the violations separately.
func RegistrationFor(regs []models.Registration, playerID string) *models.Registration {
	if playerID == "" {
		return nil
	}
	for i := range regs {
		if regs[i].Player != nil && regs[i].Player.ID == playerID {
			return &regs[i]
		}
	}
	return nil
}

// DuplicateRegistrations maps player id to registration count for every
// player holding more than one. The domain intends at most one; the
// console surfaces violations as an integrity warning instead of
// silently joining the first.
func DuplicateRegistrations(regs []models.Registration) map[string]int {
	counts := make(map[string]int)
	for i := range regs {
		if regs[i].Player != nil && regs[i].Player.ID != "" {
			counts[regs[i].Player.ID]++
		}
	}
	dups := make(map[string]int)
	for id, n := range counts {
		if n > 1 {
			dups[id] = n
		}
	}
	return dups
}

// RegistrationIncome sums the amounts of paid registrations.
func RegistrationIncome(regs []models.Registration) models.Money {
	var total models.Money
	for i := range regs {
		if regs[i].HasPaid {
			total += regs[i].Amount
		}
	}
	return total
}

// SubscriptionIncome sums the amounts of paid subscriptions.
func SubscriptionIncome(subs []models.Subscription) models.Money {
	var total models.Money
	for i := range subs {
		if subs[i].HasPaid {
			total += subs[i].Amount
		}
	}
	return total
}

// UniformIncome sums the amounts of paid uniform orders.
func UniformIncome(us []models.Uniform) models.Money {
	var total models.Money
	for i := range us {
		if us[i].HasPaid {
			total += us[i].Amount
		}
	}
	return total
}

// IsOverdue reports whether a subscription is unpaid past its month.
// The month value is the canonical clock here; a month that cannot be
// parsed cannot be overdue.
func IsOverdue(sub models.Subscription, now time.Time) bool {
	if sub.HasPaid {
		return false
	}
	month, ok := ParseMonth(sub.Month)
	if !ok {
		return false
	}
	return month.Before(now)
}

// OverdueSubscriptions filters to the unpaid-past-month set.
func OverdueSubscriptions(subs []models.Subscription, now time.Time) []models.Subscription {
	out := make([]models.Subscription, 0)
	for _, sub := range subs {
		if IsOverdue(sub, now) {
			out = append(out, sub)
		}
	}
	return out
}

// monthLayouts are the shapes the upstream has been seen to store: a
// plain year-month, a full date, or a complete timestamp.
var monthLayouts = []string{"2006-01", "2006-01-02", time.RFC3339}

func ParseMonth(s string) (time.Time, bool) {
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

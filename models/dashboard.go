package models

// DashboardStats mirrors the upstream /dashboard aggregate counters.
type DashboardStats struct {
	TotalPlayers         int   `json:"totalPlayers"`
	SubscriptionIncome   Money `json:"subscriptionIncome"`
	UniformIncome        Money `json:"uniformIncome"`
	RegistrationIncome   Money `json:"registrationIncome"`
	UnpaidSubscriptions  int   `json:"unpaidSubscriptions"`
	OverdueSubscriptions int   `json:"overdueSubscriptions"`
}

// DashboardSummary is what the console serves: the upstream counters plus
// the combined income figure derived from them.
type DashboardSummary struct {
	DashboardStats
	TotalIncome Money `json:"totalIncome"`
}

// internal/domain/models/dashboard.go
package models

import "time"

// Phase is where a session sits in the dashboard lifecycle.
type Phase string

const (
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseAuthenticating  Phase = "authenticating"
	PhaseLoading         Phase = "loading"
	PhaseReady           Phase = "ready"
)

// DashboardState is everything the dashboard holds for one signed-in
// session. Datasets are only ever replaced wholesale.
type DashboardState struct {
	Phase        Phase
	Summary      SummaryMetrics
	OrdersByDate []OrderByDate
	TopCustomers []TopCustomer
	Filter       DateRange
	Loading      bool

	LastFetched time.Time // zero until the first successful fetch
	LastSeen    time.Time
}

// HasData reports whether at least one fetch has succeeded.
func (s DashboardState) HasData() bool {
	return !s.LastFetched.IsZero()
}

// Credentials are what the login and register forms submit upstream.
type Credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

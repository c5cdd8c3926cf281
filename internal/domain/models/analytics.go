// internal/domain/models/analytics.go
package models

import "time"

// SummaryMetrics is the headline block returned by /api/dashboard/summary.
type SummaryMetrics struct {
	TotalCustomers Number `json:"total_customers"`
	TotalOrders    Number `json:"total_orders"`
	TotalRevenue   Number `json:"total_revenue"`
}

// OrderByDate is one point of the orders-by-date series. Date is kept as
// the server sent it; formatting for display happens at render time.
type OrderByDate struct {
	Date        string `json:"date"`
	OrdersCount Number `json:"orders_count"`
	Revenue     Number `json:"revenue"`
}

// TopCustomer is one row of the top-customers list. The server sorts and
// limits the list; clients keep its order.
type TopCustomer struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	TotalSpent Number `json:"total_spent"`
}

// FullName joins first and last name the way the dashboard labels them.
func (c TopCustomer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// DateLayout is the wire format for startDate/endDate query parameters.
const DateLayout = "2006-01-02"

// DateRange is an optional start/end filter with day precision. A nil bound
// is not sent. Start after End is passed through unchanged.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether neither bound is set.
func (d DateRange) IsZero() bool {
	return d.Start == nil && d.End == nil
}

// StartParam returns the start bound as YYYY-MM-DD, or "" when unset.
func (d DateRange) StartParam() string {
	if d.Start == nil {
		return ""
	}
	return d.Start.Format(DateLayout)
}

// EndParam returns the end bound as YYYY-MM-DD, or "" when unset.
func (d DateRange) EndParam() string {
	if d.End == nil {
		return ""
	}
	return d.End.Format(DateLayout)
}

// ParseDateRange builds a DateRange from two YYYY-MM-DD strings. Empty or
// unparseable values leave that bound unset.
func ParseDateRange(start, end string) DateRange {
	return DateRange{
		Start: parseDay(start),
		End:   parseDay(end),
	}
}

func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

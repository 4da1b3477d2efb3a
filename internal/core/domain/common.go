package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// DateRange is a closed reporting window. A zero From or To leaves that end
// unbounded, so the zero value means "all time".
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// MonthRange returns the calendar-month window containing ref, in UTC.
func MonthRange(ref time.Time) DateRange {
	ref = ref.UTC()
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{From: start, To: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// YearRange returns the calendar-year window containing ref, in UTC.
func YearRange(ref time.Time) DateRange {
	ref = ref.UTC()
	start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{From: start, To: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}
}

package dto

import (
	"fmt"
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
)

// SummaryParams defines query parameters for the summary report. Exactly one
// of the window styles applies: month, year, an explicit from/to pair, or
// nothing for an all-time summary.
type SummaryParams struct {
	Month string     `form:"month" binding:"omitempty,month"`
	Year  *int       `form:"year" binding:"omitempty,min=1970,max=9999"`
	From  *time.Time `form:"from" time_format:"2006-01-02"`
	To    *time.Time `form:"to" time_format:"2006-01-02"`
}

// Window resolves the parameters into a reporting window.
func (p SummaryParams) Window() (domain.DateRange, error) {
	set := 0
	if p.Month != "" {
		set++
	}
	if p.Year != nil {
		set++
	}
	if p.From != nil || p.To != nil {
		set++
	}
	if set > 1 {
		return domain.DateRange{}, fmt.Errorf("month, year and from/to are mutually exclusive")
	}

	switch {
	case p.Month != "":
		m, err := ParseMonth(p.Month)
		if err != nil {
			return domain.DateRange{}, err
		}
		return domain.MonthRange(m), nil
	case p.Year != nil:
		return domain.YearRange(time.Date(*p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)), nil
	default:
		var r domain.DateRange
		if p.From != nil {
			r.From = p.From.UTC()
		}
		if p.To != nil {
			// Make the To day inclusive.
			r.To = p.To.UTC().AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
			return domain.DateRange{}, fmt.Errorf("to must not precede from")
		}
		return r, nil
	}
}

// MonthlyBreakdownParams defines query parameters for the monthly report.
type MonthlyBreakdownParams struct {
	Year int `form:"year" binding:"required,min=1970,max=9999"`
}

// MonthlyBreakdownResponse wraps the per-month rows.
type MonthlyBreakdownResponse struct {
	Year   int                     `json:"year"`
	Months []domain.MonthlySummary `json:"months"`
}

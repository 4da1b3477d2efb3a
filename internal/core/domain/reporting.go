package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the aggregate of a transaction set over a reporting window.
//
// Invariants: Savings == TotalIncome - TotalExpense - TotalInvestment, and the
// values of SpendingByCategory sum to TotalExpense (categories partition
// expenses, with uncategorized transactions under UncategorizedBucket).
type Summary struct {
	TotalIncome        decimal.Decimal            `json:"totalIncome"`
	TotalExpense       decimal.Decimal            `json:"totalExpense"`
	TotalInvestment    decimal.Decimal            `json:"totalInvestment"`
	Savings            decimal.Decimal            `json:"savings"`
	SpendingByCategory map[string]decimal.Decimal `json:"spendingByCategory"`
	NeedsTotal         decimal.Decimal            `json:"needsTotal"`
	WantsTotal         decimal.Decimal            `json:"wantsTotal"`
	TransactionCount   int                        `json:"transactionCount"`
}

// MonthlySummary is one row of a per-month breakdown for chart rendering.
type MonthlySummary struct {
	Month           time.Time       `json:"month"`
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpense    decimal.Decimal `json:"totalExpense"`
	TotalInvestment decimal.Decimal `json:"totalInvestment"`
	Savings         decimal.Decimal `json:"savings"`
}

// SummarizeTransactions aggregates txns within the window. Transfers move
// money between accounts and never count toward the totals. The function is
// pure; callers supply the window instead of reading the clock.
func SummarizeTransactions(txns []Transaction, window DateRange) Summary {
	s := Summary{
		TotalIncome:        decimal.Zero,
		TotalExpense:       decimal.Zero,
		TotalInvestment:    decimal.Zero,
		Savings:            decimal.Zero,
		SpendingByCategory: map[string]decimal.Decimal{},
		NeedsTotal:         decimal.Zero,
		WantsTotal:         decimal.Zero,
	}

	for _, txn := range txns {
		if !window.Contains(txn.Date) {
			continue
		}
		s.TransactionCount++

		switch txn.Type {
		case TransactionIncome:
			s.TotalIncome = s.TotalIncome.Add(txn.Amount)
		case TransactionExpense:
			s.TotalExpense = s.TotalExpense.Add(txn.Amount)

			bucket := txn.CategoryName
			if bucket == "" {
				bucket = UncategorizedBucket
			}
			s.SpendingByCategory[bucket] = s.SpendingByCategory[bucket].Add(txn.Amount)

			switch txn.Classification {
			case ClassificationNeed:
				s.NeedsTotal = s.NeedsTotal.Add(txn.Amount)
			case ClassificationWant:
				s.WantsTotal = s.WantsTotal.Add(txn.Amount)
			}
		case TransactionInvestment:
			s.TotalInvestment = s.TotalInvestment.Add(txn.Amount)
		}
	}

	s.Savings = s.TotalIncome.Sub(s.TotalExpense).Sub(s.TotalInvestment)
	return s
}

// ExpenseByCategoryID totals expense transactions per category identifier
// within the window. Uncategorized expenses key on the empty string; the
// budget matcher never joins them since budgets always reference a category.
func ExpenseByCategoryID(txns []Transaction, window DateRange) map[string]decimal.Decimal {
	totals := map[string]decimal.Decimal{}
	for _, txn := range txns {
		if txn.Type != TransactionExpense || !window.Contains(txn.Date) {
			continue
		}
		totals[txn.CategoryID] = totals[txn.CategoryID].Add(txn.Amount)
	}
	return totals
}

// SummarizeByMonth produces one summary row per calendar month of year.
func SummarizeByMonth(txns []Transaction, year int) []MonthlySummary {
	rows := make([]MonthlySummary, 0, 12)
	for m := time.January; m <= time.December; m++ {
		start := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		s := SummarizeTransactions(txns, MonthRange(start))
		rows = append(rows, MonthlySummary{
			Month:           start,
			TotalIncome:     s.TotalIncome,
			TotalExpense:    s.TotalExpense,
			TotalInvestment: s.TotalInvestment,
			Savings:         s.Savings,
		})
	}
	return rows
}

package models

// Currency is the persisted representation of a currency reference row.
type Currency struct {
	CurrencyCode string `db:"currency_code"`
	Symbol       string `db:"symbol"`
	Name         string `db:"name"`
	AuditFields
}

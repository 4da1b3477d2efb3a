package domain

// Currency is a seeded reference row used to validate account currency codes.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // ISO 4217
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	AuditFields
}

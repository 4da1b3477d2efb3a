package models

// Category is the persisted representation of a category row.
type Category struct {
	CategoryID   string `db:"category_id"`
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	CategoryType string `db:"category_type"`
	AuditFields
}

package domain

// CategoryType scopes which transaction types a category can label.
type CategoryType string

const (
	CategoryExpense    CategoryType = "EXPENSE"
	CategoryIncome     CategoryType = "INCOME"
	CategoryInvestment CategoryType = "INVESTMENT"
)

// UncategorizedBucket is the display bucket for transactions without a
// category reference.
const UncategorizedBucket = "Other"

// Category is a per-user label grouping transactions for budgeting and
// reporting. Transactions and budgets reference it by CategoryID, so renaming
// is a single-row update.
type Category struct {
	CategoryID   string       `json:"categoryID"`
	UserID       string       `json:"userID"`
	Name         string       `json:"name"`
	CategoryType CategoryType `json:"categoryType"`
	AuditFields
}

// DefaultCategories is the starter set seeded for every new user.
func DefaultCategories() []struct {
	Name string
	Type CategoryType
} {
	return []struct {
		Name string
		Type CategoryType
	}{
		{"Food", CategoryExpense},
		{"Housing", CategoryExpense},
		{"Transport", CategoryExpense},
		{"Utilities", CategoryExpense},
		{"Entertainment", CategoryExpense},
		{"Health", CategoryExpense},
		{"Shopping", CategoryExpense},
		{"Salary", CategoryIncome},
		{"Stocks", CategoryInvestment},
	}
}

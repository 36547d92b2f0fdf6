package domain

// SeedTable is a reference table filled with default rows.
type SeedTable string

const (
	SeedDepartments       SeedTable = "departments"
	SeedFinanceCategories SeedTable = "finance_categories"
	SeedItemCategories    SeedTable = "item_categories"
)

// SeedRow is one default reference row, matched by name.
type SeedRow struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// SeedCount tallies the outcome of one seeding pass.
type SeedCount struct {
	Inserted int
	Updated  int
	Skipped  int
}

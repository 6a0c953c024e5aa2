package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemName is a row of the name search report.
type ItemName struct {
	Name string `db:"name" json:"name"`
}

// RecentItem is a row of the "added in the last N days" report. DateAdded
// is never null here, since the report filters on it.
type RecentItem struct {
	Name      string              `db:"name" json:"name"`
	Price     decimal.NullDecimal `db:"price" json:"price"`
	Category  *string             `db:"category" json:"category"`
	DateAdded time.Time           `db:"date_added" json:"date_added"`
}

// CategoryTotal is a row of the cost-per-category report. Rows without a
// category are grouped under a nil Category; a group whose prices are all
// null has an invalid TotalCost.
type CategoryTotal struct {
	Category  *string             `db:"category" json:"category"`
	TotalCost decimal.NullDecimal `db:"total_cost" json:"total_cost"`
}

// Uncategorized labels rows whose category is null.
const Uncategorized = "Uncategorized"

// CategoryName returns the category, or Uncategorized when it is null.
func CategoryName(category *string) string {
	if category == nil {
		return Uncategorized
	}
	return *category
}

// CategoryName returns the row's category label.
func (i RecentItem) CategoryName() string { return CategoryName(i.Category) }

// CategoryName returns the group's category label.
func (t CategoryTotal) CategoryName() string { return CategoryName(t.Category) }

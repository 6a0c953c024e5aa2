package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShoppingItem is one row of the shopping_list table.
//
// ID is assigned by the store on insert and never changes afterwards.
// Only id and name are NOT NULL in the table, so every other column is
// nullable here and encodes to JSON null when unset. Price is a decimal so
// currency values survive the round trip exactly; it encodes to JSON as a
// string ("12.12").
type ShoppingItem struct {
	ID        int64               `db:"id" json:"id"`
	Name      string              `db:"name" json:"name"`
	Price     decimal.NullDecimal `db:"price" json:"price"`
	Category  *string             `db:"category" json:"category"`
	DateAdded *time.Time          `db:"date_added" json:"date_added"`
	Checked   *bool               `db:"checked" json:"checked"`
}

// ItemFields is a partial ShoppingItem used for inserts and updates.
//
// A nil field means "not supplied": inserts leave it to the column default,
// updates leave the stored value untouched. There is no ID field, so the
// primary key can never be written through this type.
type ItemFields struct {
	Name      *string          `json:"name,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Category  *string          `json:"category,omitempty"`
	DateAdded *time.Time       `json:"date_added,omitempty"`
	Checked   *bool            `json:"checked,omitempty"`
}

// IsEmpty reports whether no field was supplied.
func (f ItemFields) IsEmpty() bool {
	return f.Name == nil &&
		f.Price == nil &&
		f.Category == nil &&
		f.DateAdded == nil &&
		f.Checked == nil
}

// Columns returns the supplied column names paired with their values, in
// table column order.
func (f ItemFields) Columns() ([]string, []any) {
	var (
		columns []string
		values  []any
	)

	if f.Name != nil {
		columns = append(columns, "name")
		values = append(values, *f.Name)
	}
	if f.Price != nil {
		columns = append(columns, "price")
		values = append(values, *f.Price)
	}
	if f.Category != nil {
		columns = append(columns, "category")
		values = append(values, *f.Category)
	}
	if f.DateAdded != nil {
		columns = append(columns, "date_added")
		values = append(values, *f.DateAdded)
	}
	if f.Checked != nil {
		columns = append(columns, "checked")
		values = append(values, *f.Checked)
	}

	return columns, values
}

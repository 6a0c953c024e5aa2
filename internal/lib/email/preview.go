package email

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/deppfellow/shoplist/internal/model"
)

var previewSnack, previewMain = "Snack", "Main"

// PreviewData holds sample data for every template, for local previews
// and template tests.
var PreviewData = map[Template]any{
	TemplateReportDigest: NewReportDigest(
		7,
		[]model.RecentItem{
			{
				Name:      "Test item",
				Price:     decimal.NewNullDecimal(decimal.RequireFromString("12.12")),
				Category:  &previewSnack,
				DateAdded: time.Date(2019, 6, 3, 7, 0, 0, 0, time.UTC),
			},
		},
		[]model.CategoryTotal{
			{Category: &previewSnack, TotalCost: decimal.NewNullDecimal(decimal.RequireFromString("12.12"))},
			{Category: &previewMain, TotalCost: decimal.NewNullDecimal(decimal.RequireFromString("14.12"))},
		},
	),
}

package email

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/shoplist/internal/model"
)

func ptr[T any](v T) *T { return &v }

func money(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestNewReportDigest(t *testing.T) {
	digest := NewReportDigest(3, nil, []model.CategoryTotal{
		{Category: ptr("Snack"), TotalCost: money("12.12")},
		{Category: ptr("Main"), TotalCost: money("14.12")},
		{Category: nil, TotalCost: decimal.NullDecimal{}},
	})

	assert.Equal(t, 3, digest.Days)
	assert.True(t, decimal.RequireFromString("26.24").Equal(digest.GrandTotal))
	assert.Equal(t, "Shopping list: 26.24 spent, 0 items in the last 3 days", digest.Subject())
}

func TestRender_ReportDigest(t *testing.T) {
	html, err := Render(TemplateReportDigest, PreviewData[TemplateReportDigest])
	require.NoError(t, err)

	assert.Contains(t, html, "Snack")
	assert.Contains(t, html, "14.12")
	assert.Contains(t, html, "26.24")
	assert.Contains(t, html, "Added in the last 7 days")
	assert.Contains(t, html, "Test item (Snack), 12.12, 2019-06-03")
}

func TestRender_NullColumns(t *testing.T) {
	added := time.Date(2019, 6, 3, 7, 0, 0, 0, time.UTC)
	digest := NewReportDigest(7,
		[]model.RecentItem{{Name: "X", DateAdded: added}},
		[]model.CategoryTotal{{Category: nil, TotalCost: decimal.NullDecimal{}}},
	)

	html, err := Render(TemplateReportDigest, digest)
	require.NoError(t, err)

	assert.Contains(t, html, "X (Uncategorized), no price, 2019-06-03")
	assert.Contains(t, html, "<td>Uncategorized</td>")
	assert.Contains(t, html, "0.00")
}

func TestRender_EmptyDigest(t *testing.T) {
	html, err := Render(TemplateReportDigest, NewReportDigest(7, nil, nil))
	require.NoError(t, err)

	assert.Contains(t, html, "The list is empty.")
	assert.Contains(t, html, "Nothing new.")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}

func TestPreviewData_CoversTemplates(t *testing.T) {
	for _, name := range []Template{TemplateReportDigest} {
		_, ok := PreviewData[name]
		assert.True(t, ok, "no preview data for %s", name)
	}
}

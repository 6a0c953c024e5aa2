package email

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/deppfellow/shoplist/internal/model"
)

// ReportDigest is the data rendered into the report digest email.
type ReportDigest struct {
	Days       int
	Recent     []model.RecentItem
	Totals     []model.CategoryTotal
	GrandTotal decimal.Decimal
}

// NewReportDigest assembles a digest and sums the category totals. Groups
// with no priced rows add nothing.
func NewReportDigest(days int, recent []model.RecentItem, totals []model.CategoryTotal) ReportDigest {
	grand := decimal.Zero
	for _, t := range totals {
		if t.TotalCost.Valid {
			grand = grand.Add(t.TotalCost.Decimal)
		}
	}

	return ReportDigest{
		Days:       days,
		Recent:     recent,
		Totals:     totals,
		GrandTotal: grand,
	}
}

// Subject is the email subject line for the digest.
func (d ReportDigest) Subject() string {
	return fmt.Sprintf("Shopping list: %s spent, %d items in the last %d days",
		d.GrandTotal.StringFixed(2), len(d.Recent), d.Days)
}

// SendReportDigest renders and sends d to a single recipient.
func (c *Client) SendReportDigest(to string, d ReportDigest) error {
	return c.SendEmail(to, d.Subject(), TemplateReportDigest, d)
}

package job

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/shoplist/internal/lib/email"
	"github.com/deppfellow/shoplist/internal/model"
)

// ReportSource runs the reports a digest is built from.
type ReportSource interface {
	ItemsAfterDate(ctx context.Context, daysAgo int) ([]model.RecentItem, error)
	TotalCostByCategory(ctx context.Context) ([]model.CategoryTotal, error)
}

// DigestSender delivers a rendered digest. *email.Client implements it.
type DigestSender interface {
	SendReportDigest(to string, digest email.ReportDigest) error
}

// ReportHandlers processes report tasks.
type ReportHandlers struct {
	reports ReportSource
	sender  DigestSender
	logger  *zerolog.Logger
}

// NewReportHandlers builds the report task handlers. sender may be nil, in
// which case digests are logged but never emailed.
func NewReportHandlers(reports ReportSource, sender DigestSender, logger *zerolog.Logger) *ReportHandlers {
	return &ReportHandlers{
		reports: reports,
		sender:  sender,
		logger:  logger,
	}
}

// HandleReportDigest runs the category totals and recent items reports,
// logs a summary and mails the digest when the task names a recipient.
// Returning an error makes Asynq retry the task.
func (h *ReportHandlers) HandleReportDigest(ctx context.Context, t *asynq.Task) error {
	var p ReportDigestPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return errors.Wrapf(asynq.SkipRetry, "unmarshal report digest payload: %v", err)
	}

	logger := h.logger.With().
		Str("type", TaskReportDigest).
		Int("days", p.Days).
		Logger()

	logger.Info().Msg("processing report digest task")

	totals, err := h.reports.TotalCostByCategory(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load category totals")
		return errors.Wrap(err, "report digest totals")
	}

	recent, err := h.reports.ItemsAfterDate(ctx, p.Days)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load recent items")
		return errors.Wrap(err, "report digest recent items")
	}

	digest := email.NewReportDigest(p.Days, recent, totals)

	logger.Info().
		Int("categories", len(totals)).
		Int("recent_items", len(recent)).
		Str("grand_total", digest.GrandTotal.StringFixed(2)).
		Msg("report digest built")

	if p.Recipient == "" {
		return nil
	}
	if h.sender == nil {
		logger.Warn().Str("to", p.Recipient).Msg("email not configured, digest not sent")
		return nil
	}

	if err := h.sender.SendReportDigest(p.Recipient, digest); err != nil {
		logger.Error().Err(err).Str("to", p.Recipient).Msg("failed to send report digest")
		return err
	}

	logger.Info().Str("to", p.Recipient).Msg("report digest sent")
	return nil
}

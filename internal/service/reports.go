package service

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/shoplist/internal/config"
	"github.com/deppfellow/shoplist/internal/errs"
	"github.com/deppfellow/shoplist/internal/model"
	"github.com/deppfellow/shoplist/internal/repository"
	"github.com/deppfellow/shoplist/internal/server"
)

// ReportStore is the query surface of repository.ReportRepository.
type ReportStore interface {
	SearchByName(ctx context.Context, db repository.DBTX, term string) ([]model.ItemName, error)
	Paginate(ctx context.Context, db repository.DBTX, pageNumber, pageSize int) ([]model.ShoppingItem, error)
	ItemsAfterDate(ctx context.Context, db repository.DBTX, daysAgo int) ([]model.RecentItem, error)
	TotalCostByCategory(ctx context.Context, db repository.DBTX) ([]model.CategoryTotal, error)
}

// DigestEnqueuer queues report digest tasks. *job.JobService implements it.
type DigestEnqueuer interface {
	EnqueueReportDigest(ctx context.Context, days int, recipient string) (*asynq.TaskInfo, error)
}

// ReportService runs the reports on one connection handle. It also backs
// the digest job, which calls ItemsAfterDate and TotalCostByCategory.
type ReportService struct {
	db     repository.DBTX
	repo   ReportStore
	jobs   DigestEnqueuer
	cfg    config.ReportConfig
	logger *zerolog.Logger
}

// NewReportService binds repo to the server's pool. Digest enqueueing is
// only available when the server has a job service.
func NewReportService(s *server.Server, repo ReportStore) *ReportService {
	svc := &ReportService{
		db:     s.DB.Pool,
		repo:   repo,
		cfg:    s.Config.Report,
		logger: s.Logger,
	}
	if s.Job != nil {
		svc.jobs = s.Job
	}
	return svc
}

func (s *ReportService) SearchByName(ctx context.Context, term string) ([]model.ItemName, error) {
	return s.repo.SearchByName(ctx, s.db, term)
}

func (s *ReportService) Paginate(ctx context.Context, pageNumber, pageSize int) ([]model.ShoppingItem, error) {
	return s.repo.Paginate(ctx, s.db, pageNumber, pageSize)
}

func (s *ReportService) ItemsAfterDate(ctx context.Context, daysAgo int) ([]model.RecentItem, error) {
	return s.repo.ItemsAfterDate(ctx, s.db, daysAgo)
}

func (s *ReportService) TotalCostByCategory(ctx context.Context) ([]model.CategoryTotal, error) {
	return s.repo.TotalCostByCategory(ctx, s.db)
}

// DigestRequest is a resolved digest job: zero values from the caller are
// replaced by the configured defaults.
type DigestRequest struct {
	TaskID    string `json:"task_id"`
	Queue     string `json:"queue"`
	Days      int    `json:"days"`
	Recipient string `json:"recipient,omitempty"`
}

// EnqueueDigest queues a report digest. days <= 0 and an empty recipient
// fall back to the report config.
func (s *ReportService) EnqueueDigest(ctx context.Context, days int, recipient string) (*DigestRequest, error) {
	if s.jobs == nil {
		return nil, errs.NewServiceUnavailableError()
	}

	if days <= 0 {
		days = s.cfg.DigestDays
	}
	if recipient == "" {
		recipient = s.cfg.DigestRecipient
	}

	info, err := s.jobs.EnqueueReportDigest(ctx, days, recipient)
	if err != nil {
		return nil, err
	}

	return &DigestRequest{
		TaskID:    info.ID,
		Queue:     info.Queue,
		Days:      days,
		Recipient: recipient,
	}, nil
}

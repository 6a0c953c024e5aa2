// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - tasks are enqueued (producer) through asynq.Client
//   - a server runs workers that process them (consumer) through asynq.Server
package job

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/shoplist/internal/config"
)

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client

	server   *asynq.Server
	handlers *ReportHandlers
	logger   *zerolog.Logger
}

// NewJobService creates a JobService backed by the Redis instance in cfg.
//
// Reports are not urgent, so the worker pool is small and the "default"
// queue gets most of it.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// InitHandlers sets the handlers Start registers.
func (j *JobService) InitHandlers(handlers *ReportHandlers) {
	j.handlers = handlers
}

// Start registers the task handlers and starts the worker server in the
// background.
func (j *JobService) Start() error {
	if j.handlers == nil {
		return errors.New("job handlers not initialized")
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskReportDigest, j.handlers.HandleReportDigest)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return errors.Wrap(err, "start asynq server")
	}
	return nil
}

// EnqueueReportDigest queues a digest covering the last days days.
func (j *JobService) EnqueueReportDigest(ctx context.Context, days int, recipient string) (*asynq.TaskInfo, error) {
	task, err := NewReportDigestTask(days, recipient)
	if err != nil {
		return nil, err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return nil, errors.Wrap(err, "enqueue report digest")
	}

	j.logger.Info().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int("days", days).
		Msg("report digest enqueued")

	return info, nil
}

// Stop shuts the worker down, waiting for running tasks, and closes the
// enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

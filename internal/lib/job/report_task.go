package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

const (
	// TaskReportDigest is the task type routed to HandleReportDigest.
	TaskReportDigest = "report:digest"

	// DigestTimeout bounds a single digest run, both queries and the email.
	DigestTimeout = 30 * time.Second
)

// ReportDigestPayload is the JSON body of a report digest task.
//
// Days is the look-back window for the recent items section. An empty
// Recipient means the digest is only logged.
type ReportDigestPayload struct {
	Days      int    `json:"days"`
	Recipient string `json:"recipient,omitempty"`
}

// NewReportDigestTask builds a report digest task on the default queue.
func NewReportDigestTask(days int, recipient string) (*asynq.Task, error) {
	if days < 0 {
		return nil, errors.Errorf("digest window must not be negative, got %d", days)
	}

	payload, err := json.Marshal(ReportDigestPayload{
		Days:      days,
		Recipient: recipient,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal report digest payload")
	}

	return asynq.NewTask(
		TaskReportDigest,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(DigestTimeout),
	), nil
}

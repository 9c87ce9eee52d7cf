package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
	"github.com/fundflow/backend/internal/integration/email/templates"
)

type fakeQueue struct {
	jobs   map[string]*entity.EmailJob
	purged int64
}

func newFakeQueue(jobs ...*entity.EmailJob) *fakeQueue {
	q := &fakeQueue{jobs: make(map[string]*entity.EmailJob)}
	for _, job := range jobs {
		q.jobs[job.ID.String()] = job
	}
	return q
}

func (q *fakeQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID.String()] = job
	return nil
}

func (q *fakeQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && len(pending) < limit {
			pending = append(pending, job)
		}
	}
	return pending, nil
}

func (q *fakeQueue) Update(_ context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID.String()] = job
	return nil
}

func (q *fakeQueue) PurgeSentBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var purged int64
	for id, job := range q.jobs {
		if job.Status == entity.EmailStatusSent && job.ProcessedAt != nil && job.ProcessedAt.Before(cutoff) {
			delete(q.jobs, id)
			purged++
		}
	}
	q.purged += purged
	return purged, nil
}

type fakeSender struct {
	sent      []adapter.SendEmailInput
	failWith  error
	permanent bool
}

func (s *fakeSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if s.failWith != nil {
		code := domainerror.ErrCodeTemporaryEmailFailure
		if s.permanent {
			code = domainerror.ErrCodePermanentEmailFailure
		}
		return nil, domainerror.NewEmailError(code, "send failed", s.failWith)
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ResendID: "re-123"}, nil
}

func newTestWorker(t *testing.T, queue adapter.EmailQueueRepository, sender adapter.EmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func goalCompletedJob() *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplateGoalCompleted,
		"user@example.com",
		"Jordan",
		"Goal completed: Emergency Fund - FundFlow",
		map[string]interface{}{
			"user_name":     "Jordan",
			"goal_name":     "Emergency Fund",
			"target_amount": "100000",
			"base_currency": "LKR",
		},
	)
}

func TestWorkerSendsPendingJob(t *testing.T) {
	job := goalCompletedJob()
	queue := newFakeQueue(job)
	sender := &fakeSender{}

	newTestWorker(t, queue, sender).ProcessNow(context.Background())

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(sender.sent))
	}
	if sender.sent[0].To != "user@example.com" {
		t.Errorf("unexpected recipient %q", sender.sent[0].To)
	}
	if job.Status != entity.EmailStatusSent {
		t.Errorf("expected status %q, got %q", entity.EmailStatusSent, job.Status)
	}
	if job.ResendID != "re-123" {
		t.Errorf("expected resend id to be recorded, got %q", job.ResendID)
	}
}

func TestWorkerRequeuesTemporaryFailure(t *testing.T) {
	job := goalCompletedJob()
	queue := newFakeQueue(job)
	sender := &fakeSender{failWith: errors.New("503 service unavailable")}

	newTestWorker(t, queue, sender).ProcessNow(context.Background())

	if job.Status != entity.EmailStatusPending {
		t.Fatalf("expected job back in pending, got %q", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("expected 1 attempt recorded, got %d", job.Attempts)
	}
}

func TestWorkerDropsPermanentFailure(t *testing.T) {
	job := goalCompletedJob()
	queue := newFakeQueue(job)
	sender := &fakeSender{failWith: errors.New("422 validation_error"), permanent: true}

	newTestWorker(t, queue, sender).ProcessNow(context.Background())

	if job.Status != entity.EmailStatusFailed {
		t.Fatalf("expected job failed, got %q", job.Status)
	}
}

func TestWorkerFailsUnknownTemplate(t *testing.T) {
	job := entity.NewEmailJob("password_reset", "user@example.com", "Jordan", "Reset", nil)
	queue := newFakeQueue(job)
	sender := &fakeSender{}

	newTestWorker(t, queue, sender).ProcessNow(context.Background())

	if len(sender.sent) != 0 {
		t.Fatalf("expected no email sent, got %d", len(sender.sent))
	}
	if job.Status != entity.EmailStatusFailed {
		t.Errorf("expected job failed, got %q", job.Status)
	}
}

func TestWorkerPurgesOldSentJobs(t *testing.T) {
	old := goalCompletedJob()
	old.MarkSent("re-old")
	processedAt := time.Now().UTC().Add(-45 * 24 * time.Hour)
	old.ProcessedAt = &processedAt

	recent := goalCompletedJob()
	recent.MarkSent("re-recent")

	queue := newFakeQueue(old, recent)
	worker := newTestWorker(t, queue, &fakeSender{})

	worker.maybePurgeSent(context.Background())

	if queue.purged != 1 {
		t.Fatalf("expected 1 purged job, got %d", queue.purged)
	}
	if _, ok := queue.jobs[recent.ID.String()]; !ok {
		t.Error("recent sent job should survive the purge")
	}
}

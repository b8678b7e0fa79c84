package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yungbote/crm-backend/internal/observability"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

// Job is one unit of scheduled work. Run errors are logged by the scheduler
// and never stop it.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// RunRecorder observes every finished run; observability.Metrics satisfies it.
type RunRecorder interface {
	JobFinished(job string, err error)
}

type Scheduler struct {
	log      *logger.Logger
	cron     *cron.Cron
	recorder RunRecorder
	timeout  time.Duration

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
}

func NewScheduler(baseLog *logger.Logger, recorder RunRecorder, runTimeout time.Duration) *Scheduler {
	if runTimeout <= 0 {
		runTimeout = time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		log:      baseLog.With("component", "JobScheduler"),
		cron:     cron.NewWithLocation(time.UTC),
		recorder: recorder,
		timeout:  runTimeout,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Register schedules job on spec: six cron fields with seconds
// ("0 0 8 * * *") or a descriptor such as "@every 5m".
func (s *Scheduler) Register(spec string, job Job) error {
	if job == nil {
		return fmt.Errorf("nil job")
	}
	if _, err := cron.Parse(spec); err != nil {
		return fmt.Errorf("job %s: invalid schedule %q: %w", job.Name(), spec, err)
	}
	if err := s.cron.AddFunc(spec, func() { s.RunNow(job) }); err != nil {
		return fmt.Errorf("job %s: %w", job.Name(), err)
	}
	s.log.Info("Job registered", "job", job.Name(), "schedule", spec)
	return nil
}

// RunNow runs job once on the calling goroutine with the per-run timeout.
func (s *Scheduler) RunNow(job Job) {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()
	ctx, span := observability.StartSpan(ctx, "job."+job.Name(), attribute.String("crm.job", job.Name()))
	defer span.End()

	start := time.Now()
	err := s.safeRun(ctx, job)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.recorder != nil {
		s.recorder.JobFinished(job.Name(), err)
	}
	if err != nil {
		s.log.Error("Job run failed", "job", job.Name(), "error", err, "duration_ms", time.Since(start).Milliseconds())
		return
	}
	s.log.Debug("Job run finished", "job", job.Name(), "duration_ms", time.Since(start).Milliseconds())
}

func (s *Scheduler) safeRun(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{Val: r}
		}
	}()
	return job.Run(ctx)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.cron.Start()
	s.log.Info("Job scheduler started")
}

// Stop halts scheduling and cancels runs still in flight.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		s.cron.Stop()
		s.started = false
	}
	s.cancel()
	s.log.Info("Job scheduler stopped")
}

type panicError struct{ Val any }

func (e *panicError) Error() string { return fmt.Sprintf("panic: %v", e.Val) }

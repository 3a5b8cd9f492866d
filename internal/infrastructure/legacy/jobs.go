package legacy

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobType identifies what a sync job does
type JobType string

const (
	JobExportOrders JobType = "export_orders"
	JobImportOrders JobType = "import_orders"
	JobExportMaster JobType = "export_master"
)

// JobStatus is the lifecycle state of a sync job
type JobStatus string

const (
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Job is one background sync run
type Job struct {
	ID         uuid.UUID  `json:"id"`
	Type       JobType    `json:"type"`
	Status     JobStatus  `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// Registry tracks background sync jobs in memory. Jobs survive for the
// lifetime of the process only.
type Registry struct {
	mu     sync.RWMutex
	jobs   map[uuid.UUID]*Job
	logger *zap.Logger
}

// NewRegistry creates a new job registry
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		jobs:   make(map[uuid.UUID]*Job),
		logger: logger,
	}
}

// Start launches fn on a new goroutine and returns the job immediately. The
// job's status moves to completed or failed when fn returns.
func (r *Registry) Start(jobType JobType, fn func(ctx context.Context) error) Job {
	job := &Job{
		ID:        uuid.New(),
		Type:      jobType,
		Status:    JobRunning,
		StartedAt: time.Now(),
	}

	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()

	r.logger.Info("Legacy sync job started",
		zap.String("job_id", job.ID.String()),
		zap.String("type", string(jobType)),
	)

	// Snapshot before the goroutine can mutate the shared record.
	snapshot := *job

	go func() {
		err := fn(context.Background())

		r.mu.Lock()
		defer r.mu.Unlock()

		now := time.Now()
		job.FinishedAt = &now
		if err != nil {
			job.Status = JobFailed
			job.Error = err.Error()
			r.logger.Error("Legacy sync job failed",
				zap.String("job_id", job.ID.String()),
				zap.String("type", string(jobType)),
				zap.Error(err),
			)
			return
		}
		job.Status = JobCompleted
		r.logger.Info("Legacy sync job completed",
			zap.String("job_id", job.ID.String()),
			zap.String("type", string(jobType)),
			zap.Duration("duration", now.Sub(job.StartedAt)),
		)
	}()

	return snapshot
}

// Get returns a snapshot of the job with the given id
func (r *Registry) Get(id uuid.UUID) (Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// List returns snapshots of all known jobs, newest first
func (r *Registry) List() []Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		jobs = append(jobs, *job)
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].StartedAt.After(jobs[j].StartedAt)
	})
	return jobs
}

package jobs

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/drover-cli/drover/internal/batch"
	"github.com/drover-cli/drover/pkg/types"
)

// newJobID generates a unique job ID. Extracted as a variable for testing.
var newJobID = defaultNewJobID

func defaultNewJobID() string {
	// Timestamp based ID, good enough for in-memory use.
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// BatchFactory builds a ready-to-run batch for the given accounts and region.
type BatchFactory func(accounts []types.Account, region string) *batch.Batch

// Manager manages batch job lifecycle: create, execute, track, store results.
// At most one job runs at a time: every job funnels through the same
// credentials file, so overlapping batches would scan with the wrong keys.
type Manager struct {
	mu       sync.RWMutex
	jobs     map[string]*Job
	newBatch BatchFactory
}

// NewManager creates a job manager backed by the given batch factory.
func NewManager(newBatch BatchFactory) *Manager {
	return &Manager{
		jobs:     make(map[string]*Job),
		newBatch: newBatch,
	}
}

// Create creates a new pending batch job.
func (m *Manager) Create(accounts []types.Account, region string) *Job {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, len(accounts))
	for i, a := range accounts {
		names[i] = a.Name
	}

	job := &Job{
		ID:        newJobID(),
		Accounts:  names,
		Region:    region,
		Selected:  accounts,
		Status:    StatusPending,
		CreatedAt: time.Now(),
		Progress: JobProgress{
			TotalAccounts: len(accounts),
		},
	}
	m.jobs[job.ID] = job
	return job
}

// Start launches the batch job in a background goroutine. It refuses to
// start while another job is running.
func (m *Manager) Start(jobID string) error {
	m.mu.Lock()
	job, ok := m.jobs[jobID]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("job %q not found", jobID)
	}
	for _, other := range m.jobs {
		if other.ID != jobID && (other.Status == StatusRunning) {
			m.mu.Unlock()
			return fmt.Errorf("job %q is still running; one batch at a time", other.ID)
		}
	}
	job.Status = StatusRunning
	job.StartedAt = time.Now()
	m.mu.Unlock()

	go m.execute(job)
	return nil
}

func (m *Manager) execute(job *Job) {
	defer func() {
		if r := recover(); r != nil {
			m.mu.Lock()
			job.Status = StatusFailed
			job.Error = fmt.Sprintf("panic: %v", r)
			job.CompletedAt = time.Now()
			m.mu.Unlock()
		}
	}()

	b := m.newBatch(job.Selected, job.Region)

	b.OnAccountStart = func(index int, acct types.Account) {
		m.mu.Lock()
		job.Progress.CurrentAccount = acct.Name
		m.mu.Unlock()
	}
	b.OnAccountDone = func(index int, result types.AccountResult) {
		m.mu.Lock()
		job.Results = append(job.Results, result)
		job.Progress.CompletedAccounts++
		m.mu.Unlock()
	}

	b.Run(context.Background())

	m.mu.Lock()
	job.Status = StatusCompleted
	job.CompletedAt = time.Now()
	job.Progress.CurrentAccount = ""
	m.mu.Unlock()
}

// snapshot returns a deep copy of the job. The caller must hold m.mu; the
// copy can then be read, encoded, or rendered without any lock while the
// executing goroutine keeps mutating the stored job.
func (j *Job) snapshot() *Job {
	cp := *j
	cp.Accounts = append([]string(nil), j.Accounts...)
	cp.Selected = append([]types.Account(nil), j.Selected...)
	cp.Results = append([]types.AccountResult(nil), j.Results...)
	return &cp
}

// Get returns a copy of the job with the given ID. Callers may hold on to
// the copy for as long as they like; a running batch never mutates it.
func (m *Manager) Get(jobID string) (*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job %q not found", jobID)
	}
	return job.snapshot(), nil
}

// List returns copies of all jobs sorted by CreatedAt descending.
func (m *Manager) List() []*Job {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		result = append(result, j.snapshot())
	}
	sort.Slice(result, func(i, k int) bool {
		return result[i].CreatedAt.After(result[k].CreatedAt)
	})
	return result
}

// Delete removes a job from the manager. Running jobs cannot be deleted.
func (m *Manager) Delete(jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return fmt.Errorf("job %q not found", jobID)
	}
	if job.Status == StatusRunning {
		return fmt.Errorf("job %q is running and cannot be deleted", jobID)
	}
	delete(m.jobs, jobID)
	return nil
}

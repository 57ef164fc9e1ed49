package jobs

import (
	"time"

	"github.com/drover-cli/drover/pkg/types"
)

// JobStatus represents the current state of a batch job.
type JobStatus string

const (
	StatusPending   JobStatus = "pending"
	StatusRunning   JobStatus = "running"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// JobProgress tracks account-level progress within a batch job.
type JobProgress struct {
	TotalAccounts     int    `json:"total_accounts"`
	CompletedAccounts int    `json:"completed_accounts"`
	CurrentAccount    string `json:"current_account"`
}

// Job represents an async batch job: one sequential pass over a set of
// accounts in a single region.
type Job struct {
	ID          string                `json:"id"`
	Accounts    []string              `json:"accounts"`
	Region      string                `json:"region"`
	Selected    []types.Account       `json:"-"`
	Status      JobStatus             `json:"status"`
	Results     []types.AccountResult `json:"results,omitempty"`
	Error       string                `json:"error,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	StartedAt   time.Time             `json:"started_at,omitempty"`
	CompletedAt time.Time             `json:"completed_at,omitempty"`
	Progress    JobProgress           `json:"progress"`
}

// FailureCount returns the number of accounts that need operator attention.
func (j *Job) FailureCount() int {
	n := 0
	for _, r := range j.Results {
		if r.Failed() {
			n++
		}
	}
	return n
}

package types

import "time"

// ScanStatus classifies the outcome of one account's scan.
type ScanStatus string

const (
	// StatusPassed means the scanner exited zero: every check passed.
	StatusPassed ScanStatus = "PASSED"
	// StatusFindings means the scan completed but some checks failed
	// (the scanner's distinguished non-zero exit). A warning, not an error.
	StatusFindings ScanStatus = "FINDINGS"
	// StatusFailed means the scanner exited with any other non-zero code,
	// or could not be launched at all.
	StatusFailed ScanStatus = "FAILED"
	// StatusSkipped means the scan was never attempted because the
	// account's credentials could not be installed.
	StatusSkipped ScanStatus = "SKIPPED"
)

// StatusRank returns a numeric rank for sorting (worse outcomes first).
func StatusRank(s ScanStatus) int {
	switch s {
	case StatusFailed:
		return 0
	case StatusSkipped:
		return 1
	case StatusFindings:
		return 2
	case StatusPassed:
		return 3
	default:
		return 4
	}
}

// ReportFile is one artifact the scanner wrote for an account.
type ReportFile struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// AccountResult is the outcome of one account's trip through the batch.
type AccountResult struct {
	AccountName string       `json:"account_name"`
	Region      string       `json:"region"`
	Status      ScanStatus   `json:"status"`
	ExitCode    int          `json:"exit_code"`
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt time.Time    `json:"completed_at"`
	Reports     []ReportFile `json:"reports,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// Failed reports whether the account must be counted against the batch:
// hard scan failures and skipped accounts both need operator attention.
// Findings do not fail the batch.
func (r AccountResult) Failed() bool {
	return r.Status == StatusFailed || r.Status == StatusSkipped
}

// Duration returns the wall-clock time the account's iteration took.
func (r AccountResult) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.CompletedAt.IsZero() {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}

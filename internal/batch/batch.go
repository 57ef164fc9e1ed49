// Package batch runs the account scan loop: for every account in file order,
// install its credentials, run one Prowler scan to completion, classify the
// exit, and collect the report artifacts. Strictly sequential. The shared
// credentials file holds one account at a time, so a scan must fully finish
// before the next account's keys are installed.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/drover-cli/drover/internal/credentials"
	"github.com/drover-cli/drover/internal/prowler"
	"github.com/drover-cli/drover/internal/reports"
	"github.com/drover-cli/drover/pkg/types"
)

// Batch holds everything one scan run needs. A single account's failure
// never aborts the batch; failures are reported in the returned results.
type Batch struct {
	Accounts []types.Account
	Region   string

	Store   *credentials.Store
	Runner  *prowler.Runner
	Reports *reports.Collector

	// EnvCredentials switches from mutating the shared credentials file to
	// passing the key pair in the child's environment, scoped to a single
	// invocation.
	EnvCredentials bool

	// EchoCredentials prints the credentials file contents after each
	// install so the operator can confirm which account is active.
	EchoCredentials bool

	// Log receives the operator-facing progress output. Defaults to stdout.
	Log io.Writer

	// Progress hooks, used by the TUI and the web job manager. Either may
	// be nil.
	OnAccountStart func(index int, acct types.Account)
	OnAccountDone  func(index int, result types.AccountResult)
}

// Run processes every account in order and returns one result per account.
// It stops early only when ctx is cancelled; results for accounts never
// reached are not synthesized.
func (b *Batch) Run(ctx context.Context) []types.AccountResult {
	log := b.Log
	if log == nil {
		log = os.Stdout
	}

	results := make([]types.AccountResult, 0, len(b.Accounts))

	for i, acct := range b.Accounts {
		if ctx.Err() != nil {
			break
		}

		if b.OnAccountStart != nil {
			b.OnAccountStart(i, acct)
		}

		fmt.Fprintf(log, "%s processing account %s (%d/%d)\n",
			color.CyanString("==>"), color.New(color.Bold).Sprint(acct.Name), i+1, len(b.Accounts))

		result := b.runOne(ctx, acct, log)
		results = append(results, result)

		b.logOutcome(log, result)

		if b.OnAccountDone != nil {
			b.OnAccountDone(i, result)
		}
	}

	return results
}

// RunAccount processes the single account at index and returns its result.
// The TUI drives the batch one account at a time through this method.
func (b *Batch) RunAccount(ctx context.Context, index int) types.AccountResult {
	log := b.Log
	if log == nil {
		log = os.Stdout
	}
	return b.runOne(ctx, b.Accounts[index], log)
}

// runOne handles one account: credential install, scan, report collection.
func (b *Batch) runOne(ctx context.Context, acct types.Account, log io.Writer) types.AccountResult {
	result := types.AccountResult{
		AccountName: acct.Name,
		Region:      b.Region,
		StartedAt:   time.Now(),
	}

	req := prowler.Request{Region: b.Region, Account: acct.Name}

	if b.EnvCredentials {
		req.ExtraEnv = credentials.Env(acct, b.Region)
	} else {
		if err := b.Store.Install(acct); err != nil {
			result.Status = types.StatusSkipped
			result.Error = err.Error()
			result.CompletedAt = time.Now()
			return result
		}
		if b.EchoCredentials {
			if content, err := b.Store.Current(); err == nil {
				fmt.Fprintf(log, "credentials file %s:\n%s", b.Store.Path(), content)
			}
		}
	}

	fmt.Fprintf(log, "running %s\n", b.Runner.CommandLine(req))

	status, code, err := b.Runner.Scan(ctx, req)
	result.Status = status
	result.ExitCode = code
	if err != nil {
		result.Error = err.Error()
	}
	result.CompletedAt = time.Now()

	if b.Reports != nil {
		if files, rerr := b.Reports.Collect(acct.Name); rerr == nil {
			result.Reports = files
		}
	}

	return result
}

func (b *Batch) logOutcome(log io.Writer, r types.AccountResult) {
	switch r.Status {
	case types.StatusPassed:
		fmt.Fprintf(log, "%s %s: all checks passed\n", color.GreenString("PASSED"), r.AccountName)
	case types.StatusFindings:
		fmt.Fprintf(log, "%s %s: scan completed with failed checks (exit %d)\n",
			color.YellowString("FINDINGS"), r.AccountName, r.ExitCode)
	case types.StatusSkipped:
		fmt.Fprintf(log, "%s %s: %s\n", color.YellowString("SKIPPED"), r.AccountName, r.Error)
	default:
		fmt.Fprintf(log, "%s %s: %s\n", color.RedString("FAILED"), r.AccountName, r.Error)
	}
}

// FailureCount returns how many results need operator attention.
func FailureCount(results []types.AccountResult) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/drover-cli/drover/internal/accounts"
	"github.com/drover-cli/drover/internal/batch"
	"github.com/drover-cli/drover/internal/credentials"
	"github.com/drover-cli/drover/internal/output"
	"github.com/drover-cli/drover/internal/prowler"
	"github.com/drover-cli/drover/internal/reports"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	envCredsFlag bool
	quietFlag    bool
)

var runCmd = &cobra.Command{
	Use:   "run <accounts.csv> <region>",
	Short: "Scan every account in the CSV with Prowler",
	Long: `Reads accounts from the CSV file and, for each one in file order,
installs its credentials and runs a Prowler scan to completion before
moving to the next. A single account's failure never stops the batch.`,
	Args: cobra.ExactArgs(2),
	RunE: runBatch,
}

func init() {
	runCmd.Flags().BoolVar(&envCredsFlag, "env-credentials", false, "pass credentials in the child environment instead of rewriting the credentials file")
	runCmd.Flags().BoolVar(&quietFlag, "quiet", false, "do not stream prowler output to the terminal")
}

func runBatch(cmd *cobra.Command, args []string) error {
	csvPath, region := args[0], args[1]
	if region == "" {
		return fmt.Errorf("region cannot be empty")
	}

	formatter, err := output.GetFormatter(outputFlag)
	if err != nil {
		return err
	}

	accts, rowErrs, err := accounts.Load(csvPath)
	if err != nil {
		return err
	}
	reportRowErrors(cmd.ErrOrStderr(), rowErrs)
	if len(accts) == 0 {
		return fmt.Errorf("no valid accounts in %s", csvPath)
	}

	runner := prowler.NewRunner(appConfig.ProwlerBin)
	if quietFlag || !appConfig.StreamOutput {
		runner.Stdout = io.Discard
		runner.Stderr = io.Discard
	}

	b := &batch.Batch{
		Accounts:        accts,
		Region:          region,
		Store:           credentials.NewStore(appConfig.CredentialsFile),
		Runner:          runner,
		Reports:         reports.NewCollector(appConfig.OutputDir),
		EnvCredentials:  envCredsFlag || appConfig.EnvCredentials,
		EchoCredentials: verboseFlag,
		Log:             cmd.OutOrStdout(),
	}

	results := b.Run(cmd.Context())

	if err := formatter.Format(os.Stdout, results); err != nil {
		return err
	}

	if n := batch.FailureCount(results); n > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %d of %d accounts need attention\n",
			color.RedString("!"), n, len(results))
	}
	return nil
}

// reportRowErrors prints one warning per skipped CSV row.
func reportRowErrors(w io.Writer, rowErrs []accounts.RowError) {
	for _, re := range rowErrs {
		fmt.Fprintf(w, "%s skipping row: %v\n", color.YellowString("warning:"), re)
	}
}

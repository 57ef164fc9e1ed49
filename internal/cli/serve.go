package cli

import (
	"fmt"
	"io"

	"github.com/drover-cli/drover/internal/accounts"
	"github.com/drover-cli/drover/internal/batch"
	"github.com/drover-cli/drover/internal/credentials"
	"github.com/drover-cli/drover/internal/prowler"
	"github.com/drover-cli/drover/internal/reports"
	"github.com/drover-cli/drover/internal/web"
	"github.com/drover-cli/drover/pkg/types"
	"github.com/spf13/cobra"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve <accounts.csv>",
	Short: "Start the Drover web server",
	Long: `Launches the Drover web interface for submitting scan batches from a
browser. The account roster is loaded once at startup; batches run one at a
time because every scan funnels through the same credentials file.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", ":3000", "listen address (host:port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	accts, rowErrs, err := accounts.Load(args[0])
	if err != nil {
		return err
	}
	reportRowErrors(cmd.ErrOrStderr(), rowErrs)
	if len(accts) == 0 {
		return fmt.Errorf("no valid accounts in %s", args[0])
	}

	newBatch := func(selected []types.Account, region string) *batch.Batch {
		// Web batches run in the background; prowler output is not
		// streamed anywhere an operator could see it.
		runner := prowler.NewRunner(appConfig.ProwlerBin)
		runner.Stdout = io.Discard
		runner.Stderr = io.Discard

		return &batch.Batch{
			Accounts:       selected,
			Region:         region,
			Store:          credentials.NewStore(appConfig.CredentialsFile),
			Runner:         runner,
			Reports:        reports.NewCollector(appConfig.OutputDir),
			EnvCredentials: appConfig.EnvCredentials,
			Log:            io.Discard,
		}
	}

	s := web.NewServer(addrFlag, accts, newBatch)
	fmt.Fprintf(cmd.OutOrStdout(), "Drover web server listening on %s\n", addrFlag)
	return s.Start()
}

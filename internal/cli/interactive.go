package cli

import (
	"io"

	"github.com/drover-cli/drover/internal/accounts"
	"github.com/drover-cli/drover/internal/batch"
	"github.com/drover-cli/drover/internal/credentials"
	"github.com/drover-cli/drover/internal/prowler"
	"github.com/drover-cli/drover/internal/reports"
	"github.com/drover-cli/drover/internal/tui"
	"github.com/drover-cli/drover/pkg/types"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive <accounts.csv> <region>",
	Short: "Launch interactive TUI mode",
	Long:  "Start an interactive terminal UI for picking which accounts to scan and watching the batch run.",
	Args:  cobra.ExactArgs(2),
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	accts, rowErrs, err := accounts.Load(args[0])
	if err != nil {
		return err
	}
	reportRowErrors(cmd.ErrOrStderr(), rowErrs)

	return tui.Run(tui.Options{
		Accounts: accts,
		Region:   args[1],
		NewBatch: func(selected []types.Account, region string) *batch.Batch {
			// The alt screen owns the terminal, so prowler output is not
			// streamed in interactive mode.
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
		},
	})
}

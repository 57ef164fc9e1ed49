package cli

import (
	"fmt"

	"github.com/drover-cli/drover/internal/accounts"
	"github.com/drover-cli/drover/internal/reports"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports <accounts.csv>",
	Short: "List the report files Prowler wrote for each account",
	Args:  cobra.ExactArgs(1),
	RunE:  runReports,
}

func runReports(cmd *cobra.Command, args []string) error {
	accts, rowErrs, err := accounts.Load(args[0])
	if err != nil {
		return err
	}
	reportRowErrors(cmd.ErrOrStderr(), rowErrs)

	collector := reports.NewCollector(appConfig.OutputDir)
	w := cmd.OutOrStdout()

	total := 0
	for _, acct := range accts {
		files, err := collector.Collect(acct.Name)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s (%d files)\n", color.New(color.Bold).Sprint(acct.Name), len(files))
		for _, f := range files {
			fmt.Fprintf(w, "  %s (%d bytes)\n", f.Path, f.Size)
		}
		total += len(files)
	}

	fmt.Fprintf(w, "%d report files under %s\n", total, collector.Dir())
	return nil
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/drover-cli/drover/internal/accounts"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts <accounts.csv>",
	Short: "Validate and list the accounts in a CSV file",
	Long:  "Parses the accounts CSV without scanning anything: lists the valid rows and reports the rows that would be skipped.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccounts,
}

func runAccounts(cmd *cobra.Command, args []string) error {
	accts, rowErrs, err := accounts.Load(args[0])
	if err != nil {
		return err
	}

	reportRowErrors(cmd.ErrOrStderr(), rowErrs)

	w := cmd.OutOrStdout()
	if len(accts) == 0 {
		fmt.Fprintln(w, "No valid accounts.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Account", "Access Key ID"})
	table.SetBorder(false)
	table.SetColumnSeparator("│")
	for i, a := range accts {
		table.Append([]string{strconv.Itoa(i + 1), a.Name, maskKey(a.AccessKeyID)})
	}
	table.Render()

	fmt.Fprintf(w, "  %d valid accounts, %d rows skipped\n", len(accts), len(rowErrs))
	return nil
}

// maskKey hides the middle of an access key ID, keeping enough of both ends
// for the operator to recognise it.
func maskKey(key string) string {
	if len(key) <= 8 {
		return key
	}
	return key[:4] + "…" + key[len(key)-4:]
}

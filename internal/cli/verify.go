package cli

import (
	"fmt"

	"github.com/drover-cli/drover/internal/accounts"
	"github.com/drover-cli/drover/internal/awsid"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var verifyRegionFlag string

var verifyCmd = &cobra.Command{
	Use:   "verify <accounts.csv>",
	Short: "Check each account's key pair against STS",
	Long: `Calls STS GetCallerIdentity with every key pair in the CSV and prints
the AWS account ID and ARN each one resolves to. Catches stale or
mislabelled credentials before a full scan is spent on them.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyRegionFlag, "region", "", "region for the STS endpoint (default us-east-1)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	accts, rowErrs, err := accounts.Load(args[0])
	if err != nil {
		return err
	}
	reportRowErrors(cmd.ErrOrStderr(), rowErrs)
	if len(accts) == 0 {
		return fmt.Errorf("no valid accounts in %s", args[0])
	}

	verifier := awsid.NewVerifier()
	w := cmd.OutOrStdout()
	failures := 0

	for _, acct := range accts {
		id, err := verifier.Verify(cmd.Context(), acct, verifyRegionFlag)
		if err != nil {
			failures++
			fmt.Fprintf(w, "%s %s: %v\n", color.RedString("✗"), acct.Name, err)
			continue
		}
		fmt.Fprintf(w, "%s %s: account %s (%s)\n", color.GreenString("✓"), acct.Name, id.AccountID, id.ARN)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d accounts failed verification", failures, len(accts))
	}
	fmt.Fprintf(w, "all %d accounts verified\n", len(accts))
	return nil
}

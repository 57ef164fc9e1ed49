package cli

import (
	"fmt"

	"github.com/drover-cli/drover/internal/config"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	outputFlag     string
	verboseFlag    bool
	prowlerBinFlag string
	credsFileFlag  string
	outputDirFlag  string
)

// appConfig holds the loaded configuration, available after PersistentPreRunE.
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "drover",
	Short: "Drover — multi-account AWS security scanning with Prowler",
	Long: `Drover reads AWS account credentials from a CSV file, installs each
key pair into the local AWS credentials file, and runs the Prowler
security scanner once per account, streaming its output live and
summarising outcomes at the end of the batch.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		config.ApplyFlags(cfg, cmd)

		// Sync config values back to flag variables so all commands pick
		// up config-file and env-var defaults transparently.
		outputFlag = cfg.OutputFormat
		prowlerBinFlag = cfg.ProwlerBin
		credsFileFlag = cfg.CredentialsFile
		outputDirFlag = cfg.OutputDir

		appConfig = cfg
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "table", "summary format: table, json, markdown, html")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&prowlerBinFlag, "prowler-bin", "prowler", "path to the prowler binary")
	rootCmd.PersistentFlags().StringVar(&credsFileFlag, "credentials-file", "", "AWS credentials file to overwrite (default ~/.aws/credentials)")
	rootCmd.PersistentFlags().StringVar(&outputDirFlag, "output-dir", "output", "directory prowler writes its reports to")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(versionCmd)
}

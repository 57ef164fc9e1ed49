package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drover-cli/drover/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCmd(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	// Capture stdout for commands that write to os.Stdout.
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var captured bytes.Buffer
	captured.ReadFrom(r)

	// Combine cobra output and stdout capture.
	output := buf.String() + captured.String()
	return output, err
}

// writeTestCSV writes an accounts CSV with a header row and returns its path.
func writeTestCSV(t *testing.T, rows ...string) string {
	t.Helper()
	lines := append([]string{"account,access_key,secret_key"}, rows...)
	path := filepath.Join(t.TempDir(), "accounts.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

// writeStubProwler writes an executable script that exits with the given
// code, standing in for the real scanner binary.
func writeStubProwler(t *testing.T, exitCode string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prowler")
	script := "#!/bin/sh\nexit " + exitCode + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCmd("version")
	require.NoError(t, err)
	assert.Contains(t, output, "drover version")
}

func TestRootHelpListsCommands(t *testing.T) {
	output, err := executeCmd("--help")
	require.NoError(t, err)
	for _, name := range []string{"run", "accounts", "verify", "reports", "interactive", "serve", "version"} {
		assert.Contains(t, output, name)
	}
}

func TestAccountsCommand(t *testing.T) {
	csv := writeTestCSV(t,
		"prod,AKIAIOSFODNN7PROD01,wJalrXUtnFEMI1",
		"staging,AKIAIOSFODNN7STAG02,wJalrXUtnFEMI2",
	)

	output, err := executeCmd("accounts", csv)
	require.NoError(t, err)
	assert.Contains(t, output, "prod")
	assert.Contains(t, output, "staging")
	assert.Contains(t, output, "2 valid accounts, 0 rows skipped")
	// Full keys never appear in listings.
	assert.NotContains(t, output, "AKIAIOSFODNN7PROD01")
}

func TestAccountsCommandReportsBadRows(t *testing.T) {
	csv := writeTestCSV(t,
		"prod,AKIAIOSFODNN7PROD01,wJalrXUtnFEMI1",
		"only-two-fields,AKIA",
	)

	output, err := executeCmd("accounts", csv)
	require.NoError(t, err)
	assert.Contains(t, output, "1 valid accounts, 1 rows skipped")
	assert.Contains(t, output, "skipping row")
}

func TestAccountsCommandMissingFile(t *testing.T) {
	_, err := executeCmd("accounts", "/nonexistent/accounts.csv")
	assert.Error(t, err)
}

func TestRunMissingArgs(t *testing.T) {
	_, err := executeCmd("run")
	assert.Error(t, err)
}

func TestRunWithStubScanner(t *testing.T) {
	csv := writeTestCSV(t, "prod,AKIAIOSFODNN7PROD01,wJalrXUtnFEMI1")
	stub := writeStubProwler(t, "0")
	dir := t.TempDir()

	output, err := executeCmd("run", csv, "us-east-1",
		"--prowler-bin", stub,
		"--credentials-file", filepath.Join(dir, "credentials"),
		"--output-dir", filepath.Join(dir, "output"),
		"-o", "table",
		"--quiet")
	require.NoError(t, err)

	assert.Contains(t, output, "prod")
	assert.Contains(t, output, "PASSED")
	assert.NotContains(t, output, "need attention")
}

func TestRunJSONOutput(t *testing.T) {
	csv := writeTestCSV(t, "prod,AKIAIOSFODNN7PROD01,wJalrXUtnFEMI1")
	stub := writeStubProwler(t, "3")
	dir := t.TempDir()

	output, err := executeCmd("run", csv, "eu-west-1",
		"--prowler-bin", stub,
		"--credentials-file", filepath.Join(dir, "credentials"),
		"--output-dir", filepath.Join(dir, "output"),
		"-o", "json",
		"--quiet")
	require.NoError(t, err)

	// The summary JSON follows the progress log on stdout.
	start := strings.Index(output, "[")
	require.GreaterOrEqual(t, start, 0)

	var results []types.AccountResult
	require.NoError(t, json.Unmarshal([]byte(output[start:]), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "prod", results[0].AccountName)
	assert.Equal(t, types.StatusFindings, results[0].Status)
	assert.Equal(t, 3, results[0].ExitCode)
	assert.Equal(t, "eu-west-1", results[0].Region)
}

func TestRunHardFailureReportsAttention(t *testing.T) {
	csv := writeTestCSV(t, "prod,AKIAIOSFODNN7PROD01,wJalrXUtnFEMI1")
	stub := writeStubProwler(t, "2")
	dir := t.TempDir()

	output, err := executeCmd("run", csv, "us-east-1",
		"--prowler-bin", stub,
		"--credentials-file", filepath.Join(dir, "credentials"),
		"--output-dir", filepath.Join(dir, "output"),
		"-o", "table",
		"--quiet")
	require.NoError(t, err)

	assert.Contains(t, output, "FAILED")
	assert.Contains(t, output, "1 of 1 accounts need attention")
}

func TestRunWritesCredentialsFile(t *testing.T) {
	csv := writeTestCSV(t, "prod,AKIAIOSFODNN7PROD01,wJalrXUtnFEMI1")
	stub := writeStubProwler(t, "0")
	dir := t.TempDir()
	credsPath := filepath.Join(dir, "credentials")

	_, err := executeCmd("run", csv, "us-east-1",
		"--prowler-bin", stub,
		"--credentials-file", credsPath,
		"--output-dir", filepath.Join(dir, "output"),
		"--quiet")
	require.NoError(t, err)

	data, err := os.ReadFile(credsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[default]")
	assert.Contains(t, string(data), "aws_access_key_id = AKIAIOSFODNN7PROD01")
}

func TestRunEnvCredentialsLeavesFileAlone(t *testing.T) {
	csv := writeTestCSV(t, "prod,AKIAIOSFODNN7PROD01,wJalrXUtnFEMI1")
	stub := writeStubProwler(t, "0")
	dir := t.TempDir()
	credsPath := filepath.Join(dir, "credentials")

	_, err := executeCmd("run", csv, "us-east-1",
		"--prowler-bin", stub,
		"--credentials-file", credsPath,
		"--output-dir", filepath.Join(dir, "output"),
		"--env-credentials",
		"--quiet")
	require.NoError(t, err)

	_, statErr := os.Stat(credsPath)
	assert.True(t, os.IsNotExist(statErr), "credentials file should not be written in env mode")
}

func TestRunEmptyCSV(t *testing.T) {
	csv := writeTestCSV(t)
	stub := writeStubProwler(t, "0")

	_, err := executeCmd("run", csv, "us-east-1", "--prowler-bin", stub, "--quiet")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no valid accounts")
}

func TestReportsCommand(t *testing.T) {
	csv := writeTestCSV(t, "prod,AKIAIOSFODNN7PROD01,wJalrXUtnFEMI1")
	dir := t.TempDir()
	outDir := filepath.Join(dir, "output")
	require.NoError(t, os.MkdirAll(outDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "prod.csv"), []byte("findings"), 0o644))

	output, err := executeCmd("reports", csv, "--output-dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, output, "prod (1 files)")
	assert.Contains(t, output, "1 report files under "+outDir)
}

func TestVerifyMissingFile(t *testing.T) {
	_, err := executeCmd("verify", "/nonexistent/accounts.csv")
	assert.Error(t, err)
}

package accounts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Account Name,Access Key ID,Secret Access Key\n"

func TestParse(t *testing.T) {
	input := header +
		"prod,AKIAPROD,prodsecret\n" +
		"staging,AKIASTAGING,stagingsecret\n"

	accts, rowErrs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)

	require.Len(t, accts, 2)
	assert.Equal(t, "prod", accts[0].Name)
	assert.Equal(t, "AKIAPROD", accts[0].AccessKeyID)
	assert.Equal(t, "prodsecret", accts[0].SecretAccessKey)
	assert.Equal(t, "staging", accts[1].Name)
}

func TestParse_SkipsHeader(t *testing.T) {
	accts, rowErrs, err := Parse(strings.NewReader(header))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Empty(t, accts)
}

func TestParse_MalformedRowDoesNotAbort(t *testing.T) {
	input := header +
		"broken,AKIABROKEN\n" + // missing a column
		"prod,AKIAPROD,prodsecret\n"

	accts, rowErrs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rowErrs, 1)
	assert.Equal(t, 2, rowErrs[0].Line)
	assert.Contains(t, rowErrs[0].Error(), "expected 3 columns")

	require.Len(t, accts, 1)
	assert.Equal(t, "prod", accts[0].Name)
}

func TestParse_InvalidAccountRows(t *testing.T) {
	input := header +
		",AKIA,secret\n" + // empty name
		"bad name,AKIA,secret\n" + // unsafe name
		"prod,,secret\n" + // no access key
		"ok,AKIAOK,oksecret\n"

	accts, rowErrs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Len(t, rowErrs, 3)
	require.Len(t, accts, 1)
	assert.Equal(t, "ok", accts[0].Name)
}

func TestParse_PreservesFileOrder(t *testing.T) {
	input := header +
		"zulu,AKIAZ,sz\n" +
		"alpha,AKIAA,sa\n" +
		"mike,AKIAM,sm\n"

	accts, _, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, accts, 3)
	assert.Equal(t, "zulu", accts[0].Name)
	assert.Equal(t, "alpha", accts[1].Name)
	assert.Equal(t, "mike", accts[2].Name)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accounts.csv")
	err := os.WriteFile(path, []byte(header+"prod,AKIAPROD,prodsecret\n"), 0o600)
	require.NoError(t, err)

	accts, rowErrs, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, accts, 1)
	assert.Equal(t, "prod", accts[0].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

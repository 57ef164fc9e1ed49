package reports

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCollector_Collect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "prod.csv"), "a,b\n")
	writeFile(t, filepath.Join(dir, "prod.html"), "<html></html>")
	writeFile(t, filepath.Join(dir, "prod.ocsf.json"), "{}")
	writeFile(t, filepath.Join(dir, "compliance", "cis_1.5_aws_prod.csv"), "x\n")
	writeFile(t, filepath.Join(dir, "staging.csv"), "c,d\n")

	c := NewCollector(dir)
	files, err := c.Collect("prod")
	require.NoError(t, err)

	require.Len(t, files, 4)
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = filepath.Base(f.Path)
		assert.Positive(t, f.Size)
	}
	assert.Contains(t, paths, "prod.csv")
	assert.Contains(t, paths, "prod.html")
	assert.Contains(t, paths, "prod.ocsf.json")
	assert.Contains(t, paths, "cis_1.5_aws_prod.csv")
	assert.NotContains(t, paths, "staging.csv")
}

func TestCollector_CollectMissingDir(t *testing.T) {
	c := NewCollector(filepath.Join(t.TempDir(), "missing"))
	files, err := c.Collect("prod")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestCollector_CollectSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "prod.html"), "h")
	writeFile(t, filepath.Join(dir, "prod.csv"), "c")

	c := NewCollector(dir)
	files, err := c.Collect("prod")
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "prod.csv"), files[0].Path)
	assert.Equal(t, filepath.Join(dir, "prod.html"), files[1].Path)
}

func TestNewCollector_DefaultDir(t *testing.T) {
	c := NewCollector("")
	assert.Equal(t, DefaultDir, c.Dir())
}

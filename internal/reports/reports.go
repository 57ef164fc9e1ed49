// Package reports locates the artifacts Prowler leaves behind. For an
// account named "prod" Prowler writes output/prod.ocsf.json, output/prod.csv,
// output/prod.html plus compliance files under output/compliance/. The files
// are collected by path only, never parsed.
package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/drover-cli/drover/pkg/types"
)

// DefaultDir is where Prowler writes its reports relative to the working
// directory.
const DefaultDir = "output"

// Collector lists report artifacts under a fixed output directory.
type Collector struct {
	dir string
}

// NewCollector creates a collector rooted at dir. An empty dir selects
// DefaultDir.
func NewCollector(dir string) *Collector {
	if dir == "" {
		dir = DefaultDir
	}
	return &Collector{dir: dir}
}

// Dir returns the output directory the collector scans.
func (c *Collector) Dir() string {
	return c.dir
}

// Collect returns every artifact written for the named account, sorted by
// path. A missing output directory yields an empty list, not an error: the
// scanner may simply not have produced anything for the account.
func (c *Collector) Collect(account string) ([]types.ReportFile, error) {
	patterns := []string{
		filepath.Join(c.dir, account+".*"),
		filepath.Join(c.dir, "compliance", "*"+account+"*"),
	}

	var files []types.ReportFile
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			files = append(files, types.ReportFile{Path: m, Size: info.Size()})
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

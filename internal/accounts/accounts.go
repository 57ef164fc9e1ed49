// Package accounts reads the accounts CSV that drives a batch. The file has
// a header row followed by one row per account with the columns
// Account Name, Access Key ID, Secret Access Key.
package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/drover-cli/drover/pkg/types"
)

// RowError describes a single CSV row that could not be turned into an
// account. Malformed rows are skipped, never fatal: one bad entry must not
// stop the rest of the batch.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Load reads the accounts file at path. It returns the valid accounts in
// file order plus a RowError for every row it had to skip. A missing or
// unreadable file is an error; malformed rows are not.
func Load(path string) ([]types.Account, []RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open accounts file: %w", err)
	}
	defer f.Close()

	accts, rowErrs, err := Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parse accounts file %s: %w", path, err)
	}
	return accts, rowErrs, nil
}

// Parse reads CSV account rows from r. The first row is the header and is
// always skipped.
func Parse(r io.Reader) ([]types.Account, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row length is validated per row
	cr.TrimLeadingSpace = true

	var (
		accts   []types.Account
		rowErrs []RowError
		line    int
	)

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				rowErrs = append(rowErrs, RowError{Line: line, Err: err})
				continue
			}
			return nil, nil, err
		}

		// Header row.
		if line == 1 {
			continue
		}

		if len(record) != 3 {
			rowErrs = append(rowErrs, RowError{
				Line: line,
				Err:  fmt.Errorf("expected 3 columns, got %d", len(record)),
			})
			continue
		}

		acct, err := types.ParseAccount(record[0], record[1], record[2])
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err})
			continue
		}

		accts = append(accts, acct)
	}

	return accts, rowErrs, nil
}

package output

import (
	"encoding/json"
	"io"

	"github.com/drover-cli/drover/pkg/types"
)

// JSONFormatter renders the batch summary as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, results []types.AccountResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

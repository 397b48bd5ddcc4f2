package output

import (
	"encoding/json"
	"io"

	"github.com/critique-dev/critique/internal/review"
)

// JSONWriter outputs the full review as indented JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, rev *review.Review) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rev)
}

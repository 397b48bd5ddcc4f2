package output

import (
	"fmt"
	"io"
	"os"

	"github.com/critique-dev/critique/internal/review"
)

// Writer writes a review in a specific format.
type Writer interface {
	Write(w io.Writer, rev *review.Review) error
}

// writers maps format names to constructors. "md" is an alias
// for "markdown".
var writers = map[string]func() Writer{
	"text":     func() Writer { return &TextWriter{} },
	"json":     func() Writer { return &JSONWriter{} },
	"markdown": func() Writer { return &MarkdownWriter{} },
	"md":       func() Writer { return &MarkdownWriter{} },
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	mk, ok := writers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return mk(), nil
}

// WriteReview formats the review and writes it to outPath, or to
// stdout when outPath is empty.
func WriteReview(rev *review.Review, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}
	w, closeFn, err := openDest(outPath)
	if err != nil {
		return err
	}
	defer closeFn()
	return writer.Write(w, rev)
}

func openDest(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

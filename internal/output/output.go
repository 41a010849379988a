// Package output appends generated credentials to a flat text file.
// Files are only ever appended to; existing content is never rewritten or read back.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/zarlcorp/randcred/internal/credential"
	"github.com/zarlcorp/randcred/internal/generate"
)

// NameLen is the length of a generated output file name.
const NameLen = 10

// ResolvePath returns path, or a random hex file name when path is empty.
func ResolvePath(path string, g *generate.Generator) string {
	if path != "" {
		return path
	}
	return g.HexName(NameLen)
}

// Format renders a record as the block Append writes.
// The label line is omitted when the label is empty.
func Format(rec credential.Record) string {
	var b strings.Builder
	if rec.Label != "" {
		fmt.Fprintf(&b, "%s:\n", rec.Label)
	}
	fmt.Fprintf(&b, "  -- Username: %s\n", rec.Username)
	fmt.Fprintf(&b, "  -- Password: %s\n", rec.Password)
	return b.String()
}

// Append opens path in append mode, creating it if needed, writes one
// record block and closes the file. It returns the number of bytes written.
func Append(path string, rec credential.Record) (n int, err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return 0, fmt.Errorf("output: open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("output: close %s: %w", path, cerr)
		}
	}()

	n, err = f.WriteString(Format(rec))
	if err != nil {
		return n, fmt.Errorf("output: write %s: %w", path, err)
	}
	return n, nil
}

package annualreport

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal issue recorded while building a document. The
// document is still built; the warning explains an adjustment that was made.
type Warning struct {
	// Block is the index of the affected block in the document.
	Block   int
	Message string
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("block %d: %s", w.Block, w.Message)
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

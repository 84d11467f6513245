// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// PrintUpload outputs the envelope of one parsed upload.
func (p *Printer) PrintUpload(filename, fileType string, textLength int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", filename))
	if fileType != "" {
		sb.WriteString(fmt.Sprintf("Type:     %s\n", fileType))
	}
	sb.WriteString(fmt.Sprintf("Text:     %d chars", textLength))

	p.printBox("UPLOADED RESUME", sb.String())
}

// PrintRecord outputs a human-readable summary of a normalized record: the
// name, then each section with its first few entries.
func (p *Printer) PrintRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	name := "(none)"
	if record.Name != nil {
		name = *record.Name
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	sb.WriteString("\n")

	for _, section := range record.Sections() {
		if len(section.Items) == 0 {
			sb.WriteString(fmt.Sprintf("%s: none\n", section.Title))
			continue
		}

		sb.WriteString(fmt.Sprintf("%s (%d):\n", section.Title, len(section.Items)))
		count := min(len(section.Items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", section.Items[i]))
		}
		if len(section.Items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(section.Items)-maxItemsToShow))
		}
	}

	if len(record.RawEntities) > 0 {
		sb.WriteString(fmt.Sprintf("\nRaw categories: %s", strings.Join(rawCategories(record.RawEntities), ", ")))
	}

	p.printBox("NORMALIZED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

func rawCategories(raw types.RawExtraction) []string {
	return types.ObjectValue(raw).Keys()
}

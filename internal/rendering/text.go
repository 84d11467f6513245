package rendering

import (
	"fmt"
	"strings"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/types"
)

// RenderText renders the human-readable plain-text export.
// Skills are comma-joined on one line; the other sections are numbered from 1.
// Empty sections are left out entirely.
func RenderText(record types.ResumeRecord) string {
	var sb strings.Builder
	sb.WriteString(record.Subject())
	sb.WriteString("\n\n")

	for _, section := range record.NonEmptySections() {
		sb.WriteString(strings.ToUpper(section.Title))
		sb.WriteString(":\n")

		if section.ID == types.SectionSkills {
			sb.WriteString(strings.Join(section.Items, ", "))
			sb.WriteString("\n\n")
			continue
		}

		for i, item := range section.Items {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
		}
		if section.ID != types.SectionLanguages {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Package export renders a project scope and its question set into the
// downloadable artifacts offered on the review step: a plain-text summary,
// a questions JSON document, and two PDFs.
package export

import (
	"fmt"
	"strings"
	"time"

	"legacy-server/internal/models"
)

const bannerWidth = 60

// TextSummary renders the project scope as a plain-text document.
func TextSummary(scope *models.ProjectScope) string {
	banner := strings.Repeat("=", bannerWidth)
	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line(banner)
	line("LIVING LEGACY — PROJECT SCOPE SUMMARY")
	line(banner)
	line("Created: %s", scope.CreatedAt.Format(time.RFC3339))
	line("Project ID: %s", scope.ProjectID)
	line("")

	line("LEGACY TYPE: %s", scope.LegacyType)
	line("  %s", scope.LegacyDescription)
	line("")

	line("SUBJECT")
	line("  Name: %s", scope.Subject.Name)
	line("  Relationship: %s", scope.Subject.Relationship)
	line("")

	line("SCOPING DETAILS")
	for _, detail := range scope.ScopingDetails {
		line("  Q: %s", detail.Question)
		line("  A: %s", detail.Answer.Display())
		line("")
	}

	line("TARGET AUDIENCE")
	line("  %s", strings.Join(scope.TargetAudience, ", "))
	if scope.AudienceNotes != "" {
		line("  Notes: %s", scope.AudienceNotes)
	}
	line("")

	line("DELIVERY FORMAT(S)")
	line("  %s", strings.Join(scope.DeliveryFormats, ", "))
	line("")

	line("TIMELINE: %s", scope.Timeline)
	line("")

	if scope.AdditionalNotes != "" {
		line("ADDITIONAL NOTES")
		line("  %s", scope.AdditionalNotes)
		line("")
	}

	line(banner)
	line("Thank you for preserving what matters most.")
	b.WriteString(banner)
	return b.String()
}

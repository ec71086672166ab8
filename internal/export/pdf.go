package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"legacy-server/internal/models"
)

// Brand palette shared by both PDF documents.
var (
	colorInk    = [3]int{46, 64, 87}   // #2E4057
	colorAccent = [3]int{74, 124, 143} // #4A7C8F
	colorHeader = [3]int{90, 130, 150}
)

// sanitize rewrites punctuation the core Helvetica font cannot encode.
// Everything else falls through to the document's cp1252 translator.
var sanitize = strings.NewReplacer(
	"—", "--",
	"–", "-",
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"…", "...",
	"•", "-",
	" ", " ",
)

// InterviewGuidePDF renders the full interview guide: title page, interview
// tips, priority legend, one section per question category with ruled note
// lines, and a closing page.
func InterviewGuidePDF(scope *models.ProjectScope, set models.QuestionSet) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(sanitize.Replace(s)) }

	subject := scope.Subject.Name
	subtitle := fmt.Sprintf("%s's %s", subject, scope.LegacyType)

	pdf.SetAutoPageBreak(true, 25)
	pdf.AliasNbPages("")
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(colorHeader[0], colorHeader[1], colorHeader[2])
		pdf.CellFormat(95, 8, "Living Legacy  |  Interview Guide", "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 8, text(subtitle), "", 1, "R", false, 0, "")
		pdf.SetDrawColor(colorHeader[0], colorHeader[1], colorHeader[2])
		pdf.SetLineWidth(0.4)
		pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
		pdf.Ln(4)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(160, 160, 160)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Title page.
	pdf.Ln(20)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(colorInk[0], colorInk[1], colorInk[2])
	pdf.CellFormat(0, 14, "Interview Guide", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 16)
	pdf.SetTextColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.CellFormat(0, 10, text(subtitle), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 6, "Prepared on "+time.Now().Format("January 02, 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, text("Target audience: "+strings.Join(scope.TargetAudience, ", ")), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, text("Captured by: "+scope.Subject.Relationship), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	if scope.AudienceNotes != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetX(10)
		pdf.MultiCell(0, 5, text("Audience notes: "+scope.AudienceNotes), "", "C", false)
		pdf.Ln(4)
	}

	// Interview tips.
	pdf.AddPage()
	sectionHeading(pdf, text, "Tips for a Great Interview")
	tips := []string{
		"Find a quiet, comfortable place with minimal distractions.",
		"Let the storyteller speak freely. Follow the story, not just the script.",
		`Use follow-up prompts like: "Tell me more about that" or "How did that make you feel?"`,
		"Silence is okay. Give them time to think and remember.",
		"Record the interview if possible (audio or video) in addition to taking notes.",
		"It's fine to skip questions or change the order. This guide is a starting point.",
		"If emotions come up, be patient and compassionate. Some stories need time.",
		"Focus on specific memories and details rather than generalities.",
		"Take breaks as needed. This doesn't have to happen in one sitting.",
	}
	for _, tip := range tips {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(60, 60, 60)
		pdf.SetX(15)
		pdf.MultiCell(0, 6, text("- "+tip), "", "L", false)
		pdf.Ln(1)
	}
	pdf.Ln(4)

	if len(set.Priorities) > 0 {
		sectionHeading(pdf, text, "Priority Legend")
		legend := []struct{ label, desc string }{
			{"MUST ASK", "Essential questions that form the core of the legacy."},
			{"NICE TO HAVE", "Valuable questions if time and energy allow."},
			{"OPTIONAL", "Bonus questions -- great if the conversation goes there naturally."},
		}
		for _, entry := range legend {
			pdf.SetFont("Helvetica", "B", 9)
			pdf.SetTextColor(colorInk[0], colorInk[1], colorInk[2])
			pdf.CellFormat(28, 6, "["+entry.label+"]", "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(80, 80, 80)
			pdf.CellFormat(0, 6, text(entry.desc), "", 1, "L", false, 0, "")
		}
		pdf.Ln(6)
	}

	// One section per category, with ruled lines for handwritten notes.
	for _, cat := range set.Categories {
		pdf.AddPage()
		sectionHeading(pdf, text, cat.Name)

		for idx, question := range cat.Questions {
			label := fmt.Sprintf("%d. %s", idx+1, question)
			if priority, ok := set.Priorities[question]; ok {
				label += "  [" + strings.ToUpper(string(priority)) + "]"
			}

			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(colorInk[0], colorInk[1], colorInk[2])
			pdf.SetX(10)
			pdf.MultiCell(0, 6, text(label), "", "L", false)

			pdf.SetDrawColor(210, 210, 210)
			pdf.SetLineWidth(0.2)
			yStart := pdf.GetY() + 2
			for lineNum := 0; lineNum < 3; lineNum++ {
				y := yStart + float64(lineNum)*7
				if y > 270 {
					pdf.AddPage()
					y = pdf.GetY() + 2
					yStart = y - float64(lineNum)*7
				}
				pdf.Line(15, y, 195, y)
			}
			pdf.SetY(yStart + 3*7 + 3)
		}
	}

	// Closing page.
	pdf.AddPage()
	pdf.Ln(30)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(colorInk[0], colorInk[1], colorInk[2])
	pdf.CellFormat(0, 12, "Thank you for preserving what matters most.", "", 1, "C", false, 0, "")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetX(10)
	pdf.MultiCell(0, 6, text(
		"Every question is a doorway into a memory. "+
			"Not every door needs to be opened today. "+
			"Take your time, enjoy the conversation, and let the stories come."),
		"", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render interview guide: %w", err)
	}
	return buf.Bytes(), nil
}

// ProjectBriefPDF renders the one-page scope summary meant for sharing with
// family members or stakeholders.
func ProjectBriefPDF(scope *models.ProjectScope) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(sanitize.Replace(s)) }

	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	usableW := pageW - 20

	// Accent bars across the top edge.
	pdf.SetFillColor(colorInk[0], colorInk[1], colorInk[2])
	pdf.Rect(0, 0, pageW, 6, "F")
	pdf.SetFillColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.Rect(0, 6, pageW, 2, "F")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(colorInk[0], colorInk[1], colorInk[2])
	pdf.CellFormat(0, 10, "Living Legacy Project Brief", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.CellFormat(0, 8, text(fmt.Sprintf("%s's %s", scope.Subject.Name, scope.LegacyType)), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(140, 140, 140)
	pdf.CellFormat(0, 5, "Generated "+time.Now().Format("January 02, 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(30, pdf.GetY(), 180, pdf.GetY())
	pdf.Ln(6)

	const labelColW = 45.0

	field := func(label, value string) {
		safeLabel := text(label)
		safeValue := text(value)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(colorInk[0], colorInk[1], colorInk[2])
		labelW := pdf.GetStringWidth(safeLabel) + 2

		if labelW <= labelColW {
			pdf.CellFormat(labelColW, 6, safeLabel, "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(60, 60, 60)
			pdf.MultiCell(usableW-labelColW, 6, safeValue, "", "L", false)
		} else {
			// Long label: stack the value under it, indented.
			pdf.MultiCell(usableW, 6, safeLabel, "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(60, 60, 60)
			pdf.SetX(10 + labelColW)
			pdf.MultiCell(usableW-labelColW, 6, safeValue, "", "L", false)
		}
		pdf.Ln(2)
	}

	field("Subject:", scope.Subject.Name)
	if scope.Subject.Relationship != "" {
		field("Relationship:", scope.Subject.Relationship)
	}
	field("Legacy Type:", fmt.Sprintf("%s -- %s", scope.LegacyType, scope.LegacyDescription))

	if len(scope.TargetAudience) > 0 {
		field("Target Audience:", strings.Join(scope.TargetAudience, ", "))
	}
	if scope.AudienceNotes != "" {
		field("Audience Notes:", scope.AudienceNotes)
	}

	if themes := scope.Themes(); len(themes) > 0 {
		field("Key Themes:", strings.Join(themes, ", "))
	}
	for _, detail := range scope.ScopingDetails {
		if !detail.Answer.IsList() && detail.Answer.Text != "" {
			field(detail.Question+":", detail.Answer.Text)
		}
	}

	if len(scope.DeliveryFormats) > 0 {
		field("Delivery Format(s):", strings.Join(scope.DeliveryFormats, ", "))
	}
	if scope.Timeline != "" {
		field("Timeline:", scope.Timeline)
	}
	if scope.AdditionalNotes != "" {
		field("Additional Notes:", scope.AdditionalNotes)
	}

	pdf.Ln(4)
	pdf.SetDrawColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.SetLineWidth(0.3)
	pdf.Line(30, pdf.GetY(), 180, pdf.GetY())
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(140, 140, 140)
	pdf.CellFormat(0, 5, "Living Legacy -- Preserving stories that matter.", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "Share this brief with family members or stakeholders to explain the project scope.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render project brief: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionHeading(pdf *fpdf.Fpdf, text func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.CellFormat(0, 10, text(title), "", 1, "L", false, 0, "")
	pdf.SetDrawColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.SetLineWidth(0.6)
	pdf.Line(10, pdf.GetY(), 100, pdf.GetY())
	pdf.Ln(6)
}

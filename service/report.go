package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/model"
)

// Letter page height in points, used to anchor the disclaimer footer
const letterHeightPt = 792.0

// ReportID derives the short printable identifier from a prediction ID.
func ReportID(pred *model.Prediction) string {
	id := strings.ReplaceAll(pred.ID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return "FH-" + strings.ToUpper(id)
}

// ReportFilename is the download name offered for a report.
func ReportFilename(pred *model.Prediction) string {
	return fmt.Sprintf("FinanceHub_Report_%s.pdf", ReportID(pred))
}

// WriteReport renders the official analysis report for a stored
// prediction as a single-page PDF.
func WriteReport(w io.Writer, pred *model.Prediction) error {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Branding
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(100, 42, "Finance Hub")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(100, 57, "Official Financial Analysis Report")
	pdf.Line(100, 62, 500, 62)

	// Metadata
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(100, 92, fmt.Sprintf("Report ID: %s", ReportID(pred)))
	pdf.Text(100, 107, fmt.Sprintf("Date: %s", pred.CreatedAt.Format("2006-01-02 15:04:05")))

	// Analysis content
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(100, 162, tr(fmt.Sprintf("Analysis Type: %s", pred.Title)))

	pdf.SetFont("Helvetica", "", 12)
	y := 192.0
	pdf.Text(100, y, "Input Parameters:")
	y += 20
	for _, in := range pred.Inputs {
		pdf.Text(120, y, tr(fmt.Sprintf("- %s: %s", in.Name, in.Value)))
		y += 15
	}

	y += 25
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(15, 23, 41)
	pdf.Text(100, y, tr(fmt.Sprintf("FINAL DETERMINATION: %s", pred.Result)))

	pdf.SetTextColor(0, 0, 0)
	if pred.Confidence > 0 {
		y += 30
		pdf.SetFont("Helvetica", "I", 12)
		pdf.Text(100, y, fmt.Sprintf("Analytical Confidence: %.1f%%", pred.Confidence))
	}

	// Disclaimer
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(100, letterHeightPt-50, "DISCLAIMER: This report is for advisory purposes only. Not a formal financial commitment.")
	pdf.Text(100, letterHeightPt-40, tr("Finance Hub © 2026. All Rights Reserved."))

	return pdf.Output(w)
}

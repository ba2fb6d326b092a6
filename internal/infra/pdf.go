package infra

// pdf.go — shift report generation using go-pdf/fpdf.
// Generates an A4 report with:
//   - Motel name header, date and shift label
//   - Reconciliation table (revenue, expenses, expected vs declared)
//   - Stay table with the excess-time column
//   - Consumption and expense listings
//
// The output file is saved to storagePath/shift_{date}_{shift}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"motelpos/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateShiftReportPDF renders the closed-shift report to disk.
// Returns the absolute path to the generated file.
func GenerateShiftReportPDF(report *dto.ShiftReportResponse, motelName, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	session := report.Session
	fileName := fmt.Sprintf("shift_%s_%s.pdf", session.Date, session.Shift)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, motelName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Shift report — %s (%s)", session.Date, session.Shift), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Reconciliation ───────────────────────────────────────────────────────
	if rec := session.Reconciliation; rec != nil {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "Reconciliation", "B", 1, "L", false, 0, "")
		pdf.Ln(1)

		labelW := contentW * 0.6
		valueW := contentW * 0.4

		row := func(label, value string, bold bool) {
			style := ""
			if bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 10)
			pdf.CellFormat(labelW, 6, label, "", 0, "L", false, 0, "")
			pdf.CellFormat(valueW, 6, value, "", 1, "R", false, 0, "")
		}

		row("Opening float", "$"+session.OpeningFloat.StringFixed(2), false)
		row("Room revenue", "$"+rec.RoomRevenue.StringFixed(2), false)
		row("Consumption revenue", "$"+rec.ConsumptionRevenue.StringFixed(2), false)
		row("Expenses", "-$"+rec.TotalExpenses.StringFixed(2), false)
		row("Net income", "$"+rec.NetIncome.StringFixed(2), true)
		row("Expected cash", "$"+rec.ExpectedCash.StringFixed(2), true)
		if rec.DeclaredCash != nil {
			row("Declared cash", "$"+rec.DeclaredCash.StringFixed(2), true)
		}
		if rec.Variance != nil {
			row(fmt.Sprintf("Variance (%s)", rec.Classification), "$"+rec.Variance.StringFixed(2), true)
		}
		pdf.Ln(4)
	}

	// ── Stays ────────────────────────────────────────────────────────────────
	if len(report.Stays) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "Stays", "B", 1, "L", false, 0, "")
		pdf.Ln(1)

		col := []float64{contentW * 0.12, contentW * 0.26, contentW * 0.26, contentW * 0.12, contentW * 0.12, contentW * 0.12}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(col[0], 6, "Room", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col[1], 6, "Check-in", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col[2], 6, "Check-out", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col[3], 6, "Paid h", "B", 0, "C", false, 0, "")
		pdf.CellFormat(col[4], 6, "Excess h", "B", 0, "C", false, 0, "")
		pdf.CellFormat(col[5], 6, "Price", "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, stay := range report.Stays {
			pdf.CellFormat(col[0], 6, fmt.Sprintf("%d", stay.RoomNumber), "", 0, "L", false, 0, "")
			pdf.CellFormat(col[1], 6, shortTime(stay.CheckIn), "", 0, "L", false, 0, "")
			pdf.CellFormat(col[2], 6, shortTime(stay.CheckOut), "", 0, "L", false, 0, "")
			pdf.CellFormat(col[3], 6, fmt.Sprintf("%d", stay.PaidHours), "", 0, "C", false, 0, "")
			excess := ""
			if stay.ExcessHours > 0 {
				excess = fmt.Sprintf("%.1f", stay.ExcessHours)
			}
			pdf.CellFormat(col[4], 6, excess, "", 0, "C", false, 0, "")
			pdf.CellFormat(col[5], 6, "$"+stay.Price.StringFixed(2), "", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	// ── Consumptions ─────────────────────────────────────────────────────────
	if len(report.Consumptions) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "Bar / consumptions", "B", 1, "L", false, 0, "")
		pdf.Ln(1)

		col1 := contentW * 0.55
		col2 := contentW * 0.15
		col3 := contentW * 0.30

		pdf.SetFont("Helvetica", "", 9)
		for _, c := range report.Consumptions {
			pdf.CellFormat(col1, 6, c.ProductName, "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", c.Quantity), "", 0, "C", false, 0, "")
			pdf.CellFormat(col3, 6, "$"+c.Amount.StringFixed(2), "", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	// ── Expenses ─────────────────────────────────────────────────────────────
	if len(report.Expenses) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "Expenses", "B", 1, "L", false, 0, "")
		pdf.Ln(1)

		col1 := contentW * 0.70
		col2 := contentW * 0.30

		pdf.SetFont("Helvetica", "", 9)
		for _, e := range report.Expenses {
			pdf.CellFormat(col1, 6, e.Concept, "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 6, "-$"+e.Amount.StringFixed(2), "", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	// ── Narrative ────────────────────────────────────────────────────────────
	if session.Summary != nil && *session.Summary != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "Summary", "B", 1, "L", false, 0, "")
		pdf.Ln(1)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(contentW, 5, *session.Summary, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

// shortTime reformats an RFC3339 timestamp as "02 Jan 15:04" for table cells.
func shortTime(rfc3339 string) string {
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return rfc3339
	}
	return t.Format("02 Jan 15:04")
}

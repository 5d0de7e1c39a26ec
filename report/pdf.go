/*
Package report renders computed violation summaries into documents.

PURPOSE:
  Export consumers receive already-computed amounts and print the
  arithmetic, not just the totals: each period line shows the resolved
  rate, divisor, multiplier, and count that produced its amount. This
  package renders the PDF flavor; the engine's breakdown types carry
  everything it needs, so it performs no computation of its own.

FONTS:
  The built-in core fonts cover cp1252 only, which has no peso sign, so
  amounts print with a "PHP" prefix here. JSON responses keep the real
  sign via wage.FormatPeso.
*/
package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/mosesalcantara/wagecalc/wage"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// WritePDF renders an employee's violation summary. Categories without a
// single valid period are omitted; an employee with nothing reportable
// still gets a header page stating so.
func WritePDF(w io.Writer, summary wage.Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Wage Violation Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Establishment: %s", summary.Establishment.Name))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", summary.Employee.FullName()))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Daily rate on record: PHP %s", wage.FormatAmount(summary.Employee.Rate)))
	pdf.Ln(10)

	if !summary.HasReportableViolation() {
		pdf.Cell(0, 8, "No reportable violations.")
		return pdf.Output(w)
	}

	for _, cr := range summary.Categories {
		if !hasValidPeriod(cr) {
			continue
		}
		writeCategory(pdf, cr)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 9, fmt.Sprintf("Grand Total: PHP %s", wage.FormatAmount(summary.GrandTotal)))

	return pdf.Output(w)
}

func hasValidPeriod(cr wage.CategoryResult) bool {
	for _, pr := range cr.Periods {
		if pr.Valid {
			return true
		}
	}
	return false
}

func writeCategory(pdf *gofpdf.Fpdf, cr wage.CategoryResult) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 9, string(cr.Category))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, pr := range cr.Periods {
		if !pr.Valid {
			continue
		}
		pdf.Cell(0, 6, fmt.Sprintf("  %s to %s", pr.Period.StartDate, pr.Period.EndDate))
		pdf.Ln(5)
		for _, term := range pr.Terms {
			pdf.Cell(0, 6, "    "+formatTerm(term))
			pdf.Ln(5)
		}
		if len(pr.Terms) == 0 {
			pdf.Cell(0, 6, "    no recognized premium; amount 0.00")
			pdf.Ln(5)
		}
		pdf.Cell(0, 6, fmt.Sprintf("    period amount: PHP %s", wage.FormatAmount(pr.Amount)))
		pdf.Ln(6)
	}

	if !cr.Received.IsZero() {
		pdf.Cell(0, 6, fmt.Sprintf("  less amount received: PHP %s", wage.FormatAmount(cr.Received)))
		pdf.Ln(5)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 7, fmt.Sprintf("  %s total: PHP %s", cr.Category, wage.FormatAmount(cr.Total)))
	pdf.Ln(8)
}

// formatTerm prints one multiplicative component the way inspectors write
// it on worksheets: "395.00 / 8 x 0.30 x 10 = 148.13".
func formatTerm(t wage.Term) string {
	expr := wage.FormatAmount(t.Base)
	if !t.Divisor.Equal(one) {
		expr += " / " + t.Divisor.String()
	}
	if !t.Multiplier.Equal(one) {
		expr += " x " + t.Multiplier.String()
	}
	expr += " x " + t.Count.String()
	return fmt.Sprintf("%s: %s = %s", t.Label, expr, wage.FormatAmount(t.Amount))
}

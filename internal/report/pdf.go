package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/oxyfarm/aercomp/internal/engine"
)

// BuildPDF renders a one-page comparison summary: farm figures, the winner,
// a per-aerator cost table, and equilibrium prices for the non-winners.
func BuildPDF(c *engine.Comparison) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Aerator Comparison Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total Oxygen Demand: %.2f kg O2/h/ha", c.TOD))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Annual Revenue: %.2f", c.AnnualRevenue))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Winner: %s", c.WinnerLabel))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(45, 6, "Aerator", "1", 0, "L", false, 0, "")
	pdf.CellFormat(18, 6, "Units", "1", 0, "C", false, 0, "")
	pdf.CellFormat(28, 6, "Initial Cost", "1", 0, "C", false, 0, "")
	pdf.CellFormat(28, 6, "Annual Cost", "1", 0, "C", false, 0, "")
	pdf.CellFormat(28, 6, "NPV Savings", "1", 0, "C", false, 0, "")
	pdf.CellFormat(24, 6, "Payback (yr)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "ROI %", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "IRR %", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "SAE", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, o := range c.AeratorResults {
		name := o.Name
		if o.Name == c.WinnerLabel {
			name += " *"
		}
		pdf.CellFormat(45, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(18, 6, fmt.Sprintf("%.0f", o.NumAerators), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, fmt.Sprintf("%.2f", o.TotalInitialCost), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, fmt.Sprintf("%.2f", o.TotalAnnualCost), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, fmt.Sprintf("%.2f", o.NPVSavings), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 6, fmt.Sprintf("%.2f", o.PaybackYears), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%.2f", o.ROIPercent), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%.2f", o.IRR), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%.2f", o.SAE), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if len(c.EquilibriumPrices) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 9)
		pdf.Cell(0, 6, "Equilibrium Prices")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 8)
		for _, o := range c.AeratorResults {
			price, ok := c.EquilibriumPrices[o.Name]
			if !ok {
				continue
			}
			pdf.Cell(0, 5, fmt.Sprintf("%s: %.2f", o.Name, price))
			pdf.Ln(5)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

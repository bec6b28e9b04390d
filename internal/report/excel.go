// Package report renders a finished comparison as a shareable document
// (XLSX workbook or PDF summary). It consumes the engine's sanitized result
// only and performs no computation of its own.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/oxyfarm/aercomp/internal/engine"
)

// BuildXLSX renders the comparison as a two-sheet workbook: a summary sheet
// with the farm figures and winner, and an aerators sheet with one row per
// outcome.
func BuildXLSX(c *engine.Comparison) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	aeratorSheet := "aerators"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(aeratorSheet); err != nil {
		return nil, fmt.Errorf("creating aerators sheet: %w", err)
	}

	_ = f.SetCellValue(summarySheet, "A1", "Aerator Comparison")
	_ = f.SetCellValue(summarySheet, "A3", "Total Oxygen Demand (kg O2/h/ha)")
	_ = f.SetCellValue(summarySheet, "B3", c.TOD)
	_ = f.SetCellValue(summarySheet, "A4", "Annual Revenue")
	_ = f.SetCellValue(summarySheet, "B4", c.AnnualRevenue)
	_ = f.SetCellValue(summarySheet, "A5", "Winner")
	_ = f.SetCellValue(summarySheet, "B5", c.WinnerLabel)

	row := 7
	if len(c.EquilibriumPrices) > 0 {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "Equilibrium Prices")
		row++
		for _, o := range c.AeratorResults {
			price, ok := c.EquilibriumPrices[o.Name]
			if !ok {
				continue
			}
			_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), o.Name)
			_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), price)
			row++
		}
	}

	headers := []string{
		"Name", "Units", "Total Power (HP)", "Initial Cost",
		"Energy Cost/yr", "Maintenance/yr", "Replacement/yr", "Total Cost/yr",
		"Cost % Revenue", "NPV Savings", "Payback (yr)", "ROI %", "IRR %",
		"Profitability k", "SAE (kg O2/kWh)", "Cost/kg O2", "Opportunity Cost",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		_ = f.SetCellValue(aeratorSheet, cell, h)
	}
	for i, o := range c.AeratorResults {
		values := []any{
			o.Name, o.NumAerators, o.TotalPowerHP, o.TotalInitialCost,
			o.AnnualEnergyCost, o.AnnualMaintenanceCost, o.AnnualReplacementCost, o.TotalAnnualCost,
			o.CostPercentRevenue, o.NPVSavings, o.PaybackYears, o.ROIPercent, o.IRR,
			o.ProfitabilityK, o.SAE, o.CostPerKgO2, o.OpportunityCost,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("value cell: %w", err)
			}
			_ = f.SetCellValue(aeratorSheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

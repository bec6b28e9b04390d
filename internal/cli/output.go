package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oxyfarm/aercomp/internal/engine"
)

// Output format names accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Table styles. Colors degrade gracefully on dumb terminals.
var (
	headerStyle = lipgloss.NewStyle().Bold(true)                                 //nolint:gochecknoglobals
	winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) //nolint:gochecknoglobals
	labelStyle  = lipgloss.NewStyle().Faint(true)                                //nolint:gochecknoglobals
)

// InterpretIRR maps an IRR percentage to an attractiveness label.
func InterpretIRR(irr float64) string {
	switch {
	case irr > 60:
		return "Highly attractive"
	case irr > 40:
		return "Very attractive"
	case irr > 20:
		return "Attractive"
	case irr > 10:
		return "Moderately attractive"
	case irr > 5:
		return "Marginally attractive"
	case irr > 2.5:
		return "Slightly positive"
	default:
		return "Unattractive"
	}
}

// renderJSON writes the comparison as indented JSON.
func renderJSON(w io.Writer, c *engine.Comparison) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// renderTable writes a human-readable comparison table. Currency figures use
// locale-aware digit grouping; the winner row is highlighted.
func renderTable(w io.Writer, c *engine.Comparison) {
	p := message.NewPrinter(language.English)

	fmt.Fprintln(w, headerStyle.Render("AERATOR COMPARISON"))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("TOD (kg O2/h/ha):"), p.Sprintf("%.2f", c.TOD))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Annual revenue:"), p.Sprintf("%.2f", c.AnnualRevenue))
	fmt.Fprintf(w, "%s %s\n\n", labelStyle.Render("Winner:"), winnerStyle.Render(c.WinnerLabel))

	const rowFormat = "%-28s %8s %14s %14s %12s %10s %10s %8s %-22s\n"
	fmt.Fprintf(w, headerStyle.Render(fmt.Sprintf(rowFormat,
		"AERATOR", "UNITS", "INITIAL", "ANNUAL", "NPV SAVE", "PAYBACK", "ROI%", "IRR%", "ASSESSMENT")))

	for i := range c.AeratorResults {
		o := &c.AeratorResults[i]
		row := fmt.Sprintf(rowFormat,
			truncate(o.Name, 28),
			p.Sprintf("%.0f", o.NumAerators),
			p.Sprintf("%.2f", o.TotalInitialCost),
			p.Sprintf("%.2f", o.TotalAnnualCost),
			p.Sprintf("%.2f", o.NPVSavings),
			p.Sprintf("%.2f", o.PaybackYears),
			p.Sprintf("%.2f", o.ROIPercent),
			p.Sprintf("%.2f", o.IRR),
			InterpretIRR(o.IRR),
		)
		if o.Name == c.WinnerLabel {
			row = winnerStyle.Render(strings.TrimSuffix(row, "\n")) + "\n"
		}
		fmt.Fprint(w, row)
	}

	if len(c.EquilibriumPrices) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("EQUILIBRIUM PRICES"))
	for i := range c.AeratorResults {
		o := &c.AeratorResults[i]
		price, ok := c.EquilibriumPrices[o.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-28s %s\n", truncate(o.Name, 28), p.Sprintf("%.2f", price))
	}
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"rpa-roi/format"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1)

// staticTable renders rows as a non-interactive table. The height leaves room
// for the two header lines so no row is scrolled out of view.
func staticTable(columns []table.Column, rows []table.Row) string {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+3),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}

func renderReport(out calcOutput, unit format.Unit) string {
	res := out.Results
	money := func(v float64) string { return format.Currency(v, unit) }

	kpis := []table.Row{
		{"Initial investment", money(res.InitialInvestment)},
		{"Annual operating cost", money(res.AnnualOperatingCost)},
		{"Annual labor savings", money(res.AnnualLaborSavings)},
		{"Annual error savings", money(res.AnnualErrorSavings)},
		{"Total annual savings", money(res.TotalAnnualSavings)},
		{"Year 1 net benefit", money(res.Year1NetBenefit)},
		{"Year 1 ROI", format.Percent(res.Year1ROI)},
		{"Year 3 ROI", format.Percent(res.Year3ROI)},
		{"Year 5 ROI", format.Percent(res.Year5ROI)},
		{"Payback period", format.Payback(res)},
	}

	wl := out.Workload
	workload := []table.Row{
		{"Annual work hours", fmt.Sprintf("%.0f h", res.TotalAnnualWorkHours)},
		{"Required FTE", fmt.Sprintf("%.1f", res.RequiredFTE)},
		{"Staffed FTE", fmt.Sprintf("%.1f", res.InputFTE)},
		{"Current labor cost", money(res.CurrentAnnualLaborCost)},
		{"Staffing", fmt.Sprintf("%s (%+.1f%%)", wl.Status, wl.UtilizationGap)},
	}

	var cash []table.Row
	for _, p := range res.MonthlyCashFlow {
		if p.Month%12 != 0 {
			continue
		}
		cash = append(cash, table.Row{
			fmt.Sprintf("Year %d", p.Month/12),
			money(p.CumulativeCost),
			money(p.CumulativeSavings),
			money(p.NetCashFlow),
		})
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("RPA return on investment") + "\n")
	b.WriteString(staticTable([]table.Column{{Title: "Metric", Width: 28}, {Title: "Value", Width: 20}}, kpis) + "\n\n")
	b.WriteString(titleStyle.Render("Workload") + "\n")
	b.WriteString(staticTable([]table.Column{{Title: "Metric", Width: 28}, {Title: "Value", Width: 20}}, workload) + "\n\n")
	b.WriteString(titleStyle.Render("Cumulative cash flow") + "\n")
	b.WriteString(staticTable([]table.Column{
		{Title: "Period", Width: 8},
		{Title: "Cost", Width: 16},
		{Title: "Savings", Width: 16},
		{Title: "Net", Width: 16},
	}, cash) + "\n")
	b.WriteString(fmt.Sprintf("\nDetailed 5-year profit: %s\n", format.DetailedKorean(res.Total5YearProfit)))

	if len(out.Breakdown) > 0 {
		b.WriteString("\n" + titleStyle.Render("How it was calculated") + "\n")
		for _, step := range out.Breakdown {
			b.WriteString(fmt.Sprintf("%s\n  %s\n  = %.2f\n", step.Title, step.Formula, step.Value))
		}
	}
	return b.String()
}

package reporting

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ducminhle1904/crypto-analyzer/internal/analysis"
	"github.com/ducminhle1904/crypto-analyzer/internal/indicators"
	"github.com/ducminhle1904/crypto-analyzer/internal/patterns"
)

// ConsoleReporter renders an analysis result as terminal tables.
type ConsoleReporter struct{}

// NewConsoleReporter creates a new console reporter.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

// PrintReport renders the summary, latest indicator readings and event list.
func (r *ConsoleReporter) PrintReport(rep *analysis.Report) {
	r.printSummary(rep)
	r.printIndicators(rep)
	r.printEvents(rep.Events)
}

func (r *ConsoleReporter) printSummary(rep *analysis.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("ANALYSIS REPORT")
	t.SetStyle(table.StyleRounded)

	period := fmt.Sprintf("%s → %s",
		rep.PeriodStart.Format("2006-01-02"),
		rep.PeriodEnd.Format("2006-01-02"))

	t.AppendRows([]table.Row{
		{"📊 Symbol", rep.Symbol},
		{"📅 Period", period},
		{"💰 Current Price", fmt.Sprintf("$%.2f", rep.CurrentPrice)},
		{"📈 Price Change", fmt.Sprintf("%+.2f%%", rep.PriceChangePct)},
	})

	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"🟢 Golden Crosses", rep.CountOf(patterns.GoldenCross)},
		{"🔴 Death Crosses", rep.CountOf(patterns.DeathCross)},
		{"🔥 Overbought Entries", rep.CountOf(patterns.Overbought)},
		{"🧊 Oversold Entries", rep.CountOf(patterns.Oversold)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 22, Align: text.AlignLeft},
		{Number: 2, WidthMin: 25, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

func (r *ConsoleReporter) printIndicators(rep *analysis.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("LATEST INDICATORS")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Indicator", "Value"})

	for _, name := range indicators.Names {
		value, ok := rep.Indicators[name]
		if !ok {
			t.AppendRow(table.Row{name, "-"})
			continue
		}
		t.AppendRow(table.Row{name, fmt.Sprintf("%.2f", value)})
	}

	t.Render()
	fmt.Println()
}

func (r *ConsoleReporter) printEvents(events []patterns.Event) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("PATTERN EVENTS")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Timestamp", "Pattern", "Readings"})

	if len(events) == 0 {
		t.AppendRow(table.Row{"-", "-", "none detected", "-"})
	}
	for i, ev := range events {
		t.AppendRow(table.Row{
			i + 1,
			ev.Timestamp.Format("2006-01-02 15:04"),
			KindLabel(ev.Kind),
			formatValues(ev.Values),
		})
	}

	t.Render()
	fmt.Println()
}

// PrintWarnings lists indicators that never warmed up for this run.
func (r *ConsoleReporter) PrintWarnings(warnings []indicators.InsufficientHistoryWarning) {
	for _, w := range warnings {
		fmt.Printf("⚠️  %s stayed undefined: needs %d observations, got %d\n",
			w.Indicator, w.Required, w.Have)
	}
}

// KindLabel renders a pattern kind for humans ("golden_cross" → "Golden Cross").
func KindLabel(kind patterns.Kind) string {
	parts := strings.Split(kind.String(), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// formatValues renders the triggering readings in deterministic key order.
func formatValues(values map[string]float64) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%.2f", k, values[k]))
	}
	return strings.Join(parts, ", ")
}

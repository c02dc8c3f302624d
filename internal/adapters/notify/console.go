package notify

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/alejandrodnm/spreadhunter/internal/adapters/wire"
	"github.com/alejandrodnm/spreadhunter/internal/domain"
	"github.com/olekukonko/tablewriter"
)

const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// Console implementa ports.Notifier.
type Console struct {
	out    io.Writer
	format string
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole(format string) *Console {
	return &Console{out: os.Stdout, format: format}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer, format string) *Console {
	return &Console{out: w, format: format}
}

// Notify imprime los reports en el formato configurado.
// En JSON escribe una línea por report; en tabla, una cabecera y una tabla.
func (c *Console) Notify(_ context.Context, reports []domain.Report) error {
	if len(reports) == 0 {
		fmt.Fprintf(c.out, "[%s] no requests\n", time.Now().Format("15:04:05"))
		return nil
	}

	if c.format == FormatTable {
		for _, r := range reports {
			c.printReport(r)
		}
		return nil
	}

	for _, r := range reports {
		line, err := wire.EncodeReport(r)
		if err != nil {
			return fmt.Errorf("notify.Console: %s: %w", r.Input.Symbol, err)
		}
		if _, err := fmt.Fprintln(c.out, string(line)); err != nil {
			return fmt.Errorf("notify.Console: write: %w", err)
		}
	}
	return nil
}

// printReport imprime la cabecera del request y la tabla de su estrategia.
func (c *Console) printReport(r domain.Report) {
	now := time.Now().Format("15:04:05")
	fmt.Fprintf(c.out, "\n[%s] %s %s target=%.2f strikes=%d",
		now, r.Input.Symbol, r.Strategy, r.Input.Target, len(r.Input.Chain))

	if r.Err != nil {
		fmt.Fprintf(c.out, " → FAILED: %v\n", r.Err)
		return
	}
	fmt.Fprintf(c.out, " → %d found\n", r.Found())

	switch {
	case len(r.Butterflies) > 0:
		c.printButterflies(r)
	case len(r.Condors) > 0:
		c.printCondors(r)
	}
}

// printButterflies imprime una fila por butterfly con sus métricas.
func (c *Console) printButterflies(r domain.Report) {
	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Wings", "Body", "Cost", "BE low", "BE high", "Max gain", "Slope", "Metric", "New metric", "Shares", "Max")

	for i, b := range r.Butterflies {
		table.Append(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%s / %s", strikeAt(r.Chain, b.Left), strikeAt(r.Chain, b.Right)),
			strikeAt(r.Chain, b.Body),
			num(b.VariableOnSize.CostPerBundle, 2),
			num(b.Space.BreakevenLower, 2),
			num(b.Space.BreakevenUpper, 2),
			num(b.VariableOnSize.MaxGain, 2),
			num(b.Fixed.Slope, 3),
			num(b.Metric, 2),
			num(b.NewMetric, 2),
			shares(b.Shares),
			num(b.Max, 2),
		)
	}

	table.Render()
	fmt.Fprintf(c.out, "  Cost = alas al ask − 2 bodies al bid | Shares/Max con $%.0f por bundle set\n",
		domain.BundleBudgetUSD)
}

// printCondors imprime una fila por condor con los cuatro strikes.
func (c *Console) printCondors(r domain.Report) {
	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Outer L", "Inner L", "Inner R", "Outer R")

	for i, cd := range r.Condors {
		table.Append(
			fmt.Sprintf("%d", i+1),
			strikeAt(r.Chain, cd.OuterLeft),
			strikeAt(r.Chain, cd.InnerLeft),
			strikeAt(r.Chain, cd.InnerRight),
			strikeAt(r.Chain, cd.OuterRight),
		)
	}

	table.Render()
}

// --- helpers ---

// strikeAt formatea el strike del índice, o el índice si la cadena no lo tiene.
func strikeAt(chain domain.Chain, idx int) string {
	if idx < 0 || idx >= len(chain) {
		return fmt.Sprintf("#%d", idx)
	}
	return fmt.Sprintf("%g", chain[idx].Strike)
}

// num formatea un float con prec decimales; INF/-INF/NaN para no finitos.
func num(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	}
	return fmt.Sprintf("%.*f", prec, v)
}

func shares(n int64) string {
	switch n {
	case math.MaxInt64:
		return "INF"
	case math.MinInt64:
		return "-INF"
	}
	return fmt.Sprintf("%d", n)
}

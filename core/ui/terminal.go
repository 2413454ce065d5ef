// Package ui renders quote output for the terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/types"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out, noColor: noColor}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println(w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println(w.color(Green, "✓ ") + fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Println(w.color(Yellow, "⚠ ") + fmt.Sprintf(format, args...))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Println(w.color(Red, "✗ ") + fmt.Sprintf(format, args...))
}

// RenderOrder prints the projected BOQ as a table followed by the estimated
// total.
func (w *Writer) RenderOrder(order types.Order) {
	w.Header("Technical BOQ")

	if order.Empty() {
		w.Println(w.color(Dim, "No selection."))
		return
	}

	table := w.newTable("ID", "Category", "Service Name", "Configuration", "Qty", "MUP (Monthly)", "Subtotal")
	for i, item := range order.Items {
		table.addRow(
			fmt.Sprintf("%d", i+1),
			item.Category,
			item.Name,
			item.Config,
			fmt.Sprintf("%d", item.Quantity),
			types.FormatAmount(item.UnitPrice),
			types.FormatAmount(item.Subtotal),
		)
	}
	table.render()

	w.Println("")
	w.Println(w.color(Bold, "ESTIMATED TOTAL: ")+w.color(Bold+Green, "%s %s"),
		types.FormatAmount(order.GrandTotal), types.Currency)
}

// RenderRates prints a named group of SKU rates.
func (w *Writer) RenderRates(title string, rows [][2]string) {
	w.Header(title)
	table := w.newTable("SKU", "Rate ("+types.Currency+"/"+strings.ToLower(types.BillingMode)+")")
	for _, row := range rows {
		table.addRow(row[0], row[1])
	}
	table.render()
}

// table renders aligned columns
type table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

func (w *Writer) newTable(headers ...string) *table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &table{w: w, headers: headers, widths: widths}
}

func (t *table) addRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
}

func (t *table) render() {
	format := ""
	for i, w := range t.widths {
		if i > 0 {
			format += " │ "
		}
		format += fmt.Sprintf("%%-%ds", w)
	}
	format += "\n"

	headerArgs := make([]interface{}, len(t.headers))
	for i, h := range t.headers {
		headerArgs[i] = h
	}
	fmt.Fprint(t.w.out, t.w.color(Bold, fmt.Sprintf(format, headerArgs...)))

	sep := ""
	for i, w := range t.widths {
		if i > 0 {
			sep += "─┼─"
		}
		sep += strings.Repeat("─", w)
	}
	t.w.Println(sep)

	for _, row := range t.rows {
		args := make([]interface{}, len(row))
		for i, cell := range row {
			args[i] = cell
		}
		fmt.Fprintf(t.w.out, format, args...)
	}
}

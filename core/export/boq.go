// Package export serializes a projected order as the official BOQ document.
//
// The document layout is a semi-stable interchange contract: consumers parse
// it, so field order and quoting must not change without a version bump in
// the title line.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/types"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/internal/errors"
)

// Filename is the deterministic name for exported BOQ documents.
const Filename = "HCS_Commercial_BOQ.csv"

// ErrEmptyOrder is returned when there is nothing to export.
var ErrEmptyOrder = errors.New(errors.TypeExport, "order has no line items")

const titleLine = "HUAWEI CLOUD STACK - OFFICIAL BILL OF QUANTITIES"

// TimestampLayout formats the export date line.
const TimestampLayout = "2006-01-02 15:04:05"

var headerRow = []string{"ID", "Category", "Service Name", "Configuration", "Quantity", "MUP (Monthly)", "Subtotal (USD)"}

// Document renders the order as the quoted, comma-delimited BOQ. The export
// timestamp is an explicit input so identical orders produce byte-identical
// documents. An order with no line items yields ErrEmptyOrder and no
// document.
func Document(order types.Order, exportedAt time.Time) ([]byte, error) {
	if order.Empty() {
		return nil, ErrEmptyOrder
	}

	rows := [][]string{
		{titleLine},
		{"Export Date: " + exportedAt.Format(TimestampLayout)},
		{"Billing Mode: " + types.BillingMode},
		{"Currency: " + types.Currency},
		{},
		headerRow,
	}

	for i, item := range order.Items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.Category,
			item.Name,
			item.Config,
			strconv.Itoa(item.Quantity),
			types.FormatAmount(item.UnitPrice),
			types.FormatAmount(item.Subtotal),
		})
	}

	rows = append(rows, []string{})
	rows = append(rows, []string{"", "", "", "", "", "ESTIMATED TOTAL", types.FormatAmount(order.GrandTotal)})

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return []byte(b.String()), nil
}

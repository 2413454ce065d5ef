package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/boq"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/catalog"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/export"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/selection"
	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/types"
)

var exportedAt = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func referenceDocument(t *testing.T) []byte {
	t.Helper()
	sel := selection.New()
	require.NoError(t, sel.Set("flavor_1_1", 2))
	require.NoError(t, sel.Set("evs", 100))

	order := boq.Project(catalog.Defaults(), sel)
	doc, err := export.Document(order, exportedAt)
	require.NoError(t, err)
	return doc
}

func TestDocumentLayout(t *testing.T) {
	lines := strings.Split(string(referenceDocument(t)), "\n")

	// 6 fixed non-blank rows + 2 blank separators + 2 line items.
	require.Len(t, lines, 10)

	require.Equal(t, `"HUAWEI CLOUD STACK - OFFICIAL BILL OF QUANTITIES"`, lines[0])
	require.Equal(t, `"Export Date: 2024-03-15 10:30:00"`, lines[1])
	require.Equal(t, `"Billing Mode: Monthly"`, lines[2])
	require.Equal(t, `"Currency: USD"`, lines[3])
	require.Equal(t, "", lines[4])
	require.Equal(t, `"ID","Category","Service Name","Configuration","Quantity","MUP (Monthly)","Subtotal (USD)"`, lines[5])
	require.Equal(t, `"1","Compute Services (ECS)","Virtual Machine","1 vCPU 1 GB RAM","2","15.00","30.00"`, lines[6])
	require.Equal(t, `"2","Storage Services","EVS Disk","Elastic Volume Storage (GB)","100","0.15","15.00"`, lines[7])
	require.Equal(t, "", lines[8])
	require.Equal(t, `"","","","","","ESTIMATED TOTAL","45.00"`, lines[9])
}

func TestDocumentDeterministic(t *testing.T) {
	require.Equal(t, referenceDocument(t), referenceDocument(t))
}

func TestDocumentRowCountTracksLineItems(t *testing.T) {
	sel := selection.New()
	skus := []types.SKUID{"flavor_1_1", "flavor_2_4", "evs", "hss", "eip"}
	for _, sku := range skus {
		require.NoError(t, sel.Set(sku, 1))
	}

	order := boq.Project(catalog.Defaults(), sel)
	doc, err := export.Document(order, exportedAt)
	require.NoError(t, err)

	lines := strings.Split(string(doc), "\n")
	require.Len(t, lines, len(skus)+8)

	blank := 0
	for _, line := range lines {
		if line == "" {
			blank++
		}
	}
	require.Equal(t, 2, blank)
}

func TestDocumentEveryFieldQuoted(t *testing.T) {
	for _, line := range strings.Split(string(referenceDocument(t)), "\n") {
		if line == "" {
			continue
		}
		require.True(t, strings.HasPrefix(line, `"`), "line %q", line)
		require.True(t, strings.HasSuffix(line, `"`), "line %q", line)
	}
}

func TestDocumentEmptyOrder(t *testing.T) {
	order := boq.Project(catalog.Defaults(), selection.New())
	doc, err := export.Document(order, exportedAt)
	require.ErrorIs(t, err, export.ErrEmptyOrder)
	require.Nil(t, doc)
}

func TestFilename(t *testing.T) {
	require.Equal(t, "HCS_Commercial_BOQ.csv", export.Filename)
}

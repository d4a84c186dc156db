package report_test

import (
	"bytes"
	"testing"

	"grc-app/models"
	"grc-app/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() models.GRCReportPayload {
	good := 5
	defective := 3
	pending := 2
	sent := "COURIER"
	return models.GRCReportPayload{
		Division:      "COOLER",
		ChallanNumber: "G00001",
		SentThrough:   &sent,
		GRCRows: []models.GRCReportRow{
			{
				GRCNumber:        1,
				GRCDate:          "01-04-2025",
				SpareCode:        "X1",
				SpareDescription: "PUMP MOTOR",
				ActualPendingQty: &pending,
				GoodQty:          &good,
				DefectiveQty:     &defective,
			},
		},
	}
}

func TestRenderChallan_ProducesPDFForEveryVariant(t *testing.T) {
	for _, variant := range []string{report.VariantCombined, report.VariantGood, report.VariantDefective} {
		out, err := report.RenderChallan(samplePayload(), variant, "tester")
		require.NoError(t, err, variant)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), variant)
	}
}

func TestRenderChallan_EmptyRowsStillRenders(t *testing.T) {
	payload := samplePayload()
	payload.GRCRows = nil
	out, err := report.RenderChallan(payload, report.VariantCombined, "tester")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

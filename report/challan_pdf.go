package report

import (
	"bytes"
	"strconv"
	"time"

	"grc-app/models"

	"github.com/jung-kurt/gofpdf"
)

// Report variants: which quantity columns the challan document carries.
const (
	VariantDefective = "Defective"
	VariantGood      = "Good"
	VariantCombined  = "All"
)

const lineHeight = 7.0

// RenderChallan draws the dispatch challan document for the given variant
// and returns the PDF bytes. Layout is fixed A4 portrait with the dispatch
// header on top, one table row per line item and the issuing user in the
// footer.
func RenderChallan(payload models.GRCReportPayload, variant string, username string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(95, 8, "Prepared by: "+username, "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 8, "Authorised Signatory", "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	drawHeader(pdf, payload, variant)
	drawTable(pdf, payload, variant)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawHeader(pdf *gofpdf.Fpdf, payload models.GRCReportPayload, variant string) {
	pdf.SetFont("Helvetica", "B", 14)
	title := "Goods Return Challan"
	if variant == VariantDefective {
		title = "Goods Return Challan - Defective"
	} else if variant == VariantGood {
		title = "Goods Return Challan - Good"
	}
	pdf.CellFormat(190, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 6, "Challan No:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(40, 6, payload.ChallanNumber, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 6, "Date:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(40, 6, time.Now().Format("02-01-2006"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(25, 6, "Division:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(25, 6, payload.Division, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 6, "Sent Through:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(40, 6, strOrBlank(payload.SentThrough), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 6, "Docket No:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(40, 6, strOrBlank(payload.DocketNumber), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func drawTable(pdf *gofpdf.Fpdf, payload models.GRCReportPayload, variant string) {
	type column struct {
		header string
		width  float64
	}

	var columns []column
	switch variant {
	case VariantDefective, VariantGood:
		columns = []column{
			{"GRC No", 22}, {"GRC Date", 24}, {"Spare Code", 36},
			{"Description", 88}, {"Qty", 20},
		}
	default:
		columns = []column{
			{"GRC No", 20}, {"GRC Date", 22}, {"Spare Code", 32},
			{"Description", 68}, {"Pending", 16}, {"Good", 16}, {"Defective", 16},
		}
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range columns {
		pdf.CellFormat(c.width, lineHeight, c.header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range payload.GRCRows {
		cells := rowCells(item, variant)
		for i, c := range columns {
			align := "C"
			if c.header == "Description" {
				align = "L"
			}
			pdf.CellFormat(c.width, lineHeight, cells[i], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func rowCells(item models.GRCReportRow, variant string) []string {
	grcNumber := itoa(item.GRCNumber)
	switch variant {
	case VariantDefective:
		return []string{grcNumber, item.GRCDate, item.SpareCode, item.SpareDescription,
			itoa(intValue(item.DefectiveQty))}
	case VariantGood:
		return []string{grcNumber, item.GRCDate, item.SpareCode, item.SpareDescription,
			itoa(intValue(item.GoodQty))}
	default:
		return []string{grcNumber, item.GRCDate, item.SpareCode, item.SpareDescription,
			itoa(intValue(item.ActualPendingQty)), itoa(intValue(item.GoodQty)),
			itoa(intValue(item.DefectiveQty))}
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func strOrBlank(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

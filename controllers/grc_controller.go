package controllers

import (
	"encoding/csv"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"grc-app/models"
	"grc-app/report"
	"grc-app/services"
	"grc-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type GRCController struct {
	DB *gorm.DB
}

func NewGRCController(DB *gorm.DB) *GRCController {
	return &GRCController{DB: DB}
}

var validate = validator.New()

//====================================================================
// BEGIN BATCH UPLOAD
//====================================================================

// UploadBatch ingests a CSV or Excel batch of GRC rows. The service decides
// success/warning/error; this handler only extracts the table.
func (c *GRCController) UploadBatch(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(models.GRCUploadResult{
			Message:    "No file uploaded or invalid file",
			Resolution: err.Error(),
			Type:       models.UploadWarning,
		})
	}

	header, rows, err := readTabularFile(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(models.GRCUploadResult{
			Message:    "Invalid file",
			Resolution: err.Error(),
			Type:       models.UploadWarning,
		})
	}

	service := services.NewGRCService(c.DB)
	result := service.Ingest(header, rows)

	switch result.Type {
	case models.UploadWarning:
		return ctx.Status(fiber.StatusBadRequest).JSON(result)
	case models.UploadError:
		return ctx.Status(fiber.StatusInternalServerError).JSON(result)
	}
	return ctx.Status(fiber.StatusOK).JSON(result)
}

// readTabularFile extracts the header row and data rows from an uploaded
// .csv or .xlsx file.
func readTabularFile(file *multipart.FileHeader) ([]string, [][]string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()

	name := strings.ToLower(file.Filename)
	var records [][]string

	switch {
	case strings.HasSuffix(name, ".csv"):
		reader := csv.NewReader(src)
		reader.FieldsPerRecord = -1
		records, err = reader.ReadAll()
		if err != nil {
			return nil, nil, err
		}
	case strings.HasSuffix(name, ".xlsx") || strings.HasSuffix(name, ".xls"):
		excelFile, err := excelize.OpenReader(src)
		if err != nil {
			return nil, nil, err
		}
		defer excelFile.Close()

		sheets := excelFile.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, fmt.Errorf("file contains no sheets")
		}
		records, err = excelFile.GetRows(sheets[0])
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unsupported file type, expected .csv or .xlsx")
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("file has no header row")
	}

	header := records[0]
	if len(header) > 0 {
		// Excel tools like to prepend a UTF-8 BOM.
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	return header, records[1:], nil
}

//====================================================================
// END BATCH UPLOAD
//====================================================================

func (c *GRCController) NotReceived(ctx *fiber.Ctx) error {
	service := services.NewGRCService(c.DB)
	numbers, err := service.NotReceivedGRCNumbers()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(numbers)
}

func (c *GRCController) NotReceivedByGRCNumber(ctx *fiber.Ctx) error {
	grcNumber, err := strconv.Atoi(ctx.Params("grc_number"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid GRC number"})
	}

	service := services.NewGRCService(c.DB)
	rows, err := service.NotReceivedByGRCNumber(grcNumber)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(rows)
}

func (c *GRCController) UpdateReceive(ctx *fiber.Ctx) error {
	var forms []models.GRCReceiveForm
	if err := ctx.BodyParser(&forms); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	for _, form := range forms {
		if err := validate.Struct(form); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	service := services.NewGRCService(c.DB)
	outcomes, err := service.UpdateReceive(forms)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message":  "GRC Receive Details Updated",
		"outcomes": outcomes,
	})
}

func (c *GRCController) ReturnByDivision(ctx *fiber.Ctx) error {
	division := strings.ToUpper(ctx.Params("division"))

	service := services.NewGRCService(c.DB)
	rows, err := service.ReturnByDivision(division)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(rows)
}

func (c *GRCController) SaveReturn(ctx *fiber.Ctx) error {
	var forms []models.GRCReturnSaveForm
	if err := ctx.BodyParser(&forms); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	for _, form := range forms {
		if err := validate.Struct(form); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	service := services.NewGRCService(c.DB)
	outcomes, err := service.SaveReturn(forms)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message":  "GRC Return Details Saved",
		"outcomes": outcomes,
	})
}

func (c *GRCController) FinalizeReturn(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)

	var payload models.GRCFinalizePayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	service := services.NewGRCService(c.DB)
	result, err := service.FinalizeReturn(payload, username)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message":        "GRC Return Details Finalized",
		"challan_number": result.ChallanNumber,
		"outcomes":       result.Outcomes,
	})
}

func (c *GRCController) NextChallanCode(ctx *fiber.Ctx) error {
	service := services.NewGRCService(c.DB)
	code, err := service.NextChallanCode()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"next_challan_code": code})
}

// Enquiry is the unified read view. A failing query degrades to an empty
// page with zero total rather than a 500.
func (c *GRCController) Enquiry(ctx *fiber.Ctx) error {
	filter, err := parseEnquiryFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	service := services.NewGRCService(c.DB)
	rows, total, err := service.Enquiry(filter)
	if err != nil {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"records":       []models.GRCEnquiryRow{},
			"total_records": 0,
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"records":       rows,
		"total_records": total,
	})
}

// ExportEnquiryExcel streams the same filtered view as an .xlsx download.
func (c *GRCController) ExportEnquiryExcel(ctx *fiber.Ctx) error {
	filter, err := parseEnquiryFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	service := services.NewGRCService(c.DB)
	rows, _, err := service.Enquiry(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"Spare Code", "Description", "GRC No", "GRC Date", "Issue Qty",
		"Pending Qty", "Returning Qty", "Dispute Remark", "Challan No", "Challan Date", "Docket No"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		values := []interface{}{row.SpareCode, row.SpareDescription, row.GRCNumber, row.GRCDate,
			row.IssueQty, row.GRCPendingQty, derefInt(row.ReturningQty), derefStr(row.DisputeRemark),
			derefStr(row.ChallanNumber), derefStr(row.ChallanDate), derefStr(row.DocketNumber)}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="grc_enquiry.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}
	return nil
}

// PrintReport renders the challan PDF for one dispatch.
func (c *GRCController) PrintReport(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)
	reportType := ctx.Params("report_type")

	var payload models.GRCReportPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	pdfBytes, err := report.RenderChallan(payload, reportType, username)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/pdf")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, payload.ChallanNumber))
	return ctx.Send(pdfBytes)
}

func parseEnquiryFilter(ctx *fiber.Ctx) (models.GRCEnquiryFilter, error) {
	filter := models.GRCEnquiryFilter{
		Division:      ctx.Query("division"),
		SpareCode:     ctx.Query("spare_code"),
		ChallanNumber: ctx.Query("challan_number"),
		Status:        ctx.Query("grc_status", "N"),
		Limit:         ctx.QueryInt("limit", 100),
		Offset:        ctx.QueryInt("offset", 0),
	}

	if v := ctx.Query("grc_number"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, fmt.Errorf("invalid grc_number %q", v)
		}
		filter.GRCNumber = &n
	}
	if v := ctx.Query("from_grc_date"); v != "" {
		d, err := utils.ParseDate(v)
		if err != nil {
			return filter, err
		}
		filter.FromGRCDate = &d
	}
	if v := ctx.Query("to_grc_date"); v != "" {
		d, err := utils.ParseDate(v)
		if err != nil {
			return filter, err
		}
		filter.ToGRCDate = &d
	}
	return filter, nil
}

func derefInt(p *int) interface{} {
	if p == nil {
		return ""
	}
	return *p
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

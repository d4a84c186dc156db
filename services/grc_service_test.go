package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"grc-app/database"
	"grc-app/models"
	"grc-app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestDB(t *testing.T) *gorm.DB {
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestService(t *testing.T) (*services.GRCService, *gorm.DB) {
	db := newTestDB(t)
	return services.NewGRCService(db), db
}

var batchHeader = []string{"division", "spare_code", "spare_description", "grc_number", "grc_date", "issue_qty", "grc_pending_qty"}

func batchRows() [][]string {
	return [][]string{
		{"COOLER", "X1", "PUMP MOTOR", "1", "2025-04-01", "10", "10"},
		{"COOLER", "X2", "FAN BLADE", "1", "2025-04-01", "5", "5"},
	}
}

func loadSpare(t *testing.T, db *gorm.DB, spareCode string, grcNumber int) models.GRCSpare {
	var record models.GRCSpare
	err := db.Where("spare_code = ? AND grc_number = ?", spareCode, grcNumber).First(&record).Error
	require.NoError(t, err)
	return record
}

func intPtr(n int) *int {
	return &n
}

func strPtr(s string) *string {
	return &s
}

// =============================================================================
// INGESTION
// =============================================================================

func TestIngest_InsertsNewRecords(t *testing.T) {
	service, db := newTestService(t)

	result := service.Ingest(batchHeader, batchRows())
	require.Equal(t, models.UploadSuccess, result.Type, result.Resolution)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 0, result.Updated)

	x1 := loadSpare(t, db, "X1", 1)
	assert.Equal(t, "COOLER", x1.Division)
	assert.Equal(t, "PUMP MOTOR", x1.SpareDescription)
	assert.Equal(t, 10, x1.IssueQty)
	assert.Equal(t, "N", x1.Status)
	require.NotNil(t, x1.ActualPendingQty)
	assert.Equal(t, 10, *x1.ActualPendingQty)
	require.NotNil(t, x1.ReturnedQty)
	assert.Equal(t, 0, *x1.ReturnedQty)
}

func TestIngest_LowercasesNothingUppercasesText(t *testing.T) {
	service, db := newTestService(t)

	rows := [][]string{{"cooler", " x1 ", "pump motor", "1", "2025-04-01", "10", "10"}}
	result := service.Ingest(batchHeader, rows)
	require.Equal(t, models.UploadSuccess, result.Type, result.Resolution)

	x1 := loadSpare(t, db, "X1", 1)
	assert.Equal(t, "COOLER", x1.Division)
	assert.Equal(t, "PUMP MOTOR", x1.SpareDescription)
}

func TestIngest_RerunIsIdempotent(t *testing.T) {
	service, db := newTestService(t)

	first := service.Ingest(batchHeader, batchRows())
	require.Equal(t, models.UploadSuccess, first.Type)

	second := service.Ingest(batchHeader, batchRows())
	require.Equal(t, models.UploadSuccess, second.Type)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 2, second.Updated)

	var count int64
	db.Model(&models.GRCSpare{}).Count(&count)
	assert.EqualValues(t, 2, count)

	x1 := loadSpare(t, db, "X1", 1)
	assert.Equal(t, "PUMP MOTOR", x1.SpareDescription)
	assert.Equal(t, "N", x1.Status)
}

func TestIngest_NonNumericCellFailsWholeBatch(t *testing.T) {
	service, db := newTestService(t)

	rows := [][]string{
		{"COOLER", "X1", "PUMP MOTOR", "1", "2025-04-01", "10", "10"},
		{"COOLER", "X2", "FAN BLADE", "1", "2025-04-01", "ten", "5"},
	}
	result := service.Ingest(batchHeader, rows)
	require.Equal(t, models.UploadWarning, result.Type)
	assert.Contains(t, result.Message, "X2")

	var count int64
	db.Model(&models.GRCSpare{}).Count(&count)
	assert.EqualValues(t, 0, count, "no partial writes on a failed batch")
}

func TestIngest_EmptyBatchIsNoOpSuccess(t *testing.T) {
	service, _ := newTestService(t)

	result := service.Ingest(batchHeader, [][]string{})
	require.Equal(t, models.UploadSuccess, result.Type)
	assert.Equal(t, "No valid rows found", result.Resolution)
}

func TestIngest_UnrecognizedHeaderIsWarning(t *testing.T) {
	service, _ := newTestService(t)

	result := service.Ingest([]string{"foo", "bar"}, [][]string{{"a", "b"}})
	require.Equal(t, models.UploadWarning, result.Type)
}

func TestIngest_StalenessSweepMarksUntouchedRows(t *testing.T) {
	service, db := newTestService(t)

	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)

	// Second batch only covers a new key: every earlier row goes stale.
	rows := [][]string{{"COOLER", "X3", "GASKET", "2", "2025-05-01", "3", "3"}}
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, rows).Type)

	assert.Equal(t, "Y", loadSpare(t, db, "X1", 1).Status)
	assert.Equal(t, "Y", loadSpare(t, db, "X2", 1).Status)
	assert.Equal(t, "N", loadSpare(t, db, "X3", 2).Status)
}

func TestIngest_NarrowCorrectionFileOnlyWritesPresentColumns(t *testing.T) {
	service, db := newTestService(t)

	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)

	narrowHeader := []string{"spare_code", "grc_number", "grc_pending_qty"}
	result := service.Ingest(narrowHeader, [][]string{{"X1", "1", "7"}})
	require.Equal(t, models.UploadSuccess, result.Type, result.Resolution)
	assert.Equal(t, 1, result.Updated)

	x1 := loadSpare(t, db, "X1", 1)
	assert.Equal(t, 7, x1.GRCPendingQty)
	assert.Equal(t, "PUMP MOTOR", x1.SpareDescription, "absent columns must not be clobbered")
	assert.Equal(t, 10, x1.IssueQty)
}

func TestIngest_NarrowFileCannotInsertNewKey(t *testing.T) {
	service, _ := newTestService(t)

	narrowHeader := []string{"spare_code", "grc_number", "grc_pending_qty"}
	result := service.Ingest(narrowHeader, [][]string{{"X9", "9", "7"}})
	require.Equal(t, models.UploadWarning, result.Type)
	assert.Contains(t, result.Message, "X9")
}

// =============================================================================
// RECONCILIATION
// =============================================================================

func TestUpdateReceive_StampsDateAndRaisesDispute(t *testing.T) {
	service, db := newTestService(t)
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)

	outcomes, err := service.UpdateReceive([]models.GRCReceiveForm{
		{
			SpareCode:     "X1",
			GRCNumber:     1,
			ReceiveQty:    intPtr(8),
			ShortQty:      intPtr(2),
			DisputeRemark: strPtr("TWO SHORT"),
		},
		{
			SpareCode:  "X2",
			GRCNumber:  1,
			ReceiveQty: intPtr(5),
		},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, models.RowApplied, outcomes[0].Status)
	assert.Equal(t, models.RowApplied, outcomes[1].Status)

	x1 := loadSpare(t, db, "X1", 1)
	require.NotNil(t, x1.ReceiveDate)
	require.NotNil(t, x1.ReceiveQty)
	assert.Equal(t, 8, *x1.ReceiveQty)

	// Only the mismatched row raises a dispute, fields copied verbatim.
	var disputes []models.GRCDispute
	require.NoError(t, db.Find(&disputes).Error)
	require.Len(t, disputes, 1)
	assert.Equal(t, "X1", disputes[0].SpareCode)
	assert.Equal(t, 10, disputes[0].IssueQty)
	require.NotNil(t, disputes[0].ShortQty)
	assert.Equal(t, 2, *disputes[0].ShortQty)
	require.NotNil(t, disputes[0].DisputeRemark)
	assert.Equal(t, "TWO SHORT", *disputes[0].DisputeRemark)
}

func TestUpdateReceive_UnknownKeyReportedNotFound(t *testing.T) {
	service, db := newTestService(t)
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)

	outcomes, err := service.UpdateReceive([]models.GRCReceiveForm{
		{SpareCode: "NOPE", GRCNumber: 99, ReceiveQty: intPtr(1)},
		{SpareCode: "X2", GRCNumber: 1, ReceiveQty: intPtr(5)},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, models.RowNotFound, outcomes[0].Status)
	assert.Equal(t, models.RowApplied, outcomes[1].Status)

	var count int64
	db.Model(&models.GRCDispute{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestNotReceivedQueueShrinksAfterReceive(t *testing.T) {
	service, _ := newTestService(t)
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)

	numbers, err := service.NotReceivedGRCNumbers()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, numbers)

	rows, err := service.NotReceivedByGRCNumber(1)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = service.UpdateReceive([]models.GRCReceiveForm{
		{SpareCode: "X1", GRCNumber: 1, ReceiveQty: intPtr(10)},
		{SpareCode: "X2", GRCNumber: 1, ReceiveQty: intPtr(5)},
	})
	require.NoError(t, err)

	numbers, err = service.NotReceivedGRCNumbers()
	require.NoError(t, err)
	assert.Empty(t, numbers)
}

// =============================================================================
// RETURN WORKFLOW
// =============================================================================

func stageAndFinalize(t *testing.T, service *services.GRCService) models.GRCFinalizeResult {
	t.Helper()

	_, err := service.SaveReturn([]models.GRCReturnSaveForm{
		{
			SpareCode:    "X1",
			GRCNumber:    1,
			GoodQty:      intPtr(5),
			DefectiveQty: intPtr(3),
			Invoice:      strPtr("Y"),
			SentThrough:  strPtr("COURIER"),
			DocketNumber: strPtr("DKT001"),
		},
	})
	require.NoError(t, err)

	result, err := service.FinalizeReturn(models.GRCFinalizePayload{
		Division:     "COOLER",
		SentThrough:  strPtr("COURIER"),
		DocketNumber: strPtr("DKT001"),
		GRCRows: []models.GRCFinalizeRow{
			{SpareCode: "X1", GRCNumber: 1, GoodQty: intPtr(5), DefectiveQty: intPtr(3)},
		},
	}, "tester")
	require.NoError(t, err)
	return result
}

func TestSaveReturn_StagesSuppliedFields(t *testing.T) {
	service, db := newTestService(t)
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)

	outcomes, err := service.SaveReturn([]models.GRCReturnSaveForm{
		{SpareCode: "X1", GRCNumber: 1, GoodQty: intPtr(5), DefectiveQty: intPtr(3)},
		{SpareCode: "GHOST", GRCNumber: 7, GoodQty: intPtr(1)},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, models.RowApplied, outcomes[0].Status)
	assert.Equal(t, models.RowNotFound, outcomes[1].Status)

	x1 := loadSpare(t, db, "X1", 1)
	require.NotNil(t, x1.GoodQty)
	assert.Equal(t, 5, *x1.GoodQty)
	require.NotNil(t, x1.DefectiveQty)
	assert.Equal(t, 3, *x1.DefectiveQty)
}

func TestFinalize_AppendsHistoryAndUpdatesBalances(t *testing.T) {
	service, db := newTestService(t)
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)

	result := stageAndFinalize(t, service)
	assert.Equal(t, "G00001", result.ChallanNumber)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, models.RowApplied, result.Outcomes[0].Status)

	var histories []models.GRCReturnHistory
	require.NoError(t, db.Find(&histories).Error)
	require.Len(t, histories, 1)
	h := histories[0]
	assert.Equal(t, "X1", h.SpareCode)
	require.NotNil(t, h.ReturningQty)
	assert.Equal(t, 8, *h.ReturningQty)
	assert.Equal(t, "tester", h.ChallanBy)
	require.NotNil(t, h.ChallanNumber)
	assert.Equal(t, "G00001", *h.ChallanNumber)
	assert.NotZero(t, h.ID)

	x1 := loadSpare(t, db, "X1", 1)
	require.NotNil(t, x1.ReturnedQty)
	assert.Equal(t, 8, *x1.ReturnedQty)
	require.NotNil(t, x1.ActualPendingQty)
	assert.Equal(t, 2, *x1.ActualPendingQty)
	require.NotNil(t, x1.GoodQty)
	assert.Equal(t, 0, *x1.GoodQty, "staging fields reset after finalize")
	require.NotNil(t, x1.DefectiveQty)
	assert.Equal(t, 0, *x1.DefectiveQty)
	require.NotNil(t, x1.ChallanBy)
	assert.Equal(t, "tester", *x1.ChallanBy)

	// Balance conservation: returned + actual pending equals issued.
	assert.Equal(t, x1.IssueQty, *x1.ReturnedQty+*x1.ActualPendingQty)
}

func TestFinalize_ZeroQuantityRowClaimsMetadataWithoutHistory(t *testing.T) {
	service, db := newTestService(t)
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)

	result, err := service.FinalizeReturn(models.GRCFinalizePayload{
		ChallanNumber: "G00042",
		Division:      "COOLER",
		GRCRows: []models.GRCFinalizeRow{
			{SpareCode: "X2", GRCNumber: 1},
		},
	}, "tester")
	require.NoError(t, err)
	assert.Equal(t, "G00042", result.ChallanNumber)

	var count int64
	db.Model(&models.GRCReturnHistory{}).Count(&count)
	assert.EqualValues(t, 0, count, "zero-quantity finalize writes no history")

	x2 := loadSpare(t, db, "X2", 1)
	require.NotNil(t, x2.ChallanNumber)
	assert.Equal(t, "G00042", *x2.ChallanNumber)
	require.NotNil(t, x2.ReturnedQty)
	assert.Equal(t, 0, *x2.ReturnedQty)
}

func TestFinalize_RepeatedDispatchesAccumulate(t *testing.T) {
	service, db := newTestService(t)
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)

	for i := 0; i < 2; i++ {
		_, err := service.FinalizeReturn(models.GRCFinalizePayload{
			Division: "COOLER",
			GRCRows: []models.GRCFinalizeRow{
				{SpareCode: "X1", GRCNumber: 1, GoodQty: intPtr(3)},
			},
		}, "tester")
		require.NoError(t, err)
	}

	x1 := loadSpare(t, db, "X1", 1)
	require.NotNil(t, x1.ReturnedQty)
	assert.Equal(t, 6, *x1.ReturnedQty)
	require.NotNil(t, x1.ActualPendingQty)
	assert.Equal(t, 4, *x1.ActualPendingQty)

	// Live record only keeps the latest dispatch, history keeps both.
	var count int64
	db.Model(&models.GRCReturnHistory{}).Count(&count)
	assert.EqualValues(t, 2, count)
	require.NotNil(t, x1.ChallanNumber)
	assert.Equal(t, "G00002", *x1.ChallanNumber)
}

func TestFinalize_UnknownKeySkippedWithOutcome(t *testing.T) {
	service, db := newTestService(t)
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)

	result, err := service.FinalizeReturn(models.GRCFinalizePayload{
		Division: "COOLER",
		GRCRows: []models.GRCFinalizeRow{
			{SpareCode: "GHOST", GRCNumber: 7, GoodQty: intPtr(1)},
		},
	}, "tester")
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, models.RowNotFound, result.Outcomes[0].Status)

	var count int64
	db.Model(&models.GRCReturnHistory{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestFinalize_ExplicitDuplicateChallanRejected(t *testing.T) {
	service, _ := newTestService(t)
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)

	payload := models.GRCFinalizePayload{
		ChallanNumber: "G00010",
		Division:      "COOLER",
		GRCRows:       []models.GRCFinalizeRow{{SpareCode: "X1", GRCNumber: 1, GoodQty: intPtr(1)}},
	}
	_, err := service.FinalizeReturn(payload, "tester")
	require.NoError(t, err)

	_, err = service.FinalizeReturn(payload, "tester")
	require.Error(t, err, "reusing a registered challan code must fail")
}

// =============================================================================
// CHALLAN CODE GENERATOR
// =============================================================================

func TestNextChallanCode_EmptyLedger(t *testing.T) {
	service, _ := newTestService(t)

	code, err := service.NextChallanCode()
	require.NoError(t, err)
	assert.Equal(t, "G00001", code)
}

func TestNextChallanCode_IncrementsFromHistory(t *testing.T) {
	service, db := newTestService(t)

	challan := "G00041"
	history := models.GRCReturnHistory{
		Division:         "COOLER",
		SpareCode:        "X1",
		SpareDescription: "PUMP MOTOR",
		GRCNumber:        1,
		GRCDate:          time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		IssueQty:         10,
		GRCPendingQty:    10,
		ChallanNumber:    &challan,
		ChallanBy:        "tester",
	}
	require.NoError(t, db.Create(&history).Error)

	code, err := service.NextChallanCode()
	require.NoError(t, err)
	assert.Equal(t, "G00042", code)
}

func TestNextChallanCode_RegisterWins(t *testing.T) {
	service, db := newTestService(t)

	require.NoError(t, db.Create(&models.GRCChallan{
		ChallanNumber: "G00100",
		Division:      "COOLER",
		ChallanDate:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		ChallanBy:     "tester",
	}).Error)

	code, err := service.NextChallanCode()
	require.NoError(t, err)
	assert.Equal(t, "G00101", code)
}

func TestNormalizeChallanNumber(t *testing.T) {
	assert.Equal(t, "G00042", services.NormalizeChallanNumber("42"))
	assert.Equal(t, "G00042", services.NormalizeChallanNumber("G42"))
	assert.Equal(t, "G00042", services.NormalizeChallanNumber("G00042"))
	assert.Equal(t, "", services.NormalizeChallanNumber(""))
}

// =============================================================================
// ENQUIRY
// =============================================================================

func TestEnquiry_LiveTableWithFilters(t *testing.T) {
	service, _ := newTestService(t)
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)

	rows, total, err := service.Enquiry(models.GRCEnquiryFilter{Status: "N"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "01-04-2025", rows[0].GRCDate)

	rows, total, err = service.Enquiry(models.GRCEnquiryFilter{Status: "N", SpareCode: "X1"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "X1", rows[0].SpareCode)
}

func TestEnquiry_ChallanNumberNormalized(t *testing.T) {
	service, _ := newTestService(t)
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)

	_, err := service.FinalizeReturn(models.GRCFinalizePayload{
		ChallanNumber: "G00042",
		Division:      "COOLER",
		GRCRows: []models.GRCFinalizeRow{
			{SpareCode: "X1", GRCNumber: 1, GoodQty: intPtr(2)},
		},
	}, "tester")
	require.NoError(t, err)

	rows, total, err := service.Enquiry(models.GRCEnquiryFilter{Status: "H", ChallanNumber: "42"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].ChallanNumber)
	assert.Equal(t, "G00042", *rows[0].ChallanNumber)
}

func TestEnquiry_DateRangeAndPagination(t *testing.T) {
	service, _ := newTestService(t)
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)
	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader,
		[][]string{{"COOLER", "X3", "GASKET", "2", "2025-06-01", "3", "3"}}).Type)

	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	rows, total, err := service.Enquiry(models.GRCEnquiryFilter{Status: "N", FromGRCDate: &from})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "X3", rows[0].SpareCode)

	rows, total, err = service.Enquiry(models.GRCEnquiryFilter{Status: "N", Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, rows, 2)

	rows, _, err = service.Enquiry(models.GRCEnquiryFilter{Status: "N", Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

// =============================================================================
// END TO END
// =============================================================================

func TestEndToEnd_IngestReceiveStageFinalize(t *testing.T) {
	service, db := newTestService(t)

	require.Equal(t, models.UploadSuccess, service.Ingest(batchHeader, batchRows()).Type)
	assert.Equal(t, "N", loadSpare(t, db, "X1", 1).Status)
	assert.Equal(t, "N", loadSpare(t, db, "X2", 1).Status)

	_, err := service.UpdateReceive([]models.GRCReceiveForm{
		{SpareCode: "X1", GRCNumber: 1, ReceiveQty: intPtr(8)},
		{SpareCode: "X2", GRCNumber: 1, ReceiveQty: intPtr(5)},
	})
	require.NoError(t, err)

	var disputes []models.GRCDispute
	require.NoError(t, db.Find(&disputes).Error)
	require.Len(t, disputes, 1)
	assert.Equal(t, "X1", disputes[0].SpareCode)

	result := stageAndFinalize(t, service)
	assert.Equal(t, "G00001", result.ChallanNumber)

	var histories []models.GRCReturnHistory
	require.NoError(t, db.Find(&histories).Error)
	require.Len(t, histories, 1)
	require.NotNil(t, histories[0].ReturningQty)
	assert.Equal(t, 8, *histories[0].ReturningQty)

	x1 := loadSpare(t, db, "X1", 1)
	assert.Equal(t, 8, *x1.ReturnedQty)
	assert.Equal(t, 2, *x1.ActualPendingQty)
	assert.Equal(t, 0, *x1.GoodQty)
	assert.Equal(t, 0, *x1.DefectiveQty)
}

package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"grc-app/models"
	"grc-app/repositories"
	"grc-app/utils"

	"gorm.io/gorm"
)

// GRCService owns the GRC reconciliation and return-finalization workflow:
// batch ingestion with upsert semantics, the not-yet-received queue, the
// dispute side-ledger and the two-phase return into the history ledger.
type GRCService struct {
	db   *gorm.DB
	repo *repositories.GRCRepository
}

func NewGRCService(db *gorm.DB) *GRCService {
	return &GRCService{db: db, repo: repositories.NewGRCRepository(db)}
}

//====================================================================
// BEGIN BATCH INGESTION
//====================================================================

var grcIntColumns = map[string]bool{
	"grc_number":      true,
	"grc_pending_qty": true,
	"issue_qty":       true,
}

var grcColumns = map[string]bool{
	"division":          true,
	"spare_code":        true,
	"spare_description": true,
	"grc_number":        true,
	"grc_date":          true,
	"issue_qty":         true,
	"grc_pending_qty":   true,
}

// batchRow is one parsed upload row. Pointers distinguish "column present
// but empty" from a real value.
type batchRow struct {
	Division         *string
	SpareCode        *string
	SpareDescription *string
	GRCNumber        *int
	GRCDate          *time.Time
	IssueQty         *int
	GRCPendingQty    *int
}

func (b batchRow) key() string {
	code := ""
	if b.SpareCode != nil {
		code = *b.SpareCode
	}
	return code
}

// Ingest applies one tabular batch: every row is validated up front
// (fail-fast, nothing is written on a bad row), existing keys become
// updates restricted to the columns the file actually carries, new keys
// become inserts, and the whole thing commits atomically behind a
// full-table staleness sweep.
func (s *GRCService) Ingest(header []string, rows [][]string) models.GRCUploadResult {
	columns := make([]string, len(header))
	known := 0
	for i, h := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(h))
		if grcColumns[columns[i]] {
			known++
		}
	}
	if known == 0 {
		return models.GRCUploadResult{
			Message:    "Invalid file",
			Resolution: "File has no recognized header row",
			Type:       models.UploadWarning,
		}
	}

	// Columns present in this batch, minus the composite key. Only these
	// get written on updates so a narrow correction file does not clobber
	// fields it does not carry.
	presentCols := make(map[string]bool)
	for _, c := range columns {
		if grcColumns[c] && c != "spare_code" && c != "grc_number" {
			presentCols[c] = true
		}
	}

	records := make([]batchRow, 0, len(rows))
	for i, raw := range rows {
		if isEmptyRow(raw) {
			continue
		}
		rec, err := parseBatchRow(columns, raw)
		if err != nil {
			return models.GRCUploadResult{
				Message:    fmt.Sprintf("Validation failed for %s", rec.key()),
				Resolution: fmt.Sprintf("row %d: %v", i+2, err),
				Type:       models.UploadWarning,
			}
		}
		if rec.SpareCode == nil || rec.GRCNumber == nil {
			return models.GRCUploadResult{
				Message:    fmt.Sprintf("Validation failed for %s", rec.key()),
				Resolution: fmt.Sprintf("row %d: spare_code and grc_number are required", i+2),
				Type:       models.UploadWarning,
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return models.GRCUploadResult{
			Message:    "Uploaded Successfully",
			Resolution: "No valid rows found",
			Type:       models.UploadSuccess,
		}
	}

	keys := make([]repositories.GRCKey, 0, len(records))
	for _, r := range records {
		keys = append(keys, repositories.GRCKey{SpareCode: *r.SpareCode, GRCNumber: *r.GRCNumber})
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return uploadDBError(tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	existing, err := s.repo.FindByKeys(tx, keys)
	if err != nil {
		tx.Rollback()
		return uploadDBError(err)
	}

	var toInsert []models.GRCSpare
	type pendingUpdate struct {
		key    repositories.GRCKey
		values map[string]interface{}
	}
	var toUpdate []pendingUpdate

	for _, r := range records {
		key := repositories.GRCKey{SpareCode: *r.SpareCode, GRCNumber: *r.GRCNumber}
		if _, ok := existing[key]; ok {
			values := r.updateValues(presentCols)
			values["status"] = "N"
			toUpdate = append(toUpdate, pendingUpdate{key: key, values: values})
			continue
		}
		spare, err := r.toInsert()
		if err != nil {
			tx.Rollback()
			return models.GRCUploadResult{
				Message:    fmt.Sprintf("Validation failed for %s", key.SpareCode),
				Resolution: err.Error(),
				Type:       models.UploadWarning,
			}
		}
		toInsert = append(toInsert, spare)
	}

	// Staleness sweep first: only rows this batch restores stay current.
	if err := s.repo.MarkAllStale(tx); err != nil {
		tx.Rollback()
		return uploadDBError(err)
	}

	if len(toInsert) > 0 {
		if err := tx.Create(&toInsert).Error; err != nil {
			tx.Rollback()
			return uploadDBError(err)
		}
	}
	for _, u := range toUpdate {
		err := tx.Model(&models.GRCSpare{}).
			Where("spare_code = ? AND grc_number = ?", u.key.SpareCode, u.key.GRCNumber).
			Updates(u.values).Error
		if err != nil {
			tx.Rollback()
			return uploadDBError(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return uploadDBError(err)
	}

	return models.GRCUploadResult{
		Message:    "Spare Code Uploaded",
		Resolution: fmt.Sprintf("Inserted : %d, Updated : %d", len(toInsert), len(toUpdate)),
		Type:       models.UploadSuccess,
		Inserted:   len(toInsert),
		Updated:    len(toUpdate),
	}
}

func isEmptyRow(raw []string) bool {
	for _, cell := range raw {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseBatchRow(columns []string, raw []string) (batchRow, error) {
	var rec batchRow
	for i, col := range columns {
		if !grcColumns[col] || i >= len(raw) {
			continue
		}
		val := strings.TrimSpace(raw[i])

		if grcIntColumns[col] {
			if val == "" {
				continue
			}
			n, err := strconv.Atoi(val)
			if err != nil {
				return rec, fmt.Errorf("column %s: %q is not a number", col, val)
			}
			switch col {
			case "grc_number":
				rec.GRCNumber = &n
			case "issue_qty":
				rec.IssueQty = &n
			case "grc_pending_qty":
				rec.GRCPendingQty = &n
			}
			continue
		}

		if val == "" {
			continue
		}
		val = strings.ToUpper(val)
		switch col {
		case "spare_code":
			rec.SpareCode = &val
		case "division":
			rec.Division = &val
		case "spare_description":
			rec.SpareDescription = &val
		case "grc_date":
			d, err := utils.ParseDate(val)
			if err != nil {
				return rec, fmt.Errorf("column grc_date: %v", err)
			}
			rec.GRCDate = &d
		}
	}
	return rec, nil
}

// toInsert builds a fresh live record. Inserts need the full schema, unlike
// updates from a narrow correction file.
func (r batchRow) toInsert() (models.GRCSpare, error) {
	var missing []string
	if r.Division == nil {
		missing = append(missing, "division")
	}
	if r.SpareDescription == nil {
		missing = append(missing, "spare_description")
	}
	if r.GRCDate == nil {
		missing = append(missing, "grc_date")
	}
	if r.IssueQty == nil {
		missing = append(missing, "issue_qty")
	}
	if r.GRCPendingQty == nil {
		missing = append(missing, "grc_pending_qty")
	}
	if len(missing) > 0 {
		return models.GRCSpare{}, fmt.Errorf("new record is missing %s", strings.Join(missing, ", "))
	}

	zero := 0
	pending := *r.GRCPendingQty
	return models.GRCSpare{
		Division:         *r.Division,
		SpareCode:        *r.SpareCode,
		SpareDescription: *r.SpareDescription,
		GRCNumber:        *r.GRCNumber,
		GRCDate:          *r.GRCDate,
		IssueQty:         *r.IssueQty,
		GRCPendingQty:    pending,
		ReturnedQty:      &zero,
		ActualPendingQty: &pending,
		Status:           "N",
	}, nil
}

func (r batchRow) updateValues(presentCols map[string]bool) map[string]interface{} {
	values := make(map[string]interface{})
	if presentCols["division"] {
		values["division"] = r.Division
	}
	if presentCols["spare_description"] {
		values["spare_description"] = r.SpareDescription
	}
	if presentCols["grc_date"] {
		values["grc_date"] = r.GRCDate
	}
	if presentCols["issue_qty"] {
		values["issue_qty"] = r.IssueQty
	}
	if presentCols["grc_pending_qty"] {
		values["grc_pending_qty"] = r.GRCPendingQty
	}
	return values
}

func uploadDBError(err error) models.GRCUploadResult {
	if isDuplicateKey(err) {
		return models.GRCUploadResult{
			Message:    "Database integrity error",
			Resolution: err.Error(),
			Type:       models.UploadError,
		}
	}
	return models.GRCUploadResult{
		Message:    "Unexpected server error",
		Resolution: err.Error(),
		Type:       models.UploadError,
	}
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}

//====================================================================
// END BATCH INGESTION
//====================================================================

// NotReceivedGRCNumbers is the not-yet-received queue: GRC batches with at
// least one row awaiting a physical receipt.
func (s *GRCService) NotReceivedGRCNumbers() ([]int, error) {
	return s.repo.NotReceivedGRCNumbers()
}

func (s *GRCService) NotReceivedByGRCNumber(grcNumber int) ([]models.GRCReceiveRow, error) {
	rows, err := s.repo.NotReceivedByGRCNumber(grcNumber)
	if err != nil {
		return nil, err
	}
	out := make([]models.GRCReceiveRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.GRCReceiveRow{
			SpareCode:        row.SpareCode,
			Division:         row.Division,
			SpareDescription: row.SpareDescription,
			IssueQty:         row.IssueQty,
			ReceiveQty:       row.ReceiveQty,
			DamagedQty:       row.DamagedQty,
			ShortQty:         row.ShortQty,
			AltSpareQty:      row.AltSpareQty,
			AltSpareCode:     row.AltSpareCode,
			DisputeRemark:    row.DisputeRemark,
		})
	}
	return out, nil
}

// UpdateReceive applies receive-time corrections. Every non-nil payload
// field lands on the live record, receive_date is stamped with today, and a
// dispute snapshot is appended when the received quantity disagrees with the
// issued quantity. One transaction for the whole call; the caller gets one
// outcome per row instead of a silent skip.
func (s *GRCService) UpdateReceive(forms []models.GRCReceiveForm) ([]models.GRCRowOutcome, error) {
	outcomes := make([]models.GRCRowOutcome, 0, len(forms))
	var disputes []models.GRCDispute

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, form := range forms {
			var record models.GRCSpare
			err := tx.Where("spare_code = ? AND grc_number = ?", form.SpareCode, form.GRCNumber).
				First(&record).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				outcomes = append(outcomes, models.GRCRowOutcome{
					SpareCode: form.SpareCode,
					GRCNumber: form.GRCNumber,
					Status:    models.RowNotFound,
				})
				continue
			}
			if err != nil {
				return err
			}

			values := map[string]interface{}{
				"receive_date": today(),
			}
			if form.ReceiveQty != nil {
				values["receive_qty"] = form.ReceiveQty
			}
			if form.DamagedQty != nil {
				values["damaged_qty"] = form.DamagedQty
			}
			if form.ShortQty != nil {
				values["short_qty"] = form.ShortQty
			}
			if form.AltSpareQty != nil {
				values["alt_spare_qty"] = form.AltSpareQty
			}
			if form.AltSpareCode != nil {
				values["alt_spare_code"] = form.AltSpareCode
			}
			if form.DisputeRemark != nil {
				values["dispute_remark"] = form.DisputeRemark
			}

			err = tx.Model(&models.GRCSpare{}).
				Where("spare_code = ? AND grc_number = ?", form.SpareCode, form.GRCNumber).
				Updates(values).Error
			if err != nil {
				return err
			}

			// Received != issued raises a dispute, snapshotting the
			// discrepancy fields verbatim from the payload.
			if form.ReceiveQty != nil && *form.ReceiveQty != record.IssueQty {
				dispute := models.GRCDispute{
					SpareCode:        record.SpareCode,
					Division:         record.Division,
					GRCNumber:        record.GRCNumber,
					GRCDate:          record.GRCDate,
					SpareDescription: record.SpareDescription,
					IssueQty:         record.IssueQty,
					GRCPendingQty:    record.GRCPendingQty,
					DisputeRemark:    form.DisputeRemark,
					DamagedQty:       form.DamagedQty,
					ShortQty:         form.ShortQty,
					AltSpareQty:      form.AltSpareQty,
					AltSpareCode:     form.AltSpareCode,
				}
				if err := tx.Create(&dispute).Error; err != nil {
					return err
				}
				disputes = append(disputes, dispute)
			}

			outcomes = append(outcomes, models.GRCRowOutcome{
				SpareCode: form.SpareCode,
				GRCNumber: form.GRCNumber,
				Status:    models.RowApplied,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(disputes) > 0 {
		// Best effort, after commit so no transaction is held open.
		utils.SendDisputeAlert(disputes)
	}
	return outcomes, nil
}

// ReturnByDivision lists a division's current rows for the staging screen.
func (s *GRCService) ReturnByDivision(division string) ([]models.GRCReturnRow, error) {
	rows, err := s.repo.ReturnableByDivision(division)
	if err != nil {
		return nil, err
	}
	out := make([]models.GRCReturnRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.GRCReturnRow{
			GRCNumber:        row.GRCNumber,
			GRCDate:          utils.FormatDateDDMMYYYY(row.GRCDate),
			SpareCode:        row.SpareCode,
			SpareDescription: row.SpareDescription,
			IssueQty:         row.IssueQty,
			GRCPendingQty:    row.GRCPendingQty,
			ActualPendingQty: row.ActualPendingQty,
			ReturnedQty:      row.ReturnedQty,
			GoodQty:          row.GoodQty,
			DefectiveQty:     row.DefectiveQty,
			Invoice:          row.Invoice,
			DocketNumber:     row.DocketNumber,
			SentThrough:      row.SentThrough,
		})
	}
	return out, nil
}

// SaveReturn stages intended return quantities (phase one of the return
// workflow). Key fields are immutable; only supplied fields are written.
func (s *GRCService) SaveReturn(forms []models.GRCReturnSaveForm) ([]models.GRCRowOutcome, error) {
	outcomes := make([]models.GRCRowOutcome, 0, len(forms))

	keys := make([]repositories.GRCKey, 0, len(forms))
	for _, f := range forms {
		keys = append(keys, repositories.GRCKey{SpareCode: f.SpareCode, GRCNumber: f.GRCNumber})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByKeys(tx, keys)
		if err != nil {
			return err
		}

		for _, form := range forms {
			key := repositories.GRCKey{SpareCode: form.SpareCode, GRCNumber: form.GRCNumber}
			if _, ok := existing[key]; !ok {
				outcomes = append(outcomes, models.GRCRowOutcome{
					SpareCode: form.SpareCode,
					GRCNumber: form.GRCNumber,
					Status:    models.RowNotFound,
				})
				continue
			}

			values := make(map[string]interface{})
			if form.GoodQty != nil {
				values["good_qty"] = form.GoodQty
			}
			if form.DefectiveQty != nil {
				values["defective_qty"] = form.DefectiveQty
			}
			if form.Invoice != nil {
				values["invoice"] = form.Invoice
			}
			if form.SentThrough != nil {
				values["sent_through"] = form.SentThrough
			}
			if form.DocketNumber != nil {
				values["docket_number"] = form.DocketNumber
			}

			if len(values) > 0 {
				err := tx.Model(&models.GRCSpare{}).
					Where("spare_code = ? AND grc_number = ?", form.SpareCode, form.GRCNumber).
					Updates(values).Error
				if err != nil {
					return err
				}
			}

			outcomes = append(outcomes, models.GRCRowOutcome{
				SpareCode: form.SpareCode,
				GRCNumber: form.GRCNumber,
				Status:    models.RowApplied,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcomes, nil
}

//====================================================================
// BEGIN RETURN FINALIZE
//====================================================================

const challanAssignRetries = 3

// FinalizeReturn commits one dispatch: registers the challan code, appends a
// history snapshot per row with a positive returning quantity, and updates
// every matched live record with atomic relative balance updates, reset
// staging fields and the dispatch metadata. A blank challan number in the
// header asks the service to assign the next free code; a register
// collision regenerates it and retries.
func (s *GRCService) FinalizeReturn(payload models.GRCFinalizePayload, username string) (models.GRCFinalizeResult, error) {
	autoAssign := payload.ChallanNumber == ""

	var lastErr error
	for attempt := 0; attempt < challanAssignRetries; attempt++ {
		result, err := s.finalizeOnce(payload, username, autoAssign)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !autoAssign || !isDuplicateKey(err) {
			return models.GRCFinalizeResult{}, err
		}
		// Another finalize grabbed the same code, read again and retry.
	}
	return models.GRCFinalizeResult{}, lastErr
}

func (s *GRCService) finalizeOnce(payload models.GRCFinalizePayload, username string, autoAssign bool) (models.GRCFinalizeResult, error) {
	var result models.GRCFinalizeResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		challanNumber := payload.ChallanNumber
		if autoAssign {
			next, err := s.nextChallanCode(tx)
			if err != nil {
				return err
			}
			challanNumber = next
		}

		// The register insert is what makes the code collision-safe: its
		// primary key rejects a concurrent finalize that read the same max.
		register := models.GRCChallan{
			ChallanNumber: challanNumber,
			Division:      payload.Division,
			ChallanDate:   today(),
			ChallanBy:     username,
			SentThrough:   payload.SentThrough,
			DocketNumber:  payload.DocketNumber,
		}
		if err := tx.Create(&register).Error; err != nil {
			return err
		}

		keys := make([]repositories.GRCKey, 0, len(payload.GRCRows))
		for _, row := range payload.GRCRows {
			keys = append(keys, repositories.GRCKey{SpareCode: row.SpareCode, GRCNumber: row.GRCNumber})
		}
		existing, err := s.repo.FindByKeys(tx, keys)
		if err != nil {
			return err
		}

		challanDate := today()
		outcomes := make([]models.GRCRowOutcome, 0, len(payload.GRCRows))

		for _, row := range payload.GRCRows {
			key := repositories.GRCKey{SpareCode: row.SpareCode, GRCNumber: row.GRCNumber}
			record, ok := existing[key]
			if !ok {
				outcomes = append(outcomes, models.GRCRowOutcome{
					SpareCode: row.SpareCode,
					GRCNumber: row.GRCNumber,
					Status:    models.RowNotFound,
				})
				continue
			}

			goodQty := intOrZero(row.GoodQty)
			defectiveQty := intOrZero(row.DefectiveQty)
			returningQty := goodQty + defectiveQty

			if returningQty > 0 {
				history := models.GRCReturnHistory{
					Division:         payload.Division,
					SpareCode:        record.SpareCode,
					SpareDescription: record.SpareDescription,
					GRCNumber:        record.GRCNumber,
					GRCDate:          record.GRCDate,
					IssueQty:         record.IssueQty,
					GRCPendingQty:    record.GRCPendingQty,
					GoodQty:          &goodQty,
					DefectiveQty:     &defectiveQty,
					ReturningQty:     &returningQty,
					ChallanNumber:    &challanNumber,
					ChallanDate:      &challanDate,
					DocketNumber:     payload.DocketNumber,
					SentThrough:      payload.SentThrough,
					DisputeRemark:    record.DisputeRemark,
					ChallanBy:        username,
				}
				if err := tx.Create(&history).Error; err != nil {
					return err
				}
			}

			// The live record is touched even for a zero-quantity row: the
			// dispatch metadata is claimed, the staged fields are reset and
			// the balances move by relative expressions so concurrent
			// dispatches cannot lose updates.
			err := tx.Model(&models.GRCSpare{}).
				Where("spare_code = ? AND grc_number = ?", row.SpareCode, row.GRCNumber).
				Updates(map[string]interface{}{
					"returning_qty":      returningQty,
					"returned_qty":       gorm.Expr("COALESCE(returned_qty, 0) + ?", returningQty),
					"actual_pending_qty": gorm.Expr("COALESCE(actual_pending_qty, 0) - ?", returningQty),
					"good_qty":           0,
					"defective_qty":      0,
					"challan_number":     challanNumber,
					"challan_date":       challanDate,
					"challan_by":         username,
					"sent_through":       payload.SentThrough,
					"docket_number":      payload.DocketNumber,
				}).Error
			if err != nil {
				return err
			}

			outcomes = append(outcomes, models.GRCRowOutcome{
				SpareCode: row.SpareCode,
				GRCNumber: row.GRCNumber,
				Status:    models.RowApplied,
			})
		}

		result = models.GRCFinalizeResult{
			ChallanNumber: challanNumber,
			Outcomes:      outcomes,
		}
		return nil
	})
	if err != nil {
		return models.GRCFinalizeResult{}, err
	}
	return result, nil
}

//====================================================================
// END RETURN FINALIZE
//====================================================================

// NextChallanCode previews the next dispatch code. The authoritative
// assignment still happens inside the finalize transaction.
func (s *GRCService) NextChallanCode() (string, error) {
	return s.nextChallanCode(s.db)
}

func (s *GRCService) nextChallanCode(tx *gorm.DB) (string, error) {
	maxCode, err := s.repo.MaxChallanNumber(tx)
	if err != nil {
		return "", err
	}
	last := 0
	if len(maxCode) > 1 {
		if n, err := strconv.Atoi(maxCode[1:]); err == nil {
			last = n
		}
	}
	return fmt.Sprintf("G%05d", last+1), nil
}

// NormalizeChallanNumber expands shorthand like "42" to the canonical
// "G00042" form used in storage.
func NormalizeChallanNumber(challan string) string {
	if challan == "" || len(challan) == 6 {
		return challan
	}
	trimmed := strings.TrimPrefix(strings.ToUpper(challan), "G")
	if n, err := strconv.Atoi(trimmed); err == nil {
		return fmt.Sprintf("G%05d", n)
	}
	return challan
}

// Enquiry is the unified paginated read across the live and history tables.
func (s *GRCService) Enquiry(filter models.GRCEnquiryFilter) ([]models.GRCEnquiryRow, int64, error) {
	filter.ChallanNumber = NormalizeChallanNumber(filter.ChallanNumber)
	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	rows, total, err := s.repo.Enquiry(filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]models.GRCEnquiryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.GRCEnquiryRow{
			SpareCode:        row.SpareCode,
			SpareDescription: row.SpareDescription,
			GRCNumber:        row.GRCNumber,
			GRCDate:          utils.FormatDateDDMMYYYY(row.GRCDate),
			IssueQty:         row.IssueQty,
			GRCPendingQty:    row.GRCPendingQty,
			ReturningQty:     row.ReturningQty,
			DisputeRemark:    row.DisputeRemark,
			ChallanNumber:    row.ChallanNumber,
			ChallanDate:      utils.FormatDatePtr(row.ChallanDate),
			DocketNumber:     row.DocketNumber,
		})
	}
	return out, total, nil
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

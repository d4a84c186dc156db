package repositories

import (
	"strings"
	"time"

	"grc-app/models"

	"gorm.io/gorm"
)

type GRCRepository struct {
	db *gorm.DB
}

func NewGRCRepository(db *gorm.DB) *GRCRepository {
	return &GRCRepository{db: db}
}

// GRCKey is the composite business key of a live record.
type GRCKey struct {
	SpareCode string
	GRCNumber int
}

// FindByKeys bulk-loads the live records for a set of composite keys. The
// predicate is built as an OR chain so it works on every configured driver
// (row-value IN is not portable to sqlserver).
func (r *GRCRepository) FindByKeys(tx *gorm.DB, keys []GRCKey) (map[GRCKey]*models.GRCSpare, error) {
	existing := make(map[GRCKey]*models.GRCSpare)
	if len(keys) == 0 {
		return existing, nil
	}

	conds := make([]string, 0, len(keys))
	args := make([]interface{}, 0, len(keys)*2)
	for _, k := range keys {
		conds = append(conds, "(spare_code = ? AND grc_number = ?)")
		args = append(args, k.SpareCode, k.GRCNumber)
	}

	var rows []models.GRCSpare
	if err := tx.Where(strings.Join(conds, " OR "), args...).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		existing[GRCKey{rows[i].SpareCode, rows[i].GRCNumber}] = &rows[i]
	}
	return existing, nil
}

// MarkAllStale is the full-table staleness sweep: after it runs, only rows
// the current upload touches get flipped back to "N".
func (r *GRCRepository) MarkAllStale(tx *gorm.DB) error {
	return tx.Model(&models.GRCSpare{}).Where("1 = 1").Update("status", "Y").Error
}

// NotReceivedGRCNumbers lists the distinct GRC batches still waiting for a
// physical receipt.
func (r *GRCRepository) NotReceivedGRCNumbers() ([]int, error) {
	var numbers []int
	err := r.db.Model(&models.GRCSpare{}).
		Distinct("grc_number").
		Where("receive_date IS NULL").
		Order("grc_number").
		Pluck("grc_number", &numbers).Error
	return numbers, err
}

// NotReceivedByGRCNumber loads the queue rows of one pending batch.
func (r *GRCRepository) NotReceivedByGRCNumber(grcNumber int) ([]models.GRCSpare, error) {
	var rows []models.GRCSpare
	err := r.db.
		Where("grc_number = ? AND receive_date IS NULL", grcNumber).
		Order("spare_code").
		Find(&rows).Error
	return rows, err
}

// ReturnableByDivision lists the current (status "N") rows of a division for
// the return staging screen.
func (r *GRCRepository) ReturnableByDivision(division string) ([]models.GRCSpare, error) {
	var rows []models.GRCSpare
	err := r.db.
		Where("division = ? AND status = ?", division, "N").
		Order("grc_number").
		Find(&rows).Error
	return rows, err
}

// MaxChallanNumber returns the lexicographically greatest challan number
// across the register and the history ledger, or "" when both are empty.
func (r *GRCRepository) MaxChallanNumber(tx *gorm.DB) (string, error) {
	var fromRegister, fromHistory string

	if err := tx.Model(&models.GRCChallan{}).
		Select("COALESCE(MAX(challan_number), '')").Scan(&fromRegister).Error; err != nil {
		return "", err
	}
	if err := tx.Model(&models.GRCReturnHistory{}).
		Select("COALESCE(MAX(challan_number), '')").Scan(&fromHistory).Error; err != nil {
		return "", err
	}

	if fromHistory > fromRegister {
		return fromHistory, nil
	}
	return fromRegister, nil
}

// EnquiryRecord is the column set shared by grc_spares and
// grc_return_histories that the enquiry view exposes.
type EnquiryRecord struct {
	SpareCode        string     `gorm:"column:spare_code"`
	SpareDescription string     `gorm:"column:spare_description"`
	GRCNumber        int        `gorm:"column:grc_number"`
	GRCDate          time.Time  `gorm:"column:grc_date"`
	IssueQty         int        `gorm:"column:issue_qty"`
	GRCPendingQty    int        `gorm:"column:grc_pending_qty"`
	ReturningQty     *int       `gorm:"column:returning_qty"`
	DisputeRemark    *string    `gorm:"column:dispute_remark"`
	ChallanNumber    *string    `gorm:"column:challan_number"`
	ChallanDate      *time.Time `gorm:"column:challan_date"`
	DocketNumber     *string    `gorm:"column:docket_number"`
}

func (r *GRCRepository) applyEnquiryFilters(q *gorm.DB, f models.GRCEnquiryFilter) *gorm.DB {
	if f.Division != "" {
		q = q.Where("division = ?", f.Division)
	}
	if f.SpareCode != "" {
		q = q.Where("spare_code LIKE ?", f.SpareCode)
	}
	if f.FromGRCDate != nil {
		q = q.Where("grc_date >= ?", *f.FromGRCDate)
	}
	if f.ToGRCDate != nil {
		q = q.Where("grc_date <= ?", *f.ToGRCDate)
	}
	if f.GRCNumber != nil {
		q = q.Where("grc_number = ?", *f.GRCNumber)
	}
	if f.ChallanNumber != "" {
		q = q.Where("challan_number = ?", f.ChallanNumber)
	}
	return q
}

// Enquiry runs the filtered, paginated read across whichever table the
// status toggle selects, plus the matching total count. The live table is
// counted over distinct composite keys, the history table row-by-row.
func (r *GRCRepository) Enquiry(f models.GRCEnquiryFilter) ([]EnquiryRecord, int64, error) {
	table := models.GRCReturnHistory{}.TableName()
	if f.Status == "N" {
		table = models.GRCSpare{}.TableName()
	}

	var total int64
	if f.Status == "N" {
		sub := r.applyEnquiryFilters(r.db.Table(table), f).
			Distinct("spare_code", "grc_number")
		if err := r.db.Table("(?) as dist", sub).Count(&total).Error; err != nil {
			return nil, 0, err
		}
	} else {
		if err := r.applyEnquiryFilters(r.db.Table(table), f).Count(&total).Error; err != nil {
			return nil, 0, err
		}
	}

	q := r.applyEnquiryFilters(r.db.Table(table), f).
		Select("spare_code, spare_description, grc_number, grc_date, issue_qty, grc_pending_qty, returning_qty, dispute_remark, challan_number, challan_date, docket_number").
		Order("spare_code").
		Limit(f.Limit).
		Offset(f.Offset)

	var rows []EnquiryRecord
	if err := q.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

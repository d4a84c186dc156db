package models

import (
	"time"

	"grc-app/controllers/idgen"

	"gorm.io/gorm"
)

// GRCSpare is the live spare-return record. One row per spare code per GRC
// batch, created by the CSV/Excel upload and mutated by the receive and
// return workflows. Rows are never deleted, a newer upload flips Status to
// "Y" (stale) and the latest batch's rows carry "N".
type GRCSpare struct {
	Division         string     `json:"division" gorm:"size:20;not null"`
	SpareCode        string     `json:"spare_code" gorm:"primaryKey;size:30"`
	SpareDescription string     `json:"spare_description" gorm:"size:40;not null"`
	GRCNumber        int        `json:"grc_number" gorm:"primaryKey"`
	GRCDate          time.Time  `json:"grc_date" gorm:"type:date;not null"`
	IssueQty         int        `json:"issue_qty" gorm:"not null"`
	GRCPendingQty    int        `json:"grc_pending_qty" gorm:"not null"`
	ReceiveQty       *int       `json:"receive_qty"`
	GoodQty          *int       `json:"good_qty"`
	DefectiveQty     *int       `json:"defective_qty"`
	ReturnedQty      *int       `json:"returned_qty"`
	ReturningQty     *int       `json:"returning_qty"`
	ActualPendingQty *int       `json:"actual_pending_qty"`
	ReceiveDate      *time.Time `json:"receive_date" gorm:"type:date"`
	DisputeRemark    *string    `json:"dispute_remark" gorm:"size:40"`
	ChallanNumber    *string    `json:"challan_number" gorm:"size:10"`
	ChallanDate      *time.Time `json:"challan_date" gorm:"type:date"`
	DocketNumber     *string    `json:"docket_number" gorm:"size:8"`
	SentThrough      *string    `json:"sent_through" gorm:"size:20"`
	ChallanBy        *string    `json:"challan_by" gorm:"size:30"`
	Status           string     `json:"status" gorm:"size:1;not null;default:'N'"`
	DamagedQty       *int       `json:"damaged_qty"`
	ShortQty         *int       `json:"short_qty"`
	AltSpareQty      *int       `json:"alt_spare_qty"`
	AltSpareCode     *string    `json:"alt_spare_code" gorm:"size:30"`
	Invoice          *string    `json:"invoice" gorm:"type:char(1);default:'N'"`
}

func (GRCSpare) TableName() string {
	return "grc_spares"
}

// GRCDispute is an append-only snapshot taken when the received quantity
// disagrees with the issued quantity at receive time.
type GRCDispute struct {
	SpareCode        string    `json:"spare_code" gorm:"primaryKey;size:30"`
	Division         string    `json:"division" gorm:"size:20;not null"`
	GRCNumber        int       `json:"grc_number" gorm:"primaryKey"`
	GRCDate          time.Time `json:"grc_date" gorm:"type:date;not null"`
	SpareDescription string    `json:"spare_description" gorm:"size:40;not null"`
	IssueQty         int       `json:"issue_qty" gorm:"not null"`
	GRCPendingQty    int       `json:"grc_pending_qty" gorm:"not null"`
	DisputeRemark    *string   `json:"dispute_remark" gorm:"size:40"`
	DamagedQty       *int      `json:"damaged_qty"`
	ShortQty         *int      `json:"short_qty"`
	AltSpareQty      *int      `json:"alt_spare_qty"`
	AltSpareCode     *string   `json:"alt_spare_code" gorm:"size:30"`
}

func (GRCDispute) TableName() string {
	return "grc_disputes"
}

// GRCReturnHistory is the immutable dispatch ledger. One row per finalized
// record with a returning quantity > 0. The live record's challan fields only
// reflect the most recent dispatch, this table answers "how much, when, by
// whom" for every dispatch.
type GRCReturnHistory struct {
	ID               int64      `json:"id" gorm:"primaryKey"`
	Division         string     `json:"division" gorm:"size:20;not null"`
	SpareCode        string     `json:"spare_code" gorm:"size:30;not null"`
	SpareDescription string     `json:"spare_description" gorm:"size:40;not null"`
	GRCNumber        int        `json:"grc_number" gorm:"not null"`
	GRCDate          time.Time  `json:"grc_date" gorm:"type:date;not null"`
	IssueQty         int        `json:"issue_qty" gorm:"not null"`
	GRCPendingQty    int        `json:"grc_pending_qty" gorm:"not null"`
	GoodQty          *int       `json:"good_qty"`
	DefectiveQty     *int       `json:"defective_qty"`
	ReturningQty     *int       `json:"returning_qty"`
	ChallanNumber    *string    `json:"challan_number" gorm:"size:10"`
	ChallanDate      *time.Time `json:"challan_date" gorm:"type:date"`
	DocketNumber     *string    `json:"docket_number" gorm:"size:8"`
	SentThrough      *string    `json:"sent_through" gorm:"size:20"`
	DisputeRemark    *string    `json:"dispute_remark" gorm:"size:40"`
	ChallanBy        string     `json:"challan_by" gorm:"size:30;not null"`
}

func (GRCReturnHistory) TableName() string {
	return "grc_return_histories"
}

func (h *GRCReturnHistory) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == 0 {
		h.ID = idgen.GenerateID()
	}
	return
}

// GRCChallan registers every dispatch code that has been handed out. The
// primary key is what makes challan numbers collision-safe: two finalize
// calls that computed the same next code will fight over this row and the
// loser regenerates.
type GRCChallan struct {
	ChallanNumber string    `json:"challan_number" gorm:"primaryKey;size:10"`
	Division      string    `json:"division" gorm:"size:20;not null"`
	ChallanDate   time.Time `json:"challan_date" gorm:"type:date;not null"`
	ChallanBy     string    `json:"challan_by" gorm:"size:30;not null"`
	SentThrough   *string   `json:"sent_through" gorm:"size:20"`
	DocketNumber  *string   `json:"docket_number" gorm:"size:8"`
}

func (GRCChallan) TableName() string {
	return "grc_challans"
}

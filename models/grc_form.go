package models

import "time"

// Request and response shapes for the GRC workflows. Kept next to the table
// models the same way the inbound/outbound form structs are.

// GRCUploadResult is the message/resolution/type triple every upload
// response carries so the client can tell success from a recoverable
// warning from a hard error.
type GRCUploadResult struct {
	Message    string `json:"message"`
	Resolution string `json:"resolution"`
	Type       string `json:"type"`
	Inserted   int    `json:"inserted,omitempty"`
	Updated    int    `json:"updated,omitempty"`
}

const (
	UploadSuccess = "success"
	UploadWarning = "warning"
	UploadError   = "error"
)

// GRCReceiveForm is one receive-time correction keyed by the composite key.
// Only non-nil fields are applied onto the live record.
type GRCReceiveForm struct {
	SpareCode     string  `json:"spare_code" validate:"required"`
	GRCNumber     int     `json:"grc_number" validate:"required"`
	ReceiveQty    *int    `json:"receive_qty"`
	DamagedQty    *int    `json:"damaged_qty"`
	ShortQty      *int    `json:"short_qty"`
	AltSpareQty   *int    `json:"alt_spare_qty"`
	AltSpareCode  *string `json:"alt_spare_code"`
	DisputeRemark *string `json:"dispute_remark"`
}

// GRCReceiveRow is one entry of the not-yet-received queue.
type GRCReceiveRow struct {
	SpareCode        string  `json:"spare_code"`
	Division         string  `json:"division"`
	SpareDescription string  `json:"spare_description"`
	IssueQty         int     `json:"issue_qty"`
	ReceiveQty       *int    `json:"receive_qty"`
	DamagedQty       *int    `json:"damaged_qty"`
	ShortQty         *int    `json:"short_qty"`
	AltSpareQty      *int    `json:"alt_spare_qty"`
	AltSpareCode     *string `json:"alt_spare_code"`
	DisputeRemark    *string `json:"dispute_remark"`
}

// GRCReturnRow is one row of the return staging screen for a division.
type GRCReturnRow struct {
	GRCNumber        int     `json:"grc_number"`
	GRCDate          string  `json:"grc_date"`
	SpareCode        string  `json:"spare_code"`
	SpareDescription string  `json:"spare_description"`
	IssueQty         int     `json:"issue_qty"`
	GRCPendingQty    int     `json:"grc_pending_qty"`
	ActualPendingQty *int    `json:"actual_pending_qty"`
	ReturnedQty      *int    `json:"returned_qty"`
	GoodQty          *int    `json:"good_qty"`
	DefectiveQty     *int    `json:"defective_qty"`
	Invoice          *string `json:"invoice"`
	DocketNumber     *string `json:"docket_number"`
	SentThrough      *string `json:"sent_through"`
}

// GRCReturnSaveForm stages intended return quantities onto a live record.
type GRCReturnSaveForm struct {
	SpareCode    string  `json:"spare_code" validate:"required"`
	GRCNumber    int     `json:"grc_number" validate:"required"`
	GoodQty      *int    `json:"good_qty"`
	DefectiveQty *int    `json:"defective_qty"`
	Invoice      *string `json:"invoice"`
	SentThrough  *string `json:"sent_through"`
	DocketNumber *string `json:"docket_number"`
}

// GRCFinalizeRow carries the authoritative staged quantities for one record
// of a dispatch.
type GRCFinalizeRow struct {
	SpareCode    string `json:"spare_code" validate:"required"`
	GRCNumber    int    `json:"grc_number" validate:"required"`
	GoodQty      *int   `json:"good_qty"`
	DefectiveQty *int   `json:"defective_qty"`
}

// GRCFinalizePayload is the dispatch header plus the rows to finalize. An
// empty ChallanNumber means "assign the next free code".
type GRCFinalizePayload struct {
	ChallanNumber string           `json:"challan_number"`
	Division      string           `json:"division" validate:"required"`
	SentThrough   *string          `json:"sent_through"`
	DocketNumber  *string          `json:"docket_number"`
	GRCRows       []GRCFinalizeRow `json:"grc_rows" validate:"required"`
}

// Per-row outcome statuses. Every workflow reports one outcome per submitted
// row so callers can tell applied rows from rows whose key had no live
// record.
const (
	RowApplied  = "applied"
	RowNotFound = "not_found"
)

type GRCRowOutcome struct {
	SpareCode string `json:"spare_code"`
	GRCNumber int    `json:"grc_number"`
	Status    string `json:"status"`
}

// GRCFinalizeResult reports the dispatch code actually used (relevant when
// the caller let the service assign it) plus the per-row outcomes.
type GRCFinalizeResult struct {
	ChallanNumber string          `json:"challan_number"`
	Outcomes      []GRCRowOutcome `json:"outcomes"`
}

// GRCEnquiryFilter gathers the optional enquiry predicates. Status "N"
// selects the live table, anything else the return history.
type GRCEnquiryFilter struct {
	Division      string
	SpareCode     string
	FromGRCDate   *time.Time
	ToGRCDate     *time.Time
	GRCNumber     *int
	ChallanNumber string
	Status        string
	Limit         int
	Offset        int
}

// GRCEnquiryRow is the normalized read view shared by the live and history
// tables. Dates are rendered dd-mm-yyyy.
type GRCEnquiryRow struct {
	SpareCode        string  `json:"spare_code"`
	SpareDescription string  `json:"spare_description"`
	GRCNumber        int     `json:"grc_number"`
	GRCDate          string  `json:"grc_date"`
	IssueQty         int     `json:"issue_qty"`
	GRCPendingQty    int     `json:"grc_pending_qty"`
	ReturningQty     *int    `json:"returning_qty"`
	DisputeRemark    *string `json:"dispute_remark"`
	ChallanNumber    *string `json:"challan_number"`
	ChallanDate      *string `json:"challan_date"`
	DocketNumber     *string `json:"docket_number"`
}

// GRCReportRow is one printable line item of the challan report.
type GRCReportRow struct {
	GRCNumber        int    `json:"grc_number"`
	GRCDate          string `json:"grc_date"`
	SpareCode        string `json:"spare_code"`
	SpareDescription string `json:"spare_description"`
	ActualPendingQty *int   `json:"actual_pending_qty"`
	GoodQty          *int   `json:"good_qty"`
	DefectiveQty     *int   `json:"defective_qty"`
}

// GRCReportPayload is the full input of the report renderer.
type GRCReportPayload struct {
	Division      string         `json:"division" validate:"required"`
	ChallanNumber string         `json:"challan_number" validate:"required"`
	SentThrough   *string        `json:"sent_through"`
	DocketNumber  *string        `json:"docket_number"`
	GRCRows       []GRCReportRow `json:"grc_rows"`
}

package models

import "time"

// Complaint is the companion customer-complaint record: technician
// assignment, spare ordering and payment collection are plain columns here,
// there is no lifecycle logic behind them.
type Complaint struct {
	ComplaintNumber   string    `json:"complaint_number" gorm:"primaryKey;size:15" validate:"required"`
	ComplaintHead     string    `json:"complaint_head" gorm:"size:10;not null" validate:"required"`
	ComplaintDate     time.Time `json:"complaint_date" gorm:"type:date;not null"`
	ComplaintTime     string    `json:"complaint_time" gorm:"size:8;not null"`
	ComplaintType     string    `json:"complaint_type" gorm:"size:10;not null" validate:"required"`
	ComplaintStatus   string    `json:"complaint_status" gorm:"size:15;not null" validate:"required"`
	ComplaintPriority string    `json:"complaint_priority" gorm:"size:15;not null" validate:"required"`

	ActionHead string  `json:"action_head" gorm:"size:30;not null"`
	ActionBy   string  `json:"action_by" gorm:"size:30;not null" validate:"required"`
	Technician *string `json:"technician" gorm:"size:30"`

	CustomerType     string  `json:"customer_type" gorm:"size:20;not null" validate:"required"`
	DealerCode       *string `json:"dealer_code" gorm:"size:5"`
	CustomerName     *string `json:"customer_name" gorm:"size:40"`
	CustomerAddress1 *string `json:"customer_address1" gorm:"size:40"`
	CustomerAddress2 *string `json:"customer_address2" gorm:"size:40"`
	CustomerCity     *string `json:"customer_city" gorm:"size:30"`
	CustomerPincode  *int    `json:"customer_pincode"`
	CustomerContact1 *int64  `json:"customer_contact1"`
	CustomerContact2 *int64  `json:"customer_contact2"`

	ProductDivision     string     `json:"product_division" gorm:"size:20;not null" validate:"required"`
	ProductSerialNumber *string    `json:"product_serial_number" gorm:"size:20"`
	ProductModel        *string    `json:"product_model" gorm:"size:25"`
	InvoiceDate         *time.Time `json:"invoice_date" gorm:"type:date"`
	InvoiceNumber       *string    `json:"invoice_number" gorm:"size:25"`
	PurchasedFrom       *string    `json:"purchased_from" gorm:"size:40"`
	DistributorName     *string    `json:"distributor_name" gorm:"size:40"`

	// Up to six spares can be indented against one complaint.
	SparePending string     `json:"spare_pending" gorm:"type:char(1);not null;default:'N'"`
	Spare1       *string    `json:"spare1" gorm:"size:30"`
	Qty1         *int       `json:"qty1"`
	IndentDate1  *time.Time `json:"indent_date1" gorm:"type:date"`
	Spare2       *string    `json:"spare2" gorm:"size:30"`
	Qty2         *int       `json:"qty2"`
	IndentDate2  *time.Time `json:"indent_date2" gorm:"type:date"`
	Spare3       *string    `json:"spare3" gorm:"size:30"`
	Qty3         *int       `json:"qty3"`
	IndentDate3  *time.Time `json:"indent_date3" gorm:"type:date"`
	Spare4       *string    `json:"spare4" gorm:"size:30"`
	Qty4         *int       `json:"qty4"`
	IndentDate4  *time.Time `json:"indent_date4" gorm:"type:date"`
	Spare5       *string    `json:"spare5" gorm:"size:30"`
	Qty5         *int       `json:"qty5"`
	IndentDate5  *time.Time `json:"indent_date5" gorm:"type:date"`
	Spare6       *string    `json:"spare6" gorm:"size:30"`
	Qty6         *int       `json:"qty6"`
	IndentDate6  *time.Time `json:"indent_date6" gorm:"type:date"`

	CurrentStatus     string     `json:"current_status" gorm:"size:50;not null"`
	RFRNumber         *string    `json:"rfr_number" gorm:"size:9"`
	RFRDate           *time.Time `json:"rfr_date" gorm:"type:date"`
	ReplacementReason *string    `json:"replacement_reason" gorm:"size:30"`
	ReplacementRemark *string    `json:"replacement_remark" gorm:"size:40"`
	IndentSONumber    *string    `json:"indent_so_number" gorm:"size:20"`
	IndentSODate      *time.Time `json:"indent_so_date" gorm:"type:date"`

	CreatedBy   string  `json:"created_by" gorm:"size:30;not null"`
	UpdatedBy   *string `json:"updated_by" gorm:"size:30"`
	UpdatedTime *string `json:"updated_time" gorm:"size:8"`

	PaymentCollected *string  `json:"payment_collected" gorm:"type:char(1);default:'N'"`
	PaymentMode      *string  `json:"payment_mode" gorm:"size:10"`
	PaymentDetails   *string  `json:"payment_details" gorm:"size:40"`
	AmountSC         *float64 `json:"amount_sc"`
	AmountSpare      *float64 `json:"amount_spare"`

	FinalStatus string `json:"final_status" gorm:"type:char(1);not null;default:'N'"`
}

func (Complaint) TableName() string {
	return "complaints"
}

package models

// PaymentSchedule is one contract ledger row: a deliverable, when it should be
// paid, and how much of it has been.
type PaymentSchedule struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	Category      string  `gorm:"size:128" json:"category"`
	Deliverable   string  `gorm:"not null" json:"deliverable"`
	Phase         *string `gorm:"size:128" json:"phase"`
	PlanDate      *Date   `json:"plan_date"`
	PlannedAmount float64 `gorm:"not null" json:"planned_amount"`
	PaidAmount    float64 `gorm:"default:0" json:"paid_amount"`
	Status        string  `gorm:"size:16" json:"status"` // Paid, Not Paid

	Remark             *string `gorm:"type:text" json:"remark"`
	PaymentDate        *Date   `json:"payment_date"`
	PONumber           *string `gorm:"size:64;column:po_number" json:"po_number"`
	InvoiceNumber      *string `gorm:"size:64" json:"invoice_number"`
	SupportingDocument *string `json:"supporting_document"`
}

// TableName keeps the singular ledger table name.
func (PaymentSchedule) TableName() string {
	return "payment_schedule"
}

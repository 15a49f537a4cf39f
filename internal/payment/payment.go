// Package payment provides contract ledger operations: payment schedule CRUD
// plus xlsx bulk import and the matching template download.
package payment

import (
	"errors"
	"fmt"

	"github.com/zulandar/trestle/internal/models"
	"github.com/zulandar/trestle/internal/patch"
	"github.com/zulandar/trestle/internal/project"
	"gorm.io/gorm"
)

// DefaultCategory is applied to payments created without one, including every
// bulk-imported row.
const DefaultCategory = "Project Implementation"

var updateSpec = patch.Spec{
	Fields: map[string]string{
		"category":            "category",
		"deliverable":         "deliverable",
		"phase":               "phase",
		"plan_date":           "plan_date",
		"planned_amount":      "planned_amount",
		"paid_amount":         "paid_amount",
		"status":              "status",
		"remark":              "remark",
		"payment_date":        "payment_date",
		"po_number":           "po_number",
		"invoice_number":      "invoice_number",
		"supporting_document": "supporting_document",
	},
	Dates: map[string]bool{"plan_date": true, "payment_date": true},
}

// Create records a new payment milestone against a project.
func Create(db *gorm.DB, projectID uint, p *models.PaymentSchedule) (*models.PaymentSchedule, error) {
	if p.Deliverable == "" {
		return nil, models.NewValidationError("deliverable is required")
	}
	if p.PlannedAmount < 0 || p.PaidAmount < 0 {
		return nil, models.NewValidationError("amounts must be non-negative")
	}
	if _, err := project.Get(db, projectID); err != nil {
		return nil, err
	}

	p.ID = 0
	p.ProjectID = projectID
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.Status == "" {
		p.Status = "Not Paid"
	}

	if err := db.Create(p).Error; err != nil {
		return nil, fmt.Errorf("payment: create: %w", err)
	}
	return p, nil
}

// Get retrieves a payment by ID.
func Get(db *gorm.DB, id uint) (*models.PaymentSchedule, error) {
	var p models.PaymentSchedule
	if err := db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("payment: get %d: %w", id, err)
	}
	return &p, nil
}

// Update applies a sparse field patch and returns the fresh record.
func Update(db *gorm.DB, id uint, raw map[string]interface{}) (*models.PaymentSchedule, error) {
	if _, err := Get(db, id); err != nil {
		return nil, err
	}

	updates, err := updateSpec.Apply(raw)
	if err != nil {
		return nil, err
	}

	if amount, ok := updates["planned_amount"].(float64); ok && amount < 0 {
		return nil, models.NewValidationError("planned_amount must be non-negative")
	}
	if amount, ok := updates["paid_amount"].(float64); ok && amount < 0 {
		return nil, models.NewValidationError("paid_amount must be non-negative")
	}

	if len(updates) > 0 {
		if err := db.Model(&models.PaymentSchedule{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("payment: update %d: %w", id, err)
		}
	}
	return Get(db, id)
}

// Delete removes a payment scoped to its project.
func Delete(db *gorm.DB, projectID, paymentID uint) error {
	var p models.PaymentSchedule
	err := db.Where("id = ? AND project_id = ?", paymentID, projectID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrPaymentNotFound
		}
		return fmt.Errorf("payment: get %d: %w", paymentID, err)
	}

	if err := db.Delete(&p).Error; err != nil {
		return fmt.Errorf("payment: delete %d: %w", paymentID, err)
	}
	return nil
}

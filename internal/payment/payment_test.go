package payment

import (
	"errors"
	"testing"
	"time"

	"github.com/zulandar/trestle/internal/models"
	"github.com/zulandar/trestle/internal/project"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openPaymentTestDB(t *testing.T) (*gorm.DB, uint) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Project{},
		&models.ProjectHealth{},
		&models.PaymentSchedule{},
		&models.ProjectTask{},
		&models.TaskComment{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	p, err := project.Create(db, &models.Project{
		Name:      "Funded",
		StartDate: models.NewDate(2026, time.January, 1),
		EndDate:   models.NewDate(2026, time.December, 31),
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return db, p.ID
}

func TestCreate_Defaults(t *testing.T) {
	db, projectID := openPaymentTestDB(t)

	created, err := Create(db, projectID, &models.PaymentSchedule{
		Deliverable:   "Milestone 1",
		PlannedAmount: 5000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Category != DefaultCategory {
		t.Errorf("Category = %q, want %q", created.Category, DefaultCategory)
	}
	if created.Status != "Not Paid" {
		t.Errorf("Status = %q, want Not Paid", created.Status)
	}
}

func TestCreate_Validation(t *testing.T) {
	db, projectID := openPaymentTestDB(t)

	var verr *models.ValidationError
	if _, err := Create(db, projectID, &models.PaymentSchedule{}); !errors.As(err, &verr) {
		t.Errorf("missing deliverable: error = %v, want ValidationError", err)
	}
	_, err := Create(db, projectID, &models.PaymentSchedule{Deliverable: "D", PlannedAmount: -1})
	if !errors.As(err, &verr) {
		t.Errorf("negative amount: error = %v, want ValidationError", err)
	}
	_, err = Create(db, 999, &models.PaymentSchedule{Deliverable: "D"})
	if !errors.Is(err, models.ErrProjectNotFound) {
		t.Errorf("unknown project: error = %v, want ErrProjectNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	db, projectID := openPaymentTestDB(t)

	created, err := Create(db, projectID, &models.PaymentSchedule{
		Deliverable:   "Milestone 1",
		PlannedAmount: 5000,
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := Update(db, created.ID, map[string]interface{}{
		"status":       "Paid",
		"paid_amount":  5000.0,
		"payment_date": "2026-02-28",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != "Paid" {
		t.Errorf("Status = %q, want Paid", updated.Status)
	}
	if updated.PaidAmount != 5000 {
		t.Errorf("PaidAmount = %v, want 5000", updated.PaidAmount)
	}
	if updated.PaymentDate == nil || updated.PaymentDate.String() != "2026-02-28" {
		t.Errorf("PaymentDate = %v, want 2026-02-28", updated.PaymentDate)
	}
	if updated.Deliverable != "Milestone 1" {
		t.Errorf("Deliverable = %q, want untouched", updated.Deliverable)
	}
}

func TestUpdate_NegativeAmountRejected(t *testing.T) {
	db, projectID := openPaymentTestDB(t)

	created, err := Create(db, projectID, &models.PaymentSchedule{Deliverable: "D"})
	if err != nil {
		t.Fatal(err)
	}

	var verr *models.ValidationError
	if _, err := Update(db, created.ID, map[string]interface{}{"paid_amount": -10.0}); !errors.As(err, &verr) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestDelete_ScopedToProject(t *testing.T) {
	db, projectID := openPaymentTestDB(t)

	created, err := Create(db, projectID, &models.PaymentSchedule{Deliverable: "D"})
	if err != nil {
		t.Fatal(err)
	}

	other, err := project.Create(db, &models.Project{
		Name:      "Other",
		StartDate: models.NewDate(2026, time.January, 1),
		EndDate:   models.NewDate(2026, time.June, 30),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := Delete(db, other.ID, created.ID); !errors.Is(err, models.ErrPaymentNotFound) {
		t.Errorf("delete under wrong project: error = %v, want ErrPaymentNotFound", err)
	}
	if err := Delete(db, projectID, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := Get(db, created.ID); !errors.Is(err, models.ErrPaymentNotFound) {
		t.Errorf("Get after delete: error = %v, want ErrPaymentNotFound", err)
	}
}

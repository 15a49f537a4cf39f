// Package project provides project lifecycle operations. Project is the
// aggregate root: its deletion removes every dependent record.
package project

import (
	"errors"
	"fmt"

	"github.com/zulandar/trestle/internal/models"
	"github.com/zulandar/trestle/internal/patch"
	"gorm.io/gorm"
)

var updateSpec = patch.Spec{
	Fields: map[string]string{
		"name":                "name",
		"project_code":        "project_code",
		"project_manager":     "project_manager",
		"assigned_to_email":   "assigned_to_email",
		"description":         "description",
		"objective":           "objective",
		"status":              "status",
		"priority":            "priority",
		"risk_level":          "risk_level",
		"department":          "department",
		"is_archived":         "is_archived",
		"tags":                "tags",
		"progress_percentage": "progress_percentage",
		"start_date":          "start_date",
		"end_date":            "end_date",
		"planned_cost":        "planned_cost",
		"actual_cost":         "actual_cost",
	},
	Dates: map[string]bool{"start_date": true, "end_date": true},
}

// Create persists a new project together with its default health row in one
// transaction.
func Create(db *gorm.DB, p *models.Project) (*models.Project, error) {
	if p.Name == "" {
		return nil, models.NewValidationError("name is required")
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return nil, models.NewValidationError("start_date and end_date are required")
	}
	if p.Status == "" {
		p.Status = "Not Started"
	}
	if p.Priority == "" {
		p.Priority = "Medium"
	}
	if p.RiskLevel == "" {
		p.RiskLevel = "Low"
	}
	p.ID = 0
	p.Health = nil
	p.Payments = nil
	p.Matters = nil
	p.Tasks = nil

	if p.ProjectCode != nil {
		taken, err := codeTaken(db, *p.ProjectCode, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, models.ErrProjectCodeTaken
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return fmt.Errorf("project: create: %w", err)
		}
		health := models.ProjectHealth{
			ProjectID:      p.ID,
			ScheduleStatus: "Good",
			BudgetStatus:   "Good",
			RiskStatus:     "Good",
			ScopeStatus:    "Good",
			ResourceStatus: "Good",
		}
		if err := tx.Create(&health).Error; err != nil {
			return fmt.Errorf("project: create health: %w", err)
		}
		p.Health = &health
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Get retrieves a project by ID with its health row.
func Get(db *gorm.DB, id uint) (*models.Project, error) {
	var p models.Project
	if err := db.Preload("Health").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProjectNotFound
		}
		return nil, fmt.Errorf("project: get %d: %w", id, err)
	}
	return &p, nil
}

// List returns all projects with their health rows.
func List(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	if err := db.Preload("Health").Order("id ASC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("project: list: %w", err)
	}
	return projects, nil
}

// ListByAssignee returns the projects assigned to a staff email.
func ListByAssignee(db *gorm.DB, email string) ([]models.Project, error) {
	var projects []models.Project
	if err := db.Preload("Health").Where("assigned_to_email = ?", email).Order("id ASC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("project: list by assignee: %w", err)
	}
	return projects, nil
}

// Details returns the full aggregate view: project plus health, payments,
// matters, and tasks with their comments.
func Details(db *gorm.DB, id uint) (*models.Project, error) {
	var p models.Project
	err := db.
		Preload("Health").
		Preload("Payments", func(q *gorm.DB) *gorm.DB { return q.Order("id ASC") }).
		Preload("Matters", func(q *gorm.DB) *gorm.DB { return q.Order("id ASC") }).
		Preload("Tasks", func(q *gorm.DB) *gorm.DB { return q.Order("order_index ASC, id ASC") }).
		Preload("Tasks.Comments").
		First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProjectNotFound
		}
		return nil, fmt.Errorf("project: details %d: %w", id, err)
	}
	return &p, nil
}

// Update applies a sparse field patch and returns the fresh record.
func Update(db *gorm.DB, id uint, raw map[string]interface{}) (*models.Project, error) {
	if _, err := Get(db, id); err != nil {
		return nil, err
	}

	updates, err := updateSpec.Apply(raw)
	if err != nil {
		return nil, err
	}

	if code, ok := updates["project_code"].(string); ok {
		taken, err := codeTaken(db, code, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, models.ErrProjectCodeTaken
		}
	}

	if len(updates) > 0 {
		if err := db.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("project: update %d: %w", id, err)
		}
	}
	return Get(db, id)
}

// Delete removes a project and all dependents in one transaction, children
// first so no orphaned references survive: health, payments, matters, task
// comments, tasks, then the project row.
func Delete(db *gorm.DB, id uint) error {
	if _, err := Get(db, id); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name string
			run  func() error
		}{
			{"health", func() error {
				return tx.Where("project_id = ?", id).Delete(&models.ProjectHealth{}).Error
			}},
			{"payments", func() error {
				return tx.Where("project_id = ?", id).Delete(&models.PaymentSchedule{}).Error
			}},
			{"matters", func() error {
				return tx.Where("project_id = ?", id).Delete(&models.MattersArising{}).Error
			}},
			{"task comments", func() error {
				taskIDs := tx.Model(&models.ProjectTask{}).Select("id").Where("project_id = ?", id)
				return tx.Where("task_id IN (?)", taskIDs).Delete(&models.TaskComment{}).Error
			}},
			{"tasks", func() error {
				return tx.Where("project_id = ?", id).Delete(&models.ProjectTask{}).Error
			}},
			{"project", func() error {
				return tx.Delete(&models.Project{}, id).Error
			}},
		}
		for _, step := range steps {
			if err := step.run(); err != nil {
				return fmt.Errorf("project: delete %d (%s): %w", id, step.name, err)
			}
		}
		return nil
	})
}

func codeTaken(db *gorm.DB, code string, excludeID uint) (bool, error) {
	var count int64
	q := db.Model(&models.Project{}).Where("project_code = ?", code)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("project: check code %q: %w", code, err)
	}
	return count > 0, nil
}

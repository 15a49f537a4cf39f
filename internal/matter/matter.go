// Package matter provides matters-arising (issue) operations.
package matter

import (
	"errors"
	"fmt"

	"github.com/zulandar/trestle/internal/models"
	"github.com/zulandar/trestle/internal/patch"
	"github.com/zulandar/trestle/internal/project"
	"gorm.io/gorm"
)

var updateSpec = patch.Spec{
	Fields: map[string]string{
		"issue_description": "issue_description",
		"level":             "level",
		"action_updates":    "action_updates",
		"pic":               "pic",
		"target_date":       "target_date",
		"status":            "status",
		"date_closed":       "date_closed",
		"date_raised":       "date_raised",
		"remarks":           "remarks",
	},
	Dates: map[string]bool{"target_date": true, "date_closed": true, "date_raised": true},
}

// Create records a new matter against a project.
func Create(db *gorm.DB, projectID uint, m *models.MattersArising) (*models.MattersArising, error) {
	if m.IssueDescription == "" {
		return nil, models.NewValidationError("issue_description is required")
	}
	if m.DateRaised.IsZero() {
		return nil, models.NewValidationError("date_raised is required")
	}
	if _, err := project.Get(db, projectID); err != nil {
		return nil, err
	}

	m.ID = 0
	m.ProjectID = projectID
	if m.Level == "" {
		m.Level = "Medium"
	}
	if m.Status == "" {
		m.Status = "Open"
	}

	if err := db.Create(m).Error; err != nil {
		return nil, fmt.Errorf("matter: create: %w", err)
	}
	return m, nil
}

// Get retrieves a matter by ID.
func Get(db *gorm.DB, id uint) (*models.MattersArising, error) {
	var m models.MattersArising
	if err := db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrMatterNotFound
		}
		return nil, fmt.Errorf("matter: get %d: %w", id, err)
	}
	return &m, nil
}

// Update applies a sparse field patch and returns the fresh record.
// date_closed is never derived from status; callers set it explicitly.
func Update(db *gorm.DB, id uint, raw map[string]interface{}) (*models.MattersArising, error) {
	if _, err := Get(db, id); err != nil {
		return nil, err
	}

	updates, err := updateSpec.Apply(raw)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.Model(&models.MattersArising{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("matter: update %d: %w", id, err)
		}
	}
	return Get(db, id)
}

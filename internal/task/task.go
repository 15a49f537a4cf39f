// Package task provides task breakdown operations. Every mutation
// recalculates the owning project's progress before returning.
package task

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
		"task_name":             "task_name",
		"start_date":            "start_date",
		"end_date":              "end_date",
		"duration":              "duration",
		"completion_percentage": "completion_percentage",
		"completion_date":       "completion_date",
		"status":                "status",
		"parent_id":             "parent_id",
		"assigned_to":           "assigned_to",
		"priority":              "priority",
		"description":           "description",
		"tags":                  "tags",
		"order_index":           "order_index",
	},
	Dates: map[string]bool{"start_date": true, "end_date": true, "completion_date": true},
}

// Create persists a new task under a project and recalculates progress in the
// same transaction.
func Create(db *gorm.DB, projectID uint, t *models.ProjectTask) (*models.ProjectTask, error) {
	if t.TaskName == "" {
		return nil, models.NewValidationError("task_name is required")
	}
	if _, err := project.Get(db, projectID); err != nil {
		return nil, err
	}
	if t.ParentID != nil {
		var count int64
		if err := db.Model(&models.ProjectTask{}).
			Where("id = ? AND project_id = ?", *t.ParentID, projectID).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("task: check parent %d: %w", *t.ParentID, err)
		}
		if count == 0 {
			return nil, models.ErrTaskNotFound
		}
	}

	t.ID = 0
	t.ProjectID = projectID
	if t.Status == "" {
		t.Status = "Not Started"
	}
	if t.Priority == "" {
		t.Priority = "Medium"
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return fmt.Errorf("task: create: %w", err)
		}
		if _, err := project.RecalculateProgress(tx, projectID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Get retrieves a task scoped to its project, with comments.
func Get(db *gorm.DB, projectID, taskID uint) (*models.ProjectTask, error) {
	var t models.ProjectTask
	err := db.Preload("Comments").
		Where("id = ? AND project_id = ?", taskID, projectID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTaskNotFound
		}
		return nil, fmt.Errorf("task: get %d: %w", taskID, err)
	}
	return &t, nil
}

// Update applies a sparse field patch with the completion-date rule, then
// recalculates project progress, all in one transaction.
//
// The rule runs before the generic merge: a status moving to "Completed"
// stamps today's date unless a non-null date was supplied or one already
// exists; a status moving anywhere else forces completion_date to null even
// if the same payload carries a date.
func Update(db *gorm.DB, projectID, taskID uint, raw map[string]interface{}) (*models.ProjectTask, error) {
	existing, err := Get(db, projectID, taskID)
	if err != nil {
		return nil, err
	}

	updates, err := updateSpec.Apply(raw)
	if err != nil {
		return nil, err
	}
	applyCompletionRule(updates, existing)

	err = db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.ProjectTask{}).Where("id = ?", taskID).Updates(updates).Error; err != nil {
				return fmt.Errorf("task: update %d: %w", taskID, err)
			}
		}
		if _, err := project.RecalculateProgress(tx, projectID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return Get(db, projectID, taskID)
}

// applyCompletionRule adjusts the pending updates so completion_date tracks
// the status transition.
func applyCompletionRule(updates map[string]interface{}, existing *models.ProjectTask) {
	status, present := updates["status"]
	if !present {
		return
	}
	if status == "Completed" {
		if supplied, ok := updates["completion_date"]; ok && supplied != nil {
			return // trust the caller's date
		}
		if existing.CompletionDate == nil {
			updates["completion_date"] = models.Today()
		} else {
			// A date is already stamped; leave it alone.
			delete(updates, "completion_date")
		}
		return
	}
	updates["completion_date"] = nil
}

// Delete removes a task and its comments, then recalculates progress, in one
// transaction.
func Delete(db *gorm.DB, projectID, taskID uint) error {
	if _, err := Get(db, projectID, taskID); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", taskID).Delete(&models.TaskComment{}).Error; err != nil {
			return fmt.Errorf("task: delete comments of %d: %w", taskID, err)
		}
		if err := tx.Delete(&models.ProjectTask{}, taskID).Error; err != nil {
			return fmt.Errorf("task: delete %d: %w", taskID, err)
		}
		if _, err := project.RecalculateProgress(tx, projectID); err != nil {
			return err
		}
		return nil
	})
}

// ListRoots returns a project's top-level tasks with their subtasks and
// comments, ordered for board display.
func ListRoots(db *gorm.DB, projectID uint) ([]models.ProjectTask, error) {
	var tasks []models.ProjectTask
	err := db.
		Preload("Subtasks", func(q *gorm.DB) *gorm.DB { return q.Order("order_index ASC, id ASC") }).
		Preload("Subtasks.Comments").
		Preload("Comments").
		Where("project_id = ? AND parent_id IS NULL", projectID).
		Order("order_index ASC, id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("task: list roots for %d: %w", projectID, err)
	}
	return tasks, nil
}

// AddComment appends an immutable comment to a task.
func AddComment(db *gorm.DB, taskID uint, userName, content string) (*models.TaskComment, error) {
	if userName == "" || content == "" {
		return nil, models.NewValidationError("user_name and content are required")
	}

	var count int64
	if err := db.Model(&models.ProjectTask{}).Where("id = ?", taskID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("task: check %d: %w", taskID, err)
	}
	if count == 0 {
		return nil, models.ErrTaskNotFound
	}

	comment := models.TaskComment{
		TaskID:   taskID,
		UserName: userName,
		Content:  content,
	}
	if err := db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("task: add comment to %d: %w", taskID, err)
	}
	return &comment, nil
}

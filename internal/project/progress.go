package project

import (
	"fmt"

	"github.com/zulandar/trestle/internal/models"
	"gorm.io/gorm"
)

// RecalculateProgress derives a project's completion percentage from its
// tasks: 100 * completed / total, truncated, 0 when the project has no tasks.
// Only status exactly equal to "Completed" counts; the comparison runs in Go
// because MySQL's default collation would match case-insensitively.
// Every task mutation must call this before returning so callers never see a
// stale value.
func RecalculateProgress(db *gorm.DB, projectID uint) (int, error) {
	var statuses []string
	if err := db.Model(&models.ProjectTask{}).
		Where("project_id = ?", projectID).
		Pluck("status", &statuses).Error; err != nil {
		return 0, fmt.Errorf("project: list task statuses for %d: %w", projectID, err)
	}

	completed := 0
	for _, s := range statuses {
		if s == "Completed" {
			completed++
		}
	}

	progress := 0
	if total := len(statuses); total > 0 {
		progress = completed * 100 / total
	}

	if err := db.Model(&models.Project{}).Where("id = ?", projectID).
		Update("progress_percentage", progress).Error; err != nil {
		return 0, fmt.Errorf("project: store progress for %d: %w", projectID, err)
	}
	return progress, nil
}

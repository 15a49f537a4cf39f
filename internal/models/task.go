package models

import "time"

// ProjectTask is one row in a project's work breakdown. Tasks may nest one
// level or more via ParentID. CompletionDate stays null unless the task is
// Completed.
type ProjectTask struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	TaskName             string  `gorm:"not null" json:"task_name"`
	StartDate            *Date   `json:"start_date"`
	EndDate              *Date   `json:"end_date"`
	Duration             *string `gorm:"size:64" json:"duration"`
	CompletionPercentage int     `gorm:"default:0" json:"completion_percentage"`
	CompletionDate       *Date   `json:"completion_date"`
	Status               string  `gorm:"size:32;index" json:"status"` // Not Started, In Progress, Completed
	ParentID             *uint   `gorm:"index" json:"parent_id"`
	AssignedTo           *string `gorm:"size:255" json:"assigned_to"`
	Priority             string  `gorm:"size:16" json:"priority"`
	Description          *string `gorm:"type:text" json:"description"`
	Tags                 *string `json:"tags"`
	OrderIndex           int     `gorm:"default:0" json:"order_index"`

	Parent   *ProjectTask  `gorm:"foreignKey:ParentID" json:"-"`
	Subtasks []ProjectTask `gorm:"foreignKey:ParentID" json:"subtasks,omitempty"`
	Comments []TaskComment `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}

// TaskComment is an append-only note on a task.
type TaskComment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID    uint      `gorm:"index;not null" json:"task_id"`
	UserName  string    `gorm:"size:255;not null" json:"user_name"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

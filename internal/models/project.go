package models

// Project is the aggregate root. Deleting a project removes its health row,
// payments, matters, tasks, and task comments.
type Project struct {
	ID                 uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string  `gorm:"not null;index" json:"name"`
	ProjectCode        *string `gorm:"size:64;uniqueIndex" json:"project_code"`
	ProjectManager     *string `gorm:"size:255" json:"project_manager"`
	AssignedToEmail    *string `gorm:"size:255;index" json:"assigned_to_email"`
	Description        *string `gorm:"type:text" json:"description"`
	Objective          *string `gorm:"type:text" json:"objective"`
	Status             string  `gorm:"size:32" json:"status"`
	Priority           string  `gorm:"size:16" json:"priority"`
	RiskLevel          string  `gorm:"size:16" json:"risk_level"`
	Department         *string `gorm:"size:128" json:"department"`
	IsArchived         int     `gorm:"default:0" json:"is_archived"`
	Tags               *string `json:"tags"`
	ProgressPercentage int     `gorm:"default:0" json:"progress_percentage"`
	StartDate          Date    `gorm:"not null" json:"start_date"`
	EndDate            Date    `gorm:"not null" json:"end_date"`
	PlannedCost        float64 `gorm:"not null" json:"planned_cost"`
	ActualCost         float64 `gorm:"default:0" json:"actual_cost"`

	Health   *ProjectHealth    `gorm:"foreignKey:ProjectID" json:"health,omitempty"`
	Payments []PaymentSchedule `gorm:"foreignKey:ProjectID" json:"payments,omitempty"`
	Matters  []MattersArising  `gorm:"foreignKey:ProjectID" json:"matters,omitempty"`
	Tasks    []ProjectTask     `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}

// ProjectHealth holds the five status dimensions tracked per project,
// each one of Good, At Risk, Critical. Created together with its project.
type ProjectHealth struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID      uint   `gorm:"uniqueIndex;not null" json:"project_id"`
	ScheduleStatus string `gorm:"size:16" json:"schedule_status"`
	BudgetStatus   string `gorm:"size:16" json:"budget_status"`
	RiskStatus     string `gorm:"size:16" json:"risk_status"`
	ScopeStatus    string `gorm:"size:16" json:"scope_status"`
	ResourceStatus string `gorm:"size:16" json:"resource_status"`
}

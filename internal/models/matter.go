package models

// MattersArising is an issue raised against a project.
type MattersArising struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	DateRaised       Date    `gorm:"not null" json:"date_raised"`
	IssueDescription string  `gorm:"type:text;not null" json:"issue_description"`
	Level            string  `gorm:"size:16" json:"level"` // High, Medium, Low, TBC
	ActionUpdates    *string `gorm:"type:text" json:"action_updates"`
	PIC              *string `gorm:"size:255;column:pic" json:"pic"`
	TargetDate       *Date   `json:"target_date"`
	Status           string  `gorm:"size:16" json:"status"` // Open, Closed, Completed
	DateClosed       *Date   `json:"date_closed"`
	Remarks          *string `gorm:"type:text" json:"remarks"`
}

// TableName keeps the plural-phrase table name.
func (MattersArising) TableName() string {
	return "matters_arising"
}

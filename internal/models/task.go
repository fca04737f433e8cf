package models

import (
	"gorm.io/gorm"
)

// TaskStatus represents the status of a task. Every status maps onto
// exactly one Kanban column via Column.MappedStatus.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "inProgress"
	StatusDone       TaskStatus = "done"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// Assignee represents a task assignee as embedded in API payloads
type Assignee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Task represents a task card on the board. BoardPosition defines the
// sort order within the column the task's status maps to; ascending
// sort by BoardPosition is assumed stable by every consumer.
type Task struct {
	ID            string       `json:"id" gorm:"primaryKey"`
	Title         string       `json:"title" gorm:"not null"`
	Description   string       `json:"description"`
	Status        TaskStatus   `json:"status" gorm:"not null;default:'todo'"`
	BoardPosition int          `json:"boardPosition" gorm:"column:board_position;default:0"`
	AssigneeID    string       `json:"-" gorm:"column:assignee_id"`
	Assignee      Assignee     `json:"assignee" gorm:"-"`
	Priority      TaskPriority `json:"priority" gorm:"default:'medium'"`
	DueDate       string       `json:"dueDate" gorm:"column:due_date"`
	Completed     bool         `json:"completed" gorm:"default:false"`
	FamilyID      string       `json:"familyId" gorm:"column:family_id;index"`
	UserID        string       `json:"-" gorm:"column:user_id;index"`
	gorm.Model
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}

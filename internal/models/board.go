package models

import (
	"gorm.io/gorm"
)

// Column represents a single Kanban column. MappedStatus ties the column
// to the task status it displays; Position orders columns left to right.
// TaskLimit is an optional WIP cap (0 means unlimited).
type Column struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	BoardID      string     `json:"boardId" gorm:"column:board_id;index"`
	Name         string     `json:"name" gorm:"not null"`
	MappedStatus TaskStatus `json:"mappedStatus" gorm:"column:mapped_status;not null"`
	TaskLimit    int        `json:"taskLimit" gorm:"column:task_limit;default:0"`
	Position     int        `json:"position" gorm:"default:0"`
	gorm.Model
}

// TableName specifies the table name for Column Model
func (Column) TableName() string {
	return "columns"
}

// Board represents a Kanban board with its ordered columns.
type Board struct {
	ID       string   `json:"id" gorm:"primaryKey"`
	Name     string   `json:"name" gorm:"not null"`
	FamilyID string   `json:"familyId" gorm:"column:family_id;index"`
	Columns  []Column `json:"columns" gorm:"-"`
	gorm.Model
}

// TableName specifies the table name for Board Model
func (Board) TableName() string {
	return "boards"
}

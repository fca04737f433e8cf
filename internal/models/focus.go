package models

import (
	"gorm.io/gorm"
)

// FocusSession records one focus-timer run for analytics.
type FocusSession struct {
	ID          string `json:"id" gorm:"primaryKey"`
	UserID      string `json:"userId" gorm:"column:user_id;index"`
	StartedAt   string `json:"startedAt" gorm:"column:started_at"`
	DurationMin int    `json:"durationMin" gorm:"column:duration_min"`
	Completed   bool   `json:"completed" gorm:"default:false"`
	gorm.Model
}

// TableName specifies the table name for FocusSession Model
func (FocusSession) TableName() string {
	return "focus_sessions"
}

// TrendPoint is a single day's value in a focus/task trend series.
type TrendPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// FocusStats aggregates focus sessions for one user.
type FocusStats struct {
	TotalSessions int          `json:"totalSessions"`
	TotalMinutes  int          `json:"totalMinutes"`
	Trend         []TrendPoint `json:"trend"`
}

package models

// Realtime event names pushed over the notification channel.
const (
	EventReceiveNotification = "ReceiveNotification"
	EventPointsAwarded       = "PointsAwarded"
	EventAchievementUnlocked = "AchievementUnlocked"
	EventTaskMoved           = "TaskMoved"
	EventColumnsReordered    = "ColumnsReordered"
)

// Notification is the payload carried by ReceiveNotification events.
type Notification struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// TaskMovedEvent is broadcast after a task changes column or position.
type TaskMovedEvent struct {
	TaskID       string     `json:"taskId"`
	FromColumnID string     `json:"fromColumnId"`
	ToColumnID   string     `json:"toColumnId"`
	NewStatus    TaskStatus `json:"newStatus"`
	NewPosition  int        `json:"newPosition"`
}

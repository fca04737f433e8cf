package stubapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"familyboard/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title         string              `json:"title" binding:"required"`
	Description   string              `json:"description"`
	Status        models.TaskStatus   `json:"status"`
	BoardPosition int                 `json:"boardPosition"`
	Assignee      models.Assignee     `json:"assignee"`
	Priority      models.TaskPriority `json:"priority"`
	DueDate       string              `json:"dueDate"`
	FamilyID      string              `json:"familyId"`
}

// UpdateTaskRequest represents the request payload for updating a task
type UpdateTaskRequest struct {
	Title         *string              `json:"title"`
	Description   *string              `json:"description"`
	Status        *models.TaskStatus   `json:"status"`
	BoardPosition *int                 `json:"boardPosition"`
	Assignee      *models.Assignee     `json:"assignee"`
	Priority      *models.TaskPriority `json:"priority"`
	DueDate       *string              `json:"dueDate"`
	Completed     *bool                `json:"completed"`
}

// MoveTaskRequest represents the drag-move payload: the new status (the
// target column's mapped status) and the position within that column.
type MoveTaskRequest struct {
	Status        models.TaskStatus `json:"status" binding:"required"`
	BoardPosition *int              `json:"boardPosition" binding:"required"`
}

// GetTasks handles GET /api/tasks with paging and an optional familyId
// filter. Tasks come back ordered by board position so clients can rely
// on a stable ascending sort.
func (s *Server) GetTasks(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")
	sortParam := strings.ToLower(c.DefaultQuery("sort", "asc"))
	familyID := c.Query("familyId")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	order := "board_position asc"
	if sortParam == "desc" {
		order = "board_position desc"
	}

	query := s.db.Model(&models.Task{})
	if familyID != "" {
		query = query.Where("family_id = ?", familyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count tasks"})
		return
	}

	var tasks []models.Task
	result := query.Session(&gorm.Session{}).Order(order).Limit(limit).Offset(offset).Find(&tasks)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	s.enrichAssignees(tasks)

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
		"total": total,
		"page":  page,
		"limit": limit,
		"sort":  sortParam,
	})
}

// GetTaskByID handles GET /api/tasks/:id
func (s *Server) GetTaskByID(c *gin.Context) {
	taskID := c.Param("id")
	var task models.Task
	if err := s.db.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}
	s.enrichOne(&task)
	c.JSON(http.StatusOK, task)
}

// CreateTask handles POST /api/tasks
func (s *Server) CreateTask(c *gin.Context) {
	userID := c.GetString("user_id")
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	familyID := req.FamilyID
	if familyID == "" {
		familyID = c.GetString("family_id")
	}

	task := models.Task{
		ID:            fmt.Sprintf("task-%d", time.Now().UnixNano()),
		Title:         req.Title,
		Description:   req.Description,
		Status:        status,
		BoardPosition: req.BoardPosition,
		AssigneeID:    req.Assignee.ID,
		Assignee:      req.Assignee,
		Priority:      priority,
		DueDate:       req.DueDate,
		FamilyID:      familyID,
		UserID:        userID,
	}

	if err := s.db.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	s.hub.Broadcast(familyID, models.EventReceiveNotification, models.Notification{
		ID:      task.ID,
		UserID:  userID,
		Title:   "New task",
		Message: task.Title,
		Kind:    "task_created",
	})
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/:id
func (s *Server) UpdateTask(c *gin.Context) {
	taskID := c.Param("id")

	var task models.Task
	if err := s.db.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.BoardPosition != nil {
		task.BoardPosition = *req.BoardPosition
	}
	if req.Assignee != nil {
		task.AssigneeID = req.Assignee.ID
		task.Assignee = *req.Assignee
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := s.db.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}
	s.enrichOne(&task)
	c.JSON(http.StatusOK, task)
}

// MoveTask handles PATCH /api/tasks/:id/move, persisting a drag move and
// broadcasting it to the task's family.
func (s *Server) MoveTask(c *gin.Context) {
	taskID := c.Param("id")

	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var task models.Task
	if err := s.db.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	fromStatus := task.Status
	task.Status = req.Status
	task.BoardPosition = *req.BoardPosition
	updates := map[string]any{
		"status":         req.Status,
		"board_position": *req.BoardPosition,
	}
	if err := s.db.Model(&task).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move task"})
		return
	}

	fromCol, _ := s.columnForStatus(task.FamilyID, fromStatus)
	toCol, _ := s.columnForStatus(task.FamilyID, task.Status)
	s.hub.Broadcast(task.FamilyID, models.EventTaskMoved, models.TaskMovedEvent{
		TaskID:       task.ID,
		FromColumnID: fromCol,
		ToColumnID:   toCol,
		NewStatus:    task.Status,
		NewPosition:  task.BoardPosition,
	})

	s.enrichOne(&task)
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
func (s *Server) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")

	var task models.Task
	if err := s.db.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	if err := s.db.Delete(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully", "id": taskID})
}

// enrichAssignees fills the Assignee field from the users table.
func (s *Server) enrichAssignees(tasks []models.Task) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for i := range tasks {
		if u, ok := byID[tasks[i].AssigneeID]; ok {
			tasks[i].Assignee = models.Assignee{ID: u.ID, Name: u.Username}
		}
	}
}

func (s *Server) enrichOne(task *models.Task) {
	if task.AssigneeID == "" {
		return
	}
	var u models.User
	if err := s.db.Where("id = ?", task.AssigneeID).First(&u).Error; err == nil {
		task.Assignee = models.Assignee{ID: u.ID, Name: u.Username}
	}
}

// columnForStatus resolves the family board's column id for a status.
func (s *Server) columnForStatus(familyID string, status models.TaskStatus) (string, bool) {
	var board models.Board
	if err := s.db.Where("family_id = ?", familyID).First(&board).Error; err != nil {
		return "", false
	}
	var col models.Column
	if err := s.db.Where("board_id = ? AND mapped_status = ?", board.ID, status).First(&col).Error; err != nil {
		return "", false
	}
	return col.ID, true
}

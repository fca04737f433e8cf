package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"familyboard/internal/models"
)

// TaskService covers the task CRUD and move endpoints.
type TaskService struct {
	c *Client
}

// ListTasksOptions are the query parameters of GET /api/tasks.
type ListTasksOptions struct {
	Page     int
	Limit    int
	Sort     string // "asc" or "desc" on creation time
	FamilyID string
}

// TaskList is the paginated list response.
type TaskList struct {
	Tasks []models.Task `json:"tasks"`
	Count int           `json:"count"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Status        models.TaskStatus   `json:"status"`
	BoardPosition int                 `json:"boardPosition"`
	Assignee      models.Assignee     `json:"assignee"`
	Priority      models.TaskPriority `json:"priority"`
	DueDate       string              `json:"dueDate"`
	FamilyID      string              `json:"familyId"`
}

// UpdateTaskRequest patches a task; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title         *string              `json:"title,omitempty"`
	Description   *string              `json:"description,omitempty"`
	Status        *models.TaskStatus   `json:"status,omitempty"`
	BoardPosition *int                 `json:"boardPosition,omitempty"`
	Assignee      *models.Assignee     `json:"assignee,omitempty"`
	Priority      *models.TaskPriority `json:"priority,omitempty"`
	DueDate       *string              `json:"dueDate,omitempty"`
	Completed     *bool                `json:"completed,omitempty"`
}

// MoveTaskRequest repositions a task onto another column.
type MoveTaskRequest struct {
	Status        models.TaskStatus `json:"status"`
	BoardPosition int               `json:"boardPosition"`
}

// List fetches a task page.
func (s *TaskService) List(ctx context.Context, opts ListTasksOptions) (TaskList, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	if opts.FamilyID != "" {
		q.Set("familyId", opts.FamilyID)
	}
	path := "/api/tasks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list TaskList
	if err := s.c.do(ctx, "GET", path, nil, &list); err != nil {
		return TaskList{}, err
	}
	return list, nil
}

// Get fetches one task.
func (s *TaskService) Get(ctx context.Context, id string) (models.Task, error) {
	var task models.Task
	if err := s.c.do(ctx, "GET", "/api/tasks/"+id, nil, &task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Create adds a task.
func (s *TaskService) Create(ctx context.Context, req CreateTaskRequest) (models.Task, error) {
	var task models.Task
	if err := s.c.do(ctx, "POST", "/api/tasks", req, &task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Update patches a task.
func (s *TaskService) Update(ctx context.Context, id string, req UpdateTaskRequest) (models.Task, error) {
	var task models.Task
	if err := s.c.do(ctx, "PUT", "/api/tasks/"+id, req, &task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Move persists a drag move: new status (column) plus board position.
func (s *TaskService) Move(ctx context.Context, id string, req MoveTaskRequest) (models.Task, error) {
	var task models.Task
	if err := s.c.do(ctx, "PATCH", fmt.Sprintf("/api/tasks/%s/move", id), req, &task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, "DELETE", "/api/tasks/"+id, nil, nil)
}

package kanban

import (
	"sync"

	"familyboard/internal/models"
)

// Haptics is the feedback hook fired around drag gestures. Implementations
// must treat calls as fire-and-forget; errors are never reported back.
type Haptics interface {
	Light()
	Medium()
	Success()
}

// noopHaptics is used when no haptics implementation is injected.
type noopHaptics struct{}

func (noopHaptics) Light()   {}
func (noopHaptics) Medium()  {}
func (noopHaptics) Success() {}

// Callbacks receive the outcome of a completed drag. The controller does
// no persistence and no rollback itself; the owner of the task list is
// responsible for the optimistic update and for reverting on failure.
type Callbacks struct {
	// OnReorderColumns gets the full new ordered column id list.
	OnReorderColumns func(orderedIDs []string)
	// OnMoveTask gets the moved task, its source and target columns, and
	// the position the task takes in the target column.
	OnMoveTask func(taskID, fromColumnID, toColumnID string, newPosition int)
}

// Controller turns raw drag gestures into reorder/move callbacks. It is
// deliberately ignorant of any pointer/touch sensor library: callers feed
// it ids from whatever drag source they use, and the controller only does
// the ordering math.
type Controller struct {
	mu       sync.Mutex
	columns  []models.Column
	tasks    []models.Task
	activeID string

	haptics   Haptics
	callbacks Callbacks
}

// NewController builds a controller. haptics may be nil.
func NewController(cb Callbacks, haptics Haptics) *Controller {
	if haptics == nil {
		haptics = noopHaptics{}
	}
	return &Controller{haptics: haptics, callbacks: cb}
}

// SetBoard replaces the column and task snapshot the controller reasons
// about. Call it whenever the owning store publishes new state.
func (c *Controller) SetBoard(columns []models.Column, tasks []models.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.columns = columns
	c.tasks = tasks
}

// DragStart records the dragged id and fires a light haptic cue. No
// network call and no state mutation happen here.
func (c *Controller) DragStart(activeID string) {
	c.mu.Lock()
	c.activeID = activeID
	c.mu.Unlock()
	c.haptics.Light()
}

// DragOver resolves the candidate target column for visual highlight.
// It never mutates anything; an empty result means "no valid target".
func (c *Controller) DragOver(overID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if col, ok := c.resolveColumn(overID); ok {
		return col.ID
	}
	return ""
}

// DragEnd completes a gesture. Column over column reorders the board;
// task over column appends the task to the target column. A nil target
// (cancelled drag) or an identical source and target is a no-op.
// Callbacks fire after the controller's lock is released, so they may
// call back into SetBoard freely.
func (c *Controller) DragEnd(activeID, overID string) {
	c.mu.Lock()
	c.activeID = ""

	var fire func()
	if overID != "" {
		if _, isColumn := c.columnByID(activeID); isColumn {
			fire = c.endColumnDrag(activeID, overID)
		} else {
			fire = c.endTaskDrag(activeID, overID)
		}
	}
	c.mu.Unlock()

	if fire != nil {
		fire()
	}
}

func (c *Controller) endColumnDrag(activeID, overID string) func() {
	over, ok := c.resolveColumn(overID)
	if !ok {
		return nil
	}
	ids := make([]string, len(c.columns))
	for i, col := range c.columns {
		ids[i] = col.ID
	}
	from := indexOf(ids, activeID)
	to := indexOf(ids, over.ID)
	if from == -1 || to == -1 || from == to {
		return nil
	}
	newOrder := ReorderIDs(ids, from, to)
	return func() {
		c.haptics.Medium()
		if c.callbacks.OnReorderColumns != nil {
			c.callbacks.OnReorderColumns(newOrder)
		}
	}
}

func (c *Controller) endTaskDrag(activeID, overID string) func() {
	target, ok := c.resolveColumn(overID)
	if !ok {
		return nil
	}
	grouping := GroupTasks(c.columns, c.tasks)
	if _, ok := grouping.Task(activeID); !ok {
		return nil
	}
	from, ok := grouping.ColumnFor(activeID)
	if !ok || from.ID == target.ID {
		return nil
	}
	// Append semantics: the task always lands at the end of the target
	// column regardless of where it was visually dropped.
	newPos := grouping.Count(target.ID)
	return func() {
		c.haptics.Success()
		if c.callbacks.OnMoveTask != nil {
			c.callbacks.OnMoveTask(activeID, from.ID, target.ID, newPos)
		}
	}
}

// resolveColumn maps an over id onto a column: a synthetic column target,
// a raw column id, or a task id (resolved to the task's column).
func (c *Controller) resolveColumn(overID string) (models.Column, bool) {
	if id, ok := ParseColumnTarget(overID); ok {
		return c.columnByID(id)
	}
	if col, ok := c.columnByID(overID); ok {
		return col, true
	}
	grouping := GroupTasks(c.columns, c.tasks)
	return grouping.ColumnFor(overID)
}

func (c *Controller) columnByID(id string) (models.Column, bool) {
	for _, col := range c.columns {
		if col.ID == id {
			return col, true
		}
	}
	return models.Column{}, false
}

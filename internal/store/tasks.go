// Package store holds the client-side state containers. Each store owns
// its slice of state behind a mutex, exposes read-only snapshots, and
// pushes change notifications to subscribers; mutation goes through the
// API client with optimistic local updates reverted on failure.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"familyboard/internal/client"
	"familyboard/internal/kanban"
	"familyboard/internal/models"
	"familyboard/internal/realtime"
	"familyboard/internal/session"

	"go.uber.org/zap"
)

// TaskStore owns the board and its tasks.
type TaskStore struct {
	api     *client.Client
	sess    session.Session
	boardID string
	log     *zap.Logger

	mu         sync.Mutex
	board      models.Board
	tasks      []models.Task
	nextGen    uint64
	appliedGen uint64
	listeners  map[int]func()
	nextSubID  int
}

// NewTaskStore builds a store for one board. log may be nil.
func NewTaskStore(api *client.Client, sess session.Session, boardID string, log *zap.Logger) *TaskStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &TaskStore{
		api:       api,
		sess:      sess,
		boardID:   boardID,
		log:       log,
		listeners: make(map[int]func()),
	}
}

// Subscribe registers a change listener and returns its unsubscribe
// function. Listeners run after every applied state change, outside the
// store's lock.
func (s *TaskStore) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *TaskStore) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Snapshot returns copies of the current board and task list.
func (s *TaskStore) Snapshot() (models.Board, []models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	board := s.board
	board.Columns = append([]models.Column(nil), s.board.Columns...)
	tasks := append([]models.Task(nil), s.tasks...)
	return board, tasks
}

// Grouping buckets the current tasks per column.
func (s *TaskStore) Grouping() kanban.Grouping {
	board, tasks := s.Snapshot()
	return kanban.GroupTasks(board.Columns, tasks)
}

// Refresh fetches the board and tasks. Each call is stamped with a
// monotonic generation; a response that resolves after a newer one has
// already been applied is discarded instead of clobbering fresher state.
func (s *TaskStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.nextGen++
	gen := s.nextGen
	s.mu.Unlock()

	board, err := s.api.Boards().Get(ctx, s.boardID)
	if err != nil {
		return fmt.Errorf("refresh board: %w", err)
	}
	list, err := s.api.Tasks().List(ctx, client.ListTasksOptions{
		FamilyID: s.sess.FamilyID,
		Limit:    100,
		Sort:     "asc",
	})
	if err != nil {
		return fmt.Errorf("refresh tasks: %w", err)
	}

	if !s.applySnapshot(gen, board, list.Tasks) {
		s.log.Debug("discarded stale refresh", zap.Uint64("generation", gen))
		return nil
	}
	s.notify()
	return nil
}

// applySnapshot installs fetched state unless a newer generation already
// landed. Returns whether the snapshot was applied.
func (s *TaskStore) applySnapshot(gen uint64, board models.Board, tasks []models.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.appliedGen {
		return false
	}
	s.appliedGen = gen
	s.board = board
	s.tasks = tasks
	return true
}

// StartPolling refreshes the store every interval until ctx is cancelled.
func (s *TaskStore) StartPolling(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					s.log.Warn("poll refresh failed", zap.Error(err))
				}
			}
		}
	}()
}

// MoveTask applies the move locally first, then persists it. On persist
// failure the pre-move task list is restored exactly and the error is
// returned for surfacing.
func (s *TaskStore) MoveTask(ctx context.Context, taskID, toColumnID string, newPosition int) error {
	s.mu.Lock()
	target, ok := columnByID(s.board.Columns, toColumnID)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("move task %s: unknown column %s", taskID, toColumnID)
	}
	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return fmt.Errorf("move task: unknown task %s", taskID)
	}

	grouping := kanban.GroupTasks(s.board.Columns, s.tasks)
	if kanban.ExceedsLimit(target, grouping.Count(toColumnID)) {
		// WIP caps are an affordance, not a hard rule: warn and proceed.
		s.log.Warn("wip limit exceeded",
			zap.String("column", target.Name),
			zap.Int("limit", target.TaskLimit))
	}

	prev := append([]models.Task(nil), s.tasks...)
	s.tasks[idx].Status = target.MappedStatus
	s.tasks[idx].BoardPosition = newPosition
	s.mu.Unlock()
	s.notify()

	moved, err := s.api.Tasks().Move(ctx, taskID, client.MoveTaskRequest{
		Status:        target.MappedStatus,
		BoardPosition: newPosition,
	})
	if err != nil {
		s.mu.Lock()
		s.tasks = prev
		s.mu.Unlock()
		s.notify()
		return fmt.Errorf("persist move of %s: %w", taskID, err)
	}

	// Reconcile with the server's view of the task.
	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == moved.ID {
			s.tasks[i] = moved
			break
		}
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// ReorderColumns applies the new order locally, then persists it, rolling
// the column order back if the server rejects it.
func (s *TaskStore) ReorderColumns(ctx context.Context, orderedIDs []string) error {
	s.mu.Lock()
	prev := append([]models.Column(nil), s.board.Columns...)
	reordered := make([]models.Column, 0, len(prev))
	for pos, id := range orderedIDs {
		col, ok := columnByID(prev, id)
		if !ok {
			s.mu.Unlock()
			return fmt.Errorf("reorder columns: unknown column %s", id)
		}
		col.Position = pos
		reordered = append(reordered, col)
	}
	if len(reordered) != len(prev) {
		s.mu.Unlock()
		return fmt.Errorf("reorder columns: got %d ids, board has %d columns", len(orderedIDs), len(prev))
	}
	s.board.Columns = reordered
	s.mu.Unlock()
	s.notify()

	board, err := s.api.Boards().ReorderColumns(ctx, s.boardID, orderedIDs)
	if err != nil {
		s.mu.Lock()
		s.board.Columns = prev
		s.mu.Unlock()
		s.notify()
		return fmt.Errorf("persist column order: %w", err)
	}

	s.mu.Lock()
	s.board = board
	s.mu.Unlock()
	s.notify()
	return nil
}

// Controller wires a drag controller to this store: drag outcomes are
// persisted in the background and the controller is kept fed with every
// new snapshot.
func (s *TaskStore) Controller(haptics kanban.Haptics) *kanban.Controller {
	ctrl := kanban.NewController(kanban.Callbacks{
		OnReorderColumns: func(ids []string) {
			go func() {
				if err := s.ReorderColumns(context.Background(), ids); err != nil {
					s.log.Error("column reorder failed", zap.Error(err))
				}
			}()
		},
		OnMoveTask: func(taskID, fromColumnID, toColumnID string, newPosition int) {
			go func() {
				if err := s.MoveTask(context.Background(), taskID, toColumnID, newPosition); err != nil {
					s.log.Error("task move failed",
						zap.String("task", taskID),
						zap.String("from", fromColumnID),
						zap.String("to", toColumnID),
						zap.Error(err))
				}
			}()
		},
	}, haptics)

	feed := func() {
		board, tasks := s.Snapshot()
		ctrl.SetBoard(board.Columns, tasks)
	}
	s.Subscribe(feed)
	feed()
	return ctrl
}

// ListenRealtime applies push events to local state so other family
// members' moves show up without waiting for the next poll.
func (s *TaskStore) ListenRealtime(conn realtime.Connection) {
	conn.On(models.EventTaskMoved, func(payload json.RawMessage) {
		var evt models.TaskMovedEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			s.log.Warn("bad TaskMoved payload", zap.Error(err))
			return
		}
		s.mu.Lock()
		changed := false
		for i := range s.tasks {
			if s.tasks[i].ID == evt.TaskID {
				s.tasks[i].Status = evt.NewStatus
				s.tasks[i].BoardPosition = evt.NewPosition
				changed = true
				break
			}
		}
		s.mu.Unlock()
		if changed {
			s.notify()
		}
	})
	conn.On(models.EventColumnsReordered, func(json.RawMessage) {
		// Handlers run on the connection's read goroutine, so the
		// refetch happens off it.
		go func() {
			if err := s.Refresh(context.Background()); err != nil {
				s.log.Warn("refresh after remote reorder failed", zap.Error(err))
			}
		}()
	})
}

func columnByID(cols []models.Column, id string) (models.Column, bool) {
	for _, col := range cols {
		if col.ID == id {
			return col, true
		}
	}
	return models.Column{}, false
}

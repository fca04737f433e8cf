package kanban

import (
	"sort"

	"familyboard/internal/models"
)

// Grouping holds tasks bucketed per column. A task lands in the bucket of
// the column whose MappedStatus equals the task's Status; within a bucket
// tasks are sorted ascending by BoardPosition (stable, so equal positions
// keep their input order). A Grouping is a snapshot: it is recomputed from
// the latest task list on demand and never cached across mutations.
type Grouping struct {
	columns []models.Column
	buckets map[string][]models.Task
}

// GroupTasks buckets tasks into the given columns.
func GroupTasks(columns []models.Column, tasks []models.Task) Grouping {
	g := Grouping{
		columns: columns,
		buckets: make(map[string][]models.Task, len(columns)),
	}
	for _, col := range columns {
		var bucket []models.Task
		for _, t := range tasks {
			if t.Status == col.MappedStatus {
				bucket = append(bucket, t)
			}
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].BoardPosition < bucket[j].BoardPosition
		})
		g.buckets[col.ID] = bucket
	}
	return g
}

// Tasks returns the ordered tasks of one column.
func (g Grouping) Tasks(columnID string) []models.Task {
	return g.buckets[columnID]
}

// Count returns how many tasks a column currently holds.
func (g Grouping) Count(columnID string) int {
	return len(g.buckets[columnID])
}

// ColumnFor returns the column holding the given task.
func (g Grouping) ColumnFor(taskID string) (models.Column, bool) {
	for _, col := range g.columns {
		for _, t := range g.buckets[col.ID] {
			if t.ID == taskID {
				return col, true
			}
		}
	}
	return models.Column{}, false
}

// Task looks a task up by id across all buckets.
func (g Grouping) Task(taskID string) (models.Task, bool) {
	for _, bucket := range g.buckets {
		for _, t := range bucket {
			if t.ID == taskID {
				return t, true
			}
		}
	}
	return models.Task{}, false
}

// ExceedsLimit reports whether adding one task to the column would go past
// its WIP cap. A zero TaskLimit means the column is uncapped.
func ExceedsLimit(col models.Column, currentCount int) bool {
	return col.TaskLimit > 0 && currentCount+1 > col.TaskLimit
}

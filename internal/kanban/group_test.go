package kanban

import (
	"testing"

	"familyboard/internal/models"

	"github.com/stretchr/testify/require"
)

func testColumns() []models.Column {
	return []models.Column{
		{ID: "1", Name: "Todo", MappedStatus: models.StatusTodo, Position: 0},
		{ID: "2", Name: "Doing", MappedStatus: models.StatusInProgress, Position: 1},
		{ID: "3", Name: "Done", MappedStatus: models.StatusDone, Position: 2},
	}
}

func TestGroupTasks_EveryTaskInExactlyOneBucket(t *testing.T) {
	cols := testColumns()
	tasks := []models.Task{
		{ID: "t1", Status: models.StatusTodo, BoardPosition: 1},
		{ID: "t2", Status: models.StatusTodo, BoardPosition: 0},
		{ID: "t3", Status: models.StatusDone, BoardPosition: 0},
		{ID: "t4", Status: models.StatusInProgress, BoardPosition: 2},
	}

	g := GroupTasks(cols, tasks)

	seen := map[string]int{}
	for _, col := range cols {
		for _, task := range g.Tasks(col.ID) {
			seen[task.ID]++
			require.Equal(t, col.MappedStatus, task.Status)
		}
	}
	require.Len(t, seen, len(tasks))
	for id, n := range seen {
		require.Equal(t, 1, n, "task %s bucketed %d times", id, n)
	}
}

func TestGroupTasks_SortedAscendingByBoardPosition(t *testing.T) {
	cols := testColumns()
	tasks := []models.Task{
		{ID: "t1", Status: models.StatusTodo, BoardPosition: 5},
		{ID: "t2", Status: models.StatusTodo, BoardPosition: 1},
		{ID: "t3", Status: models.StatusTodo, BoardPosition: 3},
	}

	g := GroupTasks(cols, tasks)

	todo := g.Tasks("1")
	require.Len(t, todo, 3)
	require.Equal(t, []string{"t2", "t3", "t1"}, []string{todo[0].ID, todo[1].ID, todo[2].ID})
}

func TestGroupTasks_StableOnEqualPositions(t *testing.T) {
	cols := testColumns()
	tasks := []models.Task{
		{ID: "t1", Status: models.StatusTodo, BoardPosition: 0},
		{ID: "t2", Status: models.StatusTodo, BoardPosition: 0},
	}

	g := GroupTasks(cols, tasks)

	todo := g.Tasks("1")
	require.Equal(t, "t1", todo[0].ID)
	require.Equal(t, "t2", todo[1].ID)
}

func TestGrouping_ColumnFor(t *testing.T) {
	cols := testColumns()
	tasks := []models.Task{{ID: "t1", Status: models.StatusInProgress}}

	g := GroupTasks(cols, tasks)

	col, ok := g.ColumnFor("t1")
	require.True(t, ok)
	require.Equal(t, "2", col.ID)

	_, ok = g.ColumnFor("missing")
	require.False(t, ok)
}

func TestExceedsLimit(t *testing.T) {
	uncapped := models.Column{ID: "1", TaskLimit: 0}
	require.False(t, ExceedsLimit(uncapped, 100))

	capped := models.Column{ID: "2", TaskLimit: 3}
	require.False(t, ExceedsLimit(capped, 2))
	require.True(t, ExceedsLimit(capped, 3))
}

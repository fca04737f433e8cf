package kanban

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReorderIDs_SpliceSemantics(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}

	require.Equal(t, []string{"b", "a", "c", "d"}, ReorderIDs(ids, 0, 1))
	require.Equal(t, []string{"d", "a", "b", "c"}, ReorderIDs(ids, 3, 0))
	require.Equal(t, []string{"a", "c", "d", "b"}, ReorderIDs(ids, 1, 3))
	// input untouched
	require.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestReorderIDs_DragColumnToFront(t *testing.T) {
	// [A,B,C], dragging C to index 0 yields [C,A,B]
	got := ReorderIDs([]string{"A", "B", "C"}, 2, 0)
	require.Equal(t, []string{"C", "A", "B"}, got)
}

func TestReorderIDs_IsAlwaysPermutation(t *testing.T) {
	ids := []string{"c1", "c2", "c3", "c4", "c5"}
	for from := 0; from < len(ids); from++ {
		for to := 0; to < len(ids); to++ {
			got := ReorderIDs(ids, from, to)
			require.Len(t, got, len(ids))

			sortedGot := append([]string(nil), got...)
			sortedIn := append([]string(nil), ids...)
			sort.Strings(sortedGot)
			sort.Strings(sortedIn)
			require.Equal(t, sortedIn, sortedGot, "from=%d to=%d", from, to)
		}
	}
}

func TestReorderIDs_OutOfRange(t *testing.T) {
	ids := []string{"a", "b"}
	require.Equal(t, ids, ReorderIDs(ids, -1, 0))
	require.Equal(t, ids, ReorderIDs(ids, 0, 5))
}

func TestColumnTargetID_RoundTrip(t *testing.T) {
	id, ok := ParseColumnTarget(ColumnTargetID("col-9"))
	require.True(t, ok)
	require.Equal(t, "col-9", id)

	_, ok = ParseColumnTarget("task-1")
	require.False(t, ok)
	_, ok = ParseColumnTarget("column-")
	require.False(t, ok)
}

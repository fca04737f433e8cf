package kanban

import "strings"

// columnPrefix marks synthetic drop-target ids that stand for a whole
// column rather than a task card.
const columnPrefix = "column-"

// ColumnTargetID builds the synthetic drop-target id for a column.
func ColumnTargetID(columnID string) string {
	return columnPrefix + columnID
}

// ParseColumnTarget extracts the column id from a synthetic target id.
func ParseColumnTarget(id string) (string, bool) {
	if rest, ok := strings.CutPrefix(id, columnPrefix); ok && rest != "" {
		return rest, true
	}
	return "", false
}

// ReorderIDs removes the element at from and reinserts it at to, splice
// style. The result is always a permutation of ids; out-of-range indexes
// return the input order unchanged.
func ReorderIDs(ids []string, from, to int) []string {
	n := len(ids)
	if from < 0 || from >= n || to < 0 || to >= n {
		return append([]string(nil), ids...)
	}
	out := make([]string, 0, n)
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)
	moved := ids[from]
	out = append(out[:to], append([]string{moved}, out[to:]...)...)
	return out
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

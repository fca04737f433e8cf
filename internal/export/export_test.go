package export

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"

	"familyboard/internal/models"

	"github.com/stretchr/testify/require"
)

func TestWriteBoard(t *testing.T) {
	board := models.Board{ID: "b1", Name: "Family Board"}
	tasks := []models.Task{{ID: "t1", Title: "Dishes", Status: models.StatusTodo}}
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteBoard(&buf, board, tasks, now))

	var snap BoardSnapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snap))
	require.Equal(t, "2026-03-10T12:00:00Z", snap.ExportedAt)
	require.Equal(t, "b1", snap.Board.ID)
	require.Len(t, snap.Tasks, 1)
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "family-board-2026-03-10.json", FileName("Family Board", now))
	require.Equal(t, "board-2026-03-10.json", FileName("  ", now))
}

func TestWriteBoardFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	path, err := WriteBoardFile(dir, models.Board{ID: "b1", Name: "Chores"}, nil, now)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"b1"`)
}

// Package export writes board snapshots as downloadable JSON files.
// The boundary is stateless: marshal, write, done.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"familyboard/internal/models"
)

// BoardSnapshot is the exported document shape.
type BoardSnapshot struct {
	ExportedAt string        `json:"exportedAt"`
	Board      models.Board  `json:"board"`
	Tasks      []models.Task `json:"tasks"`
}

// WriteBoard marshals an indented snapshot to w.
func WriteBoard(w io.Writer, board models.Board, tasks []models.Task, now time.Time) error {
	snap := BoardSnapshot{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Board:      board,
		Tasks:      tasks,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode board snapshot: %w", err)
	}
	return nil
}

// FileName builds the download name, e.g. "family-board-2026-03-10.json".
func FileName(boardName string, now time.Time) string {
	slug := strings.ToLower(strings.TrimSpace(boardName))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = "board"
	}
	return fmt.Sprintf("%s-%s.json", slug, now.UTC().Format("2006-01-02"))
}

// WriteBoardFile writes the snapshot into dir and returns the full path.
func WriteBoardFile(dir string, board models.Board, tasks []models.Task, now time.Time) (string, error) {
	path := filepath.Join(dir, FileName(board.Name, now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()
	if err := WriteBoard(f, board, tasks, now); err != nil {
		return "", err
	}
	return path, nil
}

package client

import (
	"context"
	"fmt"

	"familyboard/internal/models"
)

// BoardService covers board fetching and column reordering.
type BoardService struct {
	c *Client
}

// ReorderColumnsRequest carries the full new column order.
type ReorderColumnsRequest struct {
	ColumnIDs []string `json:"columnIds"`
}

// Get fetches a board with its ordered columns.
func (s *BoardService) Get(ctx context.Context, boardID string) (models.Board, error) {
	var board models.Board
	if err := s.c.do(ctx, "GET", "/api/boards/"+boardID, nil, &board); err != nil {
		return models.Board{}, err
	}
	return board, nil
}

// ReorderColumns persists a new column order and returns the board as
// the server now sees it.
func (s *BoardService) ReorderColumns(ctx context.Context, boardID string, columnIDs []string) (models.Board, error) {
	var board models.Board
	path := fmt.Sprintf("/api/boards/%s/columns/order", boardID)
	if err := s.c.do(ctx, "PUT", path, ReorderColumnsRequest{ColumnIDs: columnIDs}, &board); err != nil {
		return models.Board{}, err
	}
	return board, nil
}

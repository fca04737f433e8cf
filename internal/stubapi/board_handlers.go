package stubapi

import (
	"errors"
	"net/http"
	"sort"

	"familyboard/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReorderColumnsRequest carries the full new column order.
type ReorderColumnsRequest struct {
	ColumnIDs []string `json:"columnIds" binding:"required"`
}

// GetBoard handles GET /api/boards/:id, returning the board with its
// columns sorted by position.
func (s *Server) GetBoard(c *gin.Context) {
	boardID := c.Param("id")

	board, err := s.loadBoard(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch board"})
		}
		return
	}
	c.JSON(http.StatusOK, board)
}

// ReorderColumns handles PUT /api/boards/:id/columns/order. The request
// must be an exact permutation of the board's column ids.
func (s *Server) ReorderColumns(c *gin.Context) {
	boardID := c.Param("id")

	var req ReorderColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := s.loadBoard(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch board"})
		}
		return
	}

	if !samePermutation(columnIDs(board.Columns), req.ColumnIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "columnIds must be a permutation of the board's columns"})
		return
	}

	for pos, id := range req.ColumnIDs {
		if err := s.db.Model(&models.Column{}).Where("id = ?", id).Update("position", pos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder columns"})
			return
		}
	}

	board, err = s.loadBoard(boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch board"})
		return
	}

	s.hub.Broadcast(board.FamilyID, models.EventColumnsReordered, ReorderColumnsRequest{ColumnIDs: req.ColumnIDs})
	c.JSON(http.StatusOK, board)
}

func (s *Server) loadBoard(boardID string) (models.Board, error) {
	var board models.Board
	if err := s.db.Where("id = ?", boardID).First(&board).Error; err != nil {
		return models.Board{}, err
	}
	var cols []models.Column
	if err := s.db.Where("board_id = ?", boardID).Order("position asc").Find(&cols).Error; err != nil {
		return models.Board{}, err
	}
	board.Columns = cols
	return board, nil
}

func columnIDs(cols []models.Column) []string {
	ids := make([]string, len(cols))
	for i, col := range cols {
		ids[i] = col.ID
	}
	return ids
}

func samePermutation(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

package stubapi

import (
	"errors"
	"net/http"
	"sort"

	"familyboard/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetFamily handles GET /api/families/:id
func (s *Server) GetFamily(c *gin.Context) {
	familyID := c.Param("id")

	var fam models.Family
	if err := s.db.Where("id = ?", familyID).First(&fam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Family not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch family"})
		}
		return
	}
	c.JSON(http.StatusOK, fam)
}

// GetFamilyMembers handles GET /api/families/:id/members
func (s *Server) GetFamilyMembers(c *gin.Context) {
	familyID := c.Param("id")

	var members []models.FamilyMember
	if err := s.db.Where("family_id = ?", familyID).Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"count":   len(members),
	})
}

// GetFocusStats handles GET /api/focus/stats/:userid, aggregating the
// user's recorded focus sessions.
func (s *Server) GetFocusStats(c *gin.Context) {
	userID := c.Param("userid")

	var sessions []models.FocusSession
	if err := s.db.Where("user_id = ?", userID).Find(&sessions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch focus sessions"})
		return
	}
	if len(sessions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No focus data"})
		return
	}

	stats := models.FocusStats{}
	perDay := map[string]int{}
	for _, sess := range sessions {
		stats.TotalSessions++
		stats.TotalMinutes += sess.DurationMin
		perDay[sess.StartedAt] += sess.DurationMin
	}
	for date, minutes := range perDay {
		stats.Trend = append(stats.Trend, models.TrendPoint{Date: date, Value: minutes})
	}
	sort.Slice(stats.Trend, func(i, j int) bool { return stats.Trend[i].Date < stats.Trend[j].Date })
	c.JSON(http.StatusOK, stats)
}

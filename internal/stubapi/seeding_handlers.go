package stubapi

import (
	"errors"
	"net/http"

	"familyboard/internal/models"
	"familyboard/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedMember describes one member to create during seeding.
type SeedMember struct {
	Name     string            `json:"name" binding:"required"`
	Role     models.FamilyRole `json:"role"`
	Password string            `json:"password" binding:"required"`
}

// SeedFamilyRequest creates a family with members and a default board.
type SeedFamilyRequest struct {
	Name    string       `json:"name" binding:"required"`
	Members []SeedMember `json:"members"`
}

// RequireSeedCapability gates the admin seeding routes on the session's
// capability, decided from the token's role.
func (s *Server) RequireSeedCapability(c *gin.Context) {
	sess := session.Session{
		UserID: c.GetString("user_id"),
		Role:   models.FamilyRole(c.GetString("role")),
	}
	if !session.Authorize(sess, session.CapSeedFamilies) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Seeding requires admin capability"})
		c.Abort()
		return
	}
	c.Next()
}

// SeedFamily handles POST /api/v1/admin/family-seeding/seed: a family,
// its member users, and a default three-column board.
func (s *Server) SeedFamily(c *gin.Context) {
	var req SeedFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fam := models.Family{ID: "fam-" + uuid.NewString(), Name: req.Name}
	var members []models.FamilyMember
	boardID := "board-" + uuid.NewString()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&fam).Error; err != nil {
			return err
		}

		for _, m := range req.Members {
			hash, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user := models.User{
				ID:       "user-" + uuid.NewString(),
				Username: m.Name,
				Password: string(hash),
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			role := m.Role
			if role == "" {
				role = models.RoleChild
			}
			member := models.FamilyMember{
				ID:       "member-" + uuid.NewString(),
				FamilyID: fam.ID,
				UserID:   user.ID,
				Name:     m.Name,
				Role:     role,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
			members = append(members, member)
		}

		board := models.Board{ID: boardID, Name: req.Name + " Board", FamilyID: fam.ID}
		if err := tx.Create(&board).Error; err != nil {
			return err
		}
		cols := []models.Column{
			{ID: "col-" + uuid.NewString(), BoardID: boardID, Name: "Todo", MappedStatus: models.StatusTodo, Position: 0},
			{ID: "col-" + uuid.NewString(), BoardID: boardID, Name: "Doing", MappedStatus: models.StatusInProgress, TaskLimit: 3, Position: 1},
			{ID: "col-" + uuid.NewString(), BoardID: boardID, Name: "Done", MappedStatus: models.StatusDone, Position: 2},
		}
		for i := range cols {
			if err := tx.Create(&cols[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("family seeding failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed family"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"family":  fam,
		"members": members,
		"boardId": boardID,
	})
}

// ResetFamily handles DELETE /api/v1/admin/family-seeding/families/:id,
// removing the family and everything hanging off it.
func (s *Server) ResetFamily(c *gin.Context) {
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

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var members []models.FamilyMember
		if err := tx.Where("family_id = ?", familyID).Find(&members).Error; err != nil {
			return err
		}
		for _, m := range members {
			if err := tx.Where("id = ?", m.UserID).Delete(&models.User{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("family_id = ?", familyID).Delete(&models.FamilyMember{}).Error; err != nil {
			return err
		}
		var boards []models.Board
		if err := tx.Where("family_id = ?", familyID).Find(&boards).Error; err != nil {
			return err
		}
		for _, b := range boards {
			if err := tx.Where("board_id = ?", b.ID).Delete(&models.Column{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("family_id = ?", familyID).Delete(&models.Board{}).Error; err != nil {
			return err
		}
		if err := tx.Where("family_id = ?", familyID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&fam).Error
	})
	if err != nil {
		s.log.Error("family reset failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset family"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Family reset successfully", "id": familyID})
}

// SeedingStatus handles GET /api/v1/admin/family-seeding/status.
func (s *Server) SeedingStatus(c *gin.Context) {
	var families, members, tasks int64
	if err := s.db.Model(&models.Family{}).Count(&families).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute status"})
		return
	}
	if err := s.db.Model(&models.FamilyMember{}).Count(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute status"})
		return
	}
	if err := s.db.Model(&models.Task{}).Count(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"families": families,
		"members":  members,
		"tasks":    tasks,
	})
}

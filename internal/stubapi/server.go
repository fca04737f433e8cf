// Package stubapi is an in-process stand-in for the remote familyboard
// backend. It exists so the client, stores and demo binary have a
// faithful API to run against; it is not a production server.
package stubapi

import (
	"net/http"

	"familyboard/internal/middleware"
	"familyboard/internal/realtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server bundles the stub's storage, realtime hub and logger.
type Server struct {
	db  *gorm.DB
	hub *realtime.Hub
	log *zap.Logger
}

// New builds a server. log may be nil.
func New(db *gorm.DB, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{db: db, hub: realtime.NewHub(), log: log}
}

// Router assembles all routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware (for frontend integration)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/login", s.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.GET("/tasks", s.GetTasks)
		protected.GET("/tasks/:id", s.GetTaskByID)
		protected.POST("/tasks", s.CreateTask)
		protected.PUT("/tasks/:id", s.UpdateTask)
		protected.PATCH("/tasks/:id/move", s.MoveTask)
		protected.DELETE("/tasks/:id", s.DeleteTask)

		protected.GET("/boards/:id", s.GetBoard)
		protected.PUT("/boards/:id/columns/order", s.ReorderColumns)

		protected.GET("/families/:id", s.GetFamily)
		protected.GET("/families/:id/members", s.GetFamilyMembers)

		protected.GET("/focus/stats/:userid", s.GetFocusStats)

		protected.GET("/ws", s.WebSocket)
	}

	admin := r.Group("/api/v1/admin/family-seeding")
	admin.Use(middleware.JWTAuthMiddleware(), s.RequireSeedCapability)
	{
		admin.POST("/seed", s.SeedFamily)
		admin.DELETE("/families/:id", s.ResetFamily)
		admin.GET("/status", s.SeedingStatus)
	}

	return r
}

// Command boardctl runs the full client stack against an embedded stub
// backend: seed a demo family, log in, move a task the way a drag
// gesture would, reorder the board's columns, and export a snapshot.
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"familyboard/internal/auth"
	"familyboard/internal/client"
	"familyboard/internal/config"
	"familyboard/internal/database"
	"familyboard/internal/export"
	"familyboard/internal/kanban"
	"familyboard/internal/logging"
	"familyboard/internal/models"
	"familyboard/internal/session"
	"familyboard/internal/store"
	"familyboard/internal/stubapi"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := logging.New(logging.Config{Level: cfg.Logger.Level, Encoding: cfg.Logger.Encoding})
	defer log.Sync()

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("database open failed", zap.Error(err))
	}

	srv := stubapi.New(db, log)
	go func() {
		if err := srv.Router().Run(":" + cfg.StubPort); err != nil {
			log.Fatal("stub server failed", zap.Error(err))
		}
	}()

	baseURL := "http://localhost:" + cfg.StubPort
	waitForHealth(log, baseURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := client.New(client.Config{BaseURL: baseURL, Timeout: cfg.HTTPTimeout, Logger: log})

	// Seed a demo family through the admin endpoints.
	adminToken, err := auth.GenerateToken("admin-1", "admin", "", models.RoleAdmin)
	if err != nil {
		log.Fatal("admin token failed", zap.Error(err))
	}
	api.SetToken(adminToken)

	seeded, err := api.Seeding().Seed(ctx, client.SeedFamilyRequest{
		Name: "Demo",
		Members: []client.SeedMember{
			{Name: "alice", Role: models.RoleParent, Password: "demo-password"},
			{Name: "bob", Role: models.RoleChild, Password: "demo-password"},
		},
	})
	if err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}
	log.Info("family seeded",
		zap.String("family", seeded.Family.ID),
		zap.String("board", seeded.BoardID))

	// Log in as a seeded parent; Login installs the token on the client.
	login, err := api.Auth().Login(ctx, "alice", "demo-password")
	if err != nil {
		log.Fatal("login failed", zap.Error(err))
	}
	sess := session.Session{
		UserID:   login.UserID,
		Username: login.Username,
		FamilyID: seeded.Family.ID,
		Role:     models.RoleParent,
		Token:    login.Token,
	}

	for i, title := range []string{"Dishes", "Laundry", "Trash"} {
		_, err := api.Tasks().Create(ctx, client.CreateTaskRequest{
			Title:         title,
			Status:        models.StatusTodo,
			BoardPosition: i,
			FamilyID:      sess.FamilyID,
		})
		if err != nil {
			log.Fatal("task create failed", zap.Error(err))
		}
	}

	tasks := store.NewTaskStore(api, sess, seeded.BoardID, log)
	if err := tasks.Refresh(ctx); err != nil {
		log.Fatal("refresh failed", zap.Error(err))
	}
	tasks.StartPolling(ctx, cfg.PollInterval)

	// Drive the board through the drag controller, like a gesture would.
	ctrl := tasks.Controller(nil)
	board, list := tasks.Snapshot()
	if len(list) > 0 && len(board.Columns) > 1 {
		ctrl.DragStart(list[0].ID)
		ctrl.DragEnd(list[0].ID, kanban.ColumnTargetID(board.Columns[1].ID))
	}
	if len(board.Columns) == 3 {
		ctrl.DragStart(board.Columns[2].ID)
		ctrl.DragEnd(board.Columns[2].ID, board.Columns[0].ID)
	}
	// Persistence runs in the background off the gesture path.
	time.Sleep(500 * time.Millisecond)

	board, list = tasks.Snapshot()
	grouping := tasks.Grouping()
	for _, col := range board.Columns {
		log.Info("column",
			zap.String("name", col.Name),
			zap.Int("position", col.Position),
			zap.Int("tasks", grouping.Count(col.ID)))
	}

	path, err := export.WriteBoardFile(".", board, list, time.Now())
	if err != nil {
		log.Fatal("export failed", zap.Error(err))
	}
	log.Info("board exported", zap.String("path", path))

	os.Exit(0)
}

func waitForHealth(log *zap.Logger, baseURL string) {
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	log.Fatal("stub server never became healthy")
}

package stubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"familyboard/internal/auth"
	"familyboard/internal/models"
	"familyboard/internal/realtime"
	"familyboard/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*Server, *gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	srv := New(db, nil)
	return srv, srv.Router(), db
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken("admin-1", "admin", "", models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedTestFamily(t *testing.T, r *gin.Engine) (familyID, boardID string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/family-seeding/seed", adminToken(t), SeedFamilyRequest{
		Name: "Smith",
		Members: []SeedMember{
			{Name: "alice", Role: models.RoleParent, Password: "pw-alice"},
			{Name: "bob", Role: models.RoleChild, Password: "pw-bob"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Family  models.Family `json:"family"`
		BoardID string        `json:"boardId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Family.ID, resp.BoardID
}

func TestSeedLoginAndFetchBoard(t *testing.T) {
	_, r, _ := newTestServer(t)
	familyID, boardID := seedTestFamily(t, r)

	// seeded member can log in with the seeded password
	w := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{
		"username": "alice", "password": "pw-alice",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var login LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	w = doJSON(t, r, http.MethodGet, "/api/boards/"+boardID, login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var board models.Board
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.Equal(t, familyID, board.FamilyID)
	require.Len(t, board.Columns, 3)
	require.Equal(t, models.StatusTodo, board.Columns[0].MappedStatus)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, r, _ := newTestServer(t)
	seedTestFamily(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSeeding_RequiresAdminCapability(t *testing.T) {
	_, r, _ := newTestServer(t)

	token, err := auth.GenerateToken("u-1", "bob", "f-1", models.RoleChild)
	require.NoError(t, err)
	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/family-seeding/seed", token, SeedFamilyRequest{Name: "Nope"})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestMoveTask_PersistsStatusAndPosition(t *testing.T) {
	_, r, db := newTestServer(t)
	familyID, _ := seedTestFamily(t, r)

	task := models.Task{ID: "t-1", Title: "Dishes", Status: models.StatusTodo, FamilyID: familyID}
	require.NoError(t, db.Create(&task).Error)

	pos := 0
	w := doJSON(t, r, http.MethodPatch, "/api/tasks/t-1/move", adminToken(t), MoveTaskRequest{
		Status:        models.StatusInProgress,
		BoardPosition: &pos,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Task
	require.NoError(t, db.Where("id = ?", "t-1").First(&stored).Error)
	require.Equal(t, models.StatusInProgress, stored.Status)
	require.Equal(t, 0, stored.BoardPosition)
}

func TestReorderColumns_RejectsNonPermutation(t *testing.T) {
	_, r, _ := newTestServer(t)
	_, boardID := seedTestFamily(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/boards/"+boardID+"/columns/order", adminToken(t), ReorderColumnsRequest{
		ColumnIDs: []string{"bogus-1", "bogus-2", "bogus-3"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReorderColumns_AppliesNewOrder(t *testing.T) {
	_, r, _ := newTestServer(t)
	_, boardID := seedTestFamily(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/boards/"+boardID, adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var board models.Board
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))

	reversed := []string{board.Columns[2].ID, board.Columns[0].ID, board.Columns[1].ID}
	w = doJSON(t, r, http.MethodPut, "/api/boards/"+boardID+"/columns/order", adminToken(t), ReorderColumnsRequest{ColumnIDs: reversed})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Board
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, reversed[0], updated.Columns[0].ID)
	require.Equal(t, 0, updated.Columns[0].Position)
}

func TestResetFamily_RemovesEverything(t *testing.T) {
	_, r, db := newTestServer(t)
	familyID, _ := seedTestFamily(t, r)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/admin/family-seeding/families/"+familyID, adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var families int64
	require.NoError(t, db.Model(&models.Family{}).Count(&families).Error)
	require.Zero(t, families)
	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.Zero(t, users)
}

func TestWebSocket_BroadcastsTaskMoved(t *testing.T) {
	_, r, db := newTestServer(t)
	familyID, _ := seedTestFamily(t, r)

	task := models.Task{ID: "t-ws", Title: "Trash", Status: models.StatusTodo, FamilyID: familyID}
	require.NoError(t, db.Create(&task).Error)

	httpSrv := httptest.NewServer(r)
	t.Cleanup(httpSrv.Close)

	token, err := auth.GenerateToken("u-ws", "alice", familyID, models.RoleParent)
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(httpSrv.URL, "http") + "/api/ws"
	conn := realtime.NewWSConnection(wsURL, token, nil)

	events := make(chan models.TaskMovedEvent, 1)
	conn.On(models.EventTaskMoved, func(payload json.RawMessage) {
		var evt models.TaskMovedEvent
		if json.Unmarshal(payload, &evt) == nil {
			select {
			case events <- evt:
			default:
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, conn.Start(ctx))
	t.Cleanup(func() { _ = conn.Stop() })

	pos := 0
	body, _ := json.Marshal(MoveTaskRequest{Status: models.StatusDone, BoardPosition: &pos})
	req, err := http.NewRequest(http.MethodPatch, fmt.Sprintf("%s/api/tasks/%s/move", httpSrv.URL, task.ID), bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case evt := <-events:
		require.Equal(t, task.ID, evt.TaskID)
		require.Equal(t, models.StatusDone, evt.NewStatus)
	case <-time.After(3 * time.Second):
		t.Fatal("no TaskMoved event received")
	}
}

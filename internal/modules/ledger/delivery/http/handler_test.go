package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x00/Application-Yaga/internal/entity"
	ledger "github.com/x00/Application-Yaga/internal/modules/ledger/service"
	"github.com/x00/Application-Yaga/pkg/apperror"
)

type fakeLedgerService struct {
	setOutcome  ledger.Outcome
	setReaction *entity.Reaction
	setErr      error

	lastUserID int64
	setCalls   int
}

func (f *fakeLedgerService) ListActions(ctx context.Context) ([]entity.Action, error) {
	return []entity.Action{{ActionID: 1, Name: "Like"}}, nil
}

func (f *fakeLedgerService) GetAction(ctx context.Context, actionID int64) (*entity.Action, error) {
	if actionID != 1 {
		return nil, apperror.ErrNotFound
	}
	return &entity.Action{ActionID: 1, Name: "Like"}, nil
}

func (f *fakeLedgerService) GetReactionSummary(ctx context.Context, parentID int64, parentType entity.ParentType) ([]ledger.SummaryEntry, error) {
	if !parentType.Valid() || parentID <= 0 {
		return nil, nil
	}
	return []ledger.SummaryEntry{{ActionID: 1, Name: "Like", Reactors: []ledger.Reactor{}}}, nil
}

func (f *fakeLedgerService) GetUserReaction(ctx context.Context, parentID int64, parentType entity.ParentType, userID int64) (*entity.Reaction, error) {
	return nil, nil
}

func (f *fakeLedgerService) GetUserReactionCount(ctx context.Context, userID, actionID int64) (int64, error) {
	return 3, nil
}

func (f *fakeLedgerService) SetReaction(ctx context.Context, parentID int64, parentType entity.ParentType, parentAuthorID, userID, actionID int64) (*entity.Reaction, ledger.Outcome, error) {
	f.setCalls++
	f.lastUserID = userID
	return f.setReaction, f.setOutcome, f.setErr
}

func newTestRouter(svc ledger.LedgerService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewLedgerHandler(svc)

	router := gin.New()
	if userID != "" {
		router.Use(func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Next()
		})
	}

	router.GET("/api/actions", h.ListActions)
	router.GET("/api/actions/:id", h.GetAction)
	router.POST("/api/reactions", h.SetReaction)
	router.GET("/api/reactions/:parentType/:parentID", h.GetReactionSummary)
	router.GET("/api/reactions/:parentType/:parentID/me", h.GetMyReaction)
	router.GET("/api/users/:userID/received", h.GetReceivedCount)
	return router
}

func TestSetReactionHandler(t *testing.T) {
	svc := &fakeLedgerService{
		setOutcome:  ledger.OutcomeCreated,
		setReaction: &entity.Reaction{ID: 1, ActionID: 1, ParentID: 10, ParentType: entity.ParentTypeComment, InsertUserID: 7},
	}
	router := newTestRouter(svc, "7")

	body, _ := json.Marshal(map[string]any{
		"parent_id":        10,
		"parent_type":      "comment",
		"parent_author_id": 5,
		"action_id":        1,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/reactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.setCalls)
	assert.Equal(t, int64(7), svc.lastUserID, "acting user comes from the auth context, not the body")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "created", resp["outcome"])
}

func TestSetReactionHandlerRejectsBadParentType(t *testing.T) {
	svc := &fakeLedgerService{}
	router := newTestRouter(svc, "7")

	body, _ := json.Marshal(map[string]any{
		"parent_id":        10,
		"parent_type":      "poll",
		"parent_author_id": 5,
		"action_id":        1,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/reactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.setCalls)
	assert.Contains(t, w.Body.String(), "parent_type")
}

func TestSetReactionHandlerRequiresUser(t *testing.T) {
	svc := &fakeLedgerService{}
	router := newTestRouter(svc, "")

	body, _ := json.Marshal(map[string]any{
		"parent_id":        10,
		"parent_type":      "comment",
		"parent_author_id": 5,
		"action_id":        1,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/reactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, svc.setCalls)
}

func TestGetReactionSummaryHandlerPermissive(t *testing.T) {
	router := newTestRouter(&fakeLedgerService{}, "")

	// unknown parent type degrades to an empty summary, not an error
	req := httptest.NewRequest(http.MethodGet, "/api/reactions/poll/10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Summary []ledger.SummaryEntry `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Summary)
	assert.Empty(t, resp.Summary)
}

func TestGetActionHandlerNotFound(t *testing.T) {
	router := newTestRouter(&fakeLedgerService{}, "")

	req := httptest.NewRequest(http.MethodGet, "/api/actions/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReceivedCountHandler(t *testing.T) {
	router := newTestRouter(&fakeLedgerService{}, "")

	req := httptest.NewRequest(http.MethodGet, "/api/users/5/received?action_id=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Count)

	// missing action_id filter is a caller mistake
	req = httptest.NewRequest(http.MethodGet, "/api/users/5/received", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

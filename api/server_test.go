package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"
	"workbindr/domain/services"
	"workbindr/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cannedAssistant struct {
	response string
}

func (c *cannedAssistant) Generate(_ context.Context, _ string, _ string) (string, error) {
	return c.response, nil
}

func newTestServer() (http.Handler, interfaces.Store) {
	store := memstore.New()
	handler := NewServer(store, Services{
		Users:        services.NewUserService(store),
		Transactions: services.NewTransactionService(store),
		Governance:   services.NewGovernanceService(store),
		Settings:     services.NewSettingsService(store),
		Assistant:    services.NewAssistantService(store, &cannedAssistant{response: "All projects on track."}),
		Board:        services.NewBoardService(store),
		Stats:        services.NewStatsService(store),
	})
	return handler, store
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestVoteEndpoint(t *testing.T) {
	handler, store := newTestServer()
	ctx := context.Background()

	voter := &entities.User{Email: "voter@example.com", DisplayName: "Voter", ReputationScore: 87.5}
	require.NoError(t, store.Users().Create(ctx, voter))

	proposal := &entities.GovernanceProposal{
		Title:    "Reduce call pricing",
		Proposer: voter.ID,
		Status:   entities.ProposalStatusActive,
		EndDate:  time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, store.Proposals().Create(ctx, proposal))

	t.Run("vote applies rounded weight", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/governance/proposals/"+proposal.ID+"/vote",
			map[string]string{"voterId": voter.ID, "direction": "for"})

		require.Equal(t, http.StatusOK, rec.Code)
		updated := decodeBody[entities.GovernanceProposal](t, rec)
		assert.Equal(t, int64(88), updated.VotesFor)
		assert.Equal(t, int64(88), updated.TotalVotes)
	})

	t.Run("repeat vote is a conflict", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/governance/proposals/"+proposal.ID+"/vote",
			map[string]string{"voterId": voter.ID, "direction": "against"})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/governance/proposals/missing/vote",
			map[string]string{"voterId": voter.ID, "direction": "for"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid direction", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/governance/proposals/"+proposal.ID+"/vote",
			map[string]string{"voterId": voter.ID, "direction": "abstain"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing voter id", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/governance/proposals/"+proposal.ID+"/vote",
			map[string]string{"direction": "for"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserEndpoints(t *testing.T) {
	handler, _ := newTestServer()

	t.Run("unknown user", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/api/users/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("create then fetch", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/users",
			map[string]any{"displayName": "Dev", "email": "dev@example.com", "reputationScore": 80})
		require.Equal(t, http.StatusCreated, rec.Code)
		created := decodeBody[entities.User](t, rec)
		require.NotEmpty(t, created.ID)

		rec = doJSON(t, handler, http.MethodGet, "/api/users/"+created.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		fetched := decodeBody[entities.User](t, rec)
		assert.Equal(t, "dev@example.com", fetched.Email)
	})

	t.Run("create without email fails validation", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/users", map[string]any{"displayName": "Dev"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[errorResponse](t, rec)
		assert.Contains(t, body.Fields, "email")
	})

	t.Run("auth callback is idempotent", func(t *testing.T) {
		payload := map[string]any{"id": "auth-1", "email": "auth@example.com", "displayName": "Auth User"}

		rec := doJSON(t, handler, http.MethodPost, "/api/auth/callback", payload)
		require.Equal(t, http.StatusOK, rec.Code)
		first := decodeBody[entities.User](t, rec)
		assert.Equal(t, entities.DefaultSignupReputation, first.ReputationScore)

		rec = doJSON(t, handler, http.MethodPost, "/api/auth/callback", payload)
		require.Equal(t, http.StatusOK, rec.Code)
		second := decodeBody[entities.User](t, rec)
		assert.Equal(t, first.ID, second.ID)
	})
}

func TestSettingsEndpoints(t *testing.T) {
	handler, store := newTestServer()
	ctx := context.Background()

	user := &entities.User{Email: "dev@example.com", DisplayName: "Dev"}
	require.NoError(t, store.Users().Create(ctx, user))

	t.Run("defaults before any write", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/api/users/"+user.ID+"/settings", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		settings := decodeBody[entities.DeveloperSettings](t, rec)
		assert.Equal(t, entities.DefaultPreferredLLM, settings.PreferredLLM)
	})

	t.Run("unknown model rejected", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPut, "/api/users/"+user.ID+"/settings",
			map[string]string{"preferredLlm": "gpt-4"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid model saved", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPut, "/api/users/"+user.ID+"/settings",
			map[string]string{"preferredLlm": entities.LLMGemini15Flash})
		require.Equal(t, http.StatusOK, rec.Code)
		settings := decodeBody[entities.DeveloperSettings](t, rec)
		assert.Equal(t, entities.LLMGemini15Flash, settings.PreferredLLM)
	})
}

func TestTransactionEndpoints(t *testing.T) {
	handler, store := newTestServer()
	ctx := context.Background()

	user := &entities.User{Email: "dev@example.com", DisplayName: "Dev"}
	require.NoError(t, store.Users().Create(ctx, user))
	app := &entities.MicroApp{Name: "Smart Invoicing", IsActive: true}
	require.NoError(t, store.MicroApps().Create(ctx, app))

	t.Run("create bumps the linked app counter", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/transactions", map[string]any{
			"userId":      user.ID,
			"microAppId":  app.ID,
			"description": "API call batch",
			"amount":      "0.42",
			"status":      entities.TransactionStatusConfirmed,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		stored, err := store.MicroApps().GetByID(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.TransactionCount)
	})

	t.Run("negative limit rejected", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/api/transactions?limit=-1", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("per-user feed", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/api/users/"+user.ID+"/transactions", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		feed := decodeBody[[]entities.Transaction](t, rec)
		assert.Len(t, feed, 1)
	})
}

func TestAssistantChatEndpoint(t *testing.T) {
	handler, store := newTestServer()
	ctx := context.Background()

	user := &entities.User{Email: "dev@example.com", DisplayName: "Dev"}
	require.NoError(t, store.Users().Create(ctx, user))

	rec := doJSON(t, handler, http.MethodPost, "/api/ai/chat",
		map[string]string{"userId": user.ID, "message": "how are my projects doing?"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		MessageID string `json:"messageId"`
		Response  string `json:"response"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "All projects on track.", body.Response)
	assert.NotEmpty(t, body.MessageID)

	rec = doJSON(t, handler, http.MethodGet, "/api/users/"+user.ID+"/ai-messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	history := decodeBody[[]entities.AiMessage](t, rec)
	require.Len(t, history, 1)
	assert.Equal(t, "how are my projects doing?", history[0].Message)
}

func TestBoardEndpoints(t *testing.T) {
	handler, _ := newTestServer()

	t.Run("task under missing project", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/tasks",
			map[string]string{"projectId": "missing", "title": "Write docs"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("project and task lifecycle", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/projects", map[string]any{"name": "Platform"})
		require.Equal(t, http.StatusCreated, rec.Code)
		project := decodeBody[entities.Project](t, rec)
		assert.Equal(t, entities.ProjectStatusPlanning, project.Status)

		rec = doJSON(t, handler, http.MethodPost, "/api/tasks",
			map[string]string{"projectId": project.ID, "title": "Write docs"})
		require.Equal(t, http.StatusCreated, rec.Code)
		task := decodeBody[entities.Task](t, rec)
		assert.Equal(t, entities.TaskStatusTodo, task.Status)

		rec = doJSON(t, handler, http.MethodPatch, "/api/tasks/"+task.ID,
			map[string]string{"status": entities.TaskStatusInProgress})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, handler, http.MethodGet, "/api/projects/"+project.ID+"/tasks", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		tasks := decodeBody[[]entities.Task](t, rec)
		require.Len(t, tasks, 1)
		assert.Equal(t, entities.TaskStatusInProgress, tasks[0].Status)
	})

	t.Run("unknown kanban column rejected", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPatch, "/api/tasks/any",
			map[string]string{"status": "Blocked"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPlatformStatsEndpoints(t *testing.T) {
	handler, _ := newTestServer()

	rec := doJSON(t, handler, http.MethodGet, "/api/platform-stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[entities.PlatformStats](t, rec)
	assert.Equal(t, 0, stats.DataNodes)

	rec = doJSON(t, handler, http.MethodPatch, "/api/platform-stats", map[string]any{"dataNodes": 1247})
	require.Equal(t, http.StatusOK, rec.Code)
	stats = decodeBody[entities.PlatformStats](t, rec)
	assert.Equal(t, 1247, stats.DataNodes)
	assert.Equal(t, 0, stats.Contributors)
}

func TestMicroAppEndpoints(t *testing.T) {
	handler, _ := newTestServer()

	t.Run("create defaults", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/micro-apps",
			map[string]any{"name": "Ledger", "version": "1.0.0"})
		require.Equal(t, http.StatusCreated, rec.Code)
		app := decodeBody[entities.MicroApp](t, rec)
		assert.True(t, app.IsActive)
		assert.Equal(t, "0", app.PricePerCall)
	})

	t.Run("name required", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodPost, "/api/micro-apps", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown app", func(t *testing.T) {
		rec := doJSON(t, handler, http.MethodGet, "/api/micro-apps/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

package inventory

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"stock-sync/core/database"
	"stock-sync/core/reconcile"
	"stock-sync/core/server"
	"stock-sync/core/syncerr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, svc *Service) *fiber.App {
	app := fiber.New()
	f := NewFeature(svc, zap.NewNop(), server.Config{SyncTimeoutSeconds: 60, HistoryLimit: 50})
	require.NoError(t, f.Load(app))
	return app
}

func TestHandleSync(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ozon := okAdapter("ozon", []string{"A"})
		svc := NewService(&stubFeed{rows: feedRows}, []Marketplace{
			{Name: "ozon", Adapters: []reconcile.Adapter{ozon}},
		}, zap.NewNop())
		app := setupTestApp(t, svc)

		resp, err := app.Test(httptest.NewRequest("POST", "/inventory/sync/ozon?dry_run=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var report Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.True(t, report.DryRun)
		assert.Equal(t, TriggerHTTP, report.TriggeredBy)
		require.Len(t, report.Passes, 1)
		assert.Equal(t, 1, report.Passes[0].Summary.StockRecords)
	})

	t.Run("UnknownTarget", func(t *testing.T) {
		svc := NewService(&stubFeed{}, []Marketplace{{Name: "ozon"}}, zap.NewNop())
		resp, err := setupTestApp(t, svc).Test(httptest.NewRequest("POST", "/inventory/sync/avito", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("MarketplaceFailure", func(t *testing.T) {
		svc := NewService(&stubFeed{rows: feedRows}, []Marketplace{
			{Name: "ozon", Adapters: []reconcile.Adapter{failingAdapter("ozon", syncerr.HTTPStatus("ozon list products", 403, nil))}},
		}, zap.NewNop())

		resp, err := setupTestApp(t, svc).Test(httptest.NewRequest("POST", "/inventory/sync/all", nil))
		require.NoError(t, err)
		assert.Equal(t, 502, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "http_status", body["kind"])
		assert.NotNil(t, body["report"])
	})
}

func TestHandleRuns(t *testing.T) {
	t.Run("JournalDisabled", func(t *testing.T) {
		svc := NewService(&stubFeed{}, []Marketplace{{Name: "ozon"}}, zap.NewNop())
		resp, err := setupTestApp(t, svc).Test(httptest.NewRequest("GET", "/inventory/runs", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})

	t.Run("ListsNewestFirst", func(t *testing.T) {
		journal := setupJournal(t)
		ctx := context.Background()
		require.NoError(t, journal.Record(ctx, &database.Run{ID: "1", Target: "ozon", Status: database.StatusOK}))

		svc := NewService(&stubFeed{}, []Marketplace{{Name: "ozon"}}, zap.NewNop(), WithJournal(journal))
		resp, err := setupTestApp(t, svc).Test(httptest.NewRequest("GET", "/inventory/runs?limit=500", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var runs []database.Run
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
		require.Len(t, runs, 1)
		assert.Equal(t, "ozon", runs[0].Target)
	})

	t.Run("EmptyJournal", func(t *testing.T) {
		svc := NewService(&stubFeed{}, []Marketplace{{Name: "ozon"}}, zap.NewNop(), WithJournal(setupJournal(t)))
		resp, err := setupTestApp(t, svc).Test(httptest.NewRequest("GET", "/inventory/runs", nil))
		require.NoError(t, err)

		var runs []database.Run
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
		assert.NotNil(t, runs)
		assert.Empty(t, runs)
	})
}

func TestFeature(t *testing.T) {
	f := NewFeature(NewService(&stubFeed{}, nil, zap.NewNop()), zap.NewNop(), server.Config{})
	assert.Equal(t, "inventory", f.Name())
	assert.False(t, f.IsEnabled())

	f = NewFeature(NewService(&stubFeed{}, []Marketplace{{Name: "ozon"}}, zap.NewNop()), zap.NewNop(), server.Config{})
	assert.True(t, f.IsEnabled())
}

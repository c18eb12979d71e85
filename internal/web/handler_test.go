package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/five82/fitjourney/internal/journal"
	"github.com/five82/fitjourney/internal/storage"
)

func fixedNow() time.Time {
	return time.Date(2025, 11, 1, 9, 30, 0, 0, time.Local)
}

func routerWith(t *testing.T, s journal.State) http.Handler {
	t.Helper()
	adapter := storage.NewAdapter(&storage.MemoryKV{})
	adapter.Save(s)
	return NewRouter(adapter, fixedNow)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestDashboard_RendersDemo(t *testing.T) {
	h := routerWith(t, journal.Demo("2025-11-01"))

	for _, path := range []string{"/", "/index.html"} {
		rec := get(t, h, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Contains(t, rec.Header().Get("Content-Type"), "text/html")

		body := rec.Body.String()
		require.Contains(t, body, "Today: Nov 1")
		require.Contains(t, body, "Starting 212 lb, current 200 lb")
		require.Contains(t, body, "Today: 75")
		require.Contains(t, body, "Best day: 55 on Oct 31")
		require.Contains(t, body, "Protein Shake: 180 kcal")
		require.Contains(t, body, "Total: 700 kcal")
		require.Contains(t, body, "30-min Climb")
		require.Contains(t, body, `points="4,4 `)
	}
}

func TestDashboard_Empty(t *testing.T) {
	h := routerWith(t, journal.Empty())

	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "No weights logged yet.")
	require.Contains(t, body, "Nothing logged today.")
	require.NotContains(t, body, "<polyline")
}

func TestDashboard_EscapesNames(t *testing.T) {
	s := journal.Empty()
	s.Meals = []journal.Meal{{ID: "m", Date: "2025-11-01", Name: "<script>x</script>"}}
	rec := get(t, routerWith(t, s), "/")
	require.NotContains(t, rec.Body.String(), "<script>x</script>")
	require.Contains(t, rec.Body.String(), "&lt;script&gt;")
}

func TestDashboard_ReadsLatestSave(t *testing.T) {
	adapter := storage.NewAdapter(&storage.MemoryKV{})
	h := NewRouter(adapter, fixedNow)

	require.Contains(t, get(t, h, "/").Body.String(), "No weights logged yet.")

	adapter.Save(journal.State{Weights: []journal.Weight{{ID: "w", Date: "2025-11-01", Weight: 190}}})
	require.Contains(t, get(t, h, "/").Body.String(), "current 190 lb")
}

func TestManifest(t *testing.T) {
	rec := get(t, routerWith(t, journal.Empty()), "/manifest.webmanifest")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/manifest+json", rec.Header().Get("Content-Type"))

	var got manifest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "/", got.StartURL)
	require.Equal(t, "standalone", got.Display)
}

func TestTrendSVG(t *testing.T) {
	s := journal.Empty()
	s.Weights = []journal.Weight{
		{ID: "a", Date: "2025-09-01", Weight: 212},
		{ID: "b", Date: "2025-10-01", Weight: 204},
		{ID: "c", Date: "2025-11-01", Weight: 200},
	}
	rec := get(t, routerWith(t, s), "/trend.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `points="4,4 140,`)
	require.Contains(t, rec.Body.String(), ` 276,56"`)
}

func TestSummaryAPI(t *testing.T) {
	rec := get(t, routerWith(t, journal.Demo("2025-11-01")), "/api/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var got summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "2025-11-01", got.Today)
	require.NotNil(t, got.StartingWeight)
	require.Equal(t, 212.0, *got.StartingWeight)
	require.Equal(t, 200.0, *got.CurrentWeight)
	require.NotNil(t, got.BestPushupDay)
	require.Equal(t, 55, got.BestPushupDay.Count)
	require.Equal(t, 75, got.TodaysPushupTotal)
	require.Len(t, got.TodaysMeals, 2)
	require.Equal(t, 700.0, got.TodaysMealTotals.Calories)
}

func TestSummaryAPI_Empty(t *testing.T) {
	rec := get(t, routerWith(t, journal.Empty()), "/api/summary")

	var got summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Nil(t, got.StartingWeight)
	require.Nil(t, got.BestPushupDay)
	require.Equal(t, 0, got.TodaysPushupTotal)
}

func TestRoutes_RejectWrongMethod(t *testing.T) {
	h := routerWith(t, journal.Empty())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/summary", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

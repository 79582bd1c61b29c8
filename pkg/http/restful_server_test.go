package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/altitude-guard/pkg/altitude"
	"liyu1981.xyz/altitude-guard/pkg/altitude/mocks"
	_ "liyu1981.xyz/altitude-guard/pkg/testing"

	"liyu1981.xyz/altitude-guard/pkg/common"
	"liyu1981.xyz/altitude-guard/pkg/db"
	"liyu1981.xyz/altitude-guard/pkg/location"
	"liyu1981.xyz/altitude-guard/pkg/models"
	"liyu1981.xyz/altitude-guard/pkg/store"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testServer struct {
	*RestfulServer
	clock *testClock
}

func setupTestServerWithLimiter(t *testing.T, limiter *altitude.RateLimiterStore) *testServer {
	common.SetTestLoggerNop()

	database, err := db.Open(db.UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)

	clock := &testClock{now: time.Date(2026, 5, 1, 6, 0, 0, 0, time.UTC)}
	latest := location.NewLatest(time.Hour)
	latest.Now = clock.Now

	engine := altitude.NewEngine(context.Background(), store.NewRepositories(store.NewGormKV(database)), altitude.EngineOpts{
		Location:   latest,
		Now:        clock.Now,
		FixTimeout: 50 * time.Millisecond,
	})
	t.Cleanup(engine.Close)

	rs := &RestfulServer{
		Server:           gin.Default(),
		Engine:           engine,
		Location:         latest,
		RateLimiterStore: limiter,
	}
	rs.Setup()

	return &testServer{RestfulServer: rs, clock: clock}
}

func setupTestServer(t *testing.T) *testServer {
	// default we use no limiter
	return setupTestServerWithLimiter(t, nil)
}

func (ts *testServer) do(method string, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.Server.ServeHTTP(w, req)
	return w
}

func (ts *testServer) pushFix(t *testing.T, altitude float64) {
	w := ts.do(http.MethodPost, "/location", map[string]any{
		"altitude":  altitude,
		"latitude":  27.98,
		"longitude": 86.92,
	})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","tracking":false}`, w.Body.String())
}

func TestTrackingFlow(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(http.MethodGet, "/altitude/current", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	ts.pushFix(t, 2000)
	w = ts.do(http.MethodPost, "/tracking/start", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = ts.do(http.MethodGet, "/altitude/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"altitude":2000}`, w.Body.String())

	ts.clock.Advance(time.Hour)
	ts.pushFix(t, 2600)
	ts.Engine.Tracker().Tick(context.Background())

	w = ts.do(http.MethodGet, "/altitude/current", nil)
	assert.JSONEq(t, `{"altitude":2600,"previous":2000}`, w.Body.String())

	history := decode[[]models.AltitudeSample](t, ts.do(http.MethodGet, "/altitude/history?hours=24", nil))
	assert.Len(t, history, 2)

	summary := decode[models.TrackSummary](t, ts.do(http.MethodGet, "/altitude/summary", nil))
	assert.Equal(t, 600.0, summary.ElevationGainM)

	events := decode[[]models.AltitudeEvent](t, ts.do(http.MethodGet, "/events", nil))
	require.Len(t, events, 1)
	assert.Equal(t, models.EventTypeRapidAscent, events[0].Type)

	rec := decode[models.Recommendation](t, ts.do(http.MethodGet, "/recommendation", nil))
	assert.Equal(t, models.SeverityWarning, rec.Severity)
	assert.Contains(t, rec.Actions, "Slow your ascent")

	w = ts.do(http.MethodPost, "/events/"+events[0].ID+"/resolve", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.AltitudeEvent](t, ts.do(http.MethodGet, "/events", nil)))
	assert.Len(t, decode[[]models.AltitudeEvent](t, ts.do(http.MethodGet, "/events?include_resolved=true", nil)), 1)

	w = ts.do(http.MethodPost, "/tracking/stop", nil)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.False(t, ts.Engine.Settings().TrackingEnabled)
}

func TestTrackingStart_PermissionDenied(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(http.MethodPost, "/location/permission", map[string]any{"granted": false})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodPost, "/tracking/start", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":false}`, w.Body.String())

	w = ts.do(http.MethodPost, "/location/permission", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostLocation_EdgeCases(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(http.MethodPost, "/location", map[string]any{"altitude": 100, "latitude": 95, "longitude": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodPost, "/location", map[string]any{"altitude": "high", "latitude": 10, "longitude": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ts.Location = nil
	w = ts.do(http.MethodPost, "/location", map[string]any{"altitude": 100, "latitude": 1, "longitude": 1})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestResolveEvent_EdgeCases(t *testing.T) {
	{
		ts := setupTestServer(t)
		w := ts.do(http.MethodPost, "/events/unknown/resolve", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	{
		ts := setupTestServer(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockIEvents := mocks.NewMockIEvents(ctrl)
		ts.Engine.WithServices(altitude.ServiceOpts{Events: mockIEvents})
		mockIEvents.EXPECT().
			Resolve(gomock.Any(), gomock.Eq("e1")).
			Return(false, fmt.Errorf("just causing error")).
			Times(1)

		w := ts.do(http.MethodPost, "/events/e1/resolve", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}
}

func TestSymptoms(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(http.MethodPost, "/symptoms", map[string]any{
		"symptoms": map[string]int{"headache": 3, "nausea": 2},
		"notes":    "bad night",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	entry := decode[models.SymptomLog](t, w)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, 0.0, entry.Altitude)

	logs := decode[[]models.SymptomLog](t, ts.do(http.MethodGet, "/symptoms", nil))
	require.Len(t, logs, 1)
	assert.Equal(t, "bad night", logs[0].Notes)

	w = ts.do(http.MethodPost, "/symptoms", map[string]any{"symptoms": map[string]int{"headache": 7}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodPost, "/symptoms", map[string]any{"notes": "nothing"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodGet, "/symptoms?hours=-2", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettings(t *testing.T) {
	ts := setupTestServer(t)

	got := decode[models.AltitudeSettings](t, ts.do(http.MethodGet, "/settings", nil))
	assert.Equal(t, models.DefaultSettings(), got)

	w := ts.do(http.MethodPatch, "/settings", map[string]any{"dangerousAltitudeThresholdM": 3300})
	require.Equal(t, http.StatusOK, w.Code)
	got = decode[models.AltitudeSettings](t, w)
	assert.Equal(t, 3300.0, got.DangerousAltitudeThresholdM)
	assert.Equal(t, 500.0, got.DangerousAscentRateMPerHour)

	w = ts.do(http.MethodPatch, "/settings", map[string]any{"trackingIntervalMinutes": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 5, ts.Engine.Settings().TrackingIntervalMinutes)

	ts.pushFix(t, 1200)
	w = ts.do(http.MethodPatch, "/settings", map[string]any{"trackingEnabled": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ts.Engine.Tracker().Running())
}

func TestProfile(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(http.MethodPatch, "/profile", map[string]any{"age": 41, "fitnessLevel": "high"})
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.AltitudeProfile](t, w)
	require.NotNil(t, got.Age)
	assert.Equal(t, 41, *got.Age)
	assert.Equal(t, models.DefaultProfileID, got.ID)

	w = ts.do(http.MethodPatch, "/profile", map[string]any{"weightKg": -3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	got = decode[models.AltitudeProfile](t, ts.do(http.MethodGet, "/profile", nil))
	assert.Equal(t, models.FitnessHigh, *got.FitnessLevel)
	assert.Nil(t, got.WeightKg)
}

func TestAMSInfo(t *testing.T) {
	ts := setupTestServer(t)

	info := decode[models.AMSInfo](t, ts.do(http.MethodGet, "/ams-info?altitude=3600", nil))
	assert.Equal(t, "high", info.RiskLevel)
	assert.Equal(t, 300.0, info.MaxAscentRateMPerDay)

	w := ts.do(http.MethodGet, "/ams-info", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLimiter(t *testing.T) {
	ts := setupTestServerWithLimiter(t, altitude.NewRateLimiterStore(0, 0))

	for _, path := range []string{"/altitude/current", "/events", "/recommendation", "/settings"} {
		w := ts.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code, path)
	}

	// health is never throttled
	w := ts.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodPost, "/limiter", LimiterRequest{Rate: 10, Burst: 10})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodGet, "/settings", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLimiter_Burst(t *testing.T) {
	ts := setupTestServerWithLimiter(t, altitude.NewRateLimiterStore(2, 2))

	for i := range 3 {
		w := ts.do(http.MethodGet, "/recommendation", nil)
		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	ts := setupTestServerWithLimiter(t, altitude.NewRateLimiterStore(2, 2))

	// empty payload should be rejected
	w := ts.do(http.MethodPost, "/limiter", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// naming another client leaves the caller alone
	w = ts.do(http.MethodPost, "/limiter", LimiterRequest{Client: " 10.1.1.1 ", Rate: 0.5, Burst: 1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, ts.GetLimiter("10.1.1.1").Burst())
	assert.Equal(t, 2, ts.GetLimiter("192.0.2.1").Burst())
	w = ts.do(http.MethodGet, "/settings", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// without client the caller's own budget is replaced
	w = ts.do(http.MethodPost, "/limiter", LimiterRequest{Rate: 5, Burst: 7})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, ts.GetLimiter("192.0.2.1").Burst())

	// without a limiter store the request is accepted with no effect
	ts = setupTestServer(t)
	w = ts.do(http.MethodPost, "/limiter", LimiterRequest{Rate: 2, Burst: 2})
	assert.Equal(t, http.StatusOK, w.Code)
}

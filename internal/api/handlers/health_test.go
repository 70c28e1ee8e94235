package handlers_test

import (
	"net/http"
	"testing"

	"gtm-crm-backend/internal/api/handlers"
	"gtm-crm-backend/internal/testutils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealthRouter(t *testing.T, redisClient *redis.Client) *testutils.HTTPTestSuite {
	t.Helper()
	httpSuite := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(nil, redisClient)
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)
	return httpSuite
}

func TestHealthHandler_Live(t *testing.T) {
	httpSuite := setupHealthRouter(t, nil)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, true, response["alive"])
}

func TestHealthHandler_WithoutDatabase(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	httpSuite := setupHealthRouter(t, client)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var response handlers.HealthResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
	assert.Equal(t, "unhealthy", response.Status)
	assert.Contains(t, response.Services["database"], "not configured")
	assert.Equal(t, "healthy", response.Services["redis"])
}

func TestHealthHandler_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	httpSuite := setupHealthRouter(t, client)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	var response map[string]interface{}
	testutils.ParseJSONResponse(t, recorder, &response)
	services := response["services"].(map[string]interface{})
	assert.Contains(t, services["redis"], "not ready")
}

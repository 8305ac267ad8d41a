package availability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"venuegate/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	SetupAvailabilityRoutes(engine.Group(""), NewController(newTestService(t, config.RollerConfig{})))
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestAvailabilityEndpoint_FlatWindowForm(t *testing.T) {
	engine := newTestEngine(t)

	w := postJSON(t, engine, "/availability", `{"product_id":"42","date":"2025-07-04","guests":8,"start":"14:30","end":"17:00"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		OK   bool   `json:"ok"`
		Data Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.OK)
	require.Len(t, envelope.Data.Slots, 2)
	assert.Equal(t, "sess_2", envelope.Data.Slots[0].SessionID)
}

func TestAvailabilityEndpoint_RejectsBadInput(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing product", `{"date":"2025-07-04","guests":8}`},
		{"zero guests", `{"product_id":"42","date":"2025-07-04","guests":0}`},
		{"bad date format", `{"product_id":"42","date":"04/07/2025","guests":8}`},
		{"bad window clock", `{"product_id":"42","date":"2025-07-04","guests":8,"start":"2pm","end":"17:00"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, engine, "/availability", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestBatchEndpoint_ResultsInSubmissionOrder(t *testing.T) {
	engine := newTestEngine(t)

	w := postJSON(t, engine, "/availability/batch", `{
		"product_id":"42",
		"requests":[
			{"date":"2025-07-01","guests":8},
			{"date":"2025-07-02","guests":8},
			{"date":"2025-07-03","guests":8}
		]
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		OK   bool `json:"ok"`
		Data struct {
			Results []BatchResult `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	require.Len(t, envelope.Data.Results, 3)
	assert.Equal(t, "2025-07-01", envelope.Data.Results[0].Date)
	assert.Equal(t, "2025-07-02", envelope.Data.Results[1].Date)
	assert.Equal(t, "2025-07-03", envelope.Data.Results[2].Date)
	for _, r := range envelope.Data.Results {
		assert.NotEmpty(t, r.Slots)
	}
}

func TestBatchEndpoint_RequiresAtLeastOneRequest(t *testing.T) {
	engine := newTestEngine(t)

	w := postJSON(t, engine, "/availability/batch", `{"product_id":"42","requests":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fixedCounter int

func (f fixedCounter) Count() int { return int(f) }

func TestHealthChecker(t *testing.T) {
	hc := NewHealthChecker(map[string]Counter{"inbox_store": fixedCounter(3)}, zap.NewNop())

	t.Run("存活检查", func(t *testing.T) {
		w := httptest.NewRecorder()
		hc.LiveEndpoint(w, httptest.NewRequest(http.MethodGet, "/live", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("启动完成前未就绪", func(t *testing.T) {
		w := httptest.NewRecorder()
		hc.ReadyEndpoint(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "STARTING", hc.CheckHealth()["startup"])
	})

	t.Run("启动完成后就绪", func(t *testing.T) {
		hc.MarkReady()

		w := httptest.NewRecorder()
		hc.ReadyEndpoint(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		results := hc.CheckHealth()
		assert.Equal(t, "OK", results["startup"])
		assert.Equal(t, "OK (3)", results["inbox_store"])
	})
}

func TestStoreCheck(t *testing.T) {
	assert.NoError(t, StoreCheck(fixedCounter(0))())
	assert.Error(t, StoreCheck(fixedCounter(-1))())
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"soko.backend/pkg/redis"
)

func inflightRouter(entered *sync.Once, enteredCh chan struct{}, release chan struct{}) *gin.Engine {
	r := gin.New()
	r.POST("/verify/:reference", InflightGuard("reference"), func(c *gin.Context) {
		if c.Param("reference") == "slow" {
			entered.Do(func() { close(enteredCh) })
			<-release
		}
		c.JSON(http.StatusOK, gin.H{"reference": c.Param("reference")})
	})
	return r
}

func TestInflightGuard_RejectsConcurrentDuplicate(t *testing.T) {
	setupMiniredis(t)

	var entered sync.Once
	enteredCh := make(chan struct{})
	release := make(chan struct{})
	r := inflightRouter(&entered, enteredCh, release)

	firstDone := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/verify/slow", nil))
		firstDone <- w
	}()
	<-enteredCh

	// Same reference while the first is still in flight
	dup := httptest.NewRecorder()
	r.ServeHTTP(dup, httptest.NewRequest(http.MethodPost, "/verify/slow", nil))
	require.Equal(t, http.StatusConflict, dup.Code)
	require.Contains(t, dup.Body.String(), "REQUEST_IN_PROGRESS")

	// A different reference is not blocked
	other := httptest.NewRecorder()
	r.ServeHTTP(other, httptest.NewRequest(http.MethodPost, "/verify/other", nil))
	require.Equal(t, http.StatusOK, other.Code)

	close(release)
	require.Equal(t, http.StatusOK, (<-firstDone).Code)

	// Lock is released once the first request finishes
	retry := httptest.NewRecorder()
	r.ServeHTTP(retry, httptest.NewRequest(http.MethodPost, "/verify/slow", nil))
	require.Equal(t, http.StatusOK, retry.Code)
}

func TestInflightGuard_StaleLockExpires(t *testing.T) {
	mr := setupMiniredis(t)

	r := gin.New()
	r.POST("/verify/:reference", InflightGuard("reference"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// A lock left behind by a crashed request
	key := inflightPrefix + "/verify/:reference" + ":ref1"
	require.NoError(t, redis.Set(context.Background(), key, "1", inflightTTL))

	blocked := httptest.NewRecorder()
	r.ServeHTTP(blocked, httptest.NewRequest(http.MethodPost, "/verify/ref1", nil))
	require.Equal(t, http.StatusConflict, blocked.Code)

	mr.FastForward(inflightTTL + time.Second)

	retry := httptest.NewRecorder()
	r.ServeHTTP(retry, httptest.NewRequest(http.MethodPost, "/verify/ref1", nil))
	require.Equal(t, http.StatusOK, retry.Code)
}

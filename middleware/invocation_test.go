package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/backfireIBGM/RocketInfo/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInvocation_SetsHeaderAndContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	var seen string
	router := gin.New()
	router.Use(middleware.Invocation(), middleware.RequestLogger(zap.New(core)))
	router.GET("/ping", func(c *gin.Context) {
		seen = middleware.InvocationID(c)
		c.Status(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(middleware.InvocationHeader))

	entries := logs.FilterMessage("request").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, int64(http.StatusTeapot), fields["status"])
		assert.Equal(t, "/ping", fields["path"])
		assert.Equal(t, seen, fields["invocation_id"])
	}
}

func TestInvocationID_OutsideMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, middleware.InvocationID(c))
}

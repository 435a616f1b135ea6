package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowControlRejectsOverThreshold(t *testing.T) {
	const resource = "test-toggle"
	require.NoError(t, LoadFlowRule(resource, 2))

	router := route.NewEngine(config.NewOptions([]config.Option{}))
	router.POST("/toggle", FlowControl(resource), func(ctx context.Context, c *app.RequestContext) {
		c.String(http.StatusOK, "ok")
	})

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		w := ut.PerformRequest(router, http.MethodPost, "/toggle", nil)
		codes = append(codes, w.Result().StatusCode())
	}
	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}

package middleware

import (
	"context"

	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/metrics"

	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// ToggleResource guards every like and subscription toggle route.
const ToggleResource = "engagement-toggle"

// InitSentinel starts sentinel and installs a reject rule of qps per second
// on ToggleResource. A non-positive qps disables the rule.
func InitSentinel(qps float64) error {
	if err := sentinel.InitDefault(); err != nil {
		return err
	}
	return LoadFlowRule(ToggleResource, qps)
}

func LoadFlowRule(resource string, qps float64) error {
	if qps <= 0 {
		_, err := flow.LoadRules(nil)
		return err
	}
	_, err := flow.LoadRules([]*flow.Rule{
		{
			Resource:               resource,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              qps,
			StatIntervalInMs:       1000,
		},
	})
	if err == nil {
		hlog.Infof("flow rule loaded: %s at %.0f qps", resource, qps)
	}
	return err
}

// FlowControl rejects requests with 429 once resource exceeds its rule.
func FlowControl(resource string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		entry, blocked := sentinel.Entry(resource, sentinel.WithTrafficType(base.Inbound))
		if blocked != nil {
			metrics.FlowBlockedTotal.WithLabelValues(resource).Inc()
			err := errno.TooManyRequestsErr
			c.AbortWithStatusJSON(err.HTTPStatus(), utils.H{
				"code":    err.ErrCode,
				"message": err.ErrMsg,
				"data":    nil,
			})
			return
		}
		defer entry.Exit()
		c.Next(ctx)
	}
}

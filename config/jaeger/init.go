package jaeger

import (
	"io"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// InitJaeger installs a Jaeger tracer as the global opentracing tracer.
// Without an agent address the no-op tracer stays in place.
func InitJaeger(service, agentAddr string, samplerParam float64) (opentracing.Tracer, io.Closer) {
	if agentAddr == "" {
		hlog.Info("jaeger agent not configured, tracing disabled")
		return opentracing.NoopTracer{}, io.NopCloser(nil)
	}
	cfg := &jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeProbabilistic,
			Param: samplerParam,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: agentAddr,
		},
	}
	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaeger.StdLogger))
	if err != nil {
		hlog.Errorf("cannot init jaeger: %v", err)
		return opentracing.NoopTracer{}, io.NopCloser(nil)
	}
	opentracing.SetGlobalTracer(tracer)
	return tracer, closer
}

package middleware

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// Tracing opens a server span per request, continuing any incoming trace,
// and stores it in the context so store spans nest under it.
func Tracing() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		tracer := opentracing.GlobalTracer()
		carrier := opentracing.HTTPHeadersCarrier(http.Header{})
		c.Request.Header.VisitAll(func(k, v []byte) {
			http.Header(carrier).Add(string(k), string(v))
		})
		parent, _ := tracer.Extract(opentracing.HTTPHeaders, carrier)

		span := tracer.StartSpan(string(c.Method())+" "+c.FullPath(), ext.RPCServerOption(parent))
		defer span.Finish()
		ext.HTTPMethod.Set(span, string(c.Method()))
		ext.HTTPUrl.Set(span, string(c.Request.URI().Path()))

		c.Next(opentracing.ContextWithSpan(ctx, span))

		status := c.Response.StatusCode()
		ext.HTTPStatusCode.Set(span, uint16(status))
		if status >= http.StatusInternalServerError {
			ext.Error.Set(span, true)
		}
	}
}

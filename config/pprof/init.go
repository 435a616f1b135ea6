package pprof

import (
	"net/http"
	_ "net/http/pprof"
	"runtime"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Load serves pprof and Prometheus metrics on a side listener.
func Load(addr string) {
	if addr == "" {
		return
	}
	runtime.SetMutexProfileFraction(5)
	runtime.SetBlockProfileRate(5)
	http.Handle("/metrics", promhttp.Handler())

	go func() {
		hlog.Infof("debug listener on %s (/debug/pprof, /metrics)", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			hlog.Errorf("debug listener stopped: %v", err)
		}
	}()
}

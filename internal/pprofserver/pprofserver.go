package pprofserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
)

func newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	return mux
}

// Launch a standard pprof server at ipv6 loopback address ::1 and the given
// port so that it is not open to the world.
func Launch(port string, logger *slog.Logger) {
	go func() {
		addr := fmt.Sprintf("[::1]%s", port)
		// The key must differ from the web server's addr attr, tests watch
		// that one to discover the port.
		logger.Info("starting pprof server", "pprof_addr", addr)
		server := &http.Server{ //nolint:gosec // localhost only, no timeouts needed.
			Addr:    addr,
			Handler: newServeMux(),
		}
		if err := server.ListenAndServe(); err != nil {
			logger.Error("pprof server failed", "error", err)
		}
	}()
}

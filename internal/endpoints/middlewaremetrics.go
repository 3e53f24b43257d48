package endpoints

import (
	"fmt"
	"net/http"
)

func adminMetricHTML() string {
	return `<html>

	<body>
		<h1>Welcome, Profanity Check Admin</h1>
		<p>Profanity Check has served %d requests!</p>
	</body>

	</html>`
}

func (cfg *ApiConfig) AdminMetricsHandler(resp http.ResponseWriter, req *http.Request) {
	resp.Header().Set("Content-Type", "text/html; charset=utf-8")
	resp.WriteHeader(http.StatusOK)
	resp.Write([]byte(fmt.Sprintf(adminMetricHTML(), cfg.Hits.Load())))
}

func (cfg *ApiConfig) MiddlewareMetricsInc(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg.Hits.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (cfg *ApiConfig) GetMetricsHandler(resp http.ResponseWriter, req *http.Request) {
	resp.WriteHeader(http.StatusOK)
	resp.Write([]byte(fmt.Sprintf("Hits: %d", cfg.Hits.Load())))
}

func (cfg *ApiConfig) MiddlewareMetricsReset(resp http.ResponseWriter, req *http.Request) {
	cfg.Hits.Store(0)
	resp.WriteHeader(http.StatusOK)
}

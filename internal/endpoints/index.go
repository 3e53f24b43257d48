package endpoints

import (
	"net/http"
)

func (cfg *ApiConfig) IndexHandler(resp http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		resp.WriteHeader(http.StatusNotFound)
		resp.Write([]byte("NOT OK"))
		return
	}

	resp.WriteHeader(http.StatusOK)
	resp.Write([]byte("OK"))
}

func (cfg *ApiConfig) HealthzHandler(resp http.ResponseWriter, req *http.Request) {
	resp.Header().Set("Content-Type", "text/plain; charset=utf-8")
	resp.WriteHeader(http.StatusOK)
	resp.Write([]byte("OK"))
}

package handler

import (
	"net/http"
	"sync"

	"rental/config"
	"rental/di"
	"rental/shared/logger"
	transport "rental/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.Configure(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}

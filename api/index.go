package handler

import (
	"net/http"
	"petcare/config"
	"petcare/di"
	"petcare/shared/logger"
	"sync"
)

var (
	app  http.Handler
	once sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built on the first
// invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.Configure(cfg)

		app = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	app.ServeHTTP(w, r)
}

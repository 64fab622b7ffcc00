package handler

import (
	"net/http"
	"sync"

	"quickcourt/config"
	"quickcourt/di"
	"quickcourt/shared/logger"
	"quickcourt/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	runtime *di.Runtime
	initErr error
)

// Handler serves the API as a serverless function. Background triggers do not
// run here; refreshes happen through POST /v1/feed/refresh.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		runtime, _, initErr = di.InitializeRuntime()
		if initErr != nil {
			log.Error().Err(initErr).Msg("Failed to initialize service")
		}
	})

	if initErr != nil {
		response.WithError(w, initErr)

		return
	}

	runtime.HTTP.ServeHTTP(w, r)
}

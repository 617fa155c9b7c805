package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katiamach/weather-facade-api/internal/config"
	"github.com/katiamach/weather-facade-api/internal/logger"
	"github.com/katiamach/weather-facade-api/internal/openweather"
	"github.com/katiamach/weather-facade-api/internal/service"
	"github.com/katiamach/weather-facade-api/internal/transport/rest/handler"
)

const shutdownTimeout = 10 * time.Second

// RunAPI runs weather service API until ctx is cancelled.
func RunAPI(ctx context.Context, cfg *config.Config) error {
	client := openweather.New(cfg.BaseURL, cfg.APIKey, cfg.HTTPTimeout)
	service := service.New(client, cfg.Location, cfg.APIKey != "")
	server := handler.NewWeatherServer(service)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewHandler(server, cfg.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// upstream calls may take up to HTTPTimeout
		WriteTimeout: cfg.HTTPTimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Starting weather service api at port %s", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down weather service api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// NewHandler creates the HTTP handler serving all weather routes.
func NewHandler(server *handler.WeatherServer, origins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(requestMiddleware)

	r.HandleFunc("/", server.RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", server.HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	w := r.PathPrefix("/weather").Subrouter()
	w.HandleFunc("/search", server.SearchCitiesHandler).Methods(http.MethodGet)
	w.HandleFunc("/current/{city}", server.GetCurrentWeatherHandler).Methods(http.MethodGet)
	w.HandleFunc("/forecast/{city}", server.GetForecastHandler).Methods(http.MethodGet)
	w.HandleFunc("/daily/{city}", server.GetDailyForecastHandler).Methods(http.MethodGet)
	w.HandleFunc("/hourly-chart/{city}", server.GetHourlyChartHandler).Methods(http.MethodGet)
	w.HandleFunc("/air-quality/{city}", server.GetAirQualityHandler).Methods(http.MethodGet)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(logger.Logger()),
		handlers.PrintRecoveryStack(true),
	)

	options := setupCorsOptions(origins)
	return recovery(handlers.CORS(options...)(r))
}

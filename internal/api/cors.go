package api

import (
	"net/http"

	"github.com/gorilla/handlers"
)

func setupCorsOptions(origins []string) []handlers.CORSOption {
	credentials := handlers.AllowCredentials()
	methods := handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions})
	allowedOrigins := handlers.AllowedOrigins(origins)
	headers := handlers.AllowedHeaders([]string{"Content-Type", requestIDHeader})
	exposed := handlers.ExposedHeaders([]string{requestIDHeader})

	options := []handlers.CORSOption{credentials, methods, allowedOrigins, headers, exposed}
	return options
}

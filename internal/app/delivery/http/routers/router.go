package routers

import (
	"fmt"
	"scheduling-service/internal/app/config"
	"scheduling-service/internal/app/delivery/http/controllers"
	"scheduling-service/internal/app/delivery/http/middlewares"
	"scheduling-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	accessLog *logrus.Logger,
	slotController *controllers.SlotController,
	availabilityController *controllers.AvailabilityController,
	healthController *controllers.HealthController,
) {
	allowedOrigins := internalConfig.App.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderRequestID},
		ExposedHeaders:   []string{constvars.HeaderRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	if accessLog != nil {
		router.Use(middlewares.RequestLogger(accessLog))
	}
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", healthController.Check)

			r.Route("/slots", func(r chi.Router) {
				attachSlotRoutes(r, slotController)
			})

			r.Route(fmt.Sprintf("/tutors/{%s}", constvars.URLParamTutorID), func(r chi.Router) {
				attachTutorSlotRoutes(r, slotController)
				r.Route("/availability", func(r chi.Router) {
					attachAvailabilityRoutes(r, availabilityController)
				})
			})
		})
	})
}

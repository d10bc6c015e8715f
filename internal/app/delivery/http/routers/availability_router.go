package routers

import (
	"fmt"
	"scheduling-service/internal/app/delivery/http/controllers"
	"scheduling-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, availabilityController *controllers.AvailabilityController) {
	router.Post("/", availabilityController.CreateBlocks)
	router.Get("/", availabilityController.ListBlocks)
	router.Delete(fmt.Sprintf("/{%s}", constvars.URLParamBlockID), availabilityController.DeleteBlock)
}

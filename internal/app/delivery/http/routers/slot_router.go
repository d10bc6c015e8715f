package routers

import (
	"scheduling-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, slotController *controllers.SlotController) {
	router.Post("/extract", slotController.ExtractSlots)
}

func attachTutorSlotRoutes(router chi.Router, slotController *controllers.SlotController) {
	router.Get("/slots", slotController.GetTutorSlots)
	router.Get("/slots/snapshot", slotController.GetSnapshotURL)
}

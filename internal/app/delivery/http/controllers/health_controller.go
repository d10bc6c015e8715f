package controllers

import (
	"net/http"
	"scheduling-service/internal/app/config"
	"scheduling-service/internal/pkg/constvars"
	"scheduling-service/internal/pkg/utils"
	"time"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
	startedAt      time.Time
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig, startedAt: time.Now()}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, map[string]string{
		"version": ctrl.InternalConfig.App.Version,
		"uptime":  time.Since(ctrl.startedAt).Round(time.Second).String(),
	})
}

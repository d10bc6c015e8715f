package controllers

import (
	"context"
	"net/http"
	"scheduling-service/internal/app/config"
	"scheduling-service/internal/app/contracts"
	"scheduling-service/internal/app/models"
	"scheduling-service/internal/pkg/constvars"
	"scheduling-service/internal/pkg/dto/requests"
	"scheduling-service/internal/pkg/dto/responses"
	"scheduling-service/internal/pkg/exceptions"
	"scheduling-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
	InternalConfig      *config.InternalConfig
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase, internalConfig *config.InternalConfig) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *AvailabilityController) CreateBlocks(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	tutorID := chi.URLParam(r, constvars.URLParamTutorID)
	ctrl.Log.Info("AvailabilityController.CreateBlocks called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTutorIDKey, tutorID),
	)

	if err := utils.ValidateVar(tutorID, "required,tutor_id"); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamTutorID))
		return
	}

	request := new(requests.CreateAvailability)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AvailabilityController.CreateBlocks error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	blocks, err := ctrl.AvailabilityUsecase.CreateBlocks(ctx, &contracts.CreateAvailabilityInput{
		TutorID:   tutorID,
		Intervals: toIntervalInputs(request.Intervals),
		Source:    request.Source,
	})
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAvailabilitySuccessMessage, ctrl.toResponses(blocks))
}

func (ctrl *AvailabilityController) ListBlocks(w http.ResponseWriter, r *http.Request) {
	tutorID := chi.URLParam(r, constvars.URLParamTutorID)
	if err := utils.ValidateVar(tutorID, "required,tutor_id"); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamTutorID))
		return
	}

	from, to, err := parseTimeRange(r, ctrl.InternalConfig.Location(), ctrl.InternalConfig.Slot.WindowDays)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	blocks, err := ctrl.AvailabilityUsecase.ListBlocks(ctx, &contracts.ListAvailabilityInput{
		TutorID: tutorID,
		From:    from,
		To:      to,
	})
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, ctrl.toResponses(blocks))
}

func (ctrl *AvailabilityController) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	tutorID := chi.URLParam(r, constvars.URLParamTutorID)
	blockID := chi.URLParam(r, constvars.URLParamBlockID)

	if err := utils.ValidateVar(tutorID, "required,tutor_id"); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamTutorID))
		return
	}
	if err := utils.ValidateVar(blockID, "required,uuid"); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamBlockID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.AvailabilityUsecase.DeleteBlock(ctx, tutorID, blockID); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAvailabilitySuccessMessage, nil)
}

func (ctrl *AvailabilityController) toResponses(blocks []models.AvailabilityBlock) []responses.AvailabilityBlock {
	loc := ctrl.InternalConfig.Location()
	out := make([]responses.AvailabilityBlock, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, responses.AvailabilityBlock{
			ID:        block.ID,
			TutorID:   block.TutorID,
			Start:     block.Start.In(loc).Format(time.RFC3339),
			End:       block.End.In(loc).Format(time.RFC3339),
			Source:    block.Source,
			CreatedAt: block.CreatedAt.In(loc).Format(time.RFC3339),
		})
	}
	return out
}

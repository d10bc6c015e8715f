package controllers

import (
	"context"
	"errors"
	"net/http"
	"scheduling-service/internal/app/config"
	"scheduling-service/internal/app/contracts"
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

const requestTimeout = 10 * time.Second

type SlotController struct {
	Log            *zap.Logger
	SlotUsecase    contracts.SlotUsecaseIface
	InternalConfig *config.InternalConfig
}

func NewSlotController(logger *zap.Logger, slotUsecase contracts.SlotUsecaseIface, internalConfig *config.InternalConfig) *SlotController {
	return &SlotController{
		Log:            logger,
		SlotUsecase:    slotUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *SlotController) ExtractSlots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("SlotController.ExtractSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ExtractSlots)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("SlotController.ExtractSlots error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("SlotController.ExtractSlots validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	output, err := ctrl.SlotUsecase.ExtractSlots(ctx, &contracts.ExtractSlotsInput{
		Intervals:   toIntervalInputs(request.Intervals),
		Granularity: request.Granularity,
		Duration:    request.Duration,
	})
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExtractSlotsSuccessMessage, ctrl.toSessionSlots(output))
}

func (ctrl *SlotController) GetTutorSlots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	tutorID := chi.URLParam(r, constvars.URLParamTutorID)
	ctrl.Log.Info("SlotController.GetTutorSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTutorIDKey, tutorID),
	)

	if err := utils.ValidateVar(tutorID, "required,tutor_id"); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamTutorID))
		return
	}

	loc := ctrl.InternalConfig.Location()
	from, to, err := parseTimeRange(r, loc, ctrl.InternalConfig.Slot.WindowDays)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	granularity, err := utils.ParseOptionalIntQuery(r, constvars.URLQueryParamGranularity)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidFormat(err, constvars.URLQueryParamGranularity))
		return
	}
	duration, err := utils.ParseOptionalIntQuery(r, constvars.URLQueryParamDuration)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidFormat(err, constvars.URLQueryParamDuration))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	output, err := ctrl.SlotUsecase.GetTutorSlots(ctx, &contracts.GetTutorSlotsInput{
		TutorID:     tutorID,
		From:        from,
		To:          to,
		Granularity: granularity,
		Duration:    duration,
	})
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTutorSlotsSuccessMessage, ctrl.toSessionSlots(output))
}

func (ctrl *SlotController) GetSnapshotURL(w http.ResponseWriter, r *http.Request) {
	tutorID := chi.URLParam(r, constvars.URLParamTutorID)
	if err := utils.ValidateVar(tutorID, "required,tutor_id"); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamTutorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	output, err := ctrl.SlotUsecase.GetSnapshotURL(ctx, tutorID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotSnapshotSuccessMessage, responses.SlotSnapshotURL{
		TutorID:   output.TutorID,
		URL:       output.URL,
		ExpiresAt: output.ExpiresAt.In(ctrl.InternalConfig.Location()),
	})
}

func (ctrl *SlotController) toSessionSlots(output *contracts.SlotsOutput) responses.SessionSlots {
	loc := ctrl.InternalConfig.Location()
	return responses.SessionSlots{
		TutorID:            output.TutorID,
		GranularityMinutes: output.GranularityMinutes,
		DurationMinutes:    output.DurationMinutes,
		Timezone:           loc.String(),
		Slots:              utils.FormatTimes(output.Slots, loc),
		Cached:             output.Cached,
	}
}

func toIntervalInputs(intervals []requests.Interval) []contracts.IntervalInput {
	inputs := make([]contracts.IntervalInput, 0, len(intervals))
	for _, interval := range intervals {
		inputs = append(inputs, contracts.IntervalInput{Start: interval.Start, End: interval.End})
	}
	return inputs
}

// parseTimeRange reads from/to query params. A missing from means now and a
// missing to means from plus windowDays.
func parseTimeRange(r *http.Request, loc *time.Location, windowDays int) (time.Time, time.Time, error) {
	from := time.Now().In(loc)
	if r.URL.Query().Get(constvars.URLQueryParamFrom) != "" {
		parsed, err := utils.ParseTimeQuery(r, constvars.URLQueryParamFrom, loc)
		if err != nil {
			return time.Time{}, time.Time{}, exceptions.ErrCannotParseTime(err, constvars.URLQueryParamFrom)
		}
		from = parsed
	}

	if windowDays <= 0 {
		windowDays = 1
	}
	to := from.AddDate(0, 0, windowDays)
	if r.URL.Query().Get(constvars.URLQueryParamTo) != "" {
		parsed, err := utils.ParseTimeQuery(r, constvars.URLQueryParamTo, loc)
		if err != nil {
			return time.Time{}, time.Time{}, exceptions.ErrCannotParseTime(err, constvars.URLQueryParamTo)
		}
		to = parsed
	}
	return from, to, nil
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

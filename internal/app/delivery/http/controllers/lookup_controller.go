package controllers

import (
	"io"
	"mrn-validator-service/internal/app/contracts"
	"mrn-validator-service/internal/pkg/constvars"
	"mrn-validator-service/internal/pkg/exceptions"
	"mrn-validator-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type LookupController struct {
	Log           *zap.Logger
	LookupUsecase contracts.LookupUsecase
}

func NewLookupController(logger *zap.Logger, lookupUsecase contracts.LookupUsecase) *LookupController {
	return &LookupController{
		Log:           logger,
		LookupUsecase: lookupUsecase,
	}
}

// Lookup answers errors with their status and an empty body, and success with
// the JSON map of MRN results.
func (ctrl *LookupController) Lookup(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("LookupController.Lookup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rawBody, ok := r.Context().Value(constvars.CONTEXT_RAW_BODY).([]byte)
	if !ok {
		var err error
		rawBody, err = io.ReadAll(r.Body)
		if err != nil {
			utils.BuildEmptyResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
			return
		}
	}

	result, err := ctrl.LookupUsecase.Lookup(r.Context(), rawBody)
	if err != nil {
		utils.BuildEmptyResponse(ctrl.Log, w, err)
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		utils.BuildEmptyResponse(ctrl.Log, w, exceptions.ErrCannotMarshalJSON(err))
		return
	}

	ctrl.Log.Info("LookupController.Lookup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, result.Len()),
		zap.Int(constvars.LoggingResponseLengthKey, len(body)),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, body)
}

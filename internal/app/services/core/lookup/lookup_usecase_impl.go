package lookup

import (
	"context"
	"mrn-validator-service/internal/app/contracts"
	"mrn-validator-service/internal/app/models"
	"mrn-validator-service/internal/pkg/constvars"
	"mrn-validator-service/internal/pkg/exceptions"
	"mrn-validator-service/internal/pkg/metrics"
	"mrn-validator-service/internal/pkg/utils"
	"strconv"

	"go.uber.org/zap"
)

type lookupUsecase struct {
	CredentialGate     contracts.CredentialGate
	TokenProvider      contracts.TokenProvider
	DemographicsClient contracts.DemographicsClient
	FieldMapping       models.FieldMapping
	TokenScope         string
	Log                *zap.Logger
}

func NewLookupUsecase(
	credentialGate contracts.CredentialGate,
	tokenProvider contracts.TokenProvider,
	demographicsClient contracts.DemographicsClient,
	fieldMapping models.FieldMapping,
	tokenScope string,
	logger *zap.Logger,
) contracts.LookupUsecase {
	if tokenScope == "" {
		tokenScope = constvars.DefaultTokenScope
	}
	return &lookupUsecase{
		CredentialGate:     credentialGate,
		TokenProvider:      tokenProvider,
		DemographicsClient: demographicsClient,
		FieldMapping:       fieldMapping,
		TokenScope:         tokenScope,
		Log:                logger,
	}
}

// Lookup authenticates, parses, resolves a token, fetches the batch once and
// builds one result per requested MRN. A missing token marks every MRN invalid
// instead of failing the request.
func (uc *lookupUsecase) Lookup(ctx context.Context, rawBody []byte) (response *models.LookupResponse, err error) {
	requestID := utils.GetRequestID(ctx)

	request, decodeErr := DecodeLookupRequest(rawBody)
	defer func() {
		status := constvars.StatusOK
		if err != nil {
			status = exceptions.StatusCodeOf(err)
		}
		metrics.LookupRequests.WithLabelValues(actionLabel(request.Action), strconv.Itoa(status)).Inc()
	}()

	if decodeErr != nil {
		uc.Log.Warn("lookupUsecase.Lookup body is not a JSON object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(decodeErr),
		)
	}

	uc.Log.Info("lookupUsecase.Lookup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActionKey, request.Action),
		zap.Int(constvars.LoggingMrnCountKey, len(request.Mrns)),
	)

	if err := uc.CredentialGate.Authenticate(ctx, request.Secret); err != nil {
		return nil, err
	}

	if err := ValidateLookupRequest(request); err != nil {
		uc.Log.Warn("lookupUsecase.Lookup request rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingActionKey, request.Action),
			zap.Error(err),
		)
		return nil, err
	}

	batch := models.DemographicsBatch{}
	token, endpoint, err := uc.acquireToken(ctx)
	if err != nil {
		metrics.TokenUnavailable.Inc()
		uc.Log.Warn("lookupUsecase.Lookup no usable token, every MRN resolves invalid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScopeKey, uc.TokenScope),
			zap.Error(err),
		)
	} else {
		batch, err = uc.DemographicsClient.FetchBatch(ctx, request.Mrns, token, endpoint)
		if err != nil {
			return nil, err
		}
	}

	wantDemographics := request.Action == constvars.LookupActionDemographics
	response = models.NewLookupResponse(len(request.Mrns))
	for _, mrn := range request.Mrns {
		response.Set(mrn, BuildResult(mrn, batch, wantDemographics, uc.FieldMapping))
	}

	validCount := response.ValidCount()
	metrics.LookupSubjects.WithLabelValues("true").Add(float64(validCount))
	metrics.LookupSubjects.WithLabelValues("false").Add(float64(response.Len() - validCount))

	uc.Log.Info("lookupUsecase.Lookup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActionKey, request.Action),
		zap.Int(constvars.LoggingResultCountKey, response.Len()),
		zap.Int(constvars.LoggingValidCountKey, validCount),
	)
	return response, nil
}

func actionLabel(action string) string {
	switch action {
	case constvars.LookupActionValidate, constvars.LookupActionDemographics:
		return action
	default:
		return "unsupported"
	}
}

// acquireToken treats an empty token or endpoint as unavailable.
func (uc *lookupUsecase) acquireToken(ctx context.Context) (string, string, error) {
	token, err := uc.TokenProvider.FindValidToken(ctx, uc.TokenScope)
	if err != nil {
		return "", "", err
	}
	endpoint, err := uc.TokenProvider.GetAPIEndpoint(ctx, uc.TokenScope)
	if err != nil {
		return "", "", err
	}
	if token == "" || endpoint == "" {
		return "", "", exceptions.ErrTokenUnavailable(nil, uc.TokenScope)
	}
	return token, endpoint, nil
}

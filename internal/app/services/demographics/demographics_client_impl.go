package demographics

import (
	"bytes"
	"context"
	"io"
	"mrn-validator-service/internal/app/contracts"
	"mrn-validator-service/internal/app/models"
	"mrn-validator-service/internal/pkg/constvars"
	"mrn-validator-service/internal/pkg/exceptions"
	"mrn-validator-service/internal/pkg/metrics"
	"mrn-validator-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	outcomeOK          = "ok"
	outcomeBadStatus   = "bad_status"
	outcomeMalformed   = "malformed"
	outcomeTransport   = "transport"
	outcomeRateLimited = "rate_limited"
)

type demographicsClient struct {
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewDemographicsClient returns a client whose outbound call is bounded by
// timeout. ratePerSecond of zero disables the downstream limiter.
func NewDemographicsClient(timeout time.Duration, ratePerSecond int, logger *zap.Logger) contracts.DemographicsClient {
	var limiter *rate.Limiter
	if ratePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond)
	}
	return &demographicsClient{
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    limiter,
		Log:        logger,
	}
}

// FetchBatch posts all mrns in one request and re-keys the result array by
// each element's mrn. Later elements overwrite earlier ones with the same mrn.
func (c *demographicsClient) FetchBatch(ctx context.Context, mrns []string, token, endpoint string) (models.DemographicsBatch, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("demographicsClient.FetchBatch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointURLKey, endpoint),
		zap.Int(constvars.LoggingMrnCountKey, len(mrns)),
	)

	start := time.Now()
	outcome := outcomeOK
	defer func() {
		metrics.DownstreamDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}()

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			outcome = outcomeRateLimited
			c.Log.Error("demographicsClient.FetchBatch error waiting for rate limiter",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrDownstreamLimiter(err)
		}
	}

	requestJSON, err := json.Marshal(models.DemographicsBatchRequest{Mrns: mrns})
	if err != nil {
		outcome = outcomeTransport
		c.Log.Error("demographicsClient.FetchBatch error marshaling request to JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		outcome = outcomeTransport
		c.Log.Error("demographicsClient.FetchBatch error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		outcome = outcomeTransport
		c.Log.Error("demographicsClient.FetchBatch error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		outcome = outcomeBadStatus
		io.Copy(io.Discard, resp.Body)
		c.Log.Error("demographicsClient.FetchBatch unexpected status code",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrDemographicsBadStatus(resp.StatusCode)
	}

	var result models.DemographicsBatchResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		outcome = outcomeMalformed
		c.Log.Error("demographicsClient.FetchBatch error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDemographicsMalformedResponse(err)
	}
	if result.Result == nil {
		outcome = outcomeMalformed
		c.Log.Error("demographicsClient.FetchBatch response has no result array",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrDemographicsMissingResult()
	}

	batch := make(models.DemographicsBatch, len(*result.Result))
	for index, record := range *result.Result {
		mrn, ok := record.Mrn()
		if !ok {
			c.Log.Warn("demographicsClient.FetchBatch skipping result element without string mrn",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int("index", index),
			)
			continue
		}
		batch[mrn] = record
	}

	c.Log.Info("demographicsClient.FetchBatch succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(batch)),
	)
	return batch, nil
}

package middlewares

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mrn-validator-service/internal/pkg/constvars"
	"mrn-validator-service/internal/pkg/exceptions"
	"mrn-validator-service/internal/pkg/utils"
	"net/http"
)

// BodyBuffer reads at most the configured body limit, stores the raw bytes in
// the context and replaces the request body so handlers can read it again.
// Larger bodies are answered with 413.
func (m *Middlewares) BodyBuffer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limited := http.MaxBytesReader(w, r.Body, m.InternalConfig.App.RequestBodyLimitInBytes())
		bodyBytes, err := io.ReadAll(limited)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				utils.BuildEmptyResponse(m.Log, w, exceptions.ErrRequestTooLarge(err))
				return
			}
			utils.BuildEmptyResponse(m.Log, w, exceptions.ErrReadBody(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_RAW_BODY, bodyBytes)
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

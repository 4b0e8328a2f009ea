package utils

import (
	"errors"
	"mrn-validator-service/internal/pkg/constvars"
	"mrn-validator-service/internal/pkg/exceptions"
	"net/http"

	"go.uber.org/zap"
)

// BuildEmptyResponse logs err and answers with its status code and no body.
func BuildEmptyResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		location := map[string]interface{}{
			"file":          customErr.Location.File,
			"line":          customErr.Location.Line,
			"function_name": customErr.Location.FunctionName,
		}
		fields := []zap.Field{
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.String("kind", string(customErr.Kind)),
			zap.Any("location", location),
		}
		if code < constvars.StatusInternalServerError {
			log.Warn(customErr.DevMessage, fields...)
		} else {
			log.Error(customErr.DevMessage, fields...)
		}
	} else if err != nil {
		log.Error(err.Error(), zap.Int(constvars.LoggingStatusCodeKey, code))
	}

	w.WriteHeader(code)
}

// BuildJSONResponse writes an already encoded JSON document.
func BuildJSONResponse(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	w.Write(body)
}

func BuildTextResponse(w http.ResponseWriter, code int, body string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
	w.WriteHeader(code)
	w.Write([]byte(body))
}

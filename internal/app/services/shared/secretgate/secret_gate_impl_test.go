package secretgate

import (
	"context"
	"mrn-validator-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSecretGate_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		provided   string
		wantKind   exceptions.Kind
		wantStatus int
		wantErr    bool
	}{
		{name: "matching secret", provided: "S3cret"},
		{name: "empty secret", provided: "", wantErr: true, wantKind: exceptions.KindAuthMissing, wantStatus: 401},
		{name: "mismatched secret", provided: "wrong", wantErr: true, wantKind: exceptions.KindAuthMismatch, wantStatus: 403},
		{name: "prefix of secret", provided: "S3c", wantErr: true, wantKind: exceptions.KindAuthMismatch, wantStatus: 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewSecretGate("S3cret", zap.NewNop())

			err := gate.Authenticate(context.Background(), tt.provided)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantKind, exceptions.KindOf(err))
			assert.Equal(t, tt.wantStatus, exceptions.StatusCodeOf(err))
		})
	}
}

func TestSecretGate_MismatchNeverLogsSecrets(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gate := NewSecretGate("configured-secret", zap.New(core))

	err := gate.Authenticate(context.Background(), "provided-secret")
	assert.Error(t, err)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, int64(len("provided-secret")), fields["secret_length"])
		assert.Equal(t, int64(len("configured-secret")), fields["expected_secret_length"])
		for _, value := range fields {
			assert.NotEqual(t, "provided-secret", value)
			assert.NotEqual(t, "configured-secret", value)
		}
	}
}

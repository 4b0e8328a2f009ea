package contracts

import (
	"context"
	"mrn-validator-service/internal/app/models"
)

// LookupUsecase runs one MRN lookup request end to end.
type LookupUsecase interface {
	Lookup(ctx context.Context, rawBody []byte) (*models.LookupResponse, error)
}

// DemographicsClient issues the single batched call to the demographics API.
type DemographicsClient interface {
	FetchBatch(ctx context.Context, mrns []string, token, endpoint string) (models.DemographicsBatch, error)
}

// TokenProvider supplies bearer tokens and API endpoints per credential scope.
// Implementations must be safe for concurrent use.
type TokenProvider interface {
	FindValidToken(ctx context.Context, scope string) (string, error)
	GetAPIEndpoint(ctx context.Context, scope string) (string, error)
}

// CredentialGate checks the caller's shared secret.
type CredentialGate interface {
	Authenticate(ctx context.Context, providedSecret string) error
}

package exceptions

import (
	"fmt"
	"mrn-validator-service/internal/pkg/constvars"
)

var (
	ErrSecretMissing = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientSecretRequired, constvars.ErrDevSecretMissing).withKind(KindAuthMissing)
	}
	ErrSecretMismatch = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevSecretMismatch).withKind(KindAuthMismatch)
	}
	ErrUnsupportedAction = func(err error, action string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusPartialContent, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnsupportedAction, action)).withKind(KindParseUnsupportedAction)
	}
	ErrEmptyMrnList = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusPartialContent, constvars.ErrClientCannotProcessRequest, constvars.ErrDevEmptyMrnList).withKind(KindParseEmptyMrnList)
	}
	ErrTokenUnavailable = func(err error, scope string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevTokenUnavailable, scope)).withKind(KindTokenUnavailable)
	}
	ErrTokenExpired = func(scope string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevTokenExpired, scope)).withKind(KindTokenUnavailable)
	}
)

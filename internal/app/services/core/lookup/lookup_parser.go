package lookup

import (
	"errors"
	"mrn-validator-service/internal/pkg/constvars"
	"mrn-validator-service/internal/pkg/dto/requests"
	"mrn-validator-service/internal/pkg/exceptions"
	"mrn-validator-service/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// DecodeLookupRequest reads action, mrns and secret from a JSON object body.
// Fields that are missing or not strings are left empty. The returned request
// is never nil, and err reports a body that is not a JSON object.
func DecodeLookupRequest(rawBody []byte) (*requests.LookupRequest, error) {
	request := &requests.LookupRequest{Mrns: []string{}}

	var fields map[string]interface{}
	if err := json.Unmarshal(rawBody, &fields); err != nil {
		return request, exceptions.ErrCannotParseJSON(err)
	}

	request.Action = stringField(fields, constvars.LookupFieldAction)
	request.Secret = stringField(fields, constvars.LookupFieldSecret)
	request.Mrns = utils.ParseMRNList(stringField(fields, constvars.LookupFieldMrns))
	return request, nil
}

// ValidateLookupRequest maps an unsupported action or an empty MRN list onto
// their partial content errors. The action is checked first.
func ValidateLookupRequest(request *requests.LookupRequest) error {
	err := utils.ValidateStruct(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	details := errors.New(exceptions.FormatAllValidationErrors(validationErrors))
	for _, fieldErr := range validationErrors {
		if fieldErr.Field() == constvars.LookupFieldAction {
			return exceptions.ErrUnsupportedAction(details, request.Action)
		}
	}
	return exceptions.ErrEmptyMrnList(details)
}

func stringField(fields map[string]interface{}, name string) string {
	value, ok := fields[name].(string)
	if !ok {
		return ""
	}
	return value
}

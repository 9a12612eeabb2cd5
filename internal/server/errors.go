package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/skill-gap-analyzer/internal/fitscore"
	"github.com/jonathan/skill-gap-analyzer/internal/schemas"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Caller-caused failures (bad weights, invalid payloads) map to 400;
// anything else is a 500.
func HTTPStatus(err error) int {
	var invalidWeights *fitscore.InvalidWeightsError
	var schemaValidation *schemas.ValidationError
	var fieldValidation validator.ValidationErrors

	switch {
	case errors.As(err, &invalidWeights),
		errors.As(err, &schemaValidation),
		errors.As(err, &fieldValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

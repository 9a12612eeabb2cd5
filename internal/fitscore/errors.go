package fitscore

import "fmt"

// InvalidWeightsError indicates malformed weight configuration. The
// calculator fails fast with this error before any scoring runs.
type InvalidWeightsError struct {
	Message string
}

func (e *InvalidWeightsError) Error() string {
	return fmt.Sprintf("invalid weights: %s", e.Message)
}

package polyfit

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every invalid-input error returned from
	// this package, so callers can match the whole class with errors.Is.
	ErrConfiguration = errors.New("invalid configuration")

	ErrInvalidDegree    = fmt.Errorf("degree must be a non-negative integer, %w", ErrConfiguration)
	ErrInvalidMaxDegree = fmt.Errorf("max degree must be at least 1, %w", ErrConfiguration)

	ErrNoSamples        = errors.New("fit session has no sample data")
	ErrNoOptionsInModel = errors.New("no options set in model")
	ErrModelDegree      = errors.New("model coefficients do not match the model degree")
	ErrModelChecksum    = errors.New("model was not fitted on this sample data")
)

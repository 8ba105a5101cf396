package models

import "errors"

var (
	ErrSymbolNotFound   = errors.New("symbol not found")
	ErrInsufficientData = errors.New("insufficient data")
)

// PipelineError is a user-facing validation failure of the prediction pipeline.
// Kind is one of ErrSymbolNotFound or ErrInsufficientData.
type PipelineError struct {
	Kind    error
	Message string
}

func (e *PipelineError) Error() string { return e.Message }

func (e *PipelineError) Unwrap() error { return e.Kind }

// IsPipelineError reports whether err should be surfaced to the caller as not found.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrSymbolNotFound) || errors.Is(err, ErrInsufficientData)
}

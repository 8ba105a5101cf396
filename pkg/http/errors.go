package http

import (
	"errors"
	"net/http"
)

// AppError is a Problem bound to an HTTP status. The wrapped cause is logged, never serialized.
type AppError struct {
	Problem
	Status int `json:"-"`
	cause  error
}

func NewAppError(status int, code, message string) *AppError {
	return &AppError{Problem: Problem{Code: code, Message: message}, Status: status}
}

func (e *AppError) Error() string {
	if e.cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.cause.Error()
}

func (e *AppError) Unwrap() error { return e.cause }

// Wrap attaches the underlying cause.
func (e *AppError) Wrap(err error) *AppError {
	e.cause = err
	return e
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, "ERR_NOT_FOUND", message)
}

func Internal(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, "ERR_INTERNAL", message)
}

// StatusOf returns the status carried by err, or 500.
func StatusOf(err error) int {
	var ae *AppError
	if errors.As(err, &ae) && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusInternalServerError
}

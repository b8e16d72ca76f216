// errors.go: structured error handling for bigram operations
//
// Errors are built with the go-errors library so that every failure carries
// an error code, a context map and, where it applies, a severity.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package bigram

import (
	goerrors "errors"
	"fmt"

	"github.com/agilira/go-errors"
)

// Error codes for bigram operations
const (
	// Configuration errors
	ErrCodeInvalidConfig   errors.ErrorCode = "BIGRAM_INVALID_CONFIG"
	ErrCodeInvalidCapacity errors.ErrorCode = "BIGRAM_INVALID_CAPACITY"

	// Boundary errors
	ErrCodeInvalidArgument errors.ErrorCode = "BIGRAM_INVALID_ARGUMENT"
	ErrCodeKeyNotFound     errors.ErrorCode = "BIGRAM_KEY_NOT_FOUND"
	ErrCodeCacheClosed     errors.ErrorCode = "BIGRAM_CACHE_CLOSED"

	// Hot reload errors
	ErrCodeReloadFailed errors.ErrorCode = "BIGRAM_RELOAD_FAILED"

	// Internal errors
	ErrCodeInvariantViolation errors.ErrorCode = "BIGRAM_INVARIANT_VIOLATION"
)

const (
	msgInvalidConfig      = "invalid configuration"
	msgInvalidCapacity    = "capacity must be a positive number"
	msgKeyNotFound        = "key not found in cache"
	msgCacheClosed        = "cache is closed"
	msgReloadFailed       = "failed to apply reloaded configuration"
	msgInvariantViolation = "bigram document frequency would become negative"
)

// NewErrInvalidConfig creates an error for a configuration that cannot be used
func NewErrInvalidConfig(reason string) error {
	return errors.NewWithField(ErrCodeInvalidConfig, msgInvalidConfig, "reason", reason)
}

// NewErrInvalidCapacity creates an error for a non-positive capacity
func NewErrInvalidCapacity(capacity int) error {
	return errors.NewWithContext(ErrCodeInvalidCapacity, msgInvalidCapacity, map[string]interface{}{
		"provided_capacity": capacity,
		"minimum_required":  1,
	})
}

// NewErrInvalidArgument creates an error for a key or value that is not byte-string-like.
// argument is "key" or "val".
func NewErrInvalidArgument(argument string, value interface{}) error {
	return errors.NewWithContext(ErrCodeInvalidArgument, argument+" must be a string", map[string]interface{}{
		"argument": argument,
		"type":     fmt.Sprintf("%T", value),
	})
}

// NewErrKeyNotFound creates an error when key is not stored
func NewErrKeyNotFound(key []byte) error {
	return errors.NewWithField(ErrCodeKeyNotFound, msgKeyNotFound, "key", string(key))
}

// NewErrCacheClosed creates an error for an operation on a closed cache
func NewErrCacheClosed(operation string) error {
	return errors.NewWithField(ErrCodeCacheClosed, msgCacheClosed, "operation", operation)
}

// NewErrReloadFailed creates an error when a reloaded configuration cannot be applied
func NewErrReloadFailed(path string, cause error) error {
	return errors.Wrap(cause, ErrCodeReloadFailed, msgReloadFailed).
		WithContext("config_path", path).
		AsRetryable()
}

// NewErrInvariantViolation creates an error for a document frequency underflow.
// It indicates a bookkeeping bug and is never expected in practice.
func NewErrInvariantViolation(bigram uint16, count uint32) error {
	return errors.NewWithContext(ErrCodeInvariantViolation, msgInvariantViolation, map[string]interface{}{
		"bigram": fmt.Sprintf("%#04x", bigram),
		"count":  count,
	}).WithSeverity("critical")
}

// IsInvalidArgument checks if err was caused by a bad argument: a key or
// value that is not byte-string-like, or a non-positive capacity.
func IsInvalidArgument(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidArgument) || errors.HasCode(err, ErrCodeInvalidCapacity)
}

// IsNotFound checks if err is a key not found error
func IsNotFound(err error) bool {
	return errors.HasCode(err, ErrCodeKeyNotFound)
}

// IsClosed checks if err was returned by a closed cache
func IsClosed(err error) bool {
	return errors.HasCode(err, ErrCodeCacheClosed)
}

// IsInvariantViolation checks if err reports corrupted internal bookkeeping
func IsInvariantViolation(err error) bool {
	return errors.HasCode(err, ErrCodeInvariantViolation)
}

// IsConfigError checks if err is a configuration error
func IsConfigError(err error) bool {
	code := GetErrorCode(err)
	return code == ErrCodeInvalidConfig || code == ErrCodeInvalidCapacity
}

// IsRetryable checks if the error can be retried
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var bigramErr *errors.Error
	if goerrors.As(err, &bigramErr) {
		return bigramErr.Context
	}
	return nil
}

// errors_test.go: tests for structured errors
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

import (
	goerrors "errors"
	"testing"

	"github.com/agilira/go-errors"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name         string
		errFunc      func() error
		expectedCode errors.ErrorCode
		shouldRetry  bool
	}{
		{
			name:         "InvalidCapacity",
			errFunc:      func() error { return NewErrInvalidCapacity(0) },
			expectedCode: ErrCodeInvalidCapacity,
		},
		{
			name:         "InvalidConfig",
			errFunc:      func() error { return NewErrInvalidConfig("bad") },
			expectedCode: ErrCodeInvalidConfig,
		},
		{
			name:         "InvalidArgument",
			errFunc:      func() error { return NewErrInvalidArgument("key", 1) },
			expectedCode: ErrCodeInvalidArgument,
		},
		{
			name:         "KeyNotFound",
			errFunc:      func() error { return NewErrKeyNotFound([]byte("k")) },
			expectedCode: ErrCodeKeyNotFound,
		},
		{
			name:         "CacheClosed",
			errFunc:      func() error { return NewErrCacheClosed("upsert") },
			expectedCode: ErrCodeCacheClosed,
		},
		{
			name:         "ReloadFailed",
			errFunc:      func() error { return NewErrReloadFailed("cfg.yaml", goerrors.New("boom")) },
			expectedCode: ErrCodeReloadFailed,
			shouldRetry:  true,
		},
		{
			name:         "InvariantViolation",
			errFunc:      func() error { return NewErrInvariantViolation(0x6162, 0) },
			expectedCode: ErrCodeInvariantViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.errFunc()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.HasCode(err, tt.expectedCode) {
				t.Errorf("expected code %s, got %s", tt.expectedCode, GetErrorCode(err))
			}
			if IsRetryable(err) != tt.shouldRetry {
				t.Errorf("expected retryable=%v, got %v", tt.shouldRetry, IsRetryable(err))
			}
			if err.Error() == "" {
				t.Error("error message should not be empty")
			}
		})
	}
}

func TestErrorContext(t *testing.T) {
	err := NewErrInvalidCapacity(-3)

	ctx := GetErrorContext(err)
	if ctx == nil {
		t.Fatal("expected context, got nil")
	}
	if ctx["provided_capacity"] != -3 {
		t.Errorf("provided_capacity = %v, want -3", ctx["provided_capacity"])
	}
	if ctx["minimum_required"] != 1 {
		t.Errorf("minimum_required = %v, want 1", ctx["minimum_required"])
	}

	ctx = GetErrorContext(NewErrInvariantViolation(0x6162, 0))
	if ctx["bigram"] != "0x6162" {
		t.Errorf("bigram = %v, want 0x6162", ctx["bigram"])
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := goerrors.New("watcher failed")
	err := NewErrReloadFailed("cfg.yaml", cause)

	if goerrors.Unwrap(err) == nil {
		t.Fatal("expected unwrapped error, got nil")
	}
	if root := errors.RootCause(err); root.Error() != cause.Error() {
		t.Errorf("expected root cause %q, got %q", cause.Error(), root.Error())
	}
}

func TestErrorCategoryHelpers(t *testing.T) {
	if !IsConfigError(NewErrInvalidCapacity(0)) || !IsConfigError(NewErrInvalidConfig("x")) {
		t.Error("capacity and config errors are config errors")
	}
	if IsConfigError(NewErrKeyNotFound(nil)) {
		t.Error("not found is not a config error")
	}
	if !IsNotFound(NewErrKeyNotFound([]byte("k"))) {
		t.Error("IsNotFound")
	}
	if !IsInvalidArgument(NewErrInvalidArgument("val", 1.0)) {
		t.Error("IsInvalidArgument")
	}
	if !IsInvalidArgument(NewErrInvalidCapacity(0)) {
		t.Error("a non-positive capacity is an invalid argument")
	}
	if IsInvalidArgument(NewErrKeyNotFound(nil)) {
		t.Error("not found is not an invalid argument")
	}
	if !IsClosed(NewErrCacheClosed("upsert")) {
		t.Error("IsClosed")
	}
	if !IsInvariantViolation(NewErrInvariantViolation(1, 0)) {
		t.Error("IsInvariantViolation")
	}
}

func TestErrorHelpers_NilAndForeign(t *testing.T) {
	foreign := goerrors.New("plain")

	if GetErrorCode(nil) != "" || GetErrorCode(foreign) != "" {
		t.Error("GetErrorCode should be empty for nil and plain errors")
	}
	if GetErrorContext(nil) != nil || GetErrorContext(foreign) != nil {
		t.Error("GetErrorContext should be nil for nil and plain errors")
	}
	if IsRetryable(nil) || IsRetryable(foreign) {
		t.Error("IsRetryable should be false for nil and plain errors")
	}
	if IsConfigError(nil) || IsNotFound(nil) {
		t.Error("category helpers should be false for nil")
	}
}

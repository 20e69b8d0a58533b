// errors.go: structured errors for the hazard domain's non-hot-path
// surface (domain construction and optional debug-mode checks).
//
// The reclamation algorithm itself never returns an error — see
// LoadPointer, Swap, Take and Retire, which report "nothing to
// protect/retire" with plain nil/zero shapes. This file covers the two
// places a recoverable, reportable failure actually exists.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package hazard

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for the hazard domain.
const (
	// Construction errors
	ErrCodeInvalidScanLogThreshold errors.ErrorCode = "HAZARD_INVALID_SCAN_LOG_THRESHOLD"

	// Debug-mode contract violations — only ever produced when
	// DomainOptions.DebugChecks is enabled.
	ErrCodeDoubleRetire    errors.ErrorCode = "HAZARD_DOUBLE_RETIRE"
	ErrCodeRetireAfterFree errors.ErrorCode = "HAZARD_RETIRE_AFTER_FREE"
)

const (
	msgInvalidScanLogThreshold = "invalid scan log threshold: must be >= 0"
	msgDoubleRetire            = "pointer retired more than once"
	msgRetireAfterFree         = "pointer retired after its deleter already ran"
)

// NewErrInvalidScanLogThreshold creates an error for a negative
// DomainOptions.ScanLogThreshold.
func NewErrInvalidScanLogThreshold(value int64) error {
	return errors.NewWithContext(ErrCodeInvalidScanLogThreshold, msgInvalidScanLogThreshold, map[string]interface{}{
		"provided_value": value,
		"minimum":        0,
	})
}

// NewErrDoubleRetire creates an error reporting that erased was handed
// to RetireToken.Retire more than once.
func NewErrDoubleRetire(erased uintptr) error {
	return errors.NewWithContext(ErrCodeDoubleRetire, msgDoubleRetire, map[string]interface{}{
		"address": erased,
	}).WithSeverity("critical")
}

// NewErrRetireAfterFree creates an error reporting that erased was
// handed to Retire after a prior scan already invoked its deleter.
func NewErrRetireAfterFree(erased uintptr) error {
	return errors.NewWithContext(ErrCodeRetireAfterFree, msgRetireAfterFree, map[string]interface{}{
		"address": erased,
	}).WithSeverity("critical")
}

// IsDoubleRetire reports whether err is a double-retire violation.
func IsDoubleRetire(err error) bool {
	return errors.HasCode(err, ErrCodeDoubleRetire)
}

// IsRetireAfterFree reports whether err is a retire-after-free violation.
func IsRetireAfterFree(err error) bool {
	return errors.HasCode(err, ErrCodeRetireAfterFree)
}

// GetErrorCode extracts the error code from an error, if any.
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

// GetErrorContext extracts structured context from an error, if any.
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var hazardErr *errors.Error
	if goerrors.As(err, &hazardErr) {
		return hazardErr.Context
	}
	return nil
}

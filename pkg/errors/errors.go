// Package errors provides error handling for srcgen.
//
// It re-exports github.com/cockroachdb/errors and declares the sentinel errors
// every structural, configuration and usage failure of the object model wraps.
// Callers test failures with errors.Is against the sentinels below.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint       = crdb.WithHint
	WithHintf      = crdb.WithHintf
	WithDetail     = crdb.WithDetail
	WithDetailf    = crdb.WithDetailf
	GetAllHints    = crdb.GetAllHints
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

var (
	// ErrInvalidModifier marks a modifier that is not legal for a construct.
	ErrInvalidModifier = crdb.New("invalid modifier")
	// ErrConflictingModifier marks two mutually exclusive modifiers.
	ErrConflictingModifier = crdb.New("conflicting modifiers")
	// ErrDuplicate marks a duplicate member, type, interface or ownership.
	ErrDuplicate = crdb.New("duplicate")
	// ErrCodeValidation marks a structurally invalid declaration.
	ErrCodeValidation = crdb.New("code validation failed")
	// ErrIllegalArgument marks a caller usage error.
	ErrIllegalArgument = crdb.New("illegal argument")
	// ErrUnsupportedFramework marks an unknown framework name.
	ErrUnsupportedFramework = crdb.New("unsupported framework")
	// ErrNotFound marks a failed lookup where absence is an error.
	ErrNotFound = crdb.New("not found")
)

// Duplicatef returns an error marked with ErrDuplicate.
func Duplicatef(format string, args ...any) error {
	return crdb.Mark(crdb.Newf(format, args...), ErrDuplicate)
}

// CodeValidationf returns an error marked with ErrCodeValidation.
func CodeValidationf(format string, args ...any) error {
	return crdb.Mark(crdb.Newf(format, args...), ErrCodeValidation)
}

// IllegalArgumentf returns an error marked with ErrIllegalArgument.
func IllegalArgumentf(format string, args ...any) error {
	return crdb.Mark(crdb.Newf(format, args...), ErrIllegalArgument)
}

// UnsupportedFrameworkf returns an error marked with ErrUnsupportedFramework.
func UnsupportedFrameworkf(format string, args ...any) error {
	return crdb.Mark(crdb.Newf(format, args...), ErrUnsupportedFramework)
}

// NotFoundf returns an error marked with ErrNotFound.
func NotFoundf(format string, args ...any) error {
	return crdb.Mark(crdb.Newf(format, args...), ErrNotFound)
}

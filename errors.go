// Copyright 2026 The OPC UA PubSub Codec Authors. All rights reserved.
// Use of this source code is governed by the Apache v2 license
// license that can be found in the LICENSE file.

package ua

import "fmt"

// Status is the result of a codec operation. The zero Status is Good.
// Status implements error so callers that only care about success/failure
// can use it directly, while callers that need the OPC UA status taxonomy
// can inspect it with Is.
type Status uint8

// Status values, matching the error kinds of the OPC UA codec design.
const (
	// Good indicates the call succeeded.
	Good Status = iota

	// LimitsExceeded is returned when a write would run past the end of
	// the destination buffer, or a read would run past the end of the
	// source buffer.
	LimitsExceeded

	// EncodingError is returned when an invariant is violated while
	// emitting a value (an ExtensionObject with no type descriptor, an
	// unknown publisher-id kind, a Variant typed as Variant outside of an
	// array).
	EncodingError

	// DecodingError is returned when the input is malformed: a bad NodeId
	// tag byte, a JSON syntax error, a duplicate JSON key, a recursion
	// limit exceeded.
	DecodingError

	// OutOfMemory is returned when a decoder declines to allocate for an
	// adversarial length prefix.
	OutOfMemory

	// NotImplemented is returned for RawData payload field encoding and
	// DataSetMetaData message bodies.
	NotImplemented

	// NotFound is returned when a non-reversible JSON namespace or server
	// URI index has no matching table entry.
	NotFound

	// NotSupported is returned when a type name or descriptor lookup has
	// no backing table at runtime.
	NotSupported
)

func (s Status) String() string {
	switch s {
	case Good:
		return "Good"
	case LimitsExceeded:
		return "LimitsExceeded"
	case EncodingError:
		return "EncodingError"
	case DecodingError:
		return "DecodingError"
	case OutOfMemory:
		return "OutOfMemory"
	case NotImplemented:
		return "NotImplemented"
	case NotFound:
		return "NotFound"
	case NotSupported:
		return "NotSupported"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Error implements the error interface so a Status can be returned wherever
// Go code expects an error.
func (s Status) Error() string {
	return s.String()
}

// IsGood reports whether s is Good.
func (s Status) IsGood() bool {
	return s == Good
}

// StatusError wraps a Status with a human-readable reason, preserving the
// Status for programmatic inspection via errors.As.
type StatusError struct {
	Status Status
	Reason string
}

func (e *StatusError) Error() string {
	if e.Reason == "" {
		return e.Status.String()
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Reason)
}

// Unwrap lets errors.Is(err, SomeStatus) work through a StatusError.
func (e *StatusError) Unwrap() error {
	return e.Status
}

// wrap builds a *StatusError, the moral equivalent of the teacher's
// errors.New(...) sentinel pattern but parameterized on the Status taxonomy
// the OPC UA codec error model requires.
func wrap(status Status, format string, args ...interface{}) error {
	return &StatusError{Status: status, Reason: fmt.Sprintf(format, args...)}
}

// Sentinels mirrored from the boundary-check helper.go pattern in the
// teacher: named errors for the handful of conditions callers commonly
// check for with errors.Is.
var (
	// ErrOutsideBoundary is returned when a read or write would cross the
	// [begin,end) span of the buffer cursor.
	ErrOutsideBoundary = &StatusError{Status: LimitsExceeded, Reason: "reading or writing data outside buffer boundary"}

	// ErrRecursionLimit is returned when DiagnosticInfo or a nested
	// structured type recurses past CodecOptions.MaxRecursionDepth.
	ErrRecursionLimit = &StatusError{Status: DecodingError, Reason: "recursion depth limit exceeded"}

	// ErrNilTypeDescriptor is returned when an ExtensionObject's decoded
	// form is encoded without a type descriptor.
	ErrNilTypeDescriptor = &StatusError{Status: EncodingError, Reason: "extension object decoded form requires a non-nil type descriptor"}

	// ErrUnknownBuiltinType is returned when a Variant or structured
	// member names a builtin type index outside 1..25.
	ErrUnknownBuiltinType = &StatusError{Status: DecodingError, Reason: "unknown builtin type index"}

	// ErrVariantNestedScalar is returned when a Variant's contained type
	// is Variant but the Variant is not itself inside an array.
	ErrVariantNestedScalar = &StatusError{Status: EncodingError, Reason: "a Variant may only contain Variant in array form"}

	// ErrDimensionMismatch is returned when array dimensions are present
	// but their product does not equal the array length.
	ErrDimensionMismatch = &StatusError{Status: EncodingError, Reason: "product of array dimensions does not match array length"}

	// ErrDuplicateKey is returned by the JSON structured decoder when an
	// object repeats a field name.
	ErrDuplicateKey = &StatusError{Status: DecodingError, Reason: "duplicate key in JSON object"}

	// ErrTokenLimit is returned when the JSON tokenizer would need more
	// tokens than CodecOptions.MaxJSONTokens allows.
	ErrTokenLimit = &StatusError{Status: DecodingError, Reason: "JSON token capacity exceeded"}

	// ErrNotImplemented is returned for RawData payload field encoding and
	// DataSetMetaData message bodies.
	ErrNotImplemented = &StatusError{Status: NotImplemented, Reason: "not implemented"}
)

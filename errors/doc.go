// Package errors provides structured error types for the svg-bridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Kinds mirror the status taxonomy of the dispatch boundary:
// capability_unavailable, invalid_parameter, parse_failed, read_failed,
// internal, and allocation.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.InvalidParameter(errors.PhaseRender, "stride %d below row width", stride)
//	err := errors.CapabilityUnavailable(errors.PhaseLoad, "librsvg", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on the (Phase, Kind) pair, so sentinel comparisons work without
// caring about the detail text.
package errors

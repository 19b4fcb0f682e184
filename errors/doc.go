// Package errors provides the structured error type for host-call failures.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category), with the originating host operation and the host's verbatim
// message attached:
//
//	err := errors.New(errors.PhaseCall, errors.KindLimitExceeded).
//		Op("spawn.spawn_function").
//		Detail("too many concurrent spawns").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.HostCall("cache_scalar.get", errors.KindUnavailable, msg)
//	err := errors.NotFound("spawn.spawn_function", "function")
//
// All errors implement the standard error interface and support errors.Is/As.
//
// Codec failures deliberately do not use this type. Every payload codec
// returns its own concrete error type (encoding/json errors, cbor errors,
// payload.EncodeError, ...) so that the failure type is chosen by the codec
// rather than hard-coded by the call site.
package errors

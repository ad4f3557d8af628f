package pricing

import "errors"

// ErrorKind classifies why a delivery price could not be computed.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidDistance
	KindInvalidSize
	KindInvalidFragility
	KindInvalidWorkload
	KindFragileTooFar
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidDistance:
		return "invalid_distance"
	case KindInvalidSize:
		return "invalid_size"
	case KindInvalidFragility:
		return "invalid_fragility"
	case KindInvalidWorkload:
		return "invalid_workload_coefficient"
	case KindFragileTooFar:
		return "fragile_too_far"
	default:
		return "unknown"
	}
}

// Error is returned by every failed quote. It carries the kind, a human readable
// message and, when available, the underlying validation failure.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Unwrap allows errors.Is/As to inspect the underlying error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches any *Error of the same kind, so callers can compare against the
// package sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

var (
	// ErrInvalidDistance is returned when the distance is absent, not a finite number or negative.
	ErrInvalidDistance = &Error{Kind: KindInvalidDistance, Message: "invalid delivery distance"}
	// ErrInvalidSize is returned when the cargo size is absent or unrecognised.
	ErrInvalidSize = &Error{Kind: KindInvalidSize, Message: "invalid cargo size"}
	// ErrInvalidFragility is returned when the fragility flag is absent or not a bool.
	ErrInvalidFragility = &Error{Kind: KindInvalidFragility, Message: "invalid cargo fragility value"}
	// ErrInvalidWorkload is returned when the workload coefficient is absent or unrecognised.
	ErrInvalidWorkload = &Error{Kind: KindInvalidWorkload, Message: "invalid delivery service workload coefficient"}
	// ErrFragileTooFar is returned for fragile cargo travelling farther than MaxFragileDistanceKm.
	ErrFragileTooFar = &Error{Kind: KindFragileTooFar, Message: "fragile cargo cannot be delivered farther than 30 km"}
)

func newError(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Message: sentinel.Message, Err: cause}
}

// KindOf extracts the ErrorKind from err, or KindUnknown when err is not a pricing error.
func KindOf(err error) ErrorKind {
	var target *Error
	if errors.As(err, &target) && target != nil {
		return target.Kind
	}
	return KindUnknown
}

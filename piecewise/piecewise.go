package piecewise

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curves.piecewise'
func tracer() tracing.Trace {
	return tracing.Select("curves.piecewise")
}

// ErrNilKey flags a nil key handed to Add, Insert or a decoder.
var ErrNilKey = errors.New("curve key must not be nil")

// ErrInvalidKey flags a key carrying NaN or infinite coordinates.
var ErrInvalidKey = errors.New("curve key has an invalid coordinate")

// ErrUnsortedKeys flags keys out of ascending parameter order.
var ErrUnsortedKeys = errors.New("curve keys are not sorted by parameter")

// ErrNotSupported flags an operation undefined for a curve flavor,
// such as measuring the arc length of a function curve.
var ErrNotSupported = errors.New("operation not supported for this curve flavor")

// ErrUnknownTag flags an unrecognized interpolation or loop name.
var ErrUnknownTag = errors.New("unknown tag")

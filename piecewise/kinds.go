package piecewise

import "fmt"

// Interpolation selects the segment type between a key and its
// successor.
type Interpolation int8

// Interpolation tags, one per segment family. Step segments differ in
// where the jump happens: right after the key, halfway, or at the next
// key.
const (
	Linear Interpolation = iota
	StepLeft
	StepCentered
	StepRight
	Bezier
	BSpline
	Hermite
	CatmullRom
)

var interpolationNames = []string{
	"linear", "step-left", "step-centered", "step-right",
	"bezier", "b-spline", "hermite", "catmull-rom",
}

// IsStep is a predicate: does the tag name one of the step variants?
func (ip Interpolation) IsStep() bool {
	return ip == StepLeft || ip == StepCentered || ip == StepRight
}

func (ip Interpolation) String() string {
	if ip < 0 || int(ip) >= len(interpolationNames) {
		return fmt.Sprintf("interpolation(%d)", int8(ip))
	}
	return interpolationNames[ip]
}

// MarshalText implements encoding.TextMarshaler. Tags travel by name,
// not by numeric value.
func (ip Interpolation) MarshalText() ([]byte, error) {
	if ip < 0 || int(ip) >= len(interpolationNames) {
		return nil, fmt.Errorf("%w: interpolation %d", ErrUnknownTag, int8(ip))
	}
	return []byte(interpolationNames[ip]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ip *Interpolation) UnmarshalText(text []byte) error {
	for i, name := range interpolationNames {
		if name == string(text) {
			*ip = Interpolation(i)
			return nil
		}
	}
	return fmt.Errorf("%w: interpolation %q", ErrUnknownTag, string(text))
}

// Loop is the policy for query parameters outside the key range.
type Loop int8

// Loop policies. Constant clamps to the boundary key, Linear
// extrapolates along the boundary tangent, Cycle repeats the curve,
// CycleOffset repeats it with an accumulating offset, and Oscillate
// plays it back and forth.
const (
	LoopConstant Loop = iota
	LoopLinear
	LoopCycle
	LoopCycleOffset
	LoopOscillate
)

var loopNames = []string{
	"constant", "linear", "cycle", "cycle-offset", "oscillate",
}

func (lp Loop) String() string {
	if lp < 0 || int(lp) >= len(loopNames) {
		return fmt.Sprintf("loop(%d)", int8(lp))
	}
	return loopNames[lp]
}

// MarshalText implements encoding.TextMarshaler.
func (lp Loop) MarshalText() ([]byte, error) {
	if lp < 0 || int(lp) >= len(loopNames) {
		return nil, fmt.Errorf("%w: loop %d", ErrUnknownTag, int8(lp))
	}
	return []byte(loopNames[lp]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (lp *Loop) UnmarshalText(text []byte) error {
	for i, name := range loopNames {
		if name == string(text) {
			*lp = Loop(i)
			return nil
		}
	}
	return fmt.Errorf("%w: loop %q", ErrUnknownTag, string(text))
}

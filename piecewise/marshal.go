package piecewise

import (
	"encoding/json"

	"github.com/npillmayer/curves"
)

// pathJSON is the wire form of a path: the loop policies plus the
// ordered key list. Interpolation and loop tags travel by name, points
// as coordinate arrays.
type pathJSON[T curves.Vec[T]] struct {
	PreLoop    Loop      `json:"preLoop"`
	PostLoop   Loop      `json:"postLoop"`
	SmoothEnds bool      `json:"smoothEnds,omitempty"`
	Keys       []*Key[T] `json:"keys"`
}

// MarshalJSON implements json.Marshaler.
func (c *Path[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(pathJSON[T]{
		PreLoop:    c.PreLoop,
		PostLoop:   c.PostLoop,
		SmoothEnds: c.SmoothEnds,
		Keys:       c.keys,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Unknown interpolation or
// loop tags are rejected, as are null keys.
func (c *Path[T]) UnmarshalJSON(data []byte) error {
	var pj pathJSON[T]
	if err := json.Unmarshal(data, &pj); err != nil {
		return err
	}
	for _, k := range pj.Keys {
		if k == nil {
			return ErrNilKey
		}
	}
	c.PreLoop = pj.PreLoop
	c.PostLoop = pj.PostLoop
	c.SmoothEnds = pj.SmoothEnds
	c.keys = pj.Keys
	return nil
}

// UnmarshalJSON implements json.Unmarshaler, keeping the identity of
// key parameter and x-coordinate intact after decoding.
func (f *Function) UnmarshalJSON(data []byte) error {
	if err := f.Path.UnmarshalJSON(data); err != nil {
		return err
	}
	for _, k := range f.keys {
		k.Param = k.Point.X()
	}
	return nil
}

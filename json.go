package curves

import "encoding/json"

// MarshalJSON implements json.Marshaler. Pairs travel as two-element
// arrays [x,y], matching the natural encoding of Scalar (a number) and
// Triple ([x,y,z]).
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X(), p.Y()})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var a [2]float64
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = P(a[0], a[1])
	return nil
}

package sro

import (
	"encoding/json"
	"math"
	"strconv"
)

// Value is an optional float64. The zero Value is undefined, so a freshly
// allocated []Value already marks every slot as "not computed".
type Value struct {
	v  float64
	ok bool
}

// Defined wraps a computed number.
func Defined(x float64) Value {
	return Value{v: x, ok: true}
}

// Undefined returns the empty Value.
func Undefined() Value {
	return Value{}
}

// Get returns the number and whether it is defined.
func (v Value) Get() (float64, bool) {
	return v.v, v.ok
}

// IsDefined reports whether v carries a number.
func (v Value) IsDefined() bool {
	return v.ok
}

// Float returns the number, or NaN when undefined. Meant for export to
// consumers that only speak float64; never feed it back into arithmetic.
func (v Value) Float() float64 {
	if !v.ok {
		return math.NaN()
	}
	return v.v
}

// String renders the number with %g, or "undefined".
func (v Value) String() string {
	if !v.ok {
		return "undefined"
	}
	return strconv.FormatFloat(v.v, 'g', -1, 64)
}

// MarshalJSON encodes undefined as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.v)
}

// UnmarshalJSON accepts a number or null.
func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Undefined()
		return nil
	}
	var x float64
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}
	*v = Defined(x)
	return nil
}

// MarshalYAML encodes undefined as null.
func (v Value) MarshalYAML() (interface{}, error) {
	if !v.ok {
		return nil, nil
	}
	return v.v, nil
}

// mean averages the defined entries of vals in index order.
// It returns the average and the number of defined entries.
func mean(vals []Value) (Value, int) {
	var (
		sum float64
		n   int
	)
	for _, x := range vals {
		if x.ok {
			sum += x.v
			n++
		}
	}
	if n == 0 {
		return Undefined(), 0
	}
	return Defined(sum / float64(n)), n
}

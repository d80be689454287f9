package stats

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"gitlab.com/tozd/go/errors"
)

// Value is a float that may be missing. A valid Value can still hold NaN or an
// infinity when it came out of a division by zero.
type Value struct {
	Float float64
	Valid bool
}

func Null() Value {
	return Value{}
}

func Of(f float64) Value {
	return Value{Float: f, Valid: true}
}

// Defined reports whether v is present and finite.
func (v Value) Defined() bool {
	return v.Valid && !math.IsNaN(v.Float) && !math.IsInf(v.Float, 0)
}

func (v Value) String() string {
	if !v.Valid {
		return "null"
	}
	return strconv.FormatFloat(v.Float, 'f', -1, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case !v.Valid:
		return []byte("null"), nil
	case math.IsNaN(v.Float):
		return []byte(`"NaN"`), nil
	case math.IsInf(v.Float, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v.Float, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v.Float)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null":
		*v = Null()
		return nil
	case `"NaN"`:
		*v = Of(math.NaN())
		return nil
	case `"+Inf"`:
		*v = Of(math.Inf(1))
		return nil
	case `"-Inf"`:
		*v = Of(math.Inf(-1))
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return errors.Errorf("decoding value %s: %w", data, err)
	}
	*v = Of(f)
	return nil
}

// mean accumulates an arithmetic mean, skipping values that are not defined.
type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v Value) {
	if !v.Defined() {
		return
	}
	m.sum += v.Float
	m.n++
}

func (m *mean) value() Value {
	if m.n == 0 {
		return Null()
	}
	return Of(m.sum / float64(m.n))
}

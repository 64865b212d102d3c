package models

import (
	"encoding/json"
	"strconv"
)

// Money is an amount in EGP. The upstream is loose about the field: some
// records carry a number, some a numeric string, and a few legacy ones
// carry garbage. Anything unparseable decodes to zero so it drops out of
// income sums instead of failing the whole collection.
type Money float64

func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*m = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*m = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*m = 0
			return nil
		}
		*m = Money(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*m = 0
		return nil
	}
	*m = Money(v)
	return nil
}

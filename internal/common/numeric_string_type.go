package common

import (
	"bytes"
	"encoding/json"
)

// NumericString accepts either a JSON string or a JSON number and keeps the
// text. Form clients send coordinates as strings, scripts send numbers.
type NumericString string

func (ns *NumericString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*ns = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*ns = NumericString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*ns = NumericString(n.String())
	return nil
}

package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexibleValue holds a JSON value that clients send either as a number or
// as a string, such as an amount of 12.5 or "12.5".
type FlexibleValue json.RawMessage

// UnmarshalJSON keeps the raw token for later parsing.
func (v *FlexibleValue) UnmarshalJSON(data []byte) error {
	*v = append((*v)[:0], data...)
	return nil
}

// String returns the value as text. Strings are unquoted, null and absent
// values become "", and any other token is returned verbatim so that the
// caller's parser rejects it.
func (v FlexibleValue) String() string {
	raw := bytes.TrimSpace(v)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return string(raw)
		}
		return strings.TrimSpace(s)
	}
	return string(raw)
}

package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Num is a numeric field that may arrive as a JSON number, a numeric string,
// a boolean, or null. Decoding never fails: blank or unparsable values decode
// as zero, which is the documented default for every numeric field.
type Num float64

func (n *Num) UnmarshalJSON(data []byte) error {
	*n = 0
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		*n = Num(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		*n = Num(f)
	case bool:
		if v {
			*n = 1
		}
	}
	return nil
}

// Float64 returns the parsed value, zero when the field was absent or invalid.
func (n Num) Float64() float64 { return float64(n) }

// Str is a string field that may arrive as a JSON string, a number, or null.
// The raw value is preserved untouched for display; Norm applies the
// presence rule (trimmed, blank means absent).
type Str string

func (s *Str) UnmarshalJSON(data []byte) error {
	*s = ""
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case string:
		*s = Str(v)
	case float64:
		*s = Str(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		*s = Str(strconv.FormatBool(v))
	}
	return nil
}

// Raw returns the value exactly as it appeared in the source.
func (s Str) Raw() string { return string(s) }

// Norm returns the trimmed value; an all-whitespace value normalizes to "".
func (s Str) Norm() string { return strings.TrimSpace(string(s)) }

// Present reports whether the field holds a non-blank value.
func (s Str) Present() bool { return s.Norm() != "" }

// Flag is a permissive boolean: null, false, zero, empty strings, and empty
// collections decode as false; any other value decodes as true.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*f = false
		return nil
	}
	*f = Flag(truthy(raw))
	return nil
}

// truthy reports whether a decoded JSON value is non-null, non-zero, and
// non-empty.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}

// WardList decodes the ward_breakdown array leniently. A non-array value
// decodes as empty, and a malformed element decodes as a zero entry so the
// entry count still matches the input.
type WardList []WardEntry

func (w *WardList) UnmarshalJSON(data []byte) error {
	*w = nil
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil
	}
	list := make(WardList, 0, len(elems))
	for _, e := range elems {
		var entry WardEntry
		_ = json.Unmarshal(e, &entry)
		list = append(list, entry)
	}
	*w = list
	return nil
}

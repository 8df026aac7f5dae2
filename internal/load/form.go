package load

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ParseCount reads the leading integer of s the way a browser form does:
// surrounding blanks are ignored, trailing garbage is dropped, and anything
// that does not start with a number becomes 0. Negative values are clamped to 0.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
		// clamp absurd input instead of overflowing
		if n > 1_000_000_000 {
			n = 1_000_000_000
		}
	}

	if digits == 0 || negative {
		return 0
	}
	return n
}

// ParseInventory builds an Inventory from raw form values keyed by appliance
// name, plus "otherWatts" and "otherDescription". Missing keys count as 0.
func ParseInventory(values map[string]string) Inventory {
	inv := Inventory{Counts: make(map[Appliance]int, len(appliances))}
	for _, a := range appliances {
		inv.Counts[a] = ParseCount(values[string(a)])
	}
	inv.OtherWatts = ParseCount(values[OtherWattsField])
	inv.OtherDescription = strings.TrimSpace(values[OtherDescField])
	return inv
}

// FormValues is a JSON object of raw form fields. Values may arrive as
// strings, numbers or null and are kept as their text for ParseCount.
type FormValues map[string]string

func (f *FormValues) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	values := make(FormValues, len(raw))
	for key, msg := range raw {
		text, err := formText(msg)
		if err != nil {
			return err
		}
		values[key] = text
	}
	*f = values
	return nil
}

// Inventory parses the values with ParseInventory.
func (f FormValues) Inventory() Inventory {
	return ParseInventory(f)
}

// Count is a whole-number form field. It accepts a JSON number, string or
// null and reads it with ParseCount.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	text, err := formText(data)
	if err != nil {
		return err
	}
	*c = Count(ParseCount(text))
	return nil
}

// Figure is a decimal form field such as a kWh reading, read with ParseFigure.
type Figure float64

func (f *Figure) UnmarshalJSON(data []byte) error {
	text, err := formText(data)
	if err != nil {
		return err
	}
	*f = Figure(ParseFigure(text))
	return nil
}

// ParseFigure reads the leading decimal number of s the way a browser
// parseFloat does. Non-numeric and negative input become 0.
func ParseFigure(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	// exponent only when digits follow it
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if exp < len(s) && isDigit(s[exp]) {
			for exp < len(s) && isDigit(s[exp]) {
				exp++
			}
			end = exp
		}
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// formText returns a raw JSON scalar as text: strings unquoted, null empty,
// numbers verbatim.
func formText(msg json.RawMessage) (string, error) {
	msg = bytes.TrimSpace(msg)
	switch {
	case len(msg) == 0 || bytes.Equal(msg, []byte("null")):
		return "", nil
	case msg[0] == '"':
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return "", err
		}
		return s, nil
	default:
		return string(msg), nil
	}
}

// Package types holds small value types shared by the chain adapters and the
// watcher domain.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Hex represents a hexadecimal-encoded quantity as a string (e.g., "0x1a"), the
// way Ethereum JSON-RPC nodes encode block numbers, gas and status flags.
// The zero value is the empty string and means "not reported".
type Hex string

// HexFromString validates the input string and returns a Hex value if valid.
func HexFromString(s string) (Hex, error) {
	if err := validateHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

// HexFromUint64 encodes n as a 0x-prefixed lowercase quantity.
func HexFromUint64(n uint64) Hex {
	return Hex("0x" + strconv.FormatUint(n, 16))
}

// validateHex checks whether a string is a valid hexadecimal number starting with "0x" or "0X".
func validateHex(s string) error {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must start with 0x")
	}

	if _, err := strconv.ParseUint(s[2:], 16, 64); err != nil {
		return fmt.Errorf("invalid hexadecimal value: %w", err)
	}

	return nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
// JSON null and the empty string decode to the zero value.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if s == nil || *s == "" {
		*h = ""
		return nil
	}

	if err := validateHex(*s); err != nil {
		return err
	}

	*h = Hex(*s)
	return nil
}

// IsZero reports whether the quantity was not reported.
func (h Hex) IsZero() bool {
	return h == ""
}

// Uint64 returns the decoded value and whether decoding succeeded.
func (h Hex) Uint64() (uint64, bool) {
	if len(h) < 3 {
		return 0, false
	}

	v, err := strconv.ParseUint(string(h)[2:], 16, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Int returns the decoded int64 value from the hexadecimal string.
// If parsing fails, it returns zero.
func (h Hex) Int() int64 {
	v, _ := h.Uint64()
	return int64(v)
}

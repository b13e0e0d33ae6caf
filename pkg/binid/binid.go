// Package binid contains the pure helpers used to normalize card BIN
// identifiers and derive the 9-digit effective BIN of a subtype.
package binid

import (
	"errors"
	"fmt"
	"strings"
)

// EffectiveLength is the length of an effective BIN.
const EffectiveLength = 9

var (
	// ErrUnsupportedLength is returned when a BIN length has no derivation rule.
	ErrUnsupportedLength = errors.New("unsupported bin length")
	// ErrInvalidExt is returned when a BIN extension does not fit the BIN length.
	ErrInvalidExt = errors.New("invalid bin extension")
)

// IsNumeric reports whether s is a non-empty string of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// NormalizeBin strips everything that is not an ASCII digit.
func NormalizeBin(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			b.WriteByte(raw[i])
		}
	}

	return b.String()
}

// NormalizeBinExt derives the canonical extension for bin:
//   - 6 digits: 1 to 3 digits, left-padded with zeros to 3
//   - 8 digits: numeric, only the first digit is kept
//   - 9 digits: must be empty
func NormalizeBinExt(bin, rawExt string) (string, error) {
	ext := strings.TrimSpace(rawExt)

	switch len(bin) {
	case 6:
		if !IsNumeric(ext) || len(ext) > 3 {
			return "", fmt.Errorf("%w: bin of 6 digits needs 1 to 3 extension digits", ErrInvalidExt)
		}

		return strings.Repeat("0", 3-len(ext)) + ext, nil
	case 8:
		if !IsNumeric(ext) {
			return "", fmt.Errorf("%w: bin of 8 digits needs a numeric extension", ErrInvalidExt)
		}

		return ext[:1], nil
	case 9:
		if ext != "" {
			return "", fmt.Errorf("%w: bin of 9 digits takes no extension", ErrInvalidExt)
		}

		return "", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedLength, len(bin))
	}
}

// ComputeBinEfectivo returns the 9-digit effective BIN for bin and ext.
func ComputeBinEfectivo(bin, ext string) (string, error) {
	var out string

	switch {
	case len(bin) == 6 && ext != "":
		out = bin + ext
	case len(bin) == 8 && ext != "":
		out = bin + ext[:1]
	case len(bin) >= EffectiveLength:
		out = bin
	default:
		return "", fmt.Errorf("%w: cannot derive effective bin from %q and %q", ErrUnsupportedLength, bin, ext)
	}

	if len(out) > EffectiveLength {
		out = out[:EffectiveLength]
	}
	if len(out) != EffectiveLength || !IsNumeric(out) {
		return "", fmt.Errorf("%w: effective bin %q is not %d digits", ErrInvalidExt, out, EffectiveLength)
	}

	return out, nil
}

package csv

import (
	"math"
	"strconv"

	"github.com/arloliu/rowpack/errs"
	"github.com/arloliu/rowpack/format"
)

// decodeFunc decodes the leading numeric token of b and reports how many
// bytes were consumed, including leading whitespace. Zero consumed means
// the field is present but empty; it is never an error.
//
// The semantics follow the C numeric scanners: strtof for floating point,
// strtoll with base auto-detection (0x hex, leading 0 octal) for integers.
type decodeFunc[D format.Number] func(b []byte) (D, int)

// decoderFor selects the decode strategy for the value type tag once, at
// parser construction time.
func decoderFor[D format.Number](valueType format.ValueType) (decodeFunc[D], error) {
	switch valueType {
	case format.TypeFloat32:
		return func(b []byte) (D, int) {
			v, n := decodeFloat32(b)
			return D(v), n
		}, nil
	case format.TypeInt32:
		return func(b []byte) (D, int) {
			v, n := decodeInt64(b)
			return D(int32(v)), n //nolint:gosec // truncation matches a C cast
		}, nil
	case format.TypeInt64:
		return func(b []byte) (D, int) {
			v, n := decodeInt64(b)
			return D(v), n
		}, nil
	default:
		return nil, errs.ErrUnsupportedValueType
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// matchFold reports whether b starts with the lowercase word, ignoring case.
func matchFold(b []byte, word string) bool {
	if len(b) < len(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if b[i]|0x20 != word[i] {
			return false
		}
	}

	return true
}

// decodeFloat32 decodes a leading float token: optional sign, digits with
// optional fraction and exponent, or inf/infinity/nan.
func decodeFloat32(b []byte) (float32, int) {
	start := 0
	for start < len(b) && isSpace(b[start]) {
		start++
	}

	pos := start
	negative := false
	if pos < len(b) && (b[pos] == '+' || b[pos] == '-') {
		negative = b[pos] == '-'
		pos++
	}

	if matchFold(b[pos:], "inf") {
		n := pos + 3
		if matchFold(b[pos:], "infinity") {
			n = pos + 8
		}
		if negative {
			return float32(math.Inf(-1)), n
		}

		return float32(math.Inf(1)), n
	}

	if matchFold(b[pos:], "nan") {
		return float32(math.NaN()), pos + 3
	}

	digits := 0
	for pos < len(b) && isDigit(b[pos]) {
		pos++
		digits++
	}

	if pos < len(b) && b[pos] == '.' {
		pos++
		for pos < len(b) && isDigit(b[pos]) {
			pos++
			digits++
		}
	}

	if digits == 0 {
		return 0, 0
	}

	// Consume an exponent only when at least one digit follows it,
	// otherwise "1e" would leave the cursor inside a malformed token.
	if pos < len(b) && (b[pos] == 'e' || b[pos] == 'E') {
		expEnd := pos + 1
		if expEnd < len(b) && (b[expEnd] == '+' || b[expEnd] == '-') {
			expEnd++
		}
		expDigits := 0
		for expEnd < len(b) && isDigit(b[expEnd]) {
			expEnd++
			expDigits++
		}
		if expDigits > 0 {
			pos = expEnd
		}
	}

	// Out-of-range tokens clamp to ±Inf or 0 like strtof, so the range
	// error from ParseFloat is deliberately ignored.
	v, _ := strconv.ParseFloat(string(b[start:pos]), 32)

	return float32(v), pos
}

// decodeInt64 decodes a leading integer token with base auto-detection:
// "0x"/"0X" prefixed tokens are hexadecimal, tokens with a leading zero are
// octal, everything else is decimal. Out-of-range tokens clamp to the
// int64 limits like strtoll.
func decodeInt64(b []byte) (int64, int) {
	start := 0
	for start < len(b) && isSpace(b[start]) {
		start++
	}

	pos := start
	negative := false
	if pos < len(b) && (b[pos] == '+' || b[pos] == '-') {
		negative = b[pos] == '-'
		pos++
	}

	base := 10
	digitsStart := pos
	if pos < len(b) && b[pos] == '0' {
		if pos+2 < len(b) && (b[pos+1] == 'x' || b[pos+1] == 'X') && isHexDigit(b[pos+2]) {
			base = 16
			digitsStart = pos + 2
		} else {
			// The leading zero is itself an octal digit.
			base = 8
		}
	}

	digitsEnd := digitsStart
	for digitsEnd < len(b) && isBaseDigit(b[digitsEnd], base) {
		digitsEnd++
	}

	if digitsEnd == digitsStart {
		return 0, 0
	}

	v, err := strconv.ParseInt(string(b[digitsStart:digitsEnd]), base, 64)
	if err != nil {
		// ParseInt already clamps to the int64 limits on range errors.
		if negative {
			return math.MinInt64, digitsEnd
		}

		return math.MaxInt64, digitsEnd
	}

	if negative {
		v = -v
	}

	return v, digitsEnd
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c|0x20 >= 'a' && c|0x20 <= 'f')
}

func isBaseDigit(c byte, base int) bool {
	switch base {
	case 16:
		return isHexDigit(c)
	case 8:
		return c >= '0' && c <= '7'
	default:
		return isDigit(c)
	}
}

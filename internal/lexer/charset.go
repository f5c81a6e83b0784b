// Package lexer implements the JSONURL grammar's lexical layer: the
// character classifier (spec.md §4.B) and the percent-encoding codec
// (spec.md §4.A). Everything above the byte level — atoms, composites,
// AQF escaping — lives in internal/parser and internal/writer.
package lexer

// unencodedExtra holds the punctuation the unencoded set adds on top of
// alphanumerics: "-._~!$*/;?@". "~", "-", ".", "_" are always safe on
// both sides of the codec; the rest are merely accepted unencoded on
// input and must be escaped again on output unless named safe.
const unencodedExtra = "-._~!$*/;?@"

// alwaysSafe is the subset of unencodedExtra the writer never escapes,
// regardless of the caller's safe set.
const alwaysSafe = "-._~"

var unencodedTable [256]bool
var structuralTable [256]bool

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		unencodedTable[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		unencodedTable[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		unencodedTable[c] = true
	}
	for _, c := range unencodedExtra {
		unencodedTable[c] = true
	}
	for _, c := range "(),:" {
		structuralTable[c] = true
	}
}

// IsUnencoded reports whether b may appear literally in a bare atom without
// percent-encoding (spec.md §4.B's "unencoded set").
func IsUnencoded(b byte) bool { return unencodedTable[b] }

// IsStructural reports whether b is one of the four structural characters
// "(", ")", ",", ":".
func IsStructural(b byte) bool { return structuralTable[b] }

// IsAlwaysSafe reports whether the writer may always leave b unencoded,
// independent of the caller-supplied safe set.
func IsAlwaysSafe(b byte) bool {
	for i := 0; i < len(alwaysSafe); i++ {
		if alwaysSafe[i] == b {
			return true
		}
	}
	return false
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsHexDigit reports whether b is a valid (upper or lower case) hex digit.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// HexDigitValue returns the numeric value of a hex digit. The caller must
// have already checked IsHexDigit.
func HexDigitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	default: // 'A'-'F'
		return int(b-'A') + 10
	}
}
